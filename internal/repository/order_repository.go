package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/samber/lo"
)

type orderRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewOrder(pool *pgxpool.Pool) (port.OrderRepository, error) {
	if pool == nil {
		return nil, ErrNilPool
	}

	return &orderRepository{
		q:    db.New(pool),
		dbtx: pool,
	}, nil
}

// NewOrderWithTx binds the repository to tx; it never commits or rolls back.
func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		dbtx: tx,
	}
}

func (r *orderRepository) GetOrder(ctx context.Context, id domain.ID) (*domain.Order, error) {
	return r.getOrder(ctx, id, false)
}

func (r *orderRepository) GetOrderForUpdate(ctx context.Context, id domain.ID) (*domain.Order, error) {
	return r.getOrder(ctx, id, true)
}

func (r *orderRepository) getOrder(ctx context.Context, id domain.ID, forUpdate bool) (*domain.Order, error) {
	order, err := withTx(ctx, r.dbtx, func(q *db.Queries) (*domain.Order, error) {
		getFn, getName := q.GetOrder, "q.GetOrder"
		if forUpdate {
			getFn, getName = q.GetOrderForUpdate, "q.GetOrderForUpdate"
		}

		row, err := getFn(ctx, id.UUID())
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%s: %w", getName, domain.OrderNotFound(id))
			}
			return nil, fmt.Errorf("%s: %w", getName, err)
		}

		lineRows, err := q.GetOrderLines(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("q.GetOrderLines: %w", err)
		}

		order, err := mapDBOrderToDomain(row, lineRows)
		if err != nil {
			return nil, fmt.Errorf("mapDBOrderToDomain: %w", err)
		}

		return order, nil
	})
	if err != nil {
		return nil, fmt.Errorf("withTx: %w", err)
	}

	return order, nil
}

func mapDomainOrderFilterToDB(filter domain.OrderFilter) db.ListOrdersParams {
	statuses := lo.Map(filter.Statuses, func(s domain.OrderStatus, _ int) string {
		return s.String()
	})

	return db.ListOrdersParams{
		Statuses: nilSliceIfEmpty(lo.Uniq(statuses)),
		Limit:    int32(filter.Page.Limit),
		Offset:   int32(filter.Page.Offset),
	}
}

func (r *orderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("filter.Validate: %w", err)
	}

	orders, err := withTx(ctx, r.dbtx, func(q *db.Queries) ([]*domain.Order, error) {
		rows, err := q.ListOrders(ctx, mapDomainOrderFilterToDB(filter))
		if err != nil {
			return nil, fmt.Errorf("q.ListOrders: %w", err)
		}

		if len(rows) == 0 {
			return []*domain.Order{}, nil
		}

		ids := lo.Map(rows, func(row db.Order, _ int) uuid.UUID {
			return row.ID
		})

		lineRows, err := q.ListOrderLines(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("q.ListOrderLines: %w", err)
		}

		linesByOrder := lo.GroupBy(lineRows, func(line db.OrderLine) uuid.UUID {
			return line.OrderID
		})

		orders := make([]*domain.Order, 0, len(rows))
		for _, row := range rows {
			order, err := mapDBOrderToDomain(row, linesByOrder[row.ID])
			if err != nil {
				return nil, fmt.Errorf("mapDBOrderToDomain: %w", err)
			}
			orders = append(orders, order)
		}

		return orders, nil
	})
	if err != nil {
		return nil, fmt.Errorf("withTx: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) SaveOrder(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}

	total, err := order.Total()
	if err != nil {
		return fmt.Errorf("order.Total: %w", err)
	}

	if err := withTxNoResult(ctx, r.dbtx, func(q *db.Queries) error {
		if err := q.UpsertOrder(ctx, db.UpsertOrderParams{
			ID:            order.ID().UUID(),
			Status:        order.Status().String(),
			CustomerName:  order.CustomerName(),
			TotalAmount:   total.Amount,
			TotalCurrency: total.Currency,
			CreatedAt:     order.CreatedAt(),
			UpdatedAt:     order.UpdatedAt(),
		}); err != nil {
			return fmt.Errorf("q.UpsertOrder: %w", err)
		}

		if err := q.DeleteOrderLines(ctx, order.ID().UUID()); err != nil {
			return fmt.Errorf("q.DeleteOrderLines: %w", err)
		}

		lines := mapDomainOrderLinesToDB(order.ID(), order.Lines())

		copied, err := q.InsertOrderLines(ctx, lines)
		if err != nil {
			return fmt.Errorf("q.InsertOrderLines: %w", err)
		}

		if copied != int64(len(lines)) {
			return fmt.Errorf("q.InsertOrderLines: copied %d of %d lines", copied, len(lines))
		}

		return nil
	}); err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id domain.ID) error {
	// lines go with the order through ON DELETE CASCADE
	cmdTag, err := r.q.DeleteOrder(ctx, id.UUID())
	if err != nil {
		return fmt.Errorf("q.DeleteOrder: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.DeleteOrder: %w", domain.OrderNotFound(id))
	}

	return nil
}

func mapDomainOrderLinesToDB(orderID domain.ID, lines []domain.OrderLine) []db.InsertOrderLinesParams {
	return lo.Map(lines, func(line domain.OrderLine, i int) db.InsertOrderLinesParams {
		return db.InsertOrderLinesParams{
			OrderID:           orderID.UUID(),
			Position:          int32(i),
			ProductID:         line.ProductID().UUID(),
			ProductName:       line.ProductName(),
			UnitPriceAmount:   line.UnitPrice().Amount,
			UnitPriceCurrency: line.UnitPrice().Currency,
			Quantity:          int32(line.Quantity()),
		}
	})
}

func mapDBOrderLineToDomain(row db.OrderLine) (domain.OrderLine, error) {
	unitPrice, err := domain.NewMoney(row.UnitPriceAmount, row.UnitPriceCurrency)
	if err != nil {
		return domain.OrderLine{}, fmt.Errorf("domain.NewMoney: %v", err)
	}

	line, err := domain.NewOrderLine(domain.IDFromUUID(row.ProductID), row.ProductName, unitPrice, int(row.Quantity))
	if err != nil {
		return domain.OrderLine{}, fmt.Errorf("domain.NewOrderLine: %v", err)
	}

	return line, nil
}

func mapDBOrderToDomain(row db.Order, lineRows []db.OrderLine) (*domain.Order, error) {
	if len(lineRows) == 0 {
		return nil, fmt.Errorf("order[%s] has no lines", row.ID)
	}

	status, err := domain.ToOrderStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("domain.ToOrderStatus[%s]: %v", row.Status, err)
	}

	lines := make([]domain.OrderLine, 0, len(lineRows))
	for _, lineRow := range lineRows {
		line, err := mapDBOrderLineToDomain(lineRow)
		if err != nil {
			return nil, fmt.Errorf("mapDBOrderLineToDomain: %w", err)
		}
		lines = append(lines, line)
	}

	return domain.ReconstituteOrder(
		domain.IDFromUUID(row.ID),
		status,
		row.CustomerName,
		lines,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}

func nilSliceIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
