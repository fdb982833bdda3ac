package app

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// PlaceOrder snapshots the current name and price of every referenced
// product. Nothing is saved unless every line resolves.
func (h *Handlers) PlaceOrder(ctx context.Context, cmd PlaceOrder) (domain.ID, error) {
	var orderID domain.ID

	if err := h.tx.WithinTx(ctx, func(repos port.Repositories) error {
		lines := make([]domain.OrderLine, 0, len(cmd.Lines))

		for _, requested := range cmd.Lines {
			productID, err := domain.ParseID(requested.ProductID)
			if err != nil {
				return fmt.Errorf("domain.ParseID: %w", err)
			}

			product, err := repos.Products.GetProduct(ctx, productID)
			if err != nil {
				return fmt.Errorf("repos.Products.GetProduct: %w", err)
			}

			line, err := domain.NewOrderLine(productID, product.Name().String(), product.Price(), requested.Quantity)
			if err != nil {
				return fmt.Errorf("domain.NewOrderLine: %w", err)
			}

			lines = append(lines, line)
		}

		order, err := domain.PlaceOrder(domain.NewID(), cmd.CustomerName, lines)
		if err != nil {
			return fmt.Errorf("domain.PlaceOrder: %w", err)
		}

		if err := repos.Orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("repos.Orders.SaveOrder: %w", err)
		}

		orderID = order.ID()
		return nil
	}); err != nil {
		return domain.ID{}, fmt.Errorf("h.tx.WithinTx: %w", err)
	}

	h.log.Info("order placed",
		zap.Stringer("order_id", orderID),
		zap.Int("lines", len(cmd.Lines)))

	return orderID, nil
}

func (h *Handlers) CancelOrder(ctx context.Context, cmd CancelOrder) (domain.ID, error) {
	return h.transitionOrder(ctx, cmd.ID, (*domain.Order).Cancel)
}

func (h *Handlers) ConfirmOrder(ctx context.Context, cmd ConfirmOrder) (domain.ID, error) {
	return h.transitionOrder(ctx, cmd.ID, (*domain.Order).Confirm)
}

func (h *Handlers) CompleteOrder(ctx context.Context, cmd CompleteOrder) (domain.ID, error) {
	return h.transitionOrder(ctx, cmd.ID, (*domain.Order).Complete)
}

// transitionOrder locks the order row so concurrent transitions on one order serialize.
func (h *Handlers) transitionOrder(ctx context.Context, rawID string, transition func(*domain.Order) error) (domain.ID, error) {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return domain.ID{}, fmt.Errorf("domain.ParseID: %w", err)
	}

	var status domain.OrderStatus

	if err := h.tx.WithinTx(ctx, func(repos port.Repositories) error {
		order, err := repos.Orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("repos.Orders.GetOrderForUpdate: %w", err)
		}

		if err := transition(order); err != nil {
			return err
		}

		if err := repos.Orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("repos.Orders.SaveOrder: %w", err)
		}

		status = order.Status()
		return nil
	}); err != nil {
		return domain.ID{}, fmt.Errorf("h.tx.WithinTx: %w", err)
	}

	h.log.Info("order status changed",
		zap.Stringer("order_id", id),
		zap.Stringer("status", status))

	return id, nil
}

func (h *Handlers) GetOrder(ctx context.Context, q GetOrder) (OrderDTO, error) {
	id, err := domain.ParseID(q.ID)
	if err != nil {
		return OrderDTO{}, fmt.Errorf("domain.ParseID: %w", err)
	}

	order, err := h.orders.GetOrder(ctx, id)
	if err != nil {
		return OrderDTO{}, fmt.Errorf("h.orders.GetOrder: %w", err)
	}

	dto, err := mapOrderToDTO(order)
	if err != nil {
		return OrderDTO{}, fmt.Errorf("mapOrderToDTO: %w", err)
	}

	return dto, nil
}

func (h *Handlers) ListOrders(ctx context.Context, q ListOrders) ([]OrderDTO, error) {
	statuses := make([]domain.OrderStatus, 0, len(q.Statuses))
	for _, raw := range q.Statuses {
		status, err := domain.ToOrderStatus(raw)
		if err != nil {
			return nil, fmt.Errorf("domain.ToOrderStatus: %w", err)
		}
		statuses = append(statuses, status)
	}

	filter := domain.OrderFilter{
		Statuses: lo.Uniq(statuses),
		Page:     pageOrDefault(q.Limit, q.Offset),
	}

	orders, err := h.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("h.orders.ListOrders: %w", err)
	}

	dtos, err := mapOrdersToDTO(orders)
	if err != nil {
		return nil, fmt.Errorf("mapOrdersToDTO: %w", err)
	}

	return dtos, nil
}

func pageOrDefault(limit, offset int) domain.Page {
	if limit == 0 {
		limit = domain.DefaultPageLimit
	}

	return domain.Page{Limit: limit, Offset: offset}
}
