package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type productRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewProduct(pool *pgxpool.Pool) (port.ProductRepository, error) {
	if pool == nil {
		return nil, ErrNilPool
	}

	return &productRepository{
		q:    db.New(pool),
		dbtx: pool,
	}, nil
}

// NewProductWithTx binds the repository to tx; it never commits or rolls back.
func NewProductWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    db.New(tx),
		dbtx: tx,
	}
}

func (r *productRepository) GetProduct(ctx context.Context, id domain.ID) (*domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id.UUID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("q.GetProduct: %w", domain.ProductNotFound(id))
		}
		return nil, fmt.Errorf("q.GetProduct: %w", err)
	}

	product, err := mapDBProductToDomain(row)
	if err != nil {
		return nil, fmt.Errorf("mapDBProductToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetProductForUpdate(ctx context.Context, id domain.ID) (*domain.Product, error) {
	return withTx(ctx, r.dbtx, func(q *db.Queries) (*domain.Product, error) {
		row, err := q.GetProductForUpdate(ctx, id.UUID())
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("q.GetProductForUpdate: %w", domain.ProductNotFound(id))
			}
			return nil, fmt.Errorf("q.GetProductForUpdate: %w", err)
		}

		product, err := mapDBProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapDBProductToDomain: %w", err)
		}

		return product, nil
	})
}

func (r *productRepository) ListProducts(ctx context.Context, page domain.Page) ([]*domain.Product, error) {
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("page.Validate: %w", err)
	}

	rows, err := r.q.ListProducts(ctx, db.ListProductsParams{
		Limit:  int32(page.Limit),
		Offset: int32(page.Offset),
	})
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]*domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := mapDBProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapDBProductToDomain: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	if product == nil {
		return errors.New("product is nil")
	}

	price := product.Price()

	if err := r.q.UpsertProduct(ctx, db.UpsertProductParams{
		ID:            product.ID().UUID(),
		Name:          product.Name().String(),
		PriceAmount:   price.Amount,
		PriceCurrency: price.Currency,
		Description:   product.Description(),
		CreatedAt:     product.CreatedAt(),
		UpdatedAt:     product.UpdatedAt(),
	}); err != nil {
		return fmt.Errorf("q.UpsertProduct: %w", err)
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id domain.ID) error {
	cmdTag, err := r.q.DeleteProduct(ctx, id.UUID())
	if err != nil {
		return fmt.Errorf("q.DeleteProduct: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.DeleteProduct: %w", domain.ProductNotFound(id))
	}

	return nil
}

// Stored rows failing domain checks are corrupt, so their domain errors are not wrapped.
func mapDBProductToDomain(row db.Product) (*domain.Product, error) {
	name, err := domain.NewProductName(row.Name)
	if err != nil {
		return nil, fmt.Errorf("domain.NewProductName[%s]: %v", row.Name, err)
	}

	price, err := domain.NewMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return nil, fmt.Errorf("domain.NewMoney: %v", err)
	}

	return domain.ReconstituteProduct(
		domain.IDFromUUID(row.ID),
		name,
		price,
		row.Description,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}
