package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type ProductRepository interface {
	GetProduct(ctx context.Context, id domain.ID) (*domain.Product, error)
	// GetProductForUpdate locks the row until the surrounding transaction ends.
	GetProductForUpdate(ctx context.Context, id domain.ID) (*domain.Product, error)

	ListProducts(ctx context.Context, page domain.Page) ([]*domain.Product, error)

	SaveProduct(ctx context.Context, product *domain.Product) error

	DeleteProduct(ctx context.Context, id domain.ID) error
}
