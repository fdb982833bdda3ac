package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type OrderRepository interface {
	GetOrder(ctx context.Context, id domain.ID) (*domain.Order, error)
	// GetOrderForUpdate locks the row until the surrounding transaction ends.
	GetOrderForUpdate(ctx context.Context, id domain.ID) (*domain.Order, error)

	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)

	// SaveOrder inserts or updates the order and replaces all of its lines.
	SaveOrder(ctx context.Context, order *domain.Order) error

	DeleteOrder(ctx context.Context, id domain.ID) error
}
