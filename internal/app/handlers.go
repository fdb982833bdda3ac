package app

import (
	"errors"

	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// Handlers implements every use case. Writes go through the transactor,
// reads use the plain repositories.
type Handlers struct {
	tx       port.Transactor
	products port.ProductRepository
	orders   port.OrderRepository
	log      *zap.Logger
}

func NewHandlers(
	tx port.Transactor,
	products port.ProductRepository,
	orders port.OrderRepository,
	log *zap.Logger,
) (*Handlers, error) {
	if tx == nil || products == nil || orders == nil {
		return nil, errors.New("transactor and repositories are required")
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Handlers{
		tx:       tx,
		products: products,
		orders:   orders,
		log:      log,
	}, nil
}
