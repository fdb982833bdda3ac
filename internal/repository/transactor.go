package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/port"
)

var ErrNilPool = errors.New("pool is nil")

type transactor struct {
	pool *pgxpool.Pool
}

func NewTransactor(pool *pgxpool.Pool) (port.Transactor, error) {
	if pool == nil {
		return nil, ErrNilPool
	}

	return &transactor{pool: pool}, nil
}

func (t *transactor) WithinTx(ctx context.Context, fn func(repos port.Repositories) error) error {
	if err := pgx.BeginFunc(ctx, t.pool, func(tx pgx.Tx) error {
		return fn(port.Repositories{
			Products: NewProductWithTx(tx),
			Orders:   NewOrderWithTx(tx),
		})
	}); err != nil {
		return fmt.Errorf("pgx.BeginFunc: %w", err)
	}

	return nil
}
