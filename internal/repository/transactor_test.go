package repository_test

import (
	"errors"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestWithinTx() {
	defer suite.deleteAll()

	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		fnErr     error
		wantSaved bool
	}{
		{
			name:      "fn succeeds, commit: ok",
			wantSaved: true,
		},
		{
			name:  "fn fails, rollback: fail",
			fnErr: errBoom,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			product := randomProduct()
			order := randomOrder()

			err := suite.transactor.WithinTx(ctx, func(repos port.Repositories) error {
				if err := repos.Products.SaveProduct(ctx, product); err != nil {
					return err
				}

				if err := repos.Orders.SaveOrder(ctx, order); err != nil {
					return err
				}

				// visible inside the transaction
				if _, err := repos.Orders.GetOrderForUpdate(ctx, order.ID()); err != nil {
					return err
				}

				return tt.fnErr
			})
			if tt.fnErr != nil {
				require.ErrorIs(t, err, tt.fnErr)
			} else {
				require.NoError(t, err)
			}

			_, productErr := suite.products.GetProduct(ctx, product.ID())
			_, orderErr := suite.orders.GetOrder(ctx, order.ID())

			if tt.wantSaved {
				assert.NoError(t, productErr)
				assert.NoError(t, orderErr)
				return
			}

			assert.ErrorIs(t, productErr, domain.ErrNotFound)
			assert.ErrorIs(t, orderErr, domain.ErrNotFound)
		})
	}
}
