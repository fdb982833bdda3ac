package repository_test

import (
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestSaveProduct() {
	defer suite.deleteAll()

	tests := []struct {
		name        string
		productFunc func() *domain.Product
		updateFunc  func(p *domain.Product)
	}{
		{
			name:        "new product: ok",
			productFunc: randomProduct,
		},
		{
			name: "new product, empty description: ok",
			productFunc: func() *domain.Product {
				p := randomProduct()
				p.UpdateDescription("")
				return p
			},
		},
		{
			name:        "existing product renamed and repriced: ok",
			productFunc: randomProduct,
			updateFunc: func(p *domain.Product) {
				p.Rename(mustName("Renamed"))
				p.ChangePrice(randomMoney("EUR"))
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			product := tt.productFunc()

			err := suite.products.SaveProduct(ctx, product)
			require.NoError(t, err)

			if tt.updateFunc != nil {
				tt.updateFunc(product)

				err = suite.products.SaveProduct(ctx, product)
				require.NoError(t, err)
			}

			actual, err := suite.products.GetProduct(ctx, product.ID())
			require.NoError(t, err)

			assertProduct(t, product, actual)
		})
	}
}

func (suite *repositorySuite) TestSaveProduct_Nil() {
	err := suite.products.SaveProduct(suite.T().Context(), nil)
	suite.EqualError(err, "product is nil")
}

func (suite *repositorySuite) TestGetProduct() {
	defer suite.deleteAll()

	product := randomProduct()
	suite.Require().NoError(suite.products.SaveProduct(suite.T().Context(), product))

	missingID := domain.NewID()

	tests := []struct {
		name      string
		id        domain.ID
		forUpdate bool
		wantError string
	}{
		{
			name: "existing product: ok",
			id:   product.ID(),
		},
		{
			name:      "existing product for update: ok",
			id:        product.ID(),
			forUpdate: true,
		},
		{
			name:      "missing product: not found",
			id:        missingID,
			wantError: fmt.Sprintf("q.GetProduct: Product with id %q not found.", missingID),
		},
		{
			name:      "missing product for update: not found",
			id:        missingID,
			forUpdate: true,
			wantError: fmt.Sprintf("q.GetProductForUpdate: Product with id %q not found.", missingID),
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			get := suite.products.GetProduct
			if tt.forUpdate {
				get = suite.products.GetProductForUpdate
			}

			actual, err := get(ctx, tt.id)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				assert.ErrorIs(t, err, domain.ErrNotFound)
				return
			}
			require.NoError(t, err)

			assertProduct(t, product, actual)
		})
	}
}

func (suite *repositorySuite) TestListProducts() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	setClock(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	// created one second apart, oldest first
	var saved []*domain.Product
	for range 3 {
		p := randomProduct()
		require.NoError(t, suite.products.SaveProduct(ctx, p))
		saved = append(saved, p)
	}

	tests := []struct {
		name      string
		page      domain.Page
		wantIDs   []domain.ID
		wantError string
	}{
		{
			name:    "first page, newest first: ok",
			page:    domain.Page{Limit: 2},
			wantIDs: []domain.ID{saved[2].ID(), saved[1].ID()},
		},
		{
			name:    "second page: ok",
			page:    domain.Page{Limit: 2, Offset: 2},
			wantIDs: []domain.ID{saved[0].ID()},
		},
		{
			name:    "offset past the end: empty",
			page:    domain.Page{Limit: 2, Offset: 10},
			wantIDs: []domain.ID{},
		},
		{
			name:      "zero limit: fail",
			page:      domain.Page{},
			wantError: "page.Validate: limit must be between 1 and 500",
		},
		{
			name:      "negative offset: fail",
			page:      domain.Page{Limit: 1, Offset: -1},
			wantError: "page.Validate: offset must not be negative",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			products, err := suite.products.ListProducts(t.Context(), tt.page)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)

			actualIDs := make([]domain.ID, 0, len(products))
			for _, p := range products {
				actualIDs = append(actualIDs, p.ID())
			}

			assert.Equal(t, tt.wantIDs, actualIDs)
		})
	}
}

func (suite *repositorySuite) TestDeleteProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := randomProduct()
	require.NoError(t, suite.products.SaveProduct(ctx, product))

	err := suite.products.DeleteProduct(ctx, product.ID())
	require.NoError(t, err)

	_, err = suite.products.GetProduct(ctx, product.ID())
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = suite.products.DeleteProduct(ctx, product.ID())
	require.EqualError(t, err, fmt.Sprintf("q.DeleteProduct: Product with id %q not found.", product.ID()))
}

func mustName(raw string) domain.ProductName {
	name, err := domain.NewProductName(raw)
	if err != nil {
		panic(err)
	}
	return name
}
