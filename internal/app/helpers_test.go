package app_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/app"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	products *mockProductRepository
	orders   *mockOrderRepository
	tx       *fakeTransactor
	handlers *app.Handlers
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	products := new(mockProductRepository)
	orders := new(mockOrderRepository)
	tx := &fakeTransactor{repos: port.Repositories{Products: products, Orders: orders}}

	handlers, err := app.NewHandlers(tx, products, orders, zaptest.NewLogger(t))
	require.NoError(t, err)

	t.Cleanup(func() {
		products.AssertExpectations(t)
		orders.AssertExpectations(t)
	})

	return &fixture{
		products: products,
		orders:   orders,
		tx:       tx,
		handlers: handlers,
	}
}

func newProduct(t *testing.T, name string, amount int64, currency string) *domain.Product {
	t.Helper()

	productName, err := domain.NewProductName(name)
	require.NoError(t, err)

	price, err := domain.NewMoney(amount, currency)
	require.NoError(t, err)

	return domain.NewProduct(domain.NewID(), productName, price, gofakeit.ProductDescription())
}

func newOrder(t *testing.T, lines ...domain.OrderLine) *domain.Order {
	t.Helper()

	if len(lines) == 0 {
		lines = []domain.OrderLine{newLine(t, 1000, "USD", 2)}
	}

	order, err := domain.PlaceOrder(domain.NewID(), gofakeit.Name(), lines)
	require.NoError(t, err)

	return order
}

func newLine(t *testing.T, amount int64, currency string, quantity int) domain.OrderLine {
	t.Helper()

	line, err := domain.NewOrderLine(domain.NewID(), gofakeit.ProductName(), domain.Money{Amount: amount, Currency: currency}, quantity)
	require.NoError(t, err)

	return line
}
