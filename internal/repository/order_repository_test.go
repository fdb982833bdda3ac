package repository_test

import (
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestSaveOrder() {
	defer suite.deleteAll()

	tests := []struct {
		name       string
		orderFunc  func() *domain.Order
		updateFunc func(o *domain.Order) error
		wantStatus domain.OrderStatus
	}{
		{
			name:       "new order: ok",
			orderFunc:  randomOrder,
			wantStatus: domain.OrderStatusPending,
		},
		{
			name:       "confirmed order: ok",
			orderFunc:  randomOrder,
			updateFunc: (*domain.Order).Confirm,
			wantStatus: domain.OrderStatusConfirmed,
		},
		{
			name:      "completed order: ok",
			orderFunc: randomOrder,
			updateFunc: func(o *domain.Order) error {
				if err := o.Confirm(); err != nil {
					return err
				}
				return o.Complete()
			},
			wantStatus: domain.OrderStatusCompleted,
		},
		{
			name:       "cancelled order: ok",
			orderFunc:  randomOrder,
			updateFunc: (*domain.Order).Cancel,
			wantStatus: domain.OrderStatusCancelled,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			order := tt.orderFunc()

			err := suite.orders.SaveOrder(ctx, order)
			require.NoError(t, err)

			if tt.updateFunc != nil {
				require.NoError(t, tt.updateFunc(order))

				err = suite.orders.SaveOrder(ctx, order)
				require.NoError(t, err)
			}

			actual, err := suite.orders.GetOrder(ctx, order.ID())
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, actual.Status())
			assertOrder(t, order, actual)

			var lineCount int
			err = suite.pool.QueryRow(ctx, "SELECT count(*) FROM order_lines WHERE order_id = $1", order.ID().UUID()).Scan(&lineCount)
			require.NoError(t, err)
			assert.Len(t, order.Lines(), lineCount)
		})
	}
}

func (suite *repositorySuite) TestSaveOrder_StoresTotal() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	line1, err := domain.NewOrderLine(domain.NewID(), "Widget", domain.Money{Amount: 1500, Currency: "EUR"}, 3)
	require.NoError(t, err)
	line2, err := domain.NewOrderLine(domain.NewID(), "Gadget", domain.Money{Amount: 250, Currency: "EUR"}, 2)
	require.NoError(t, err)

	order, err := domain.PlaceOrder(domain.NewID(), "Jane Doe", []domain.OrderLine{line1, line2})
	require.NoError(t, err)

	require.NoError(t, suite.orders.SaveOrder(ctx, order))

	var (
		amount int64
		cur    string
	)
	err = suite.pool.QueryRow(ctx, "SELECT total_amount, total_currency FROM orders WHERE id = $1", order.ID().UUID()).Scan(&amount, &cur)
	require.NoError(t, err)

	assert.Equal(t, int64(5000), amount)
	assert.Equal(t, "EUR", cur)
}

func (suite *repositorySuite) TestSaveOrder_Nil() {
	err := suite.orders.SaveOrder(suite.T().Context(), nil)
	suite.EqualError(err, "order is nil")
}

func (suite *repositorySuite) TestGetOrder() {
	defer suite.deleteAll()

	order := randomOrder()
	suite.Require().NoError(suite.orders.SaveOrder(suite.T().Context(), order))

	missingID := domain.NewID()

	tests := []struct {
		name      string
		id        domain.ID
		forUpdate bool
		wantError string
	}{
		{
			name: "existing order: ok",
			id:   order.ID(),
		},
		{
			name:      "existing order for update: ok",
			id:        order.ID(),
			forUpdate: true,
		},
		{
			name:      "missing order: not found",
			id:        missingID,
			wantError: fmt.Sprintf("withTx: q.GetOrder: Order with id %q not found.", missingID),
		},
		{
			name:      "missing order for update: not found",
			id:        missingID,
			forUpdate: true,
			wantError: fmt.Sprintf("withTx: q.GetOrderForUpdate: Order with id %q not found.", missingID),
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			get := suite.orders.GetOrder
			if tt.forUpdate {
				get = suite.orders.GetOrderForUpdate
			}

			actual, err := get(ctx, tt.id)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				assert.ErrorIs(t, err, domain.ErrNotFound)
				return
			}
			require.NoError(t, err)

			assertOrder(t, order, actual)
		})
	}
}

func (suite *repositorySuite) TestListOrders() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	setClock(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	// created one second apart, oldest first
	pending := randomOrder()
	confirmed := randomOrder()
	require.NoError(t, confirmed.Confirm())
	cancelled := randomOrder()
	require.NoError(t, cancelled.Cancel())

	for _, o := range []*domain.Order{pending, confirmed, cancelled} {
		require.NoError(t, suite.orders.SaveOrder(ctx, o))
	}

	tests := []struct {
		name       string
		filter     domain.OrderFilter
		wantOrders []*domain.Order
		wantError  string
	}{
		{
			name:       "no statuses, newest first: ok",
			filter:     domain.OrderFilter{Page: domain.Page{Limit: 10}},
			wantOrders: []*domain.Order{cancelled, confirmed, pending},
		},
		{
			name: "one status: ok",
			filter: domain.OrderFilter{
				Statuses: []domain.OrderStatus{domain.OrderStatusConfirmed},
				Page:     domain.Page{Limit: 10},
			},
			wantOrders: []*domain.Order{confirmed},
		},
		{
			name: "two statuses, duplicated: ok",
			filter: domain.OrderFilter{
				Statuses: []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusCancelled, domain.OrderStatusPending},
				Page:     domain.Page{Limit: 10},
			},
			wantOrders: []*domain.Order{cancelled, pending},
		},
		{
			name: "status without orders: empty",
			filter: domain.OrderFilter{
				Statuses: []domain.OrderStatus{domain.OrderStatusCompleted},
				Page:     domain.Page{Limit: 10},
			},
			wantOrders: []*domain.Order{},
		},
		{
			name:       "paged: ok",
			filter:     domain.OrderFilter{Page: domain.Page{Limit: 1, Offset: 1}},
			wantOrders: []*domain.Order{confirmed},
		},
		{
			name: "unknown status: fail",
			filter: domain.OrderFilter{
				Statuses: []domain.OrderStatus{"shipped"},
				Page:     domain.Page{Limit: 10},
			},
			wantError: `filter.Validate: Invalid order status: "shipped"`,
		},
		{
			name:      "limit too large: fail",
			filter:    domain.OrderFilter{Page: domain.Page{Limit: domain.MaxPageLimit + 1}},
			wantError: "filter.Validate: page: limit must be between 1 and 500",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			orders, err := suite.orders.ListOrders(t.Context(), tt.filter)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)

			require.Len(t, orders, len(tt.wantOrders))
			for i := range tt.wantOrders {
				assertOrder(t, tt.wantOrders[i], orders[i])
			}
		})
	}
}

func (suite *repositorySuite) TestDeleteOrder() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	order := randomOrder()
	require.NoError(t, suite.orders.SaveOrder(ctx, order))

	err := suite.orders.DeleteOrder(ctx, order.ID())
	require.NoError(t, err)

	_, err = suite.orders.GetOrder(ctx, order.ID())
	require.ErrorIs(t, err, domain.ErrNotFound)

	var lineCount int
	err = suite.pool.QueryRow(ctx, "SELECT count(*) FROM order_lines WHERE order_id = $1", order.ID().UUID()).Scan(&lineCount)
	require.NoError(t, err)
	assert.Zero(t, lineCount)

	err = suite.orders.DeleteOrder(ctx, order.ID())
	require.EqualError(t, err, fmt.Sprintf("q.DeleteOrder: Order with id %q not found.", order.ID()))
}
