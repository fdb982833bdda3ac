package app_test

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/stretchr/testify/mock"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) GetProduct(ctx context.Context, id domain.ID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductRepository) GetProductForUpdate(ctx context.Context, id domain.ID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductRepository) ListProducts(ctx context.Context, page domain.Page) ([]*domain.Product, error) {
	args := m.Called(ctx, page)
	products, _ := args.Get(0).([]*domain.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) GetOrder(ctx context.Context, id domain.ID) (*domain.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*domain.Order)
	return o, args.Error(1)
}

func (m *mockOrderRepository) GetOrderForUpdate(ctx context.Context, id domain.ID) (*domain.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*domain.Order)
	return o, args.Error(1)
}

func (m *mockOrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*domain.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) SaveOrder(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepository) DeleteOrder(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

// fakeTransactor hands the same mocks to fn and counts the transactions.
type fakeTransactor struct {
	repos port.Repositories
	calls int
}

func (f *fakeTransactor) WithinTx(_ context.Context, fn func(repos port.Repositories) error) error {
	f.calls++
	return fn(f.repos)
}
