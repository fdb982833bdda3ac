package cqrs

import "context"

// Query is a read-only request. QueryName follows the same rules as CommandName.
type Query interface {
	QueryName() string
}

type QueryBus struct {
	reg *registry
}

func NewQueryBus() *QueryBus {
	return &QueryBus{reg: newRegistry("query")}
}

func RegisterQuery[Q Query, R any](bus *QueryBus, handler func(ctx context.Context, q Q) (R, error)) error {
	var zero Q

	name := zero.QueryName()

	return bus.reg.register(name, func(ctx context.Context, msg any) (any, error) {
		typed, err := castMessage[Q]("query", name, msg)
		if err != nil {
			return nil, err
		}
		return handler(ctx, typed)
	})
}

func Ask[R any](ctx context.Context, bus *QueryBus, q Query) (R, error) {
	name := q.QueryName()

	result, err := bus.reg.dispatch(ctx, name, q)
	if err != nil {
		var zero R
		return zero, err
	}

	return castResult[R]("query", name, result)
}

func (b *QueryBus) Queries() []string {
	return b.reg.names()
}
