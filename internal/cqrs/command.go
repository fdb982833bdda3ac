package cqrs

import "context"

// Command is a request to change state. CommandName must be stable and must
// not depend on field values, since it is read from the zero value at registration.
type Command interface {
	CommandName() string
}

type CommandBus struct {
	reg *registry
}

func NewCommandBus() *CommandBus {
	return &CommandBus{reg: newRegistry("command")}
}

// RegisterCommand binds the handler for C. Registering C twice is an error.
func RegisterCommand[C Command, R any](bus *CommandBus, handler func(ctx context.Context, cmd C) (R, error)) error {
	var zero C

	name := zero.CommandName()

	return bus.reg.register(name, func(ctx context.Context, msg any) (any, error) {
		typed, err := castMessage[C]("command", name, msg)
		if err != nil {
			return nil, err
		}
		return handler(ctx, typed)
	})
}

// Dispatch runs the handler registered for cmd and returns its result as R.
func Dispatch[R any](ctx context.Context, bus *CommandBus, cmd Command) (R, error) {
	name := cmd.CommandName()

	result, err := bus.reg.dispatch(ctx, name, cmd)
	if err != nil {
		var zero R
		return zero, err
	}

	return castResult[R]("command", name, result)
}

// Commands returns the registered names in no particular order.
func (b *CommandBus) Commands() []string {
	return b.reg.names()
}
