package app

import (
	"errors"

	"github.com/nikolayk812/storefront/internal/cqrs"
)

// Register binds every use case to the buses. It is called once at startup.
func Register(commands *cqrs.CommandBus, queries *cqrs.QueryBus, h *Handlers) error {
	return errors.Join(
		cqrs.RegisterCommand(commands, h.PlaceOrder),
		cqrs.RegisterCommand(commands, h.CancelOrder),
		cqrs.RegisterCommand(commands, h.ConfirmOrder),
		cqrs.RegisterCommand(commands, h.CompleteOrder),
		cqrs.RegisterCommand(commands, h.CreateProduct),
		cqrs.RegisterCommand(commands, h.UpdateProduct),

		cqrs.RegisterQuery(queries, h.GetOrder),
		cqrs.RegisterQuery(queries, h.ListOrders),
		cqrs.RegisterQuery(queries, h.GetProduct),
		cqrs.RegisterQuery(queries, h.ListProducts),
	)
}
