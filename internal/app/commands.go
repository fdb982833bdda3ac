package app

// Command names are part of the bus registration table and must stay stable.
const (
	PlaceOrderCommand    = "orders.place"
	CancelOrderCommand   = "orders.cancel"
	ConfirmOrderCommand  = "orders.confirm"
	CompleteOrderCommand = "orders.complete"

	CreateProductCommand = "products.create"
	UpdateProductCommand = "products.update"
)

type PlaceOrderLine struct {
	ProductID string
	Quantity  int
}

type PlaceOrder struct {
	CustomerName string
	Lines        []PlaceOrderLine
}

func (PlaceOrder) CommandName() string { return PlaceOrderCommand }

type CancelOrder struct {
	ID string
}

func (CancelOrder) CommandName() string { return CancelOrderCommand }

type ConfirmOrder struct {
	ID string
}

func (ConfirmOrder) CommandName() string { return ConfirmOrderCommand }

type CompleteOrder struct {
	ID string
}

func (CompleteOrder) CommandName() string { return CompleteOrderCommand }

type CreateProduct struct {
	Name          string
	PriceAmount   int64
	PriceCurrency string
	Description   string
}

func (CreateProduct) CommandName() string { return CreateProductCommand }

// UpdateProduct changes only the non-nil fields. A nil PriceCurrency with a
// non-nil PriceAmount keeps the current currency.
type UpdateProduct struct {
	ID            string
	Name          *string
	PriceAmount   *int64
	PriceCurrency *string
	Description   *string
}

func (UpdateProduct) CommandName() string { return UpdateProductCommand }
