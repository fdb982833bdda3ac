package domain

import "math"

// MaxOrderLineQuantity is the largest quantity the order_lines table can hold.
const MaxOrderLineQuantity = math.MaxInt32

// OrderLine is a snapshot of a product taken when the order was placed.
// Later changes to the product do not reach existing lines.
type OrderLine struct {
	productID   ID
	productName string
	unitPrice   Money
	quantity    int
}

func NewOrderLine(productID ID, productName string, unitPrice Money, quantity int) (OrderLine, error) {
	if quantity < 1 {
		return OrderLine{}, validationErrorf("Order line quantity must be at least 1.")
	}

	if quantity > MaxOrderLineQuantity {
		return OrderLine{}, validationErrorf("Order line quantity cannot exceed %d.", MaxOrderLineQuantity)
	}

	return OrderLine{
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}, nil
}

func (l OrderLine) ProductID() ID       { return l.productID }
func (l OrderLine) ProductName() string { return l.productName }
func (l OrderLine) UnitPrice() Money    { return l.unitPrice }
func (l OrderLine) Quantity() int       { return l.quantity }

func (l OrderLine) LineTotal() (Money, error) {
	return l.unitPrice.Multiply(int64(l.quantity))
}
