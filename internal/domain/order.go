package domain

import (
	"slices"
	"time"
)

// Order is an aggregate root. It owns its lines, which never change after placement.
type Order struct {
	id           ID
	status       OrderStatus
	customerName string
	lines        []OrderLine
	createdAt    time.Time
	updatedAt    time.Time
}

// PlaceOrder creates a pending order. All lines must share one currency.
func PlaceOrder(id ID, customerName string, lines []OrderLine) (*Order, error) {
	if len(lines) == 0 {
		return nil, validationErrorf("Order must have at least one line item.")
	}

	currency := lines[0].UnitPrice().Currency
	for _, line := range lines[1:] {
		if line.UnitPrice().Currency != currency {
			return nil, validationErrorf("All order lines must share one currency: %s and %s.", currency, line.UnitPrice().Currency)
		}
	}

	now := Now()

	order := &Order{
		id:           id,
		status:       OrderStatusPending,
		customerName: customerName,
		lines:        slices.Clone(lines),
		createdAt:    now,
		updatedAt:    now,
	}

	// a total that cannot be represented is refused at placement
	if _, err := order.Total(); err != nil {
		return nil, err
	}

	return order, nil
}

// ReconstituteOrder rebuilds an order from persistence without re-checking placement rules.
func ReconstituteOrder(
	id ID,
	status OrderStatus,
	customerName string,
	lines []OrderLine,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:           id,
		status:       status,
		customerName: customerName,
		lines:        slices.Clone(lines),
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (o *Order) ID() ID               { return o.id }
func (o *Order) Status() OrderStatus  { return o.status }
func (o *Order) CustomerName() string { return o.customerName }
func (o *Order) Lines() []OrderLine   { return slices.Clone(o.lines) }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

func (o *Order) Confirm() error {
	return o.transitionTo(OrderStatusConfirmed)
}

func (o *Order) Cancel() error {
	return o.transitionTo(OrderStatusCancelled)
}

func (o *Order) Complete() error {
	return o.transitionTo(OrderStatusCompleted)
}

// Total sums line totals in the currency of the first line.
func (o *Order) Total() (Money, error) {
	if len(o.lines) == 0 {
		return Money{}, validationErrorf("Order has no lines.")
	}

	total, err := NewMoney(0, o.lines[0].UnitPrice().Currency)
	if err != nil {
		return Money{}, err
	}

	for _, line := range o.lines {
		lineTotal, err := line.LineTotal()
		if err != nil {
			return Money{}, err
		}

		total, err = total.Add(lineTotal)
		if err != nil {
			return Money{}, err
		}
	}

	return total, nil
}

func (o *Order) transitionTo(target OrderStatus) error {
	if !o.status.CanTransitionTo(target) {
		return illegalTransition(o.status, target)
	}

	o.status = target
	o.updatedAt = Now()

	return nil
}
