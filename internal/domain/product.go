package domain

import "time"

// Product is an aggregate root. All mutation goes through its methods.
type Product struct {
	id          ID
	name        ProductName
	price       Money
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(id ID, name ProductName, price Money, description string) *Product {
	now := Now()

	return &Product{
		id:          id,
		name:        name,
		price:       price,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}
}

// ReconstituteProduct rebuilds a product from persistence.
func ReconstituteProduct(
	id ID,
	name ProductName,
	price Money,
	description string,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		price:       price,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) ID() ID               { return p.id }
func (p *Product) Name() ProductName    { return p.name }
func (p *Product) Price() Money         { return p.price }
func (p *Product) Description() string  { return p.description }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

func (p *Product) Rename(name ProductName) {
	p.name = name
	p.touch()
}

func (p *Product) ChangePrice(price Money) {
	p.price = price
	p.touch()
}

func (p *Product) UpdateDescription(description string) {
	p.description = description
	p.touch()
}

func (p *Product) touch() {
	p.updatedAt = Now()
}
