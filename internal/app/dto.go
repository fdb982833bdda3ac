package app

import (
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/samber/lo"
)

type MoneyDTO struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type ProductDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       MoneyDTO  `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OrderLineDTO struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	UnitPrice   MoneyDTO `json:"unit_price"`
	Quantity    int      `json:"quantity"`
	LineTotal   int64    `json:"line_total"`
}

type OrderDTO struct {
	ID           string         `json:"id"`
	Status       string         `json:"status"`
	CustomerName string         `json:"customer_name"`
	Total        MoneyDTO       `json:"total"`
	Lines        []OrderLineDTO `json:"lines"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func mapMoneyToDTO(m domain.Money) MoneyDTO {
	return MoneyDTO{Amount: m.Amount, Currency: m.Currency}
}

func mapProductToDTO(p *domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().String(),
		Name:        p.Name().String(),
		Price:       mapMoneyToDTO(p.Price()),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func mapProductsToDTO(products []*domain.Product) []ProductDTO {
	return lo.Map(products, func(p *domain.Product, _ int) ProductDTO {
		return mapProductToDTO(p)
	})
}

func mapOrderLineToDTO(line domain.OrderLine) (OrderLineDTO, error) {
	lineTotal, err := line.LineTotal()
	if err != nil {
		return OrderLineDTO{}, fmt.Errorf("line.LineTotal: %w", err)
	}

	return OrderLineDTO{
		ProductID:   line.ProductID().String(),
		ProductName: line.ProductName(),
		UnitPrice:   mapMoneyToDTO(line.UnitPrice()),
		Quantity:    line.Quantity(),
		LineTotal:   lineTotal.Amount,
	}, nil
}

func mapOrderToDTO(o *domain.Order) (OrderDTO, error) {
	total, err := o.Total()
	if err != nil {
		return OrderDTO{}, fmt.Errorf("order.Total: %w", err)
	}

	lines := o.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		dto, err := mapOrderLineToDTO(line)
		if err != nil {
			return OrderDTO{}, fmt.Errorf("mapOrderLineToDTO: %w", err)
		}
		lineDTOs = append(lineDTOs, dto)
	}

	return OrderDTO{
		ID:           o.ID().String(),
		Status:       o.Status().String(),
		CustomerName: o.CustomerName(),
		Total:        mapMoneyToDTO(total),
		Lines:        lineDTOs,
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}, nil
}

func mapOrdersToDTO(orders []*domain.Order) ([]OrderDTO, error) {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dto, err := mapOrderToDTO(o)
		if err != nil {
			return nil, fmt.Errorf("mapOrderToDTO[%s]: %w", o.ID(), err)
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}
