package app

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

func (h *Handlers) CreateProduct(ctx context.Context, cmd CreateProduct) (domain.ID, error) {
	name, err := domain.NewProductName(cmd.Name)
	if err != nil {
		return domain.ID{}, fmt.Errorf("domain.NewProductName: %w", err)
	}

	price, err := domain.NewMoney(cmd.PriceAmount, cmd.PriceCurrency)
	if err != nil {
		return domain.ID{}, fmt.Errorf("domain.NewMoney: %w", err)
	}

	product := domain.NewProduct(domain.NewID(), name, price, cmd.Description)

	if err := h.tx.WithinTx(ctx, func(repos port.Repositories) error {
		return repos.Products.SaveProduct(ctx, product)
	}); err != nil {
		return domain.ID{}, fmt.Errorf("h.tx.WithinTx: %w", err)
	}

	h.log.Info("product created", zap.Stringer("product_id", product.ID()))

	return product.ID(), nil
}

// UpdateProduct runs every mutator whose field is set, so updatedAt moves
// even when the new value equals the old one.
func (h *Handlers) UpdateProduct(ctx context.Context, cmd UpdateProduct) (domain.ID, error) {
	id, err := domain.ParseID(cmd.ID)
	if err != nil {
		return domain.ID{}, fmt.Errorf("domain.ParseID: %w", err)
	}

	if err := h.tx.WithinTx(ctx, func(repos port.Repositories) error {
		product, err := repos.Products.GetProductForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("repos.Products.GetProductForUpdate: %w", err)
		}

		if cmd.Name != nil {
			name, err := domain.NewProductName(*cmd.Name)
			if err != nil {
				return fmt.Errorf("domain.NewProductName: %w", err)
			}
			product.Rename(name)
		}

		if cmd.PriceAmount != nil {
			currency := lo.FromPtrOr(cmd.PriceCurrency, product.Price().Currency)

			price, err := domain.NewMoney(*cmd.PriceAmount, currency)
			if err != nil {
				return fmt.Errorf("domain.NewMoney: %w", err)
			}
			product.ChangePrice(price)
		}

		if cmd.Description != nil {
			product.UpdateDescription(*cmd.Description)
		}

		if err := repos.Products.SaveProduct(ctx, product); err != nil {
			return fmt.Errorf("repos.Products.SaveProduct: %w", err)
		}

		return nil
	}); err != nil {
		return domain.ID{}, fmt.Errorf("h.tx.WithinTx: %w", err)
	}

	h.log.Info("product updated", zap.Stringer("product_id", id))

	return id, nil
}

func (h *Handlers) GetProduct(ctx context.Context, q GetProduct) (ProductDTO, error) {
	id, err := domain.ParseID(q.ID)
	if err != nil {
		return ProductDTO{}, fmt.Errorf("domain.ParseID: %w", err)
	}

	product, err := h.products.GetProduct(ctx, id)
	if err != nil {
		return ProductDTO{}, fmt.Errorf("h.products.GetProduct: %w", err)
	}

	return mapProductToDTO(product), nil
}

func (h *Handlers) ListProducts(ctx context.Context, q ListProducts) ([]ProductDTO, error) {
	products, err := h.products.ListProducts(ctx, pageOrDefault(q.Limit, q.Offset))
	if err != nil {
		return nil, fmt.Errorf("h.products.ListProducts: %w", err)
	}

	return mapProductsToDTO(products), nil
}
