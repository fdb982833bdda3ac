package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/app"
	"github.com/nikolayk812/storefront/internal/cqrs"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/samber/lo"
)

const defaultCurrency = "USD"

type createProductRequest struct {
	Name          string  `json:"name"`
	PriceAmount   int64   `json:"price_amount"`
	PriceCurrency *string `json:"price_currency"`
	Description   string  `json:"description"`
}

// absent and null fields are left unchanged
type updateProductRequest struct {
	Name          *string `json:"name"`
	PriceAmount   *int64  `json:"price_amount"`
	PriceCurrency *string `json:"price_currency"`
	Description   *string `json:"description"`
}

func (s *Server) listProducts(c *gin.Context) {
	limit, offset, err := parsePage(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	products, err := cqrs.Ask[[]app.ProductDTO](c.Request.Context(), s.queries, app.ListProducts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := cqrs.Ask[app.ProductDTO](c.Request.Context(), s.queries, app.GetProduct{ID: c.Param("id")})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed JSON body.")
		return
	}

	id, err := cqrs.Dispatch[domain.ID](c.Request.Context(), s.commands, app.CreateProduct{
		Name:          req.Name,
		PriceAmount:   req.PriceAmount,
		PriceCurrency: lo.FromPtrOr(req.PriceCurrency, defaultCurrency),
		Description:   req.Description,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, messageResponse{Message: "Product created.", ID: id.String()})
}

func (s *Server) updateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed JSON body.")
		return
	}

	if _, err := cqrs.Dispatch[domain.ID](c.Request.Context(), s.commands, app.UpdateProduct{
		ID:            c.Param("id"),
		Name:          req.Name,
		PriceAmount:   req.PriceAmount,
		PriceCurrency: req.PriceCurrency,
		Description:   req.Description,
	}); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Product updated."})
}
