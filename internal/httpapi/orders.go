package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/app"
	"github.com/nikolayk812/storefront/internal/cqrs"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/samber/lo"
)

type placeOrderLineRequest struct {
	ProductID string `json:"product_id"`
	// missing means 1
	Quantity *int `json:"quantity"`
}

type placeOrderRequest struct {
	CustomerName string                  `json:"customer_name"`
	Lines        []placeOrderLineRequest `json:"lines"`
}

func (s *Server) listOrders(c *gin.Context) {
	limit, offset, err := parsePage(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	orders, err := cqrs.Ask[[]app.OrderDTO](c.Request.Context(), s.queries, app.ListOrders{
		Statuses: statusQuery(c),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := cqrs.Ask[app.OrderDTO](c.Request.Context(), s.queries, app.GetOrder{ID: c.Param("id")})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (s *Server) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed JSON body.")
		return
	}

	lines := lo.Map(req.Lines, func(line placeOrderLineRequest, _ int) app.PlaceOrderLine {
		return app.PlaceOrderLine{
			ProductID: line.ProductID,
			Quantity:  lo.FromPtrOr(line.Quantity, 1),
		}
	})

	id, err := cqrs.Dispatch[domain.ID](c.Request.Context(), s.commands, app.PlaceOrder{
		CustomerName: req.CustomerName,
		Lines:        lines,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, messageResponse{Message: "Order placed.", ID: id.String()})
}

func (s *Server) cancelOrder(c *gin.Context) {
	s.transitionOrder(c, app.CancelOrder{ID: c.Param("id")}, "Order cancelled.")
}

func (s *Server) confirmOrder(c *gin.Context) {
	s.transitionOrder(c, app.ConfirmOrder{ID: c.Param("id")}, "Order confirmed.")
}

func (s *Server) completeOrder(c *gin.Context) {
	s.transitionOrder(c, app.CompleteOrder{ID: c.Param("id")}, "Order completed.")
}

func (s *Server) transitionOrder(c *gin.Context, cmd cqrs.Command, message string) {
	if _, err := cqrs.Dispatch[domain.ID](c.Request.Context(), s.commands, cmd); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: message})
}
