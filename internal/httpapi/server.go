package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/cqrs"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Commands *cqrs.CommandBus
	Queries  *cqrs.QueryBus
	DB       Pinger
	Logger   *zap.Logger
	// Registry receives the HTTP metrics and is served on /metrics.
	Registry    *prometheus.Registry
	ServiceName string
}

type Server struct {
	commands *cqrs.CommandBus
	queries  *cqrs.QueryBus
	db       Pinger
	log      *zap.Logger
	metrics  *Metrics
	engine   *gin.Engine
}

func NewServer(deps Deps) (*Server, error) {
	if deps.Commands == nil || deps.Queries == nil || deps.DB == nil {
		return nil, errors.New("command bus, query bus and db are required")
	}

	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	if deps.ServiceName == "" {
		deps.ServiceName = "storefront"
	}

	metrics, err := NewMetrics(deps.Registry)
	if err != nil {
		return nil, err
	}

	s := &Server{
		commands: deps.Commands,
		queries:  deps.Queries,
		db:       deps.DB,
		log:      deps.Logger,
		metrics:  metrics,
	}

	s.engine = s.routes(deps.ServiceName)

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes(serviceName string) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		otelgin.Middleware(serviceName),
		RequestID(),
		Logger(s.log),
		s.metrics.Middleware(),
	)

	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := r.Group("/api")

	products := api.Group("/products")
	{
		products.GET("", s.listProducts)
		products.POST("", s.createProduct)
		products.GET("/:id", s.getProduct)
		products.PUT("/:id", s.updateProduct)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", s.listOrders)
		orders.POST("", s.placeOrder)
		orders.GET("/:id", s.getOrder)
		orders.POST("/:id/cancel", s.cancelOrder)
		orders.POST("/:id/confirm", s.confirmOrder)
		orders.POST("/:id/complete", s.completeOrder)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Route not found."})
	})

	return r
}
