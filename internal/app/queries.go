package app

const (
	GetOrderQuery     = "orders.get"
	ListOrdersQuery   = "orders.list"
	GetProductQuery   = "products.get"
	ListProductsQuery = "products.list"
)

type GetOrder struct {
	ID string
}

func (GetOrder) QueryName() string { return GetOrderQuery }

// ListOrders with a zero Limit uses domain.DefaultPageLimit.
type ListOrders struct {
	Statuses []string
	Limit    int
	Offset   int
}

func (ListOrders) QueryName() string { return ListOrdersQuery }

type GetProduct struct {
	ID string
}

func (GetProduct) QueryName() string { return GetProductQuery }

type ListProducts struct {
	Limit  int
	Offset int
}

func (ListProducts) QueryName() string { return ListProductsQuery }
