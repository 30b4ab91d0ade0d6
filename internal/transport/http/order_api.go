package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/padoca/ordering/internal/domains/orders/adapters/http/mapper"
	orderdomain "github.com/padoca/ordering/internal/domains/orders/domain"
	orderports "github.com/padoca/ordering/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with the orders bounded context service.
type OrderAPI struct {
	service orderports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service orderports.Service) OrderAPI {
	return OrderAPI{service: service}
}

type checkoutPayload struct {
	Payment string `json:"payment"`
}

// Post /v1/orders
// Converts the caller's cart into an order.
func (api *OrderAPI) Checkout(c *gin.Context) {
	var payload checkoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	input := orderports.CheckoutInput{
		CustomerID: customerID(c),
		Payment:    orderdomain.Payment(payload.Payment),
	}
	order, err := api.service.Checkout(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordermapper.FromDomainOrder(order))
}

// Get /v1/orders
// Lists orders newest first.
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrders(orders))
}

// Get /v1/orders/:orderId
// Find order by ID
func (api *OrderAPI) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrder(order))
}

// Post /v1/orders/:orderId/advance
// Moves the order one step forward in the preparation sequence.
func (api *OrderAPI) AdvanceOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.AdvanceStatus(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrder(order))
}

// Post /v1/orders/:orderId/cancel
// Cancels an order still waiting for preparation.
func (api *OrderAPI) CancelOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.CancelOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrder(order))
}
