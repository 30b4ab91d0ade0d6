package transport

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	cartmapper "github.com/padoca/ordering/internal/domains/cart/adapters/http/mapper"
	cartports "github.com/padoca/ordering/internal/domains/cart/ports"
)

// CustomerHeader identifies the cart owner. Absent header falls back to a
// single shared cart, matching the one-device usage the app started from.
const (
	CustomerHeader    = "X-Customer-ID"
	defaultCustomerID = "default"
)

// CartAPI wires HTTP transport with the cart bounded context service.
type CartAPI struct {
	service cartports.Service
}

// NewCartAPI creates a CartAPI backed by the provided service.
func NewCartAPI(service cartports.Service) CartAPI {
	return CartAPI{service: service}
}

// Get /v1/cart
// Returns the cart after a reconciliation pass against current stock.
func (api *CartAPI) GetCart(c *gin.Context) {
	view, err := api.service.Reconcile(c.Request.Context(), customerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromView(view))
}

// Post /v1/cart/items/:productId
// Adds one unit of the product to the cart.
func (api *CartAPI) AddItem(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	view, err := api.service.AddLine(c.Request.Context(), customerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromView(view))
}

// Delete /v1/cart/items/:productId
// Removes one unit; ?all=true drops the whole line.
func (api *CartAPI) RemoveItem(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var (
		view *cartports.View
		err  error
	)
	if isTruthy(c.Query("all")) {
		view, err = api.service.DeleteLine(c.Request.Context(), customerID(c), id)
	} else {
		view, err = api.service.RemoveLine(c.Request.Context(), customerID(c), id)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromView(view))
}

// Delete /v1/cart
// Empties the cart.
func (api *CartAPI) ClearCart(c *gin.Context) {
	if err := api.service.Clear(c.Request.Context(), customerID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func customerID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(CustomerHeader)); id != "" {
		return id
	}
	return defaultCustomerID
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
