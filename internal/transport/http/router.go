package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the per-context HTTP APIs mounted on the router.
type Handlers struct {
	Catalog CatalogAPI
	Cart    CartAPI
	Orders  OrderAPI
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(handlers Handlers, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")

	v1.GET("/products", handlers.Catalog.ListProducts)
	v1.PUT("/products", handlers.Catalog.SaveProduct)
	v1.GET("/products/:productId", handlers.Catalog.GetProduct)
	v1.DELETE("/products/:productId", handlers.Catalog.DeleteProduct)
	v1.POST("/products/:productId/stock", handlers.Catalog.AdjustStock)

	v1.GET("/cart", handlers.Cart.GetCart)
	v1.DELETE("/cart", handlers.Cart.ClearCart)
	v1.POST("/cart/items/:productId", handlers.Cart.AddItem)
	v1.DELETE("/cart/items/:productId", handlers.Cart.RemoveItem)

	v1.POST("/orders", handlers.Orders.Checkout)
	v1.GET("/orders", handlers.Orders.ListOrders)
	v1.GET("/orders/:orderId", handlers.Orders.GetOrder)
	v1.POST("/orders/:orderId/advance", handlers.Orders.AdvanceOrder)
	v1.POST("/orders/:orderId/cancel", handlers.Orders.CancelOrder)

	return router
}
