package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogmapper "github.com/padoca/ordering/internal/domains/catalog/adapters/http/mapper"
	catalogdomain "github.com/padoca/ordering/internal/domains/catalog/domain"
	catalogports "github.com/padoca/ordering/internal/domains/catalog/ports"
	"github.com/padoca/ordering/internal/shared/money"
)

// CatalogAPI wires HTTP transport with the catalog bounded context service.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Get /v1/products
// Lists the catalog in display order.
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProducts(products))
}

// Get /v1/products/:productId
// Find product by ID
func (api *CatalogAPI) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	product, err := api.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProduct(product))
}

type productPayload struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Stock    int64  `json:"stock"`
}

// Put /v1/products
// Creates or updates a catalog product. Prices arrive formatted ("R$ 4,50").
func (api *CatalogAPI) SaveProduct(c *gin.Context) {
	var payload productPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	price, err := money.ParseBRL(payload.Price)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	product := &catalogdomain.Product{
		ID:        payload.ID,
		Name:      payload.Name,
		Category:  catalogdomain.Category(payload.Category),
		UnitPrice: price,
		Stock:     payload.Stock,
	}
	saved, err := api.service.SaveProduct(c.Request.Context(), product)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProduct(saved))
}

// Delete /v1/products/:productId
// Removes a product from the catalog.
func (api *CatalogAPI) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	if err := api.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type adjustStockPayload struct {
	Delta int64 `json:"delta"`
}

// Post /v1/products/:productId/stock
// Applies a signed stock adjustment.
func (api *CatalogAPI) AdjustStock(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload adjustStockPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	product, err := api.service.AdjustStock(c.Request.Context(), id, payload.Delta)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProduct(product))
}
