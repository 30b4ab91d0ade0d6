package mapper

import (
	catalogdomain "github.com/padoca/ordering/internal/domains/catalog/domain"
)

// Product is the transport-layer shape for catalog items. Prices travel both
// as raw centavos and pre-formatted for display.
type Product struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Icon       string `json:"icon"`
	PriceCents int64  `json:"priceCents"`
	Price      string `json:"price"`
	Stock      int64  `json:"stock"`
	InStock    bool   `json:"inStock"`
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *catalogdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		ID:         product.ID,
		Name:       product.Name,
		Category:   string(product.Category),
		Icon:       product.Category.Icon(),
		PriceCents: product.UnitPrice.Cents(),
		Price:      product.UnitPrice.Format(),
		Stock:      product.Stock,
		InStock:    product.Stock > 0,
	}
}

// FromDomainProducts converts a product list, preserving order.
func FromDomainProducts(products []*catalogdomain.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, FromDomainProduct(product))
	}
	return out
}
