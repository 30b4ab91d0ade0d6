package domain

import (
	"errors"
	"strings"

	"github.com/padoca/ordering/internal/shared/money"
)

// Category groups products on the menu.
type Category string

const (
	CategorySalgados Category = "salgados"
	CategoryDoces    Category = "doces"
	CategoryBebidas  Category = "bebidas"
	CategoryPadaria  Category = "padaria"
)

// Icon maps a category to its badge icon name.
func (c Category) Icon() string {
	switch c {
	case CategorySalgados:
		return "local-pizza"
	case CategoryDoces:
		return "cake"
	case CategoryBebidas:
		return "local-drink"
	case CategoryPadaria:
		return "bakery-dining"
	default:
		return "fastfood"
	}
}

var (
	ErrEmptyName     = errors.New("product name is required")
	ErrInvalidPrice  = errors.New("unit price must be greater than zero")
	ErrNegativeStock = errors.New("stock quantity cannot be negative")
)

// Product is the catalog aggregate. Stock is the locally visible quantity;
// the ordering core only reads it, the seller collaborator mutates it.
type Product struct {
	ID        int64
	Name      string
	Category  Category
	UnitPrice money.Money
	Stock     int64
}

// NewProduct validates and constructs a Product.
func NewProduct(id int64, name string, category Category, unitPrice money.Money, stock int64) (*Product, error) {
	p := &Product{ID: id, Name: name, Category: category, UnitPrice: unitPrice, Stock: stock}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate enforces the aggregate invariants.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.UnitPrice <= 0 {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// AdjustStock applies a seller-side stock delta. The resulting quantity must
// stay non-negative.
func (p *Product) AdjustStock(delta int64) error {
	if p.Stock+delta < 0 {
		return ErrNegativeStock
	}
	p.Stock += delta
	return nil
}
