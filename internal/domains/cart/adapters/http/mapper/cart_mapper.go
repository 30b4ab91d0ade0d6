package mapper

import (
	cartdomain "github.com/padoca/ordering/internal/domains/cart/domain"
	cartports "github.com/padoca/ordering/internal/domains/cart/ports"
)

// Line is the transport-layer shape for one cart line.
type Line struct {
	ProductID      int64  `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	UnitPrice      string `json:"unitPrice"`
	Quantity       int64  `json:"quantity"`
	SubtotalCents  int64  `json:"subtotalCents"`
	Subtotal       string `json:"subtotal"`
}

// Shortfall reports one cart line the last reconciliation had to adjust.
type Shortfall struct {
	ProductID  int64  `json:"productId"`
	Name       string `json:"name"`
	Requested  int64  `json:"requested"`
	Available  int64  `json:"available"`
	OutOfStock bool   `json:"outOfStock"`
}

// Totals aggregates the whole cart.
type Totals struct {
	Items       int64  `json:"items"`
	AmountCents int64  `json:"amountCents"`
	Amount      string `json:"amount"`
}

// Cart is the full cart view returned by every cart mutation.
type Cart struct {
	Lines      []Line      `json:"lines"`
	Shortfalls []Shortfall `json:"shortfalls,omitempty"`
	Totals     Totals      `json:"totals"`
}

// FromDomainLine converts a domain cart line to the transport representation.
func FromDomainLine(line cartdomain.Line) Line {
	subtotal := line.Subtotal()
	return Line{
		ProductID:      line.ProductID,
		Name:           line.Name,
		UnitPriceCents: line.UnitPrice.Cents(),
		UnitPrice:      line.UnitPrice.Format(),
		Quantity:       line.Quantity,
		SubtotalCents:  subtotal.Cents(),
		Subtotal:       subtotal.Format(),
	}
}

// FromDomainShortfall converts a domain shortfall to the transport representation.
func FromDomainShortfall(shortfall cartdomain.Shortfall) Shortfall {
	return Shortfall{
		ProductID:  shortfall.ProductID,
		Name:       shortfall.Name,
		Requested:  shortfall.Requested,
		Available:  shortfall.Available,
		OutOfStock: shortfall.OutOfStock,
	}
}

// FromView converts a cart service view to the transport representation.
func FromView(view *cartports.View) Cart {
	if view == nil {
		return Cart{Lines: []Line{}}
	}
	cart := Cart{
		Lines: make([]Line, 0, len(view.Lines)),
		Totals: Totals{
			Items:       view.Totals.Items,
			AmountCents: view.Totals.Amount.Cents(),
			Amount:      view.Totals.Amount.Format(),
		},
	}
	for _, line := range view.Lines {
		cart.Lines = append(cart.Lines, FromDomainLine(line))
	}
	for _, shortfall := range view.Shortfalls {
		cart.Shortfalls = append(cart.Shortfalls, FromDomainShortfall(shortfall))
	}
	return cart
}

// FromShortfalls converts a shortfall list for embedding in problem responses.
func FromShortfalls(shortfalls []cartdomain.Shortfall) []Shortfall {
	out := make([]Shortfall, 0, len(shortfalls))
	for _, shortfall := range shortfalls {
		out = append(out, FromDomainShortfall(shortfall))
	}
	return out
}
