package mapper

import (
	"time"

	cartmapper "github.com/padoca/ordering/internal/domains/cart/adapters/http/mapper"
	orderdomain "github.com/padoca/ordering/internal/domains/orders/domain"
)

// Order is the transport-layer shape for a placed order. Status travels with
// its display label and badge color so clients render without a lookup table.
type Order struct {
	ID           int64             `json:"id"`
	Number       string            `json:"number"`
	CustomerID   string            `json:"customerId"`
	CreatedAt    time.Time         `json:"createdAt"`
	Items        []cartmapper.Line `json:"items"`
	TotalCents   int64             `json:"totalCents"`
	Total        string            `json:"total"`
	Payment      string            `json:"payment"`
	PaymentLabel string            `json:"paymentLabel"`
	Status       Status            `json:"status"`
}

// Status carries the machine value plus its presentation attributes.
type Status struct {
	Value      string `json:"value"`
	Label      string `json:"label"`
	BadgeColor string `json:"badgeColor"`
	Terminal   bool   `json:"terminal"`
}

// FromDomainStatus converts an order status to the transport representation.
func FromDomainStatus(status orderdomain.Status) Status {
	return Status{
		Value:      string(status),
		Label:      status.Label(),
		BadgeColor: status.BadgeColor(),
		Terminal:   status.Terminal(),
	}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	items := make([]cartmapper.Line, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, cartmapper.FromDomainLine(line))
	}
	return Order{
		ID:           order.ID,
		Number:       order.Number,
		CustomerID:   order.CustomerID,
		CreatedAt:    order.CreatedAt,
		Items:        items,
		TotalCents:   order.Total.Cents(),
		Total:        order.Total.Format(),
		Payment:      string(order.Payment),
		PaymentLabel: order.Payment.Label(),
		Status:       FromDomainStatus(order.Status),
	}
}

// FromDomainOrders converts an order list, preserving newest-first order.
func FromDomainOrders(orders []*orderdomain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomainOrder(order))
	}
	return out
}
