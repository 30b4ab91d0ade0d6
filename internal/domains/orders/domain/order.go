package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	cartdomain "github.com/padoca/ordering/internal/domains/cart/domain"
	"github.com/padoca/ordering/internal/shared/money"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNoPaymentMethod = errors.New("payment method is required")
	ErrInvalidPayment  = errors.New("payment method is invalid")
)

// Payment enumerates the accepted payment methods.
type Payment string

const (
	PaymentCash Payment = "cash"
	PaymentPix  Payment = "pix"
	PaymentCard Payment = "card"
)

// Valid reports whether the value is a known payment method.
func (p Payment) Valid() bool {
	switch p {
	case PaymentCash, PaymentPix, PaymentCard:
		return true
	default:
		return false
	}
}

// Label is the pt-BR display name for the payment method.
func (p Payment) Label() string {
	switch p {
	case PaymentCash:
		return "Dinheiro"
	case PaymentPix:
		return "Pix"
	case PaymentCard:
		return "Cartão"
	default:
		return string(p)
	}
}

// Order is an immutable snapshot of a completed checkout. Lines and Total
// never change after creation; only Status mutates, through the transition
// methods below.
type Order struct {
	ID         int64
	Number     string
	CustomerID string
	CreatedAt  time.Time
	Lines      []cartdomain.Line
	Total      money.Money
	Payment    Payment
	Status     Status
}

// NewOrder builds an order from a cart snapshot that passed a clean
// reconciliation. Lines are copied by value so later cart or catalog
// mutations never alter the order.
func NewOrder(id int64, number string, customerID string, createdAt time.Time, lines []cartdomain.Line, payment Payment) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if payment == "" {
		return nil, ErrNoPaymentMethod
	}
	if !payment.Valid() {
		return nil, ErrInvalidPayment
	}
	snapshot := make([]cartdomain.Line, len(lines))
	copy(snapshot, lines)
	var total money.Money
	for _, line := range snapshot {
		total = total.Add(line.Subtotal())
	}
	return &Order{
		ID:         id,
		Number:     number,
		CustomerID: customerID,
		CreatedAt:  createdAt,
		Lines:      snapshot,
		Total:      total,
		Payment:    payment,
		Status:     StatusReceived,
	}, nil
}

// Advance moves the order to the next status in the fixed sequence.
func (o *Order) Advance() error {
	next, err := o.Status.Next()
	if err != nil {
		return err
	}
	o.Status = next
	return nil
}

// Cancel marks the order cancelled. Only orders still in received may be
// cancelled.
func (o *Order) Cancel() error {
	if o.Status == StatusCancelled {
		return nil
	}
	if o.Status != StatusReceived {
		return ErrNotCancellable
	}
	o.Status = StatusCancelled
	return nil
}

// TransitionTo applies an explicit single-step transition, rejecting skips
// and backward moves.
func (o *Order) TransitionTo(next Status) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	if next == StatusCancelled {
		return o.Cancel()
	}
	if o.Status == StatusFinalized {
		return ErrAlreadyFinalized
	}
	if !o.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	o.Status = next
	return nil
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Lines = make([]cartdomain.Line, len(o.Lines))
	copy(clone.Lines, o.Lines)
	return &clone
}

// IDSource hands out clock-derived identifiers that are strictly increasing
// within a process, even when two checkouts land on the same millisecond.
type IDSource struct {
	mu   sync.Mutex
	last int64
}

func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns the next order identifier.
func (g *IDSource) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// NewOrderNumber produces the short human-readable token shown on tickets.
func NewOrderNumber() string {
	return fmt.Sprintf("#%d", 100+rand.IntN(900))
}
