package domain

import "errors"

// Status enumerates order progression. Transitions are forward-only and
// follow the fixed sequence; cancellation is a distinct terminal state
// reachable from received only.
type Status string

const (
	StatusReceived  Status = "received"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready_for_pickup"
	StatusFinalized Status = "finalized"
	StatusCancelled Status = "cancelled"
)

var (
	ErrInvalidStatus     = errors.New("order status is invalid")
	ErrInvalidTransition = errors.New("order status transition is not allowed")
	ErrAlreadyFinalized  = errors.New("order is already finalized")
	ErrNotCancellable    = errors.New("order can no longer be cancelled")
)

var statusSequence = []Status{StatusReceived, StatusPreparing, StatusReady, StatusFinalized}

// Valid reports whether the value is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusReceived, StatusPreparing, StatusReady, StatusFinalized, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusFinalized || s == StatusCancelled
}

// Next returns the following status in the fixed sequence. A finalized order
// reports ErrAlreadyFinalized; a cancelled one ErrInvalidTransition.
func (s Status) Next() (Status, error) {
	switch s {
	case StatusFinalized:
		return s, ErrAlreadyFinalized
	case StatusCancelled:
		return s, ErrInvalidTransition
	}
	for i, current := range statusSequence {
		if current == s {
			return statusSequence[i+1], nil
		}
	}
	return s, ErrInvalidStatus
}

// CanTransitionTo validates a single forward step. Skipping ahead or moving
// backward is rejected.
func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusCancelled {
		return s == StatusReceived
	}
	candidate, err := s.Next()
	return err == nil && candidate == next
}

// BadgeColor maps a status to its presentation color tag.
func (s Status) BadgeColor() string {
	switch s {
	case StatusReceived:
		return "#FFA500"
	case StatusPreparing:
		return "#4285F4"
	case StatusReady:
		return "#0F9D58"
	case StatusFinalized:
		return "#757575"
	case StatusCancelled:
		return "#FF4444"
	default:
		return "#FFA500"
	}
}

// Label is the pt-BR display name shown on status badges.
func (s Status) Label() string {
	switch s {
	case StatusReceived:
		return "Pedido recebido"
	case StatusPreparing:
		return "Em preparação"
	case StatusReady:
		return "Pronto para retirada"
	case StatusFinalized:
		return "Finalizado"
	case StatusCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}
