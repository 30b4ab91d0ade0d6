package application

import (
	"errors"
	"fmt"

	"github.com/padoca/ordering/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyCart) ||
		errors.Is(err, domain.ErrNoPaymentMethod) ||
		errors.Is(err, domain.ErrInvalidPayment) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
