// Package money provides a fixed-point BRL amount expressed in integer
// centavos. Amounts are never held as floats or formatted strings inside the
// domain; formatting and parsing happen at the transport boundary.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in centavos (minor units).
type Money int64

var ErrInvalidAmount = errors.New("amount is not a valid monetary value")

// Mul returns the amount multiplied by a quantity.
func (m Money) Mul(qty int64) Money {
	return Money(int64(m) * qty)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Cents exposes the raw minor-unit value.
func (m Money) Cents() int64 {
	return int64(m)
}

// Format renders the amount in the pt-BR convention used on screen, e.g.
// "R$ 0,50".
func (m Money) Format() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, v/100, v%100)
}

// ParseBRL converts a display amount such as "R$ 15,00", "15,00" or "15" into
// centavos. Negative amounts are rejected.
func ParseBRL(raw string) (Money, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	reais := s
	centavos := "0"
	if idx := strings.IndexByte(s, ','); idx >= 0 {
		reais, centavos = s[:idx], s[idx+1:]
		if len(centavos) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
		}
		if reais == "" {
			reais = "0"
		}
	}
	whole, err := strconv.ParseInt(reais, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	frac, err := strconv.ParseInt(centavos, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return Money(whole*100 + frac), nil
}
