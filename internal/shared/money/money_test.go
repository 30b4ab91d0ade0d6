package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "R$ 0,50", Money(50).Format())
	assert.Equal(t, "R$ 15,00", Money(1500).Format())
	assert.Equal(t, "R$ 4,05", Money(405).Format())
	assert.Equal(t, "-R$ 1,25", Money(-125).Format())
}

func TestParseBRL(t *testing.T) {
	cases := map[string]Money{
		"R$ 0,50":  50,
		"R$ 15,00": 1500,
		"4,50":     450,
		"8":        800,
		"R$1.234,56": 123456,
	}
	for raw, want := range cases {
		got, err := ParseBRL(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParseBRL_Invalid(t *testing.T) {
	for _, raw := range []string{"", "R$", "-R$ 1,00", "abc", "1,5", "1,234"} {
		_, err := ParseBRL(raw)
		assert.ErrorIs(t, err, ErrInvalidAmount, raw)
	}
}

func TestMulAddRoundTrip(t *testing.T) {
	price := Money(50)
	total := price.Mul(3).Add(Money(1500))
	assert.Equal(t, Money(1650), total)

	parsed, err := ParseBRL(total.Format())
	require.NoError(t, err)
	assert.Equal(t, total, parsed)
}
