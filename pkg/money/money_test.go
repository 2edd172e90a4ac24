package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/invorya/stockroom-api/pkg/money"
)

func TestFormat_SeparadorDeMilesYDosDecimales(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"0.005", "$0.01"},
		{"-42.1", "-$42.10"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, money.Format(d), "entrada %s", tc.in)
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "$99.99", money.FormatFloat(99.99))
	assert.Equal(t, "$10,000.00", money.FormatFloat(10000))
}
