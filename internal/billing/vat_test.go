package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeVAT(t *testing.T) {
	cases := []struct {
		name      string
		subtotal  string
		vatAmount string
		total     string
	}{
		{"hundred", "100.00", "18", "118"},
		{"zero", "0", "0", "0"},
		{"small", "1", "0.18", "1.18"},
		{"rounds half up", "10.25", "1.85", "12.1"},
		{"rounds down", "5.50", "0.99", "6.49"},
		{"large", "12345.67", "2222.22", "14567.89"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			subtotal := decimal.RequireFromString(tc.subtotal)
			vatAmount, total := ComputeVAT(subtotal)

			assert.True(t, vatAmount.Equal(decimal.RequireFromString(tc.vatAmount)),
				"vatAmount = %s, want %s", vatAmount, tc.vatAmount)
			assert.True(t, total.Equal(decimal.RequireFromString(tc.total)),
				"total = %s, want %s", total, tc.total)
		})
	}
}

func TestComputeVATTotalIsSubtotalPlusVAT(t *testing.T) {
	for _, s := range []string{"0", "0.01", "99.99", "100", "4999.95"} {
		subtotal := decimal.RequireFromString(s)
		vatAmount, total := ComputeVAT(subtotal)
		assert.True(t, total.Equal(subtotal.Add(vatAmount)), "subtotal %s", s)
	}
}

func TestVATRate(t *testing.T) {
	assert.True(t, VATRate().Equal(decimal.NewFromInt(18)))
}
