package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$24.99", FormatPrice(2499))
	assert.Equal(t, "$0.00", FormatPrice(0))
	assert.Equal(t, "$0.05", FormatPrice(5))
	assert.Equal(t, "$9999.99", FormatPrice(999999))
	assert.Equal(t, "-$8.99", FormatPrice(-899))
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(Summary{Subtotal: 4998, Tax: 425, Shipping: 899, Total: 6322})
	assert.Equal(t, "$49.98", got.Subtotal)
	assert.Equal(t, "$4.25", got.Tax)
	assert.Equal(t, "$8.99", got.Shipping)
	assert.Equal(t, "$0.00", got.Discount)
	assert.Equal(t, "$63.22", got.Total)
}

func TestFormatSummaryFreeShipping(t *testing.T) {
	got := FormatSummary(Summary{Subtotal: 5000, Tax: 425, Shipping: 0, Total: 5425})
	assert.Equal(t, "FREE", got.Shipping)
}
