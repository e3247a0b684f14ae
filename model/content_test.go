package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFeaturedProduct_ComputeDiscount(t *testing.T) {
	orig := decimal.RequireFromString("65000")
	f := FeaturedProduct{Price: decimal.RequireFromString("49900"), OriginalPrice: &orig}
	f.ComputeDiscount()
	assert.Equal(t, "15100", f.DiscountAmount.String())
	assert.Equal(t, 23, f.DiscountPercentageCalculated)

	f.OriginalPrice = nil
	f.ComputeDiscount()
	assert.True(t, f.DiscountAmount.IsZero())
	assert.Equal(t, 0, f.DiscountPercentageCalculated)

	lower := decimal.RequireFromString("100")
	f.OriginalPrice = &lower
	f.ComputeDiscount()
	assert.True(t, f.DiscountAmount.IsZero())
}
