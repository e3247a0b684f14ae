package helper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	re := regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		n := GenerateOrderNumber()
		assert.Regexp(t, re, n)
		seen[n] = true
	}
	assert.Greater(t, len(seen), 190)
}

func TestBuildDeliveryAddress(t *testing.T) {
	assert.Equal(t,
		"Av. Providencia 123, Santiago, RM",
		BuildDeliveryAddress("Av. Providencia", "123", "", "Santiago", "RM"))
	assert.Equal(t,
		"Av. Providencia 123, Depto 4B, Santiago, RM",
		BuildDeliveryAddress("Av. Providencia", "123", "Depto 4B", "Santiago", "RM"))
}
