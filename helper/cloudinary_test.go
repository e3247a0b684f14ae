package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345678/restaurant/products/burger.jpg", "restaurant/products/burger"},
		{"https://res.cloudinary.com/demo/image/upload/restaurant/content/hero.png", "restaurant/content/hero"},
		{"https://res.cloudinary.com/demo/image/upload/v2/logo", "logo"},
		{"https://example.com/burger.jpg", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractPublicID(tt.url), tt.url)
	}
}
