package helper

import (
	"strings"

	"github.com/google/uuid"
)

const OrderNumberPrefix = "ORD-"

// GenerateOrderNumber returns ORD- followed by 8 uppercase hex characters.
func GenerateOrderNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return OrderNumberPrefix + strings.ToUpper(hex[:8])
}

// BuildDeliveryAddress joins the delivery parts as
// "street number[, apartment], city, region".
func BuildDeliveryAddress(street, number, apartment, city, region string) string {
	var b strings.Builder
	b.WriteString(street)
	b.WriteString(" ")
	b.WriteString(number)
	if apartment != "" {
		b.WriteString(", ")
		b.WriteString(apartment)
	}
	b.WriteString(", ")
	b.WriteString(city)
	b.WriteString(", ")
	b.WriteString(region)
	return b.String()
}
