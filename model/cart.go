package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NumberOrString keeps a JSON scalar that clients send either as a number or
// as a string. Anything else is kept as raw text so it fails numeric parsing
// later with a field error instead of rejecting the whole body.
type NumberOrString string

func (n *NumberOrString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberOrString(strings.TrimSpace(s))
		return nil
	}
	if string(b) == "null" {
		*n = ""
		return nil
	}
	*n = NumberOrString(b)
	return nil
}

func (n NumberOrString) String() string {
	return string(n)
}

// CartItemInput is one raw line of a checkout request.
type CartItemInput struct {
	ProductID           *NumberOrString           `json:"product_id"`
	Quantity            *NumberOrString           `json:"quantity"`
	Extras              map[string]NumberOrString `json:"extras"`
	IncludedIngredients []NumberOrString          `json:"included_ingredients"`
}

type CreateOrderInput struct {
	CustomerName      string          `json:"customer_name" validate:"required,max=200"`
	CustomerEmail     string          `json:"customer_email" validate:"required,email,max=254"`
	CustomerPhone     string          `json:"customer_phone" validate:"required,max=20"`
	DeliveryStreet    string          `json:"delivery_street" validate:"required,max=200"`
	DeliveryNumber    string          `json:"delivery_number" validate:"required,max=20"`
	DeliveryApartment string          `json:"delivery_apartment" validate:"max=100"`
	DeliveryCity      string          `json:"delivery_city" validate:"required,max=100"`
	DeliveryRegion    string          `json:"delivery_region" validate:"required,max=100"`
	Notes             string          `json:"notes"`
	Items             []CartItemInput `json:"items"`
}
