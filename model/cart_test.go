package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItemInput_AcceptsNumbersAndStrings(t *testing.T) {
	body := `{
		"product_id": 3,
		"quantity": "2",
		"extras": {"10": 1, "11": "2", "12": true},
		"included_ingredients": ["10", 13]
	}`

	var item CartItemInput
	require.NoError(t, json.Unmarshal([]byte(body), &item))

	require.NotNil(t, item.ProductID)
	assert.Equal(t, "3", item.ProductID.String())
	assert.Equal(t, "2", item.Quantity.String())
	assert.Equal(t, NumberOrString("1"), item.Extras["10"])
	assert.Equal(t, NumberOrString("2"), item.Extras["11"])
	assert.Equal(t, NumberOrString("true"), item.Extras["12"])
	assert.Equal(t, []NumberOrString{"10", "13"}, item.IncludedIngredients)
}

func TestCartItemInput_MissingAndEmptyFields(t *testing.T) {
	var item CartItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"product_id": null}`), &item))
	assert.Nil(t, item.ProductID)
	assert.Nil(t, item.Quantity)
	assert.Nil(t, item.IncludedIngredients)

	require.NoError(t, json.Unmarshal([]byte(`{"included_ingredients": []}`), &item))
	assert.NotNil(t, item.IncludedIngredients)
	assert.Empty(t, item.IncludedIngredients)
}

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "preparing", "ready", "delivered", "cancelled"} {
		st, ok := ParseOrderStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, OrderStatus(s), st)
	}
	for _, s := range []string{"", "PENDING", "shipped", " ready"} {
		_, ok := ParseOrderStatus(s)
		assert.False(t, ok, s)
	}
}
