package utils

import (
	"bytes"
	"image/png"
	"testing"

	"restaurant_backend/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleOrder() *model.Order {
	return &model.Order{
		OrderNumber:     "ORD-1A2B3C4D",
		CustomerName:    "Ana <script>",
		CustomerEmail:   "ana@example.com",
		DeliveryAddress: "Av. Providencia 123, Santiago, RM",
		Status:          model.OrderStatusPending,
		TotalAmount:     decimal.RequireFromString("28.98"),
		Items: []model.OrderItem{{
			ProductName: "Hamburguesa Clásica",
			Quantity:    2,
			TotalPrice:  decimal.RequireFromString("28.98"),
			Extras: []model.OrderItemExtra{
				{IngredientName: "Queso extra"},
				{IngredientName: "Bacon"},
			},
		}},
	}
}

func TestNewOrderConfirmationData(t *testing.T) {
	data := NewOrderConfirmationData(sampleOrder())

	assert.Equal(t, "28.98", data.Total)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Queso extra, Bacon", data.Items[0].Extras)
	assert.Equal(t, 2, data.Items[0].Quantity)
}

func TestRenderOrderConfirmation_EscapesCustomerInput(t *testing.T) {
	body, err := RenderOrderConfirmation(NewOrderConfirmationData(sampleOrder()))
	require.NoError(t, err)

	assert.Contains(t, body, "ORD-1A2B3C4D")
	assert.Contains(t, body, "Hamburguesa Clásica")
	assert.NotContains(t, body, "<script>")
}

func TestOrderPlaced_SkipsWithoutSMTPHost(t *testing.T) {
	m := NewOrderMailer(SMTPConfig{}, zap.NewNop())
	assert.NotPanics(t, func() { m.OrderPlaced(sampleOrder()) })
}

func TestGenerateQRCode(t *testing.T) {
	raw, err := GenerateQRCode("ORD-1A2B3C4D", 128)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(nil, Ptr(2)))
	assert.Equal(t, 0, Offset(Ptr(10), Ptr(0)))
	assert.Equal(t, 20, Offset(Ptr(10), Ptr(3)))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr("   "))
	assert.Equal(t, "Depto 4", *StringPtr(" Depto 4 "))
}
