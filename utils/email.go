package utils

import (
	"bytes"
	"embed"
	"html/template"
	"restaurant_backend/model"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:embed templates/order_confirmation.html
var templatesFS embed.FS

var orderConfirmationTmpl = template.Must(template.ParseFS(templatesFS, "templates/order_confirmation.html"))

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type OrderConfirmationItem struct {
	Name     string
	Quantity int
	Extras   string
	Total    string
}

type OrderConfirmationData struct {
	OrderNumber  string
	CustomerName string
	Status       string
	Address      string
	Total        string
	Items        []OrderConfirmationItem
}

func NewOrderConfirmationData(o *model.Order) OrderConfirmationData {
	data := OrderConfirmationData{
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		Status:       string(o.Status),
		Address:      o.DeliveryAddress,
		Total:        o.TotalAmount.StringFixed(2),
	}
	for _, it := range o.Items {
		names := make([]string, 0, len(it.Extras))
		for _, ex := range it.Extras {
			names = append(names, ex.IngredientName)
		}
		data.Items = append(data.Items, OrderConfirmationItem{
			Name:     it.ProductName,
			Quantity: it.Quantity,
			Extras:   strings.Join(names, ", "),
			Total:    it.TotalPrice.StringFixed(2),
		})
	}
	return data
}

func RenderOrderConfirmation(data OrderConfirmationData) (string, error) {
	var body bytes.Buffer
	if err := orderConfirmationTmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// OrderMailer sends the confirmation e-mail of a placed order.
type OrderMailer struct {
	cfg SMTPConfig
	log *zap.Logger
}

func NewOrderMailer(cfg SMTPConfig, log *zap.Logger) *OrderMailer {
	return &OrderMailer{cfg: cfg, log: log}
}

// OrderPlaced sends asynchronously so the checkout response is not delayed.
func (m *OrderMailer) OrderPlaced(o *model.Order) {
	if m.cfg.Host == "" || o.CustomerEmail == "" {
		return
	}
	data := NewOrderConfirmationData(o)
	to := o.CustomerEmail

	go func() {
		body, err := RenderOrderConfirmation(data)
		if err != nil {
			m.log.Error("render confirmation email", zap.String("order_number", data.OrderNumber), zap.Error(err))
			return
		}

		msg := gomail.NewMessage()
		msg.SetHeader("From", m.cfg.From)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", "Order confirmation #"+data.OrderNumber)
		msg.SetBody("text/html", body)

		d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
		if err := d.DialAndSend(msg); err != nil {
			m.log.Error("send confirmation email", zap.String("order_number", data.OrderNumber), zap.Error(err))
			return
		}
		m.log.Info("confirmation email sent", zap.String("order_number", data.OrderNumber))
	}()
}
