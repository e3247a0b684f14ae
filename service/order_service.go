package service

import (
	"context"
	"errors"
	"fmt"
	"restaurant_backend/helper"
	"restaurant_backend/model"
	"restaurant_backend/repository"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxOrderNumberAttempts bounds the pre-insert uniqueness check of generated
// order numbers. The unique index stays the final arbiter.
const maxOrderNumberAttempts = 5

var errOrderNumberExhausted = errors.New("could not generate a unique order number")

// OrderNotifier is told about every committed order.
type OrderNotifier interface {
	OrderPlaced(order *model.Order)
}

type OrderService struct {
	catalog   repository.PricingCatalog
	orders    repository.OrderRepo
	notifier  OrderNotifier
	log       *zap.Logger
	newNumber func() string
}

func NewOrderService(catalog repository.PricingCatalog, orders repository.OrderRepo, notifier OrderNotifier, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{
		catalog:   catalog,
		orders:    orders,
		notifier:  notifier,
		log:       log,
		newNumber: helper.GenerateOrderNumber,
	}
}

func trimInput(in *model.CreateOrderInput) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.DeliveryStreet = strings.TrimSpace(in.DeliveryStreet)
	in.DeliveryNumber = strings.TrimSpace(in.DeliveryNumber)
	in.DeliveryApartment = strings.TrimSpace(in.DeliveryApartment)
	in.DeliveryCity = strings.TrimSpace(in.DeliveryCity)
	in.DeliveryRegion = strings.TrimSpace(in.DeliveryRegion)
	in.Notes = strings.TrimSpace(in.Notes)
}

// PlaceOrder validates a cart and materializes it as a priced order in one
// transaction. It returns a *ValidationError when the cart is rejected and
// any other error when storage fails. Nothing is persisted in either case.
func (s *OrderService) PlaceOrder(ctx context.Context, in model.CreateOrderInput) (*model.Order, error) {
	trimInput(&in)

	errs := structErrors(in)
	items, itemErrs, err := parseCartItems(ctx, s.catalog, in.Items)
	if err != nil {
		return nil, err
	}
	errs = append(errs, itemErrs...)
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	var order *model.Order
	err = s.orders.WithTx(ctx, func(catalog repository.PricingCatalog, orders repository.OrderRepo) error {
		number, err := s.uniqueOrderNumber(ctx, orders)
		if err != nil {
			return err
		}

		o := &model.Order{
			OrderNumber:       number,
			CustomerName:      in.CustomerName,
			CustomerEmail:     in.CustomerEmail,
			CustomerPhone:     in.CustomerPhone,
			DeliveryStreet:    in.DeliveryStreet,
			DeliveryNumber:    in.DeliveryNumber,
			DeliveryApartment: nilIfEmpty(in.DeliveryApartment),
			DeliveryCity:      in.DeliveryCity,
			DeliveryRegion:    in.DeliveryRegion,
			DeliveryAddress:   helper.BuildDeliveryAddress(in.DeliveryStreet, in.DeliveryNumber, in.DeliveryApartment, in.DeliveryCity, in.DeliveryRegion),
			Notes:             nilIfEmpty(in.Notes),
			Status:            model.OrderStatusPending,
			TotalAmount:       decimal.Zero,
		}
		if err := orders.Create(ctx, o); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		total := decimal.Zero
		for _, item := range items {
			line, err := s.materializeItem(ctx, catalog, orders, o.ID, item)
			if err != nil {
				return err
			}
			total = total.Add(line)
		}

		if err := orders.UpdateTotal(ctx, o.ID, total); err != nil {
			return fmt.Errorf("update order total: %w", err)
		}

		order, err = orders.GetByID(ctx, o.ID)
		if err != nil {
			return fmt.Errorf("reload order: %w", err)
		}
		if order == nil {
			return fmt.Errorf("reload order %d: not found after insert", o.ID)
		}
		return nil
	})
	if err != nil {
		s.log.Error("place order failed", zap.Error(err))
		return nil, err
	}

	s.log.Info("order placed",
		zap.String("order_number", order.OrderNumber),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.TotalAmount.StringFixed(2)))

	if s.notifier != nil {
		s.notifier.OrderPlaced(order)
	}
	return order, nil
}

// materializeItem writes one order line with its extras and ingredient
// manifest and returns the line total.
func (s *OrderService) materializeItem(ctx context.Context, catalog repository.PricingCatalog, orders repository.OrderRepo, orderID uint, item CartItem) (decimal.Decimal, error) {
	product, err := catalog.GetProduct(ctx, item.ProductID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("lookup product %d: %w", item.ProductID, err)
	}
	if product == nil {
		return decimal.Zero, fmt.Errorf("product %d removed during order placement", item.ProductID)
	}

	extrasTotal, extras, err := priceExtras(ctx, catalog, product.ID, item.Extras, orderableExtra, s.log)
	if err != nil {
		return decimal.Zero, err
	}

	unitPrice := product.Price.Add(extrasTotal)
	totalPrice := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

	orderItem := &model.OrderItem{
		OrderID:            orderID,
		ProductID:          product.ID,
		ProductName:        product.Name,
		ProductDescription: product.Description,
		Quantity:           item.Quantity,
		UnitPrice:          unitPrice,
		TotalPrice:         totalPrice,
	}
	if err := orders.CreateItem(ctx, orderItem); err != nil {
		return decimal.Zero, fmt.Errorf("create order item: %w", err)
	}

	for _, ex := range extras {
		row := &model.OrderItemExtra{
			OrderItemID:    orderItem.ID,
			IngredientID:   ex.Rule.IngredientID,
			IngredientName: ex.Rule.Ingredient.Name,
			Quantity:       ex.Quantity,
			UnitPrice:      ex.UnitPrice,
			TotalPrice:     ex.Total,
		}
		if err := orders.CreateItemExtra(ctx, row); err != nil {
			return decimal.Zero, fmt.Errorf("create order item extra: %w", err)
		}
	}

	rules, err := catalog.GetPricingRules(ctx, product.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("lookup pricing rules %d: %w", product.ID, err)
	}
	if err := orders.CreateItemIngredients(ctx, buildManifest(orderItem.ID, rules, item.Included)); err != nil {
		return decimal.Zero, fmt.Errorf("create order item ingredients: %w", err)
	}

	return totalPrice, nil
}

func (s *OrderService) uniqueOrderNumber(ctx context.Context, orders repository.OrderRepo) (string, error) {
	for i := 0; i < maxOrderNumberAttempts; i++ {
		number := s.newNumber()
		exists, err := orders.NumberExists(ctx, number)
		if err != nil {
			return "", fmt.Errorf("check order number: %w", err)
		}
		if !exists {
			return number, nil
		}
		s.log.Warn("order number collision", zap.String("order_number", number))
	}
	return "", errOrderNumberExhausted
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) GetOrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	o, err := s.orders.GetByNumber(ctx, strings.ToUpper(strings.TrimSpace(number)))
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// ListOrders returns orders newest first, optionally filtered by status.
func (s *OrderService) ListOrders(ctx context.Context, status string, limit, offset int) ([]model.Order, int64, error) {
	f := repository.OrderListFilter{Limit: limit, Offset: offset}
	if status != "" {
		st, ok := model.ParseOrderStatus(status)
		if !ok {
			return nil, 0, newValidationError("status", fmt.Sprintf("%q is not a valid status", status))
		}
		f.Status = &st
	}
	return s.orders.List(ctx, f)
}

// UpdateStatus overwrites the status with any of the known values. Unknown
// values are rejected and the order is left unchanged.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*model.Order, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	st, ok := model.ParseOrderStatus(status)
	if !ok {
		return nil, newValidationError("status", fmt.Sprintf("%q is not a valid status", status))
	}
	if err := s.orders.UpdateStatus(ctx, o.ID, st); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	s.log.Info("order status updated",
		zap.String("order_number", o.OrderNumber),
		zap.String("from", string(o.Status)),
		zap.String("to", string(st)))
	return s.GetOrder(ctx, id)
}

// CountPendingBefore feeds the pending order report.
func (s *OrderService) CountPendingBefore(ctx context.Context, before time.Time) (int64, error) {
	return s.orders.CountPendingBefore(ctx, before)
}
