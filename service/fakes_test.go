package service

import (
	"context"
	"errors"
	"restaurant_backend/model"
	"restaurant_backend/repository"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var errStorage = errors.New("storage failure")

type fakeCatalog struct {
	repository.ProductRepo

	products map[uint]*model.Product
	rules    map[uint][]model.ProductIngredient
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		products: map[uint]*model.Product{},
		rules:    map[uint][]model.ProductIngredient{},
	}
}

func (f *fakeCatalog) addProduct(id uint, name, price string) *model.Product {
	p := &model.Product{
		DTO:         model.DTO{ID: id},
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		IsActive:    true,
	}
	f.products[id] = p
	return p
}

func (f *fakeCatalog) addRule(productID, ingredientID uint, name string, defaultIncluded bool, extraCost string) {
	f.rules[productID] = append(f.rules[productID], model.ProductIngredient{
		ID:              uint(len(f.rules[productID])+1) + productID*100,
		ProductID:       productID,
		IngredientID:    ingredientID,
		Ingredient:      model.Ingredient{DTO: model.DTO{ID: ingredientID}, Name: name, IsActive: true},
		DefaultIncluded: defaultIncluded,
		ExtraCost:       decimal.RequireFromString(extraCost),
		IsActive:        true,
	})
}

func (f *fakeCatalog) GetProduct(_ context.Context, id uint) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeCatalog) GetPricingRules(_ context.Context, productID uint) ([]model.ProductIngredient, error) {
	var out []model.ProductIngredient
	for _, r := range f.rules[productID] {
		if r.IsActive {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IngredientID < out[j].IngredientID })
	return out, nil
}

func (f *fakeCatalog) GetPricingRule(_ context.Context, productID, ingredientID uint) (*model.ProductIngredient, error) {
	for _, r := range f.rules[productID] {
		if r.IngredientID == ingredientID {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

type orderState struct {
	orders      map[uint]model.Order
	items       []model.OrderItem
	extras      []model.OrderItemExtra
	ingredients []model.OrderItemIngredient
	nextID      uint
}

func (s orderState) clone() orderState {
	cp := orderState{
		orders:      make(map[uint]model.Order, len(s.orders)),
		items:       append([]model.OrderItem(nil), s.items...),
		extras:      append([]model.OrderItemExtra(nil), s.extras...),
		ingredients: append([]model.OrderItemIngredient(nil), s.ingredients...),
		nextID:      s.nextID,
	}
	for k, v := range s.orders {
		cp.orders[k] = v
	}
	return cp
}

// fakeOrders keeps orders in memory. WithTx stages every write and restores
// the previous state when fn fails.
type fakeOrders struct {
	catalog *fakeCatalog
	// txCatalog replaces catalog inside WithTx when set.
	txCatalog repository.PricingCatalog
	state     orderState
	failOn  string
	taken   map[string]bool
}

func newFakeOrders(catalog *fakeCatalog) *fakeOrders {
	return &fakeOrders{
		catalog: catalog,
		state:   orderState{orders: map[uint]model.Order{}},
		taken:   map[string]bool{},
	}
}

func (f *fakeOrders) id() uint {
	f.state.nextID++
	return f.state.nextID
}

func (f *fakeOrders) fail(op string) error {
	if f.failOn == op {
		return errStorage
	}
	return nil
}

func (f *fakeOrders) Create(_ context.Context, o *model.Order) error {
	if err := f.fail("Create"); err != nil {
		return err
	}
	o.ID = f.id()
	o.CreatedAt = time.Now()
	cp := *o
	cp.Items = nil
	f.state.orders[o.ID] = cp
	return nil
}

func (f *fakeOrders) CreateItem(_ context.Context, it *model.OrderItem) error {
	if err := f.fail("CreateItem"); err != nil {
		return err
	}
	it.ID = f.id()
	f.state.items = append(f.state.items, *it)
	return nil
}

func (f *fakeOrders) CreateItemExtra(_ context.Context, ex *model.OrderItemExtra) error {
	if err := f.fail("CreateItemExtra"); err != nil {
		return err
	}
	ex.ID = f.id()
	f.state.extras = append(f.state.extras, *ex)
	return nil
}

func (f *fakeOrders) CreateItemIngredients(_ context.Context, rows []model.OrderItemIngredient) error {
	if err := f.fail("CreateItemIngredients"); err != nil {
		return err
	}
	for _, r := range rows {
		r.ID = f.id()
		f.state.ingredients = append(f.state.ingredients, r)
	}
	return nil
}

func (f *fakeOrders) UpdateTotal(_ context.Context, id uint, total decimal.Decimal) error {
	if err := f.fail("UpdateTotal"); err != nil {
		return err
	}
	o := f.state.orders[id]
	o.TotalAmount = total
	f.state.orders[id] = o
	return nil
}

func (f *fakeOrders) NumberExists(_ context.Context, number string) (bool, error) {
	if f.taken[number] {
		return true, nil
	}
	for _, o := range f.state.orders {
		if o.OrderNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrders) assemble(o model.Order) *model.Order {
	for _, it := range f.state.items {
		if it.OrderID != o.ID {
			continue
		}
		for _, ex := range f.state.extras {
			if ex.OrderItemID == it.ID {
				it.Extras = append(it.Extras, ex)
			}
		}
		for _, ing := range f.state.ingredients {
			if ing.OrderItemID == it.ID {
				it.Ingredients = append(it.Ingredients, ing)
			}
		}
		o.Items = append(o.Items, it)
	}
	return &o
}

func (f *fakeOrders) GetByID(_ context.Context, id uint) (*model.Order, error) {
	o, ok := f.state.orders[id]
	if !ok {
		return nil, nil
	}
	return f.assemble(o), nil
}

func (f *fakeOrders) GetByNumber(_ context.Context, number string) (*model.Order, error) {
	for _, o := range f.state.orders {
		if o.OrderNumber == number {
			return f.assemble(o), nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) List(_ context.Context, flt repository.OrderListFilter) ([]model.Order, int64, error) {
	var out []model.Order
	for _, o := range f.state.orders {
		if flt.Status == nil || o.Status == *flt.Status {
			out = append(out, *f.assemble(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id uint, status model.OrderStatus) error {
	if err := f.fail("UpdateStatus"); err != nil {
		return err
	}
	o := f.state.orders[id]
	o.Status = status
	f.state.orders[id] = o
	return nil
}

func (f *fakeOrders) CountPendingBefore(_ context.Context, before time.Time) (int64, error) {
	var n int64
	for _, o := range f.state.orders {
		if o.Status == model.OrderStatusPending && o.CreatedAt.Before(before) {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrders) WithTx(_ context.Context, fn func(catalog repository.PricingCatalog, txRepo repository.OrderRepo) error) error {
	saved := f.state.clone()
	var catalog repository.PricingCatalog = f.catalog
	if f.txCatalog != nil {
		catalog = f.txCatalog
	}
	if err := fn(catalog, f); err != nil {
		f.state = saved
		return err
	}
	return nil
}

type recordingNotifier struct {
	placed []string
}

func (n *recordingNotifier) OrderPlaced(o *model.Order) {
	n.placed = append(n.placed, o.OrderNumber)
}
