package service

import (
	"context"
	"fmt"
	"restaurant_backend/cache"
	"restaurant_backend/model"
	"restaurant_backend/repository"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const featuredProductsLimit = 6

type CatalogService struct {
	categories  repository.CategoryRepo
	products    repository.ProductRepo
	ingredients repository.IngredientRepo
	cache       *cache.MenuCache
	log         *zap.Logger
}

func NewCatalogService(categories repository.CategoryRepo, products repository.ProductRepo, ingredients repository.IngredientRepo, menu *cache.MenuCache, log *zap.Logger) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{
		categories:  categories,
		products:    products,
		ingredients: ingredients,
		cache:       menu,
		log:         log,
	}
}

// Categories

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	var cached []model.Category
	if s.cache.Load(ctx, cache.KeyCategories, &cached) {
		return cached, nil
	}
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Store(ctx, cache.KeyCategories, list)
	return list, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func (s *CatalogService) CategoryProducts(ctx context.Context, id uint) ([]model.Product, error) {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return nil, err
	}
	return s.products.ListByCategory(ctx, id)
}

func (s *CatalogService) CreateCategory(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	c := &model.Category{}
	if err := copier.Copy(c, &in); err != nil {
		return nil, err
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.cache.Invalidate(ctx)
	return s.GetCategory(ctx, c.ID)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, in model.CategoryInput) (*model.Category, error) {
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := copier.Copy(c, &in); err != nil {
		return nil, err
	}
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	s.cache.Invalidate(ctx)
	return s.GetCategory(ctx, id)
}

func (s *CatalogService) DeleteCategories(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDs
	}
	n, err := s.categories.Delete(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx)
	return n, nil
}

// Products

func (s *CatalogService) ListProducts(ctx context.Context, f model.ProductFilter) ([]model.Product, int64, error) {
	return s.products.List(ctx, f)
}

func (s *CatalogService) SearchProducts(ctx context.Context, q string) ([]model.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, newValidationError("q", "search parameter is required")
	}
	return s.products.Search(ctx, q)
}

func (s *CatalogService) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	var cached []model.Product
	if s.cache.Load(ctx, cache.KeyFeatured, &cached) {
		return cached, nil
	}
	list, err := s.products.Latest(ctx, featuredProductsLimit)
	if err != nil {
		return nil, err
	}
	s.cache.Store(ctx, cache.KeyFeatured, list)
	return list, nil
}

// GetProduct returns an active product with its tags and pricing rules.
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	p, err := s.products.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsActive {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) checkCategory(ctx context.Context, id uint) error {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return newValidationError("category_id", fmt.Sprintf("category with id %d does not exist", id))
	}
	return nil
}

func (s *CatalogService) pricingRules(ctx context.Context, in []model.ProductIngredientInput) ([]model.ProductIngredient, error) {
	rules := make([]model.ProductIngredient, 0, len(in))
	seen := make(map[uint]bool, len(in))
	for _, r := range in {
		if seen[r.IngredientID] {
			return nil, newValidationError("product_ingredients", fmt.Sprintf("ingredient %d is listed twice", r.IngredientID))
		}
		seen[r.IngredientID] = true
		ing, err := s.ingredients.GetByID(ctx, r.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, newValidationError("product_ingredients", fmt.Sprintf("ingredient with id %d does not exist", r.IngredientID))
		}
		rules = append(rules, newPricingRule(0, r))
	}
	return rules, nil
}

func newPricingRule(productID uint, in model.ProductIngredientInput) model.ProductIngredient {
	rule := model.ProductIngredient{
		ProductID:       productID,
		IngredientID:    in.IngredientID,
		DefaultIncluded: true,
		ExtraCost:       in.ExtraCost,
		IsActive:        true,
	}
	if in.DefaultIncluded != nil {
		rule.DefaultIncluded = *in.DefaultIncluded
	}
	if in.IsActive != nil {
		rule.IsActive = *in.IsActive
	}
	return rule
}

func validatePrice(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return newValidationError(field, "must not be negative")
	}
	return nil
}

// CreateProduct stores the product with its tags and pricing rules atomically.
func (s *CatalogService) CreateProduct(ctx context.Context, in model.CreateProductInput) (*model.Product, error) {
	if err := validatePrice("price", in.Price); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	rules, err := s.pricingRules(ctx, in.ProductIngredients)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Image:       in.Image,
		IsActive:    true,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	err = s.products.WithTx(ctx, func(tx repository.ProductRepo) error {
		if err := tx.Create(ctx, p); err != nil {
			return err
		}
		if err := tx.ReplaceTags(ctx, p.ID, in.Tags); err != nil {
			return err
		}
		return tx.ReplacePricingRules(ctx, p.ID, rules)
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.cache.Invalidate(ctx)
	return s.products.GetDetail(ctx, p.ID)
}

// UpdateProduct applies the sent fields. Tags and pricing rules are replaced
// only when present in the input.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, in model.UpdateProductInput) (*model.Product, error) {
	p, err := s.products.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	if in.Price != nil {
		if err := validatePrice("price", *in.Price); err != nil {
			return nil, err
		}
	}
	if in.CategoryID != nil {
		if err := s.checkCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}
	var rules []model.ProductIngredient
	if in.ProductIngredients != nil {
		if rules, err = s.pricingRules(ctx, *in.ProductIngredients); err != nil {
			return nil, err
		}
	}

	applyProductUpdate(p, in)

	err = s.products.WithTx(ctx, func(tx repository.ProductRepo) error {
		if err := tx.Update(ctx, p); err != nil {
			return err
		}
		if in.Tags != nil {
			if err := tx.ReplaceTags(ctx, p.ID, *in.Tags); err != nil {
				return err
			}
		}
		if in.ProductIngredients != nil {
			return tx.ReplacePricingRules(ctx, p.ID, rules)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.cache.Invalidate(ctx)
	return s.products.GetDetail(ctx, p.ID)
}

func applyProductUpdate(p *model.Product, in model.UpdateProductInput) {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Image != nil {
		p.Image = in.Image
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
}

func (s *CatalogService) DeleteProducts(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDs
	}
	n, err := s.products.Delete(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx)
	return n, nil
}

// CalculatePrice quotes a product with extras without creating an order.
// Each requested ingredient counts once and only active optional rules add
// to the total. The extra_cost lookup is the one PlaceOrder uses.
func (s *CatalogService) CalculatePrice(ctx context.Context, productID uint, in model.PriceQuoteInput) (*model.PriceQuote, error) {
	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsActive {
		return nil, ErrProductNotFound
	}

	mapped, errs := ParseExtras(in.Extras)
	if len(errs) > 0 {
		return nil, newValidationError("extras", strings.Join(errs, "; "))
	}

	// extras mapping quantities win over a bare id in extra_ids.
	qty := make(map[uint]int, len(in.ExtraIDs)+len(mapped))
	ids := make([]uint, 0, len(in.ExtraIDs)+len(mapped))
	for _, id := range in.ExtraIDs {
		if _, seen := qty[id]; seen {
			continue
		}
		qty[id] = 1
		ids = append(ids, id)
	}
	for _, sel := range mapped {
		if _, seen := qty[sel.IngredientID]; !seen {
			ids = append(ids, sel.IngredientID)
		}
		qty[sel.IngredientID] = sel.Quantity
	}
	selections := make([]ExtraSelection, 0, len(ids))
	for _, id := range ids {
		selections = append(selections, ExtraSelection{IngredientID: id, Quantity: qty[id]})
	}

	extrasTotal, _, err := priceExtras(ctx, s.products, p.ID, selections, quotableExtra, s.log)
	if err != nil {
		return nil, err
	}
	return &model.PriceQuote{
		BasePrice:   p.Price,
		ExtrasTotal: extrasTotal,
		Total:       p.Price.Add(extrasTotal),
		ExtraIDs:    ids,
	}, nil
}

// WarmMenu preloads the cached catalog reads.
func (s *CatalogService) WarmMenu(ctx context.Context) error {
	s.cache.Invalidate(ctx)
	if _, err := s.ListCategories(ctx); err != nil {
		return err
	}
	_, err := s.FeaturedProducts(ctx)
	return err
}

// Tags

func (s *CatalogService) ListTags(ctx context.Context, productID uint) ([]model.ProductTag, error) {
	return s.products.ListTags(ctx, productID)
}

func (s *CatalogService) CreateTag(ctx context.Context, in model.TagInput) (*model.ProductTag, error) {
	p, err := s.products.GetProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	tag := &model.ProductTag{ProductID: in.ProductID, Name: strings.TrimSpace(in.Name)}
	if err := s.products.CreateTag(ctx, tag); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	s.cache.Invalidate(ctx)
	return tag, nil
}

func (s *CatalogService) DeleteTags(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDs
	}
	n, err := s.products.DeleteTags(ctx, ids)
	if err == nil {
		s.cache.Invalidate(ctx)
	}
	return n, err
}

// Ingredients

func (s *CatalogService) ListIngredients(ctx context.Context, onlyActive bool) ([]model.Ingredient, error) {
	return s.ingredients.List(ctx, onlyActive)
}

func (s *CatalogService) GetIngredient(ctx context.Context, id uint) (*model.Ingredient, error) {
	in, err := s.ingredients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in == nil {
		return nil, ErrIngredientNotFound
	}
	return in, nil
}

func (s *CatalogService) CreateIngredient(ctx context.Context, in model.IngredientInput) (*model.Ingredient, error) {
	ing := &model.Ingredient{Name: strings.TrimSpace(in.Name), IsActive: true}
	if in.IsActive != nil {
		ing.IsActive = *in.IsActive
	}
	if err := s.ingredients.Create(ctx, ing); err != nil {
		return nil, fmt.Errorf("create ingredient: %w", err)
	}
	return ing, nil
}

func (s *CatalogService) UpdateIngredient(ctx context.Context, id uint, in model.IngredientInput) (*model.Ingredient, error) {
	ing, err := s.GetIngredient(ctx, id)
	if err != nil {
		return nil, err
	}
	ing.Name = strings.TrimSpace(in.Name)
	if in.IsActive != nil {
		ing.IsActive = *in.IsActive
	}
	if err := s.ingredients.Update(ctx, ing); err != nil {
		return nil, fmt.Errorf("update ingredient: %w", err)
	}
	s.cache.Invalidate(ctx)
	return ing, nil
}

func (s *CatalogService) DeleteIngredients(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDs
	}
	n, err := s.ingredients.Delete(ctx, ids)
	if err == nil {
		s.cache.Invalidate(ctx)
	}
	return n, err
}

// Pricing rules

func (s *CatalogService) ListPricingRules(ctx context.Context, productID uint) ([]model.ProductIngredient, error) {
	return s.products.ListRules(ctx, productID)
}

func (s *CatalogService) CreatePricingRule(ctx context.Context, in model.PricingRuleInput) (*model.ProductIngredient, error) {
	if err := validatePrice("extra_cost", in.ExtraCost); err != nil {
		return nil, err
	}
	p, err := s.products.GetProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	if _, err := s.GetIngredient(ctx, in.IngredientID); err != nil {
		return nil, err
	}
	existing, err := s.products.GetPricingRule(ctx, in.ProductID, in.IngredientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, newValidationError("ingredient_id", "this ingredient is already configured for the product")
	}

	rule := newPricingRule(in.ProductID, in.ProductIngredientInput)
	if err := s.products.SaveRule(ctx, &rule); err != nil {
		return nil, fmt.Errorf("create product ingredient: %w", err)
	}
	s.cache.Invalidate(ctx)
	return s.products.GetRuleByID(ctx, rule.ID)
}

func (s *CatalogService) UpdatePricingRule(ctx context.Context, id uint, in model.ProductIngredientInput) (*model.ProductIngredient, error) {
	if err := validatePrice("extra_cost", in.ExtraCost); err != nil {
		return nil, err
	}
	rule, err := s.products.GetRuleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrPricingRuleNotFound
	}
	if in.IngredientID != rule.IngredientID {
		return nil, newValidationError("ingredient_id", "the ingredient of a product ingredient cannot change")
	}
	updated := newPricingRule(rule.ProductID, in)
	updated.ID = rule.ID
	if in.DefaultIncluded == nil {
		updated.DefaultIncluded = rule.DefaultIncluded
	}
	if in.IsActive == nil {
		updated.IsActive = rule.IsActive
	}
	if err := s.products.SaveRule(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update product ingredient: %w", err)
	}
	s.cache.Invalidate(ctx)
	return s.products.GetRuleByID(ctx, id)
}

func (s *CatalogService) DeletePricingRules(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDs
	}
	n, err := s.products.DeleteRules(ctx, ids)
	if err == nil {
		s.cache.Invalidate(ctx)
	}
	return n, err
}
