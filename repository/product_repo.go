package repository

import (
	"context"
	"errors"
	"restaurant_backend/model"
	"restaurant_backend/utils"
	"strings"

	"gorm.io/gorm"
)

// PricingCatalog is the read side of the catalog used to price an order.
type PricingCatalog interface {
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	GetPricingRules(ctx context.Context, productID uint) ([]model.ProductIngredient, error)
	GetPricingRule(ctx context.Context, productID, ingredientID uint) (*model.ProductIngredient, error)
}

type ProductRepo interface {
	PricingCatalog
	GetDetail(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, f model.ProductFilter) ([]model.Product, int64, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]model.Product, error)
	Search(ctx context.Context, q string) ([]model.Product, error)
	Latest(ctx context.Context, limit int) ([]model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, ids []uint) (int64, error)
	ReplaceTags(ctx context.Context, productID uint, names []string) error
	ReplacePricingRules(ctx context.Context, productID uint, rules []model.ProductIngredient) error

	ListTags(ctx context.Context, productID uint) ([]model.ProductTag, error)
	CreateTag(ctx context.Context, t *model.ProductTag) error
	DeleteTags(ctx context.Context, ids []uint) (int64, error)

	ListRules(ctx context.Context, productID uint) ([]model.ProductIngredient, error)
	GetRuleByID(ctx context.Context, id uint) (*model.ProductIngredient, error)
	SaveRule(ctx context.Context, rule *model.ProductIngredient) error
	DeleteRules(ctx context.Context, ids []uint) (int64, error)

	WithTx(ctx context.Context, fn func(txRepo ProductRepo) error) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) GetPricingRules(ctx context.Context, productID uint) ([]model.ProductIngredient, error) {
	var rules []model.ProductIngredient
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("product_id = ? AND is_active = ?", productID, true).
		Order("ingredient_id ASC").
		Find(&rules).Error
	return rules, err
}

func (r *productRepo) GetPricingRule(ctx context.Context, productID, ingredientID uint) (*model.ProductIngredient, error) {
	var rule model.ProductIngredient
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("product_id = ? AND ingredient_id = ?", productID, ingredientID).
		First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rule, err
}

func (r *productRepo) detail(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredient_id ASC") }).
		Preload("Ingredients.Ingredient")
}

func (r *productRepo) GetDetail(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.detail(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) List(ctx context.Context, f model.ProductFilter) ([]model.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.is_active = ?", true)

	if f.Category != "" && !strings.EqualFold(f.Category, "all") {
		q = q.Where("categories.name = ? OR categories.slug = ?", f.Category, f.Category)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ? OR LOWER(categories.name) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = utils.ApplyPagination(q, f.Limit, f.Page)

	var list []model.Product
	err := q.Select("products.*").
		Preload("Category").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("products.name ASC").
		Find(&list).Error
	return list, total, err
}

func (r *productRepo) ListByCategory(ctx context.Context, categoryID uint) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("name ASC").
		Find(&list).Error
	return list, err
}

func (r *productRepo) Search(ctx context.Context, q string) ([]model.Product, error) {
	like := "%" + strings.ToLower(q) + "%"
	var list []model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Order("name ASC").
		Find(&list).Error
	return list, err
}

func (r *productRepo) Latest(ctx context.Context, limit int) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Omit("Category", "Tags", "Ingredients").Create(p).Error
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Model(p).
		Select("name", "description", "price", "category_id", "image", "is_active").
		Updates(p).Error
}

func (r *productRepo) Delete(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Product{})
	return res.RowsAffected, res.Error
}

func (r *productRepo) ReplaceTags(ctx context.Context, productID uint, names []string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("product_id = ?", productID).Delete(&model.ProductTag{}).Error; err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	tags := make([]model.ProductTag, 0, len(names))
	for _, n := range names {
		tags = append(tags, model.ProductTag{ProductID: productID, Name: n})
	}
	return db.Create(&tags).Error
}

func (r *productRepo) ReplacePricingRules(ctx context.Context, productID uint, rules []model.ProductIngredient) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("product_id = ?", productID).Delete(&model.ProductIngredient{}).Error; err != nil {
		return err
	}
	if len(rules) == 0 {
		return nil
	}
	for i := range rules {
		rules[i].ProductID = productID
	}
	return db.Omit("Ingredient").Create(&rules).Error
}

func (r *productRepo) ListTags(ctx context.Context, productID uint) ([]model.ProductTag, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if productID != 0 {
		q = q.Where("product_id = ?", productID)
	}
	var tags []model.ProductTag
	err := q.Find(&tags).Error
	return tags, err
}

func (r *productRepo) CreateTag(ctx context.Context, t *model.ProductTag) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *productRepo) DeleteTags(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ProductTag{})
	return res.RowsAffected, res.Error
}

func (r *productRepo) ListRules(ctx context.Context, productID uint) ([]model.ProductIngredient, error) {
	q := r.db.WithContext(ctx).Preload("Ingredient").Order("product_id ASC, ingredient_id ASC")
	if productID != 0 {
		q = q.Where("product_id = ?", productID)
	}
	var rules []model.ProductIngredient
	err := q.Find(&rules).Error
	return rules, err
}

func (r *productRepo) GetRuleByID(ctx context.Context, id uint) (*model.ProductIngredient, error) {
	var rule model.ProductIngredient
	err := r.db.WithContext(ctx).Preload("Ingredient").First(&rule, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rule, err
}

func (r *productRepo) SaveRule(ctx context.Context, rule *model.ProductIngredient) error {
	return r.db.WithContext(ctx).Omit("Ingredient").Save(rule).Error
}

func (r *productRepo) DeleteRules(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ProductIngredient{})
	return res.RowsAffected, res.Error
}

func (r *productRepo) WithTx(ctx context.Context, fn func(txRepo ProductRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&productRepo{db: tx})
	})
}
