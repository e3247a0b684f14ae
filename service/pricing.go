package service

import (
	"context"
	"fmt"
	"restaurant_backend/model"
	"restaurant_backend/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// orderableExtra reports whether rule may be recorded as an extra on an
// order line: the rule and its ingredient exist and are active. Free extras
// are recorded at 0.00.
func orderableExtra(rule *model.ProductIngredient) bool {
	return rule != nil && rule.IsActive && rule.Ingredient.IsActive
}

// quotableExtra narrows orderableExtra to optional ingredients. Default
// ingredients never add to a price preview.
func quotableExtra(rule *model.ProductIngredient) bool {
	return orderableExtra(rule) && !rule.DefaultIncluded
}

type pricedExtra struct {
	Rule      *model.ProductIngredient
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// priceExtras prices the selected extras of one product unit. Selections with
// a non positive quantity or whose rule is rejected by accept are dropped.
func priceExtras(ctx context.Context, catalog repository.PricingCatalog, productID uint, extras []ExtraSelection, accept func(*model.ProductIngredient) bool, log *zap.Logger) (decimal.Decimal, []pricedExtra, error) {
	sum := decimal.Zero
	var lines []pricedExtra
	for _, ex := range extras {
		if ex.Quantity <= 0 {
			continue
		}
		rule, err := catalog.GetPricingRule(ctx, productID, ex.IngredientID)
		if err != nil {
			return decimal.Zero, nil, fmt.Errorf("lookup pricing rule %d/%d: %w", productID, ex.IngredientID, err)
		}
		if !accept(rule) {
			log.Debug("extra skipped",
				zap.Uint("product_id", productID),
				zap.Uint("ingredient_id", ex.IngredientID),
				zap.Bool("rule_found", rule != nil))
			continue
		}
		total := rule.ExtraCost.Mul(decimal.NewFromInt(int64(ex.Quantity)))
		sum = sum.Add(total)
		lines = append(lines, pricedExtra{
			Rule:      rule,
			Quantity:  ex.Quantity,
			UnitPrice: rule.ExtraCost,
			Total:     total,
		})
	}
	return sum, lines, nil
}

// buildManifest records one inclusion row per active pricing rule. A non
// empty inclusion list from the client wins over the defaults.
func buildManifest(orderItemID uint, rules []model.ProductIngredient, included map[string]struct{}) []model.OrderItemIngredient {
	rows := make([]model.OrderItemIngredient, 0, len(rules))
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		isIncluded := rule.DefaultIncluded
		if len(included) > 0 {
			_, isIncluded = included[fmt.Sprint(rule.IngredientID)]
		}
		rows = append(rows, model.OrderItemIngredient{
			OrderItemID:    orderItemID,
			IngredientID:   rule.IngredientID,
			IngredientName: rule.Ingredient.Name,
			IsIncluded:     isIncluded,
			WasDefault:     rule.DefaultIncluded,
		})
	}
	return rows
}
