package service

import (
	"context"
	"fmt"
	"math"
	"restaurant_backend/model"
	"restaurant_backend/repository"
	"sort"
	"strconv"
	"strings"
)

// MaxQuantity caps item and extra quantities so line totals stay within the
// numeric(10,2) columns.
const MaxQuantity = 999

// ExtraSelection is a typed entry of a cart item's extras mapping.
type ExtraSelection struct {
	IngredientID uint
	Quantity     int
}

// CartItem is a validated cart line.
type CartItem struct {
	ProductID uint
	Quantity  int
	// Extras is sorted by ingredient id.
	Extras []ExtraSelection
	// Included is nil when the client left ingredient inclusion to the
	// defaults, either by omitting the list or by sending an empty one.
	Included map[string]struct{}
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseInt accepts integers and integral decimals such as "2" or 2.0.
func parseInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// ParseExtras converts the raw id to quantity mapping. Non numeric keys or
// quantities are reported as field errors.
func ParseExtras(raw map[string]model.NumberOrString) ([]ExtraSelection, []string) {
	var (
		out  []ExtraSelection
		errs []string
	)
	for key, qty := range raw {
		id, ok := parseID(key)
		if !ok {
			errs = append(errs, fmt.Sprintf("invalid ingredient id %q", key))
			continue
		}
		n, ok := parseInt(qty.String())
		if !ok {
			errs = append(errs, fmt.Sprintf("extra quantity for ingredient %d must be a valid number", id))
			continue
		}
		if n > MaxQuantity {
			errs = append(errs, fmt.Sprintf("extra quantity for ingredient %d must be at most %d", id, MaxQuantity))
			continue
		}
		out = append(out, ExtraSelection{IngredientID: id, Quantity: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IngredientID < out[j].IngredientID })
	sort.Strings(errs)
	return out, errs
}

func itemError(i int, field, msg string) FieldError {
	idx := i
	return FieldError{Index: &idx, Field: field, Message: msg}
}

// parseCartItems validates every item against the catalog and collects all
// errors instead of stopping at the first one.
func parseCartItems(ctx context.Context, catalog repository.PricingCatalog, raw []model.CartItemInput) ([]CartItem, []FieldError, error) {
	if len(raw) == 0 {
		return nil, []FieldError{{Field: "items", Message: "at least one item required"}}, nil
	}

	items := make([]CartItem, 0, len(raw))
	var errs []FieldError
	for i, in := range raw {
		item := CartItem{}
		valid := true

		switch {
		case in.ProductID == nil || strings.TrimSpace(in.ProductID.String()) == "":
			errs = append(errs, itemError(i, "product_id", "product_id is required"))
			valid = false
		default:
			id, ok := parseID(in.ProductID.String())
			if !ok {
				errs = append(errs, itemError(i, "product_id", fmt.Sprintf("invalid product id %q", in.ProductID.String())))
				valid = false
				break
			}
			p, err := catalog.GetProduct(ctx, id)
			if err != nil {
				return nil, nil, fmt.Errorf("lookup product %d: %w", id, err)
			}
			if p == nil {
				errs = append(errs, itemError(i, "product_id", fmt.Sprintf("product with id %d does not exist", id)))
				valid = false
				break
			}
			item.ProductID = id
		}

		switch {
		case in.Quantity == nil || strings.TrimSpace(in.Quantity.String()) == "":
			errs = append(errs, itemError(i, "quantity", "quantity is required"))
			valid = false
		default:
			n, ok := parseInt(in.Quantity.String())
			if !ok {
				errs = append(errs, itemError(i, "quantity", "quantity must be a valid number"))
				valid = false
			} else if n <= 0 {
				errs = append(errs, itemError(i, "quantity", "quantity must be greater than 0"))
				valid = false
			} else if n > MaxQuantity {
				errs = append(errs, itemError(i, "quantity", fmt.Sprintf("quantity must be at most %d", MaxQuantity)))
				valid = false
			}
			item.Quantity = n
		}

		extras, extraErrs := ParseExtras(in.Extras)
		for _, msg := range extraErrs {
			errs = append(errs, itemError(i, "extras", msg))
			valid = false
		}
		item.Extras = extras

		if len(in.IncludedIngredients) > 0 {
			item.Included = make(map[string]struct{}, len(in.IncludedIngredients))
			for _, id := range in.IncludedIngredients {
				item.Included[strings.TrimSpace(id.String())] = struct{}{}
			}
		}

		if valid {
			items = append(items, item)
		}
	}
	return items, errs, nil
}
