package menu

import (
	"encoding/json"
	"math"
	"restaurant-directory/entities"
	"strconv"
	"strings"
)

const (
	defaultSufficientFor = 1
)

// MergeMenuItems normalizes raw item submissions and attaches to each item the customisation whose id
// equals the item id as submitted. Malformed fields fall back to defaults; the merge never fails.
// The output keeps the order of rawItems.
func MergeMenuItems(rawItems []map[string]any, rawCustomisations []map[string]any) []entities.MenuItem {
	items := make([]entities.MenuItem, 0, len(rawItems))
	for _, raw := range rawItems {
		if raw == nil {
			raw = map[string]any{}
		}
		item := normalizeItem(raw)
		item.Customisation = findCustomisation(raw, rawCustomisations)
		items = append(items, item)
	}
	return items
}

func normalizeItem(raw map[string]any) entities.MenuItem {
	price := numberOr(raw["price"], 0)
	if price < 0 {
		price = 0
	}

	return entities.MenuItem{
		ID:                toInt(raw["id"]),
		Name:              stringOr(raw["name"], ""),
		Description:       stringOr(raw["description"], ""),
		Category:          stringOr(raw["category"], ""),
		Price:             price,
		Image:             truthyStringOr(raw["image"], ""),
		SpicinessLevel:    numberOr(raw["spicinessLevel"], 0),
		SweetnessLevel:    numberOr(raw["sweetnessLevel"], 0),
		DietaryPreference: toStrings(raw["dietaryPreference"]),
		HealthinessScore:  numberOr(raw["healthinessScore"], 0),
		CaffeineLevel:     truthyStringOr(raw["caffeineLevel"], entities.DefaultCaffeineLevel),
		SufficientFor:     numberOr(raw["sufficientFor"], defaultSufficientFor),
		Available:         availableOf(raw),
	}
}

// findCustomisation returns the block of the first customisation whose id matches, or an empty one.
func findCustomisation(item map[string]any, customisations []map[string]any) entities.ItemCustomisation {
	itemID, itemHasID := item["id"]
	for _, c := range customisations {
		if c == nil {
			continue
		}
		id, hasID := c["id"]
		if hasID != itemHasID || !sameID(id, itemID) {
			continue
		}
		return toCustomisation(c["customisation"])
	}
	return emptyCustomisation()
}

func emptyCustomisation() entities.ItemCustomisation {
	return entities.ItemCustomisation{Categories: []entities.AddOnCategory{}}
}

// sameID compares ids strictly: a numeric 1 and a string "1" are different ids.
func sameID(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case json.Number:
		bv, ok := b.(json.Number)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return false
	}
}

func toCustomisation(v any) entities.ItemCustomisation {
	block, ok := v.(map[string]any)
	if !ok {
		return emptyCustomisation()
	}
	rawCategories, _ := block["categories"].([]any)

	customisation := emptyCustomisation()
	for _, rc := range rawCategories {
		category, ok := rc.(map[string]any)
		if !ok {
			continue
		}
		rawAddOns, _ := category["items"].([]any)
		addOns := make([]entities.AddOnItem, 0, len(rawAddOns))
		for _, ra := range rawAddOns {
			addOn, ok := ra.(map[string]any)
			if !ok {
				continue
			}
			addOns = append(addOns, entities.AddOnItem{
				Name:  stringOr(addOn["name"], ""),
				Price: numberOr(addOn["price"], 0),
			})
		}
		customisation.Categories = append(customisation.Categories, entities.AddOnCategory{
			CategoryName: stringOr(category["categoryName"], ""),
			MinQuantity:  toInt(category["minQuantity"]),
			MaxQuantity:  toInt(category["maxQuantity"]),
			Items:        addOns,
		})
	}
	return customisation
}

// availableOf is true unless the submitted value is literally false.
func availableOf(raw map[string]any) bool {
	b, ok := raw["available"].(bool)
	return !ok || b
}

// truthy follows JSON truthiness: null, false, 0 and "" are falsy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case string:
		return t != ""
	default:
		return true
	}
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0, true
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// numberOr returns def for falsy or non-numeric input.
func numberOr(v any, def float64) float64 {
	if !truthy(v) {
		return def
	}
	f, ok := toNumber(v)
	if !ok {
		return def
	}
	return f
}

func toInt(v any) int {
	f, ok := toNumber(v)
	if !ok {
		return 0
	}
	return int(math.Trunc(f))
}

func stringOf(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

func stringOr(v any, def string) string {
	if s, ok := stringOf(v); ok {
		return s
	}
	return def
}

// truthyStringOr returns def for falsy input, otherwise the string form of v.
func truthyStringOr(v any, def string) string {
	if !truthy(v) {
		return def
	}
	return stringOr(v, def)
}

func toStrings(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := stringOf(e); ok {
			out = append(out, s)
		}
	}
	return out
}
