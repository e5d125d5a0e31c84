// Package fees computes checkout surcharges.
//
// The takeaway packaging fee is a heuristic over item names, not a
// lookup against a per-item packaging attribute. The keyword lists and
// thresholds are load-bearing: the storefront, the admin pages and the
// historical order data all assume exactly these values.
package fees

import (
	"strings"

	"github.com/munchbox/munchbox/internal/models"
)

const (
	portionFee      = 200
	largePortionFee = 300

	// DefaultDeliveryFee applies when settings carry no override.
	DefaultDeliveryFee = 500

	// DefaultMealGroup is the group label for unlabelled cart lines.
	DefaultMealGroup = "Order 1"
)

// otherPortionKeywords mark items that pack like a rice portion but
// are not rice.
var otherPortionKeywords = []string{"pasta", "noodles", "yam strips", "french fries", "plantain"}

// GroupFee computes the packaging fee for the lines of one meal group.
func GroupFee(items []models.OrderItem) int {
	if len(items) == 0 {
		return 0
	}

	riceScoops := 0
	otherPortions := 0
	basmatiFee := 0

	for _, item := range items {
		name := strings.ToLower(item.Name)
		switch {
		case strings.Contains(name, "rice") &&
			(strings.Contains(name, "jollof") || strings.Contains(name, "fried") || strings.Contains(name, "steamed")):
			riceScoops += item.Quantity
		case containsAny(name, otherPortionKeywords):
			otherPortions += item.Quantity
		case strings.Contains(name, "basmati"):
			// Basmati packs in its own containers regardless of quantity.
			if strings.Contains(name, "mini") && basmatiFee < portionFee {
				basmatiFee = portionFee
			}
			if strings.Contains(name, "maxi") && basmatiFee < largePortionFee {
				basmatiFee = largePortionFee
			}
		}
	}

	riceFee := 0
	if riceScoops > 0 {
		riceFee = portionFee
		if riceScoops >= 3 {
			riceFee = largePortionFee
		}
	}
	otherFee := 0
	if otherPortions > 0 {
		otherFee = portionFee
		if otherPortions >= 2 {
			otherFee = largePortionFee
		}
	}

	return max(riceFee, otherFee, basmatiFee)
}

// TakeawayFee sums the group fee over each distinct meal group of the
// cart. Lines without a group label fall into DefaultMealGroup.
func TakeawayFee(items []models.OrderItem) int {
	groups := make(map[string][]models.OrderItem)
	for _, item := range items {
		group := item.MealGroup
		if group == "" {
			group = DefaultMealGroup
		}
		groups[group] = append(groups[group], item)
	}

	total := 0
	for _, groupItems := range groups {
		total += GroupFee(groupItems)
	}
	return total
}

// DeliveryFee is the flat per-order charge for delivery. configured
// comes from settings; zero falls back to the default.
func DeliveryFee(delivery bool, configured int) int {
	if !delivery {
		return 0
	}
	if configured > 0 {
		return configured
	}
	return DefaultDeliveryFee
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
