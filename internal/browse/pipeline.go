// Package browse derives the visible subset of the catalog. Apply and the
// pagination window are pure; all state lives with the caller.
package browse

import (
	"sort"
	"strings"

	"github.com/oscarnavarro/showroom/internal/catalog"
	"github.com/oscarnavarro/showroom/pkg/enums"
)

// priceUnit converts a stored price to the unit the price-range key uses.
const priceUnit = 1_000_000

// Apply filters the catalog by every active predicate (conjunctively, in a
// fixed order) and then stable-sorts by sortKey. The input slice is never
// mutated; SortDefault and unknown keys preserve the filtered order, which
// itself preserves catalog order.
func Apply(fullCatalog []catalog.Vehicle, criteria Criteria, sortKey enums.SortKey) []catalog.Vehicle {
	result := make([]catalog.Vehicle, 0, len(fullCatalog))

	query := strings.ToLower(strings.TrimSpace(criteria.Query))
	priceRange, priceSet := parsePriceRange(criteria.PriceRange)

	for _, v := range fullCatalog {
		if query != "" && !matchesQuery(v, query) {
			continue
		}
		if criteria.Brand != "" && v.Brand != criteria.Brand {
			continue
		}
		if criteria.Year != 0 && v.Year != criteria.Year {
			continue
		}
		if criteria.Fuel != "" && v.Fuel != criteria.Fuel {
			continue
		}
		if priceSet {
			millions := float64(v.Price) / priceUnit
			if millions < priceRange.min || millions > priceRange.max {
				continue
			}
		}
		result = append(result, v)
	}

	sortVehicles(result, sortKey)
	return result
}

func matchesQuery(v catalog.Vehicle, query string) bool {
	return strings.Contains(strings.ToLower(v.Name), query) ||
		strings.Contains(strings.ToLower(v.Brand), query) ||
		strings.Contains(strings.ToLower(v.Model), query)
}

func sortVehicles(vehicles []catalog.Vehicle, sortKey enums.SortKey) {
	var less func(a, b catalog.Vehicle) bool
	switch sortKey {
	case enums.SortPriceAsc:
		less = func(a, b catalog.Vehicle) bool { return a.Price < b.Price }
	case enums.SortPriceDesc:
		less = func(a, b catalog.Vehicle) bool { return a.Price > b.Price }
	case enums.SortYearDesc:
		less = func(a, b catalog.Vehicle) bool { return a.Year > b.Year }
	case enums.SortMileage:
		less = func(a, b catalog.Vehicle) bool { return a.Mileage < b.Mileage }
	default:
		return
	}
	sort.SliceStable(vehicles, func(i, j int) bool { return less(vehicles[i], vehicles[j]) })
}
