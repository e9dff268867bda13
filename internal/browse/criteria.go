package browse

import (
	"strconv"
	"strings"

	"github.com/oscarnavarro/showroom/pkg/enums"
)

// Criteria is the set of independently optional filter predicates. The zero
// value means "no constraint" for every field.
type Criteria struct {
	// Query matches case-insensitively as a substring of name, brand or model.
	Query string
	// Brand filters on exact brand equality.
	Brand string
	// Year filters on exact year equality; 0 is unset.
	Year int
	// Fuel filters on exact fuel-type equality; empty is unset.
	Fuel enums.FuelType
	// PriceRange is a "min-max" pair in millions of currency units, e.g.
	// "300-500". Malformed values are treated as unset.
	PriceRange string
}

// IsZero reports whether no predicate is active.
func (c Criteria) IsZero() bool {
	return c.Query == "" && c.Brand == "" && c.Year == 0 && c.Fuel == "" && c.PriceRange == ""
}

// priceRangeMillions holds the parsed inclusive bounds of a price range.
type priceRangeMillions struct {
	min, max float64
}

// parsePriceRange decodes the compound "min-max" key. Anything that does not
// parse as two numbers is reported as unset rather than an error.
func parsePriceRange(value string) (priceRangeMillions, bool) {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 2)
	if len(parts) != 2 {
		return priceRangeMillions{}, false
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return priceRangeMillions{}, false
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return priceRangeMillions{}, false
	}
	return priceRangeMillions{min: min, max: max}, true
}
