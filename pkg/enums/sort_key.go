package enums

// SortKey selects the ordering applied after filtering. Unknown values are
// treated as SortDefault by the pipeline rather than rejected.
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortYearDesc  SortKey = "year-desc"
	SortMileage   SortKey = "mileage-asc"
)

var validSortKeys = []SortKey{
	SortDefault,
	SortPriceAsc,
	SortPriceDesc,
	SortYearDesc,
	SortMileage,
}

// SortKeys returns the known sort keys in display order.
func SortKeys() []SortKey {
	out := make([]SortKey, len(validSortKeys))
	copy(out, validSortKeys)
	return out
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey, falling back to
// SortDefault for anything unknown.
func ParseSortKey(value string) SortKey {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate
		}
	}
	return SortDefault
}
