package enums

import "fmt"

// CatalogSelector picks which subset of the dataset a page loads.
type CatalogSelector string

const (
	CatalogNew  CatalogSelector = "new"
	CatalogUsed CatalogSelector = "used"
	CatalogAll  CatalogSelector = "all"
)

var validCatalogSelectors = []CatalogSelector{
	CatalogNew,
	CatalogUsed,
	CatalogAll,
}

// String implements fmt.Stringer.
func (c CatalogSelector) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CatalogSelector.
func (c CatalogSelector) IsValid() bool {
	_, err := ParseCatalogSelector(string(c))
	return err == nil
}

// ParseCatalogSelector converts raw input into a CatalogSelector.
func ParseCatalogSelector(value string) (CatalogSelector, error) {
	for _, candidate := range validCatalogSelectors {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid catalog selector %q", value)
}
