package enums

import "fmt"

// FuelType represents the canonical fuel types carried by the catalog.
type FuelType string

const (
	FuelTypePetrol   FuelType = "petrol"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeHybrid   FuelType = "hybrid"
	FuelTypeElectric FuelType = "electric"
)

var validFuelTypes = []FuelType{
	FuelTypePetrol,
	FuelTypeDiesel,
	FuelTypeHybrid,
	FuelTypeElectric,
}

// FuelTypes returns the known fuel types in display order.
func FuelTypes() []FuelType {
	out := make([]FuelType, len(validFuelTypes))
	copy(out, validFuelTypes)
	return out
}

// String implements fmt.Stringer.
func (f FuelType) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FuelType.
func (f FuelType) IsValid() bool {
	_, err := ParseFuelType(string(f))
	return err == nil
}

// ParseFuelType converts raw input into a FuelType.
func ParseFuelType(value string) (FuelType, error) {
	for _, candidate := range validFuelTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fuel type %q", value)
}
