package enums

import "fmt"

// Transmission represents the gearbox variants carried by the catalog.
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionCVT       Transmission = "cvt"
)

var validTransmissions = []Transmission{
	TransmissionManual,
	TransmissionAutomatic,
	TransmissionCVT,
}

// String implements fmt.Stringer.
func (tr Transmission) String() string {
	return string(tr)
}

// IsValid reports whether the value is a known Transmission.
func (tr Transmission) IsValid() bool {
	_, err := ParseTransmission(string(tr))
	return err == nil
}

// ParseTransmission converts raw input into a Transmission.
func ParseTransmission(value string) (Transmission, error) {
	for _, candidate := range validTransmissions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transmission %q", value)
}
