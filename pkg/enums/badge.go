package enums

import "fmt"

// Badge is the optional promotional tag attached to a vehicle card.
type Badge string

const (
	BadgeNew      Badge = "new"
	BadgeHot      Badge = "hot"
	BadgeSale     Badge = "sale"
	BadgeDiscount Badge = "discount"
)

var validBadges = []Badge{
	BadgeNew,
	BadgeHot,
	BadgeSale,
	BadgeDiscount,
}

// String implements fmt.Stringer.
func (b Badge) String() string {
	return string(b)
}

// IsValid reports whether the value is a known Badge.
func (b Badge) IsValid() bool {
	_, err := ParseBadge(string(b))
	return err == nil
}

// ParseBadge converts raw input into a Badge.
func ParseBadge(value string) (Badge, error) {
	for _, candidate := range validBadges {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid badge %q", value)
}
