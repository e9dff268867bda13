package catalog

import (
	"github.com/oscarnavarro/showroom/pkg/enums"
)

// Vehicle is one catalog item. Records are immutable after load; mutators
// that need a copy take a snapshot at call time.
type Vehicle struct {
	ID           int                `json:"id" validate:"required,gt=0"`
	Name         string             `json:"name" validate:"required"`
	Brand        string             `json:"brand" validate:"required"`
	Model        string             `json:"model" validate:"required"`
	Year         int                `json:"year" validate:"required,gte=1950"`
	Price        int64              `json:"price" validate:"required,gt=0"`
	Mileage      int                `json:"mileage" validate:"gte=0"`
	Fuel         enums.FuelType     `json:"fuel" validate:"required"`
	Transmission enums.Transmission `json:"transmission" validate:"required"`
	Seats        int                `json:"seats" validate:"gte=2,lte=9"`
	Color        string             `json:"color"`
	Rating       float64            `json:"rating" validate:"gte=0,lte=5"`
	Images       []string           `json:"images"`
	Badge        *enums.Badge       `json:"badge,omitempty"`
	Description  string             `json:"description"`
}

// FindByID returns the vehicle with the given id from vehicles, or false.
func FindByID(vehicles []Vehicle, id int) (Vehicle, bool) {
	for _, v := range vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}
