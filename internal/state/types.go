package state

import "github.com/oscarnavarro/showroom/internal/catalog"

// CartItem is a vehicle snapshot taken at add-time plus a quantity. The
// snapshot is stored whole so the cart survives catalog changes.
type CartItem struct {
	Vehicle  catalog.Vehicle `json:"vehicle"`
	Quantity int             `json:"quantity"`
}

// User is the optional current user. A nil User means anonymous.
type User struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	PasswordHash string  `json:"passwordHash,omitempty"`
}
