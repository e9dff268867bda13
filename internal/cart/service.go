// Package cart implements the cart mutator. Entries are vehicle snapshots
// with a quantity; at most one entry exists per vehicle id, and repeated adds
// do not accumulate quantity (cars are not fungible).
package cart

import (
	"context"

	"github.com/oscarnavarro/showroom/internal/catalog"
	"github.com/oscarnavarro/showroom/internal/state"
	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
	"github.com/oscarnavarro/showroom/pkg/logger"
)

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	State  *state.State
	Logger *logger.Logger
}

// Service exposes the cart mutations.
type Service interface {
	// Add snapshots the vehicle with quantity 1. An entry already present
	// under the same id makes it a duplicate no-op.
	Add(ctx context.Context, id int) error
	// Remove drops every entry matching id (at most one by invariant).
	Remove(ctx context.Context, id int) error
}

type service struct {
	st   *state.State
	logg *logger.Logger
}

// NewService builds the cart service.
func NewService(params ServiceParams) (Service, error) {
	if params.State == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "state is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{st: params.State, logg: params.Logger}, nil
}

func (s *service) Add(ctx context.Context, id int) error {
	if s.st.CartHas(id) {
		return pkgerrors.New(pkgerrors.CodeDuplicate, "vehicle is already in the cart")
	}

	vehicle, ok := catalog.FindByID(s.st.Catalog(), id)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
	}

	s.st.SaveCart(ctx, append(s.st.Cart(), state.CartItem{Vehicle: vehicle, Quantity: 1}))
	s.logg.Debug(s.logg.WithVehicleID(ctx, id), "vehicle added to cart")
	return nil
}

func (s *service) Remove(ctx context.Context, id int) error {
	current := s.st.Cart()
	next := make([]state.CartItem, 0, len(current))
	for _, item := range current {
		if item.Vehicle.ID == id {
			continue
		}
		next = append(next, item)
	}
	s.st.SaveCart(ctx, next)
	return nil
}
