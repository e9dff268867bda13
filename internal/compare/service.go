// Package compare implements the compare-list mutator: an ordered list of at
// most three vehicle snapshots.
package compare

import (
	"context"

	"github.com/oscarnavarro/showroom/internal/catalog"
	"github.com/oscarnavarro/showroom/internal/state"
	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
	"github.com/oscarnavarro/showroom/pkg/logger"
)

// MaxSize caps how many vehicles can be compared side by side.
const MaxSize = 3

// ServiceParams groups dependencies for the compare service.
type ServiceParams struct {
	State  *state.State
	Logger *logger.Logger
}

// Service exposes the compare-list mutations.
type Service interface {
	// Toggle removes id when present. When absent it snapshots the vehicle
	// from the loaded catalog and appends it, refusing with a capacity
	// error at MaxSize. An id missing from the catalog is a logged no-op.
	Toggle(ctx context.Context, id int) (added bool, err error)
}

type service struct {
	st   *state.State
	logg *logger.Logger
}

// NewService builds the compare service.
func NewService(params ServiceParams) (Service, error) {
	if params.State == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "state is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{st: params.State, logg: params.Logger}, nil
}

func (s *service) Toggle(ctx context.Context, id int) (bool, error) {
	current := s.st.Compare()

	next := make([]catalog.Vehicle, 0, len(current))
	removed := false
	for _, v := range current {
		if v.ID == id {
			removed = true
			continue
		}
		next = append(next, v)
	}
	if removed {
		s.st.SaveCompare(ctx, next)
		return false, nil
	}

	if len(current) >= MaxSize {
		return false, pkgerrors.New(pkgerrors.CodeCapacity, "compare list is full").
			WithDetails(map[string]int{"max": MaxSize})
	}

	vehicle, ok := catalog.FindByID(s.st.Catalog(), id)
	if !ok {
		// Stale id from a previous render; nothing to corrupt, nothing to say.
		s.logg.Warn(s.logg.WithVehicleID(ctx, id), "compare toggle for unknown vehicle ignored")
		return false, nil
	}

	s.st.SaveCompare(ctx, append(next, vehicle))
	return true, nil
}
