// Package favorites implements the favorites-set mutator. The set holds
// vehicle ids only; membership drives the heart badge on every page.
package favorites

import (
	"context"

	"github.com/oscarnavarro/showroom/internal/state"
	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
	"github.com/oscarnavarro/showroom/pkg/logger"
)

// ServiceParams groups dependencies for the favorites service.
type ServiceParams struct {
	State  *state.State
	Logger *logger.Logger
}

// Service exposes the favorites mutations.
type Service interface {
	// Toggle adds id when absent and removes it when present, reporting
	// which branch ran so the caller can word its feedback.
	Toggle(ctx context.Context, id int) (added bool, err error)
	// Clear empties the set. Confirmation is the caller's concern.
	Clear(ctx context.Context) error
}

type service struct {
	st   *state.State
	logg *logger.Logger
}

// NewService builds the favorites service.
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
	if id <= 0 {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "vehicle id is required")
	}

	current := s.st.Favorites()
	next := make([]int, 0, len(current)+1)
	removed := false
	for _, fav := range current {
		if fav == id {
			removed = true
			continue
		}
		next = append(next, fav)
	}
	if !removed {
		next = append(next, id)
	}

	s.st.SaveFavorites(ctx, next)
	s.logg.Debug(s.logg.WithVehicleID(ctx, id), "favorites toggled")
	return !removed, nil
}

func (s *service) Clear(ctx context.Context) error {
	s.st.SaveFavorites(ctx, []int{})
	s.logg.Info(ctx, "favorites cleared")
	return nil
}
