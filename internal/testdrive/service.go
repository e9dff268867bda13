// Package testdrive books test-drive appointments into an append-only
// persisted log, mirroring how orders are recorded.
package testdrive

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oscarnavarro/showroom/internal/catalog"
	"github.com/oscarnavarro/showroom/internal/state"
	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
	"github.com/oscarnavarro/showroom/pkg/logger"
	"github.com/oscarnavarro/showroom/pkg/storage"
	"github.com/oscarnavarro/showroom/pkg/validate"
)

// Input captures the booking form fields.
type Input struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	VehicleID     int    `json:"vehicleId" validate:"required,gt=0"`
	PreferredDate string `json:"preferredDate" validate:"required"`
}

// Request is one persisted booking.
type Request struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	VehicleID     int       `json:"vehicleId"`
	VehicleName   string    `json:"vehicleName"`
	PreferredDate string    `json:"preferredDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ServiceParams groups dependencies for the test-drive service.
type ServiceParams struct {
	State  *state.State
	Store  storage.Store
	Logger *logger.Logger
}

// Service books and lists test-drive requests.
type Service interface {
	Book(ctx context.Context, input Input) (*Request, error)
	List(ctx context.Context) []Request
}

type service struct {
	st    *state.State
	store storage.Store
	logg  *logger.Logger
	now   func() time.Time
}

// NewService builds the test-drive service.
func NewService(params ServiceParams) (Service, error) {
	if params.State == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "state is required")
	}
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{st: params.State, store: params.Store, logg: params.Logger, now: time.Now}, nil
}

func (s *service) Book(ctx context.Context, input Input) (*Request, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	vehicle, ok := catalog.FindByID(s.st.Catalog(), input.VehicleID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
	}

	request := Request{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Phone:         input.Phone,
		Email:         input.Email,
		VehicleID:     vehicle.ID,
		VehicleName:   vehicle.Name,
		PreferredDate: input.PreferredDate,
		CreatedAt:     s.now().UTC(),
	}

	log := s.List(ctx)
	if err := s.store.Set(ctx, storage.KeyTestDrives, append(log, request)); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "record test drive")
	}

	s.logg.Info(s.logg.WithVehicleID(ctx, vehicle.ID), "test drive booked")
	return &request, nil
}

// List reads the persisted bookings, degrading an unreadable log to empty.
func (s *service) List(ctx context.Context) []Request {
	var log []Request
	if _, err := s.store.Get(ctx, storage.KeyTestDrives, &log); err != nil {
		s.logg.Warn(ctx, "ignoring unreadable test-drive log: "+err.Error())
		return nil
	}
	return log
}
