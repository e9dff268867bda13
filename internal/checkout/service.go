// Package checkout turns the cart into an order appended to the persisted
// order log. It is the only operation that touches two persisted collections;
// the order log is written first so a failure between the two writes leaves a
// stale cart next to a recorded order rather than the reverse.
package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oscarnavarro/showroom/internal/state"
	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
	"github.com/oscarnavarro/showroom/pkg/logger"
	"github.com/oscarnavarro/showroom/pkg/storage"
	"github.com/oscarnavarro/showroom/pkg/validate"
)

// CustomerInfo is the buyer detail captured on the checkout form.
type CustomerInfo struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Order is one append-only entry of the persisted order log. Orders are never
// mutated after checkout; the account page reads them back for display.
type Order struct {
	ID        string           `json:"id"`
	Customer  CustomerInfo     `json:"customer"`
	Items     []state.CartItem `json:"items"`
	Total     int64            `json:"total"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	State  *state.State
	Store  storage.Store
	Logger *logger.Logger
}

// Service executes checkout and reads the order log back.
type Service interface {
	Execute(ctx context.Context, customer CustomerInfo) (*Order, error)
	List(ctx context.Context) []Order
}

type service struct {
	st    *state.State
	store storage.Store
	logg  *logger.Logger
	now   func() time.Time
}

// NewService builds the checkout service.
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

func (s *service) Execute(ctx context.Context, customer CustomerInfo) (*Order, error) {
	items := s.st.Cart()
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	if err := validate.Struct(customer); err != nil {
		return nil, err
	}

	var total int64
	for _, item := range items {
		total += item.Vehicle.Price * int64(item.Quantity)
	}

	order := Order{
		ID:        uuid.NewString(),
		Customer:  customer,
		Items:     items,
		Total:     total,
		CreatedAt: s.now().UTC(),
	}

	log := s.List(ctx)
	if err := s.store.Set(ctx, storage.KeyOrders, append(log, order)); err != nil {
		// The order was not recorded, so the cart must survive untouched.
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "record order")
	}

	s.st.SaveCart(ctx, []state.CartItem{})
	s.logg.Info(s.logg.WithField(ctx, "order_id", order.ID), "checkout completed")
	return &order, nil
}

// List reads the persisted order log, degrading an unreadable log to empty.
func (s *service) List(ctx context.Context) []Order {
	var log []Order
	if _, err := s.store.Get(ctx, storage.KeyOrders, &log); err != nil {
		s.logg.Warn(ctx, "ignoring unreadable order log: "+err.Error())
		return nil
	}
	return log
}
