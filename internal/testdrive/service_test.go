package testdrive

import (
	"context"
	"io"
	"testing"

	"github.com/oscarnavarro/showroom/internal/catalog"
	"github.com/oscarnavarro/showroom/internal/state"
	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
	"github.com/oscarnavarro/showroom/pkg/logger"
	"github.com/oscarnavarro/showroom/pkg/storage"
)

func newTestService(t *testing.T) (Service, *storage.MemoryStore) {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	store := storage.NewMemoryStore()
	st, err := state.New(context.Background(), state.Params{Store: store, Logger: logg, PageSize: 6})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	st.SetCatalog([]catalog.Vehicle{{ID: 1, Name: "Civic RS"}})
	svc, err := NewService(ServiceParams{State: st, Store: store, Logger: logg})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, store
}

func validInput() Input {
	return Input{Name: "Ana", Phone: "0812345678", VehicleID: 1, PreferredDate: "2026-09-15"}
}

func TestBookAppendsRequest(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	request, err := svc.Book(ctx, validInput())
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if request.ID == "" || request.VehicleName != "Civic RS" {
		t.Fatalf("unexpected request %+v", request)
	}

	if _, err := svc.Book(ctx, validInput()); err != nil {
		t.Fatalf("second booking: %v", err)
	}
	if log := svc.List(ctx); len(log) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(log))
	}
}

func TestBookValidatesInput(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	bad := validInput()
	bad.Phone = ""
	if _, err := svc.Book(ctx, bad); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	bad = validInput()
	bad.Email = "nope"
	if _, err := svc.Book(ctx, bad); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected email rejection, got %v", err)
	}
	if len(svc.List(ctx)) != 0 {
		t.Fatal("rejected bookings must not be persisted")
	}
}

func TestBookUnknownVehicle(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	bad := validInput()
	bad.VehicleID = 42
	if _, err := svc.Book(context.Background(), bad); !pkgerrors.HasCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestListDegradesCorruptLog(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)
	store.Seed(storage.KeyTestDrives, "[not json")
	if log := svc.List(context.Background()); len(log) != 0 {
		t.Fatalf("corrupt log must read as empty, got %+v", log)
	}
}
