package favorites

import (
	"context"
	"io"
	"testing"

	"github.com/oscarnavarro/showroom/internal/state"
	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
	"github.com/oscarnavarro/showroom/pkg/logger"
	"github.com/oscarnavarro/showroom/pkg/storage"
)

func newTestService(t *testing.T) (Service, *state.State, *storage.MemoryStore) {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	store := storage.NewMemoryStore()
	st, err := state.New(context.Background(), state.Params{Store: store, Logger: logg, PageSize: 6})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	svc, err := NewService(ServiceParams{State: st, Logger: logg})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, st, store
}

func TestToggleAddsAndRemoves(t *testing.T) {
	t.Parallel()
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	added, err := svc.Toggle(ctx, 7)
	if err != nil || !added {
		t.Fatalf("expected first toggle to add: added=%v err=%v", added, err)
	}
	if !st.IsFavorite(7) {
		t.Fatal("state missing toggled id")
	}

	added, err = svc.Toggle(ctx, 7)
	if err != nil || added {
		t.Fatalf("expected second toggle to remove: added=%v err=%v", added, err)
	}
	if st.IsFavorite(7) {
		t.Fatal("id still present after removal toggle")
	}
}

func TestToggleTwiceIsIdempotent(t *testing.T) {
	t.Parallel()
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	before := st.Favorites()

	if _, err := svc.Toggle(ctx, 5); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := svc.Toggle(ctx, 5); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	after := st.Favorites()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("double toggle must restore the set: before=%v after=%v", before, after)
	}
}

func TestTogglePersists(t *testing.T) {
	t.Parallel()
	svc, _, store := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, 3); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	var persisted []int
	found, err := store.Get(ctx, storage.KeyFavorites, &persisted)
	if err != nil || !found {
		t.Fatalf("expected persisted favorites: found=%v err=%v", found, err)
	}
	if len(persisted) != 1 || persisted[0] != 3 {
		t.Fatalf("unexpected persisted set %v", persisted)
	}
}

func TestToggleRejectsBadID(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	if _, err := svc.Toggle(context.Background(), 0); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestClear(t *testing.T) {
	t.Parallel()
	svc, st, store := newTestService(t)
	ctx := context.Background()

	svc.Toggle(ctx, 1)
	svc.Toggle(ctx, 2)
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(st.Favorites()) != 0 {
		t.Fatalf("expected empty set, got %v", st.Favorites())
	}
	var persisted []int
	if found, _ := store.Get(ctx, storage.KeyFavorites, &persisted); !found || len(persisted) != 0 {
		t.Fatalf("expected persisted empty set, found=%v got %v", found, persisted)
	}
}
