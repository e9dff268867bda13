package storage

import (
	"context"
	"testing"

	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	in := []int{1, 2, 3}
	if err := store.Set(ctx, KeyFavorites, in); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out []int
	found, err := store.Get(ctx, KeyFavorites, &out)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if len(out) != 3 || out[0] != 1 || out[2] != 3 {
		t.Fatalf("round trip mangled value: %v", out)
	}
}

func TestMemoryStoreMissingKey(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	var out []int
	found, err := store.Get(context.Background(), KeyCart, &out)
	if err != nil {
		t.Fatalf("missing key must not error: %v", err)
	}
	if found {
		t.Fatal("missing key must report found=false")
	}
}

func TestMemoryStoreCorruptValue(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	store.Seed(KeyFavorites, "{not json")

	var out []int
	found, err := store.Get(context.Background(), KeyFavorites, &out)
	if found {
		t.Fatal("corrupt value must report found=false")
	}
	if !pkgerrors.HasCode(err, pkgerrors.CodeStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestMemoryStoreRemove(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, KeyCurrentUser, map[string]string{"name": "Ana"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Remove(ctx, KeyCurrentUser); err != nil {
		t.Fatalf("remove: %v", err)
	}
	var out map[string]string
	if found, _ := store.Get(ctx, KeyCurrentUser, &out); found {
		t.Fatal("removed key must be absent")
	}
	if err := store.Remove(ctx, KeyCurrentUser); err != nil {
		t.Fatalf("removing an absent key must be a no-op: %v", err)
	}
}
