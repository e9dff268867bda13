// Package storage provides the durable string-keyed JSON store backing the
// storefront collections. It is the stand-in for browser local storage: a
// single-user, single-process store with no locking, safe only because every
// mutation runs on the UI event loop.
package storage

import "context"

// Keys for the persisted collections.
const (
	KeyFavorites   = "favorites"
	KeyCart        = "cart"
	KeyCompareList = "compareList"
	KeyCurrentUser = "currentUser"
	KeyOrders      = "orders"
	KeyTestDrives  = "testDrives"
)

// Store is the repository surface every collection mutator persists through.
// Values are JSON-encoded on Set and decoded into out on Get. A missing key
// reports found=false with a nil error; a corrupt or unreadable value reports
// found=false with a CodeStorage error, which callers treat as absence.
type Store interface {
	Get(ctx context.Context, key string, out any) (found bool, err error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}
