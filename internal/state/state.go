// Package state holds the single in-memory application state: the loaded
// catalog, the derived filtered view with its pagination cursor, and the
// user-scoped collections mirrored to the durable store. Everything here runs
// on the UI event loop; there is no locking by design.
package state

import (
	"context"
	"fmt"

	"github.com/oscarnavarro/showroom/internal/browse"
	"github.com/oscarnavarro/showroom/internal/catalog"
	"github.com/oscarnavarro/showroom/pkg/enums"
	"github.com/oscarnavarro/showroom/pkg/logger"
	"github.com/oscarnavarro/showroom/pkg/pagination"
	"github.com/oscarnavarro/showroom/pkg/storage"
)

// Params groups the dependencies needed to boot the state.
type Params struct {
	Store    storage.Store
	Logger   *logger.Logger
	PageSize int
	// DefaultSort seeds the sort key; anything invalid (including the zero
	// value) becomes SortDefault.
	DefaultSort enums.SortKey
}

// State owns the in-memory copies of every collection; the durable store owns
// the persisted copies. On boot the two are reconciled with persisted values
// winning and absence defaulting to empty.
type State struct {
	store storage.Store
	logg  *logger.Logger

	cars     []catalog.Vehicle
	filtered []catalog.Vehicle
	criteria browse.Criteria
	sortKey  enums.SortKey
	page     int
	pageSize int

	favorites []int
	cart      []CartItem
	compare   []catalog.Vehicle
	user      *User
}

// New boots the state and reconciles the persisted collections. A storage
// fault on any key degrades that collection to empty with a warning; it never
// fails the boot.
func New(ctx context.Context, params Params) (*State, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	sortKey := params.DefaultSort
	if !sortKey.IsValid() {
		sortKey = enums.SortDefault
	}

	s := &State{
		store:    params.Store,
		logg:     params.Logger,
		sortKey:  sortKey,
		page:     1,
		pageSize: pagination.NormalizeSize(params.PageSize),
	}

	var favorites []int
	if s.loadInto(ctx, storage.KeyFavorites, &favorites) {
		s.favorites = favorites
	}
	var items []CartItem
	if s.loadInto(ctx, storage.KeyCart, &items) {
		s.cart = items
	}
	var compareList []catalog.Vehicle
	if s.loadInto(ctx, storage.KeyCompareList, &compareList) {
		s.compare = compareList
	}
	var user User
	if s.loadInto(ctx, storage.KeyCurrentUser, &user) {
		s.user = &user
	}

	return s, nil
}

// loadInto reads one persisted key, treating faults as absence. Callers must
// decode into a throwaway destination and assign only on success: a decode
// error can leave out partially populated.
func (s *State) loadInto(ctx context.Context, key string, out any) bool {
	found, err := s.store.Get(ctx, key, out)
	if err != nil {
		s.logg.Warn(ctx, "ignoring unreadable persisted value for "+key+": "+err.Error())
		return false
	}
	return found
}

// SetCatalog installs the loaded catalog and re-derives the view from the
// active criteria with the cursor back at page 1.
func (s *State) SetCatalog(cars []catalog.Vehicle) {
	s.cars = cars
	s.rederive()
}

// Catalog returns the full loaded catalog.
func (s *State) Catalog() []catalog.Vehicle {
	return s.cars
}

// Criteria returns the active filter criteria.
func (s *State) Criteria() browse.Criteria {
	return s.criteria
}

// SetCriteria replaces the criteria and re-derives the view. The cursor
// resets to 1 because the previous position is meaningless in a new result
// set.
func (s *State) SetCriteria(criteria browse.Criteria) {
	s.criteria = criteria
	s.rederive()
}

// SortKey returns the active sort key.
func (s *State) SortKey() enums.SortKey {
	return s.sortKey
}

// SetSortKey replaces the sort key, re-derives the view and resets the cursor.
func (s *State) SetSortKey(key enums.SortKey) {
	s.sortKey = key
	s.rederive()
}

func (s *State) rederive() {
	s.filtered = browse.Apply(s.cars, s.criteria, s.sortKey)
	s.page = 1
}

// Filtered returns the full derived view (all pages).
func (s *State) Filtered() []catalog.Vehicle {
	return s.filtered
}

// Page returns the 1-based pagination cursor.
func (s *State) Page() int {
	return s.page
}

// PageSize returns the fixed window size.
func (s *State) PageSize() int {
	return s.pageSize
}

// TotalPages returns ceil(len(filtered)/pageSize), 0 when the view is empty.
func (s *State) TotalPages() int {
	return pagination.TotalPages(len(s.filtered), s.pageSize)
}

// ChangePage moves the cursor, refusing targets outside [1, TotalPages].
// It reports whether the cursor moved.
func (s *State) ChangePage(target int) bool {
	if target < 1 || target > s.TotalPages() {
		return false
	}
	s.page = target
	return true
}

// PageItems returns the current window of the derived view.
func (s *State) PageItems() []catalog.Vehicle {
	window, _ := pagination.Window(s.filtered, s.page, s.pageSize)
	return window
}

// Favorites returns a copy of the favorite vehicle ids.
func (s *State) Favorites() []int {
	out := make([]int, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// IsFavorite reports membership of id in the favorites set.
func (s *State) IsFavorite(id int) bool {
	for _, fav := range s.favorites {
		if fav == id {
			return true
		}
	}
	return false
}

// SaveFavorites replaces the favorites set and mirrors it to the store.
func (s *State) SaveFavorites(ctx context.Context, favorites []int) {
	s.favorites = favorites
	s.persist(ctx, storage.KeyFavorites, favorites)
}

// Cart returns a copy of the cart items.
func (s *State) Cart() []CartItem {
	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartHas reports whether an entry with the given vehicle id exists.
func (s *State) CartHas(id int) bool {
	for _, item := range s.cart {
		if item.Vehicle.ID == id {
			return true
		}
	}
	return false
}

// SaveCart replaces the cart and mirrors it to the store.
func (s *State) SaveCart(ctx context.Context, items []CartItem) {
	s.cart = items
	s.persist(ctx, storage.KeyCart, items)
}

// Compare returns a copy of the compare-list snapshots.
func (s *State) Compare() []catalog.Vehicle {
	out := make([]catalog.Vehicle, len(s.compare))
	copy(out, s.compare)
	return out
}

// SaveCompare replaces the compare list and mirrors it to the store.
func (s *State) SaveCompare(ctx context.Context, vehicles []catalog.Vehicle) {
	s.compare = vehicles
	s.persist(ctx, storage.KeyCompareList, vehicles)
}

// User returns the current user, nil when anonymous.
func (s *State) User() *User {
	return s.user
}

// SaveUser replaces the current user; nil clears the durable key.
func (s *State) SaveUser(ctx context.Context, user *User) {
	s.user = user
	if user == nil {
		if err := s.store.Remove(ctx, storage.KeyCurrentUser); err != nil {
			s.logg.Error(ctx, "failed to clear persisted user", err)
		}
		return
	}
	s.persist(ctx, storage.KeyCurrentUser, user)
}

// persist mirrors one collection to the durable store. Write failures are
// logged and swallowed: in-memory state stays authoritative for the session
// and storage faults are never surfaced to the user.
func (s *State) persist(ctx context.Context, key string, value any) {
	if err := s.store.Set(ctx, key, value); err != nil {
		s.logg.Error(ctx, "failed to persist "+key, err)
	}
}
