package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/oscarnavarro/showroom/internal/auth"
	"github.com/oscarnavarro/showroom/internal/cart"
	"github.com/oscarnavarro/showroom/internal/catalog"
	"github.com/oscarnavarro/showroom/internal/checkout"
	"github.com/oscarnavarro/showroom/internal/compare"
	"github.com/oscarnavarro/showroom/internal/favorites"
	"github.com/oscarnavarro/showroom/internal/state"
	"github.com/oscarnavarro/showroom/internal/testdrive"
	"github.com/oscarnavarro/showroom/internal/ui"
	"github.com/oscarnavarro/showroom/pkg/config"
	"github.com/oscarnavarro/showroom/pkg/enums"
	"github.com/oscarnavarro/showroom/pkg/logger"
	"github.com/oscarnavarro/showroom/pkg/storage"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "showroom"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "showroom",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var store storage.Store
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store = storage.NewMemoryStore()
	default:
		sqlite, err := storage.OpenSQLite(ctx, cfg.Storage, logg)
		if err != nil {
			logg.Error(ctx, "failed to open the durable store", err)
			os.Exit(1)
		}
		defer func() {
			if err := sqlite.Close(); err != nil {
				logg.Error(ctx, "error closing the durable store", err)
			}
		}()
		store = sqlite
	}

	source, err := catalog.NewSource(cfg.Catalog, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap the catalog source", err)
		os.Exit(1)
	}

	st, err := state.New(ctx, state.Params{
		Store:       store,
		Logger:      logg,
		PageSize:    cfg.Browse.PageSize,
		DefaultSort: enums.ParseSortKey(cfg.Browse.DefaultSort),
	})
	if err != nil {
		logg.Error(ctx, "failed to bootstrap application state", err)
		os.Exit(1)
	}

	services, err := buildServices(st, store, logg, cfg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap services", err)
		os.Exit(1)
	}

	startSelector, err := enums.ParseCatalogSelector(cfg.Catalog.StartSelector)
	if err != nil {
		logg.Warn(ctx, "unknown start selector, falling back to all: "+err.Error())
		startSelector = enums.CatalogAll
	}

	program := tea.NewProgram(ui.New(ui.Options{
		Context:        ctx,
		State:          st,
		Source:         source,
		Services:       services,
		Logger:         logg,
		SearchDebounce: cfg.Browse.SearchDebounce,
		StartSelector:  startSelector,
	}))
	if _, err := program.Run(); err != nil {
		logg.Error(ctx, "ui terminated", err)
		os.Exit(1)
	}
}

func buildServices(st *state.State, store storage.Store, logg *logger.Logger, cfg *config.Config) (ui.Services, error) {
	favoritesSvc, err := favorites.NewService(favorites.ServiceParams{State: st, Logger: logg})
	if err != nil {
		return ui.Services{}, err
	}
	compareSvc, err := compare.NewService(compare.ServiceParams{State: st, Logger: logg})
	if err != nil {
		return ui.Services{}, err
	}
	cartSvc, err := cart.NewService(cart.ServiceParams{State: st, Logger: logg})
	if err != nil {
		return ui.Services{}, err
	}
	checkoutSvc, err := checkout.NewService(checkout.ServiceParams{State: st, Store: store, Logger: logg})
	if err != nil {
		return ui.Services{}, err
	}
	authSvc, err := auth.NewService(auth.ServiceParams{State: st, Logger: logg, Password: cfg.Password})
	if err != nil {
		return ui.Services{}, err
	}
	testDriveSvc, err := testdrive.NewService(testdrive.ServiceParams{State: st, Store: store, Logger: logg})
	if err != nil {
		return ui.Services{}, err
	}
	return ui.Services{
		Favorites: favoritesSvc,
		Compare:   compareSvc,
		Cart:      cartSvc,
		Checkout:  checkoutSvc,
		Auth:      authSvc,
		TestDrive: testDriveSvc,
	}, nil
}
