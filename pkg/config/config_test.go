package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatalf("expected development default, got %q", cfg.App.Env)
	}
	if cfg.Storage.Driver != StorageDriverSQLite {
		t.Fatalf("expected sqlite default driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Browse.PageSize != 6 {
		t.Fatalf("expected default page size 6, got %d", cfg.Browse.PageSize)
	}
	if cfg.Browse.SearchDebounce != 300*time.Millisecond {
		t.Fatalf("expected 300ms debounce, got %v", cfg.Browse.SearchDebounce)
	}
	if cfg.Browse.DefaultSort != "default" {
		t.Fatalf("expected catalog-order default sort, got %q", cfg.Browse.DefaultSort)
	}
	if cfg.Catalog.StartSelector != "all" {
		t.Fatalf("expected the full catalog as the start selector, got %q", cfg.Catalog.StartSelector)
	}
	if cfg.Password.MinLength != 6 {
		t.Fatalf("expected min password length 6, got %d", cfg.Password.MinLength)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvStorageDriver, "memory")
	t.Setenv(EnvCatalogPath, "/tmp/cars.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected production, got %q", cfg.App.Env)
	}
	if cfg.Storage.Driver != StorageDriverMemory {
		t.Fatalf("expected memory driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Catalog.Path != "/tmp/cars.json" {
		t.Fatalf("unexpected catalog path %q", cfg.Catalog.Path)
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv(EnvStorageDriver, "cloud")
	if _, err := Load(); err == nil {
		t.Fatal("expected unknown storage driver to fail Load")
	}
}

func TestLoad_SQLiteRequiresPath(t *testing.T) {
	t.Setenv(EnvStorageDriver, "sqlite")
	t.Setenv(EnvStoragePath, " ")
	if _, err := Load(); err == nil {
		t.Fatal("expected blank sqlite path to fail Load")
	}
}
