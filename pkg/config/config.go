package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every variable the storefront reads.
const EnvPrefix = "SHOWROOM"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Env variable names referenced outside struct tags (tests, error text).
const (
	EnvAppEnv        = "SHOWROOM_APP_ENV"
	EnvStorageDriver = "SHOWROOM_STORAGE_DRIVER"
	EnvStoragePath   = "SHOWROOM_STORAGE_PATH"
	EnvCatalogPath   = "SHOWROOM_CATALOG_PATH"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Catalog  CatalogConfig
	Browse   BrowseConfig
	Password PasswordConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOWROOM_APP_ENV" default:"development"`
	LogLevel     string `envconfig:"SHOWROOM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOWROOM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects the durable key-value backend. The sqlite file is the
// stand-in for browser local storage; the memory driver backs tests.
type StorageConfig struct {
	Driver string `envconfig:"SHOWROOM_STORAGE_DRIVER" default:"sqlite"`
	Path   string `envconfig:"SHOWROOM_STORAGE_PATH" default:"showroom.db"`
}

const (
	StorageDriverSQLite = "sqlite"
	StorageDriverMemory = "memory"
)

func (s StorageConfig) validate() error {
	switch s.Driver {
	case StorageDriverSQLite:
		if strings.TrimSpace(s.Path) == "" {
			return fmt.Errorf("%s is required for the sqlite driver", EnvStoragePath)
		}
		return nil
	case StorageDriverMemory:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", s.Driver)
	}
}

type CatalogConfig struct {
	Path string `envconfig:"SHOWROOM_CATALOG_PATH" default:"data/cars.json"`
	// StartSelector picks the subset the home page opens with: new, used
	// or all. Unknown values fall back to all.
	StartSelector string `envconfig:"SHOWROOM_CATALOG_START_SELECTOR" default:"all"`
}

type BrowseConfig struct {
	PageSize       int           `envconfig:"SHOWROOM_BROWSE_PAGE_SIZE" default:"6"`
	SearchDebounce time.Duration `envconfig:"SHOWROOM_BROWSE_SEARCH_DEBOUNCE" default:"300ms"`
	// DefaultSort is the sort key active before the user cycles; unknown
	// values fall back to catalog order.
	DefaultSort string `envconfig:"SHOWROOM_BROWSE_DEFAULT_SORT" default:"default"`
}

type PasswordConfig struct {
	MinLength        int `envconfig:"SHOWROOM_PASSWORD_MIN_LENGTH" default:"6"`
	ArgonMemoryKB    int `envconfig:"SHOWROOM_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SHOWROOM_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SHOWROOM_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SHOWROOM_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SHOWROOM_ARGON_KEY_LEN" default:"32"`
}
