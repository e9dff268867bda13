package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/oscarnavarro/showroom/pkg/config"
	"github.com/oscarnavarro/showroom/pkg/enums"
	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
	"github.com/oscarnavarro/showroom/pkg/logger"
	"github.com/oscarnavarro/showroom/pkg/validate"
)

// document mirrors the dataset file: two ordered lists, new then used.
type document struct {
	Cars     []Vehicle `json:"cars"`
	UsedCars []Vehicle `json:"usedCars"`
}

// Source reads the static catalog document. One read per page load, no retry;
// a failed read surfaces a load error and no derived state is populated.
type Source struct {
	path string
	logg *logger.Logger
}

// NewSource builds a catalog source over the configured dataset path.
func NewSource(cfg config.CatalogConfig, logg *logger.Logger) (*Source, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Source{path: cfg.Path, logg: logg}, nil
}

// Load returns the subset of the dataset selected by selector. Records that
// fail schema validation are quarantined with a warning rather than
// propagated; duplicate identifiers make the whole load fail since every
// collection keys on them.
func (s *Source) Load(ctx context.Context, selector enums.CatalogSelector) ([]Vehicle, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeLoad, err, "read catalog dataset")
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeLoad, err, "parse catalog dataset")
	}

	var selected []Vehicle
	switch selector {
	case enums.CatalogNew:
		selected = doc.Cars
	case enums.CatalogUsed:
		selected = doc.UsedCars
	case enums.CatalogAll:
		selected = append(append([]Vehicle{}, doc.Cars...), doc.UsedCars...)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeLoad, fmt.Sprintf("unknown catalog selector %q", selector))
	}

	vehicles := make([]Vehicle, 0, len(selected))
	seen := make(map[int]struct{}, len(selected))
	for _, v := range selected {
		if err := s.checkRecord(v); err != nil {
			s.logg.Warn(s.logg.WithVehicleID(ctx, v.ID), "quarantined malformed catalog record: "+err.Error())
			continue
		}
		if _, dup := seen[v.ID]; dup {
			return nil, pkgerrors.New(pkgerrors.CodeLoad, fmt.Sprintf("duplicate vehicle id %d", v.ID))
		}
		seen[v.ID] = struct{}{}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

func (s *Source) checkRecord(v Vehicle) error {
	if err := validate.Struct(v); err != nil {
		return err
	}
	if !v.Fuel.IsValid() {
		return fmt.Errorf("unknown fuel type %q", v.Fuel)
	}
	if !v.Transmission.IsValid() {
		return fmt.Errorf("unknown transmission %q", v.Transmission)
	}
	if v.Badge != nil && !v.Badge.IsValid() {
		return fmt.Errorf("unknown badge %q", *v.Badge)
	}
	return nil
}
