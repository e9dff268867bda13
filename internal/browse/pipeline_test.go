package browse

import (
	"testing"

	"github.com/oscarnavarro/showroom/internal/catalog"
	"github.com/oscarnavarro/showroom/pkg/enums"
)

func fixtureCatalog() []catalog.Vehicle {
	return []catalog.Vehicle{
		{ID: 1, Name: "Camry Hybrid", Brand: "Toyota", Model: "Camry", Year: 2023, Price: 500_000_000, Mileage: 0, Fuel: enums.FuelTypeHybrid},
		{ID: 2, Name: "Civic RS", Brand: "Honda", Model: "Civic", Year: 2021, Price: 300_000_000, Mileage: 12_000, Fuel: enums.FuelTypePetrol},
		{ID: 3, Name: "Ioniq 5", Brand: "Hyundai", Model: "Ioniq", Year: 2023, Price: 700_000_000, Mileage: 5_000, Fuel: enums.FuelTypeElectric},
		{ID: 4, Name: "Jazz", Brand: "Honda", Model: "Jazz", Year: 2021, Price: 300_000_000, Mileage: 40_000, Fuel: enums.FuelTypePetrol},
	}
}

func ids(vehicles []catalog.Vehicle) []int {
	out := make([]int, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.ID
	}
	return out
}

func assertIDs(t *testing.T, got []catalog.Vehicle, want ...int) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestApplyNoCriteriaPreservesCatalogOrder(t *testing.T) {
	t.Parallel()
	assertIDs(t, Apply(fixtureCatalog(), Criteria{}, enums.SortDefault), 1, 2, 3, 4)
}

func TestApplyQueryMatchesNameBrandModel(t *testing.T) {
	t.Parallel()
	cars := fixtureCatalog()

	assertIDs(t, Apply(cars, Criteria{Query: "camry"}, enums.SortDefault), 1)
	assertIDs(t, Apply(cars, Criteria{Query: "HONDA"}, enums.SortDefault), 2, 4)
	assertIDs(t, Apply(cars, Criteria{Query: "ioniq"}, enums.SortDefault), 3)
	assertIDs(t, Apply(cars, Criteria{Query: "zeppelin"}, enums.SortDefault))
}

func TestApplyIsConjunctive(t *testing.T) {
	t.Parallel()
	cars := fixtureCatalog()

	// Honda alone matches 2 and 4; adding the year keeps both; adding a
	// query narrows to the single intersection.
	assertIDs(t, Apply(cars, Criteria{Brand: "Honda", Year: 2021}, enums.SortDefault), 2, 4)
	assertIDs(t, Apply(cars, Criteria{Brand: "Honda", Year: 2021, Query: "jazz"}, enums.SortDefault), 4)
	assertIDs(t, Apply(cars, Criteria{Brand: "Honda", Fuel: enums.FuelTypeElectric}, enums.SortDefault))
}

func TestApplyBrandWithPriceAscScenario(t *testing.T) {
	t.Parallel()
	cars := []catalog.Vehicle{
		{ID: 1, Brand: "Toyota", Year: 2023, Price: 500_000_000},
		{ID: 2, Brand: "Honda", Year: 2021, Price: 300_000_000},
	}
	assertIDs(t, Apply(cars, Criteria{Brand: "Honda"}, enums.SortPriceAsc), 2)
}

func TestApplyPriceRangeInclusive(t *testing.T) {
	t.Parallel()
	cars := fixtureCatalog()

	// Bounds are inclusive on both ends.
	assertIDs(t, Apply(cars, Criteria{PriceRange: "300-500"}, enums.SortDefault), 1, 2, 4)
	assertIDs(t, Apply(cars, Criteria{PriceRange: "600-800"}, enums.SortDefault), 3)
	assertIDs(t, Apply(cars, Criteria{PriceRange: "0-100"}, enums.SortDefault))
}

func TestApplyMalformedPriceRangeIsUnset(t *testing.T) {
	t.Parallel()
	cars := fixtureCatalog()

	for _, malformed := range []string{"cheap", "300", "a-b", "300-", "-"} {
		assertIDs(t, Apply(cars, Criteria{PriceRange: malformed}, enums.SortDefault), 1, 2, 3, 4)
	}
}

func TestApplySortKeys(t *testing.T) {
	t.Parallel()
	cars := fixtureCatalog()

	assertIDs(t, Apply(cars, Criteria{}, enums.SortPriceAsc), 2, 4, 1, 3)
	assertIDs(t, Apply(cars, Criteria{}, enums.SortPriceDesc), 3, 1, 2, 4)
	assertIDs(t, Apply(cars, Criteria{}, enums.SortYearDesc), 1, 3, 2, 4)
	assertIDs(t, Apply(cars, Criteria{}, enums.SortMileage), 1, 3, 2, 4)
}

func TestApplySortIsStable(t *testing.T) {
	t.Parallel()
	// 2 and 4 share a price; their catalog order must survive the sort.
	sorted := Apply(fixtureCatalog(), Criteria{}, enums.SortPriceAsc)
	if sorted[0].ID != 2 || sorted[1].ID != 4 {
		t.Fatalf("equal-key records reordered: %v", ids(sorted))
	}
}

func TestApplyUnknownSortKeyIsDefault(t *testing.T) {
	t.Parallel()
	assertIDs(t, Apply(fixtureCatalog(), Criteria{}, enums.SortKey("rating-desc")), 1, 2, 3, 4)
}

func TestApplyEmptyCatalog(t *testing.T) {
	t.Parallel()
	if got := Apply(nil, Criteria{Brand: "Honda"}, enums.SortPriceAsc); len(got) != 0 {
		t.Fatalf("empty catalog must produce an empty result, got %v", ids(got))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	cars := fixtureCatalog()
	Apply(cars, Criteria{}, enums.SortPriceDesc)
	if cars[0].ID != 1 || cars[3].ID != 4 {
		t.Fatalf("input slice mutated: %v", ids(cars))
	}
}

func TestCriteriaIsZero(t *testing.T) {
	t.Parallel()
	if !(Criteria{}).IsZero() {
		t.Fatal("zero criteria must report IsZero")
	}
	if (Criteria{Brand: "Honda"}).IsZero() {
		t.Fatal("active brand must not report IsZero")
	}
}
