package pricing

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pizzaCatalog() Catalog {
	return Catalog{
		"sauce": {
			Label: "Sauce",
			Type:  ParamTypeRadios,
			Options: map[string]Option{
				"tomato": {Label: "Tomato", Price: decimal.NewFromInt(2), Default: true},
				"cream":  {Label: "Sour cream", Price: decimal.NewFromInt(2)},
			},
		},
		"toppings": {
			Label: "Toppings",
			Type:  ParamTypeCheckboxes,
			Options: map[string]Option{
				"olives":     {Label: "Olives", Price: decimal.NewFromInt(2)},
				"redPeppers": {Label: "Red peppers", Price: decimal.NewFromInt(2), Default: true},
				"mushrooms":  {Label: "Mushrooms", Price: decimal.NewFromInt(2), Default: true},
				"basil":      {Label: "Fresh basil", Price: decimal.RequireFromString("0.50")},
			},
		},
	}
}

func TestComputeUnitPriceDefaultsEqualBase(t *testing.T) {
	catalog := pizzaCatalog()
	base := decimal.NewFromInt(20)

	got := ComputeUnitPrice(base, catalog, DefaultSelection(catalog))
	assert.True(t, base.Equal(got), "expected %s got %s", base, got)
}

func TestComputeUnitPriceAddsNonDefaultOption(t *testing.T) {
	catalog := Catalog{
		"toppings": {
			Label: "Toppings",
			Options: map[string]Option{
				"olives": {Label: "Olives", Price: decimal.NewFromInt(2)},
			},
		},
	}
	selection := NewSelection(map[string][]string{"toppings": {"olives"}})

	unit := ComputeUnitPrice(decimal.NewFromInt(20), catalog, selection)
	assert.Equal(t, "22", unit.String())
	assert.Equal(t, "44", ComputeTotalPrice(unit, 2).String())
}

func TestComputeUnitPriceRefundsDeselectedDefault(t *testing.T) {
	catalog := pizzaCatalog()
	selection := DefaultSelection(catalog)
	selection.Remove("toppings", "mushrooms")

	got := ComputeUnitPrice(decimal.NewFromInt(20), catalog, selection)
	assert.Equal(t, "18", got.String())
}

func TestComputeUnitPriceIgnoresUnselectedNonDefault(t *testing.T) {
	catalog := pizzaCatalog()
	selection := NewSelection(map[string][]string{
		"sauce":    {"tomato"},
		"toppings": {"redPeppers", "mushrooms"},
	})

	got := ComputeUnitPrice(decimal.NewFromInt(20), catalog, selection)
	assert.Equal(t, "20", got.String())
}

func TestComputeUnitPriceSwapDefaultForOtherOption(t *testing.T) {
	catalog := pizzaCatalog()
	selection := DefaultSelection(catalog)
	selection.Remove("sauce", "tomato")
	selection.Add("sauce", "cream")
	selection.Add("toppings", "basil")

	got := ComputeUnitPrice(decimal.NewFromInt(20), catalog, selection)
	assert.Equal(t, "20.5", got.String())
}

func TestComputeUnitPriceEmptySelectionRefundsAllDefaults(t *testing.T) {
	catalog := pizzaCatalog()

	got := ComputeUnitPrice(decimal.NewFromInt(20), catalog, nil)
	assert.Equal(t, "14", got.String())
}

func TestComputeTotalPrice(t *testing.T) {
	unit := decimal.RequireFromString("12.50")
	for q := 1; q <= 9; q++ {
		want := unit.Mul(decimal.NewFromInt(int64(q)))
		assert.True(t, want.Equal(ComputeTotalPrice(unit, q)), "quantity %d", q)
	}
}

func TestCalculate(t *testing.T) {
	catalog := pizzaCatalog()
	selection := DefaultSelection(catalog)
	selection.Add("toppings", "olives")

	quote := Calculate(decimal.NewFromInt(20), catalog, selection, 3)
	assert.Equal(t, "22", quote.PriceSingle.String())
	assert.Equal(t, "66", quote.Price.String())
	assert.Equal(t, 3, quote.Amount)
}

func TestSnapshotParamsKeepsSelectedOptionsOnly(t *testing.T) {
	catalog := pizzaCatalog()
	selection := NewSelection(map[string][]string{
		"sauce":    {"cream"},
		"toppings": {"olives", "basil"},
	})

	snapshot := SnapshotParams(catalog, selection)
	require.Len(t, snapshot, 2)
	assert.Equal(t, "Sauce", snapshot["sauce"].Label)
	assert.Equal(t, map[string]string{"cream": "Sour cream"}, snapshot["sauce"].Options)
	assert.Equal(t, map[string]string{"olives": "Olives", "basil": "Fresh basil"}, snapshot["toppings"].Options)
}

func TestCatalogValidate(t *testing.T) {
	require.NoError(t, pizzaCatalog().Validate())

	negative := Catalog{"extras": {Options: map[string]Option{"x": {Price: decimal.NewFromInt(-1)}}}}
	assert.ErrorIs(t, negative.Validate(), ErrOptionPriceNegative)

	emptyOption := Catalog{"extras": {Options: map[string]Option{" ": {}}}}
	assert.ErrorIs(t, emptyOption.Validate(), ErrCatalogIDEmpty)

	badType := Catalog{"extras": {Type: "slider"}}
	assert.ErrorIs(t, badType.Validate(), ErrParamTypeInvalid)

	twoDefaults := Catalog{"sauce": {Type: ParamTypeRadios, Options: map[string]Option{
		"a": {Default: true},
		"b": {Default: true},
	}}}
	assert.ErrorIs(t, twoDefaults.Validate(), ErrParamMultipleDefaults)
}

func TestCatalogUnmarshalFromDataSource(t *testing.T) {
	raw := `{"toppings":{"label":"Toppings","type":"checkboxes","options":{"olives":{"label":"Olives","price":2,"default":true}}}}`
	var catalog Catalog
	require.NoError(t, json.Unmarshal([]byte(raw), &catalog))

	option := catalog["toppings"].Options["olives"]
	assert.True(t, option.Default)
	assert.Equal(t, "2", option.Price.String())
}
