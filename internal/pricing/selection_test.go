package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionUnmarshalAcceptsListsAndStrings(t *testing.T) {
	var s Selection
	require.NoError(t, json.Unmarshal([]byte(`{"toppings":["olives","basil"],"sauce":"tomato","crust":null}`), &s))

	assert.True(t, s.Has("toppings", "olives"))
	assert.True(t, s.Has("toppings", "basil"))
	assert.True(t, s.Has("sauce", "tomato"))
	assert.False(t, s.Has("crust", ""))
}

func TestSelectionUnmarshalKeepsStringWithSpacesAsOneOption(t *testing.T) {
	var s Selection
	require.NoError(t, json.Unmarshal([]byte(`{"sauce":"sour cream"}`), &s))

	assert.True(t, s.Has("sauce", "sour cream"))
	assert.False(t, s.Has("sauce", "sour"))
	assert.Equal(t, map[string][]string{"sauce": {"sour cream"}}, s.Values())
}

func TestSelectionMarshalSorted(t *testing.T) {
	s := NewSelection(map[string][]string{"toppings": {"olives", "basil", "olives"}})

	body, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"toppings":["basil","olives"]}`, string(body))
}

func TestSelectionRemoveDropsEmptyParam(t *testing.T) {
	s := NewSelection(map[string][]string{"toppings": {"olives"}})
	s.Remove("toppings", "olives")
	s.Remove("missing", "x")

	assert.Empty(t, s)
}

func TestSelectionCloneIsIndependent(t *testing.T) {
	s := NewSelection(map[string][]string{"toppings": {"olives"}})
	clone := s.Clone()
	clone.Add("toppings", "basil")

	assert.False(t, s.Has("toppings", "basil"))
	assert.True(t, clone.Has("toppings", "olives"))
}

func TestNilSelectionHas(t *testing.T) {
	var s Selection
	assert.False(t, s.Has("toppings", "olives"))
}

func TestNormalizeSelection(t *testing.T) {
	catalog := pizzaCatalog()
	s := NewSelection(map[string][]string{
		"toppings": {"olives", "pineapple"},
		"size":     {"xl"},
	})

	normalized, dropped := NormalizeSelection(catalog, s)
	assert.True(t, dropped)
	assert.Equal(t, map[string][]string{"toppings": {"olives"}}, normalized.Values())

	_, dropped = NormalizeSelection(catalog, DefaultSelection(catalog))
	assert.False(t, dropped)
}
