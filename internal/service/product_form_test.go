package service

import (
	"testing"

	"github.com/dujiao-next/bistro/internal/models"
	"github.com/dujiao-next/bistro/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPizzaForm(t *testing.T) *ProductForm {
	t.Helper()
	product := pizzaProduct()
	catalog := product.Params.Catalog()
	return NewProductForm(&MenuProduct{
		ID:            product.ID,
		Name:          product.Name,
		Price:         product.PriceAmount,
		Params:        catalog,
		DefaultParams: pricing.DefaultSelection(catalog),
	}, testAmountSettings())
}

func TestProductFormStartsAtBasePrice(t *testing.T) {
	form := newPizzaForm(t)
	quote := form.Quote()
	assert.Equal(t, "20", quote.PriceSingle.String())
	assert.Equal(t, 1, quote.Amount)
}

func TestProductFormAmountChangeReprices(t *testing.T) {
	form := newPizzaForm(t)
	form.SetAmount(3)
	quote := form.Quote()
	assert.Equal(t, 3, quote.Amount)
	assert.Equal(t, "60", quote.Price.String())

	form.SetAmount("x")
	assert.Equal(t, 3, form.Quote().Amount)
}

func TestProductFormToggle(t *testing.T) {
	form := newPizzaForm(t)

	require.NoError(t, form.Toggle("toppings", "mushrooms"))
	assert.Equal(t, "18", form.Quote().PriceSingle.String())

	require.NoError(t, form.Toggle("toppings", "olives"))
	assert.Equal(t, "20", form.Quote().PriceSingle.String())

	require.NoError(t, form.Toggle("sauce", "cream"))
	selection := form.Selection()
	assert.True(t, selection.Has("sauce", "cream"))
	assert.False(t, selection.Has("sauce", "tomato"))
	assert.Equal(t, "20", form.Quote().PriceSingle.String())

	assert.ErrorIs(t, form.Toggle("sauce", "ketchup"), ErrInvalidSelection)
}

func TestProductFormSetSelectionKeepsStateOnError(t *testing.T) {
	form := newPizzaForm(t)
	require.NoError(t, form.SetSelection(pizzaWithOlives()))

	err := form.SetSelection(pricing.NewSelection(map[string][]string{"dough": {"thin"}}))
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.True(t, form.Selection().Has("toppings", "olives"))
	assert.Equal(t, "22", form.Quote().PriceSingle.String())
}

func TestProductFormPrepareCartProduct(t *testing.T) {
	form := newPizzaForm(t)
	require.NoError(t, form.SetSelection(pizzaWithOlives()))
	form.SetAmount(2)

	item := form.PrepareCartProduct()
	require.NotNil(t, item)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "pizza", item.ProductID)
	assert.Equal(t, 2, item.Amount)
	assert.Equal(t, "22.00", models.NewMoneyFromDecimal(item.PriceSingle).String())
	assert.Equal(t, "44.00", models.NewMoneyFromDecimal(item.Price).String())
	assert.Equal(t, "Toppings", item.Params["toppings"].Label)
	assert.Len(t, item.Params["toppings"].Options, 3)
}
