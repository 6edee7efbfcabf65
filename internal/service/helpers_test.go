package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dujiao-next/bistro/internal/amount"
	"github.com/dujiao-next/bistro/internal/models"
	"github.com/dujiao-next/bistro/internal/pricing"
	"github.com/dujiao-next/bistro/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testAmountSettings() amount.Settings {
	return amount.Settings{DefaultValue: 1, Min: 1, Max: 9}
}

func pizzaProduct() models.Product {
	return models.Product{
		ID:          "pizza",
		Name:        "Nonna Alba's Pizza",
		Class:       "small",
		Description: "Homemade pizza",
		PriceAmount: models.NewMoneyFromInt(20),
		SortOrder:   10,
		IsActive:    true,
		Params: models.ProductParams{
			"sauce": {
				Label: "Sauce",
				Type:  pricing.ParamTypeRadios,
				Options: map[string]pricing.Option{
					"tomato": {Label: "Tomato", Price: decimal.NewFromInt(2), Default: true},
					"cream":  {Label: "Sour cream", Price: decimal.NewFromInt(2)},
				},
			},
			"toppings": {
				Label: "Toppings",
				Type:  pricing.ParamTypeCheckboxes,
				Options: map[string]pricing.Option{
					"olives":     {Label: "Olives", Price: decimal.NewFromInt(2)},
					"redPeppers": {Label: "Red peppers", Price: decimal.NewFromInt(2), Default: true},
					"mushrooms":  {Label: "Mushrooms", Price: decimal.NewFromInt(2), Default: true},
				},
			},
		},
	}
}

func saladProduct() models.Product {
	return models.Product{
		ID:          "salad",
		Name:        "Zia Giulia's Salad",
		Description: "Fresh salad",
		PriceAmount: models.NewMoneyFromInt(10),
		SortOrder:   1,
		IsActive:    true,
		Params:      models.ProductParams{},
	}
}

func newTestMenuService(t *testing.T) *MenuService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	svc := NewMenuService(repository.NewProductRepository(db), time.Minute, testAmountSettings())
	imported, err := svc.ImportProducts(t.Context(), []models.Product{pizzaProduct(), saladProduct()})
	require.NoError(t, err)
	require.Equal(t, 2, imported)
	return svc
}

func newTestCartService(t *testing.T) *CartService {
	t.Helper()
	return NewCartService(newTestMenuService(t), decimal.NewFromInt(20), testAmountSettings(), time.Hour)
}

// pizzaWithOlives 默认选项基础上加 olives
func pizzaWithOlives() pricing.Selection {
	return pricing.NewSelection(map[string][]string{
		"sauce":    {"tomato"},
		"toppings": {"olives", "redPeppers", "mushrooms"},
	})
}
