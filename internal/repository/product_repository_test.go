package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dujiao-next/bistro/internal/models"
	"github.com/dujiao-next/bistro/internal/pricing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) *GormProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db)
}

func createMenuProduct(t *testing.T, repo *GormProductRepository, id, name string, sortOrder int, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:          id,
		Name:        name,
		Description: name + " description",
		Images:      models.StringArray{"img/" + id + ".jpg"},
		PriceAmount: models.NewMoneyFromInt(20),
		Params: models.ProductParams{
			"toppings": {
				Label: "Toppings",
				Type:  pricing.ParamTypeCheckboxes,
				Options: map[string]pricing.Option{
					"olives":    {Label: "Olives", Price: decimal.NewFromInt(2)},
					"mushrooms": {Label: "Mushrooms", Price: decimal.NewFromInt(2), Default: true},
				},
			},
		},
		SortOrder: sortOrder,
		IsActive:  active,
	}
	if err := repo.Upsert(product); err != nil {
		t.Fatalf("upsert product failed: %v", err)
	}
	return product
}

func TestProductRepositoryGetByIDRoundTripsParams(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createMenuProduct(t, repo, "pizza", "Pizza", 10, true)

	got, err := repo.GetByID("pizza", true)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got == nil {
		t.Fatalf("product should exist")
	}
	if got.PriceAmount.String() != "20.00" {
		t.Fatalf("price want 20.00 got %s", got.PriceAmount.String())
	}
	option, ok := got.Params["toppings"].Options["mushrooms"]
	if !ok || !option.Default {
		t.Fatalf("mushrooms should be a default option, got %+v", got.Params["toppings"])
	}
	if !option.Price.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("mushrooms price want 2 got %s", option.Price)
	}
	if len(got.Images) != 1 || got.Images[0] != "img/pizza.jpg" {
		t.Fatalf("unexpected images: %v", got.Images)
	}
}

func TestProductRepositoryGetByIDMissing(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	got, err := repo.GetByID("missing", false)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got != nil {
		t.Fatalf("missing product should be nil, got %+v", got)
	}
}

func TestProductRepositoryListOrdersAndFilters(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createMenuProduct(t, repo, "salad", "Salad", 1, true)
	createMenuProduct(t, repo, "pizza", "Pizza", 10, true)
	createMenuProduct(t, repo, "cake", "Cake", 5, false)

	products, total, err := repo.List(ProductListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("active products want 2 got total=%d len=%d", total, len(products))
	}
	if products[0].ID != "pizza" || products[1].ID != "salad" {
		t.Fatalf("unexpected order: %s, %s", products[0].ID, products[1].ID)
	}

	products, total, err = repo.List(ProductListFilter{Search: "cak"})
	if err != nil {
		t.Fatalf("search products failed: %v", err)
	}
	if total != 1 || products[0].ID != "cake" {
		t.Fatalf("search want cake got total=%d", total)
	}

	products, total, err = repo.List(ProductListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("paginate products failed: %v", err)
	}
	if total != 3 || len(products) != 1 {
		t.Fatalf("page 2 want 1 of 3 got len=%d total=%d", len(products), total)
	}
}

func TestProductRepositoryUpsertOverwrites(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	product := createMenuProduct(t, repo, "pizza", "Pizza", 10, true)

	product.Name = "Pizza Margherita"
	product.PriceAmount = models.NewMoneyFromInt(25)
	if err := repo.Upsert(product); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}
	got, err := repo.GetByID("pizza", false)
	if err != nil || got == nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.Name != "Pizza Margherita" || got.PriceAmount.String() != "25.00" {
		t.Fatalf("upsert should overwrite, got name=%s price=%s", got.Name, got.PriceAmount.String())
	}
}

func TestProductRepositoryDelete(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createMenuProduct(t, repo, "cake", "Cake", 1, true)
	if err := repo.Delete("cake"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	got, err := repo.GetByID("cake", false)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted product should be hidden")
	}
}

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		page, pageSize         int
		wantPage, wantPageSize int
	}{
		{page: 0, pageSize: 0, wantPage: 1, wantPageSize: 20},
		{page: 3, pageSize: 10, wantPage: 3, wantPageSize: 10},
		{page: -2, pageSize: 500, wantPage: 1, wantPageSize: 100},
	}
	for _, tc := range cases {
		page, pageSize := NormalizePagination(tc.page, tc.pageSize)
		if page != tc.wantPage || pageSize != tc.wantPageSize {
			t.Fatalf("NormalizePagination(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.pageSize, page, pageSize, tc.wantPage, tc.wantPageSize)
		}
	}
}

func TestProductRepositoryUpsertKeepsInactive(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	product := createMenuProduct(t, repo, "cake", "Cake", 1, false)

	got, err := repo.GetByID("cake", false)
	if err != nil || got == nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.IsActive {
		t.Fatalf("inactive product should be stored as inactive")
	}
	if active, _ := repo.GetByID("cake", true); active != nil {
		t.Fatalf("inactive product should be hidden from active lookups")
	}

	product.IsActive = true
	if err := repo.Upsert(product); err != nil {
		t.Fatalf("activate upsert failed: %v", err)
	}
	product.IsActive = false
	if err := repo.Upsert(product); err != nil {
		t.Fatalf("deactivate upsert failed: %v", err)
	}
	if active, _ := repo.GetByID("cake", true); active != nil {
		t.Fatalf("deactivated product should be hidden from active lookups")
	}
}
