package models

import (
	"encoding/json"
	"testing"
)

func TestProductUnmarshalDefaultsActive(t *testing.T) {
	var product Product
	if err := json.Unmarshal([]byte(`{"id":"cake","name":"Cake","price":"9.00"}`), &product); err != nil {
		t.Fatalf("unmarshal product failed: %v", err)
	}
	if !product.IsActive {
		t.Fatalf("product without is_active should default to active")
	}
	if product.PriceAmount.String() != "9.00" {
		t.Fatalf("price want 9.00 got %s", product.PriceAmount.String())
	}
}

func TestProductUnmarshalKeepsInactive(t *testing.T) {
	var products []Product
	if err := json.Unmarshal([]byte(`[{"id":"cake","name":"Cake","is_active":false}]`), &products); err != nil {
		t.Fatalf("unmarshal products failed: %v", err)
	}
	if len(products) != 1 || products[0].IsActive {
		t.Fatalf("explicit is_active=false should be kept, got %+v", products)
	}
}
