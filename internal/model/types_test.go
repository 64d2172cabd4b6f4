package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestProductValidate(t *testing.T) {
	cases := []struct {
		name string
		p    Product
		ok   bool
	}{
		{"valid", Product{ID: 1, Name: "Basmati Rice", Category: "Rice", Price: 85, Stock: 100}, true},
		{"zero_price_ok", Product{ID: 3, Name: "Sample", Price: 0, Stock: 0}, true},
		{"zero_id", Product{ID: 0, Name: "x"}, false},
		{"missing_name", Product{ID: 4}, false},
		{"negative_price", Product{ID: 5, Name: "x", Price: -1}, false},
		{"negative_stock", Product{ID: 6, Name: "x", Stock: -1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestProductJSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Product{ID: 2, Name: "Sunflower Oil", Category: "Oil", Price: 180, Stock: 50})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":2,"name":"Sunflower Oil","category":"Oil","price":180,"stock":50}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}

func TestSaleValidate(t *testing.T) {
	when := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ok := Sale{ID: 1, ProductID: 1, Quantity: 2, Amount: decimal.RequireFromString("170.00"), SaleDate: when}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []Sale{
		{ID: 2, ProductID: 1, Quantity: 0, Amount: decimal.NewFromInt(1), SaleDate: when},
		{ID: 3, ProductID: 1, Quantity: 1, Amount: decimal.NewFromInt(-1), SaleDate: when},
		{ID: 4, ProductID: 1, Quantity: 1, Amount: decimal.NewFromInt(1)},
	}
	for _, s := range bad {
		if err := s.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("sale %d: expected ErrInvalid, got %v", s.ID, err)
		}
	}
}

func TestSaleDecodeAcceptsNumericAmount(t *testing.T) {
	var s Sale
	body := `{"id":7,"product_id":2,"quantity":3,"amount":540.0,"sale_date":"2024-03-01T10:00:00Z"}`
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !s.Amount.Equal(decimal.NewFromInt(540)) {
		t.Fatalf("amount: got %s", s.Amount)
	}
	if got := s.UnitPrice(); !got.Equal(decimal.NewFromInt(180)) {
		t.Fatalf("unit price: got %s", got)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
