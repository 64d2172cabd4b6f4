// Package model defines domain types used by the services.
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid")

// Product is an inventory catalog entry.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

// Validate reports whether p can be placed in a catalog.
func (p Product) Validate() error {
	switch {
	case p.ID <= 0:
		return fmt.Errorf("product id %d: %w", p.ID, ErrInvalid)
	case p.Name == "":
		return fmt.Errorf("product %d: name is required: %w", p.ID, ErrInvalid)
	case p.Price < 0:
		return fmt.Errorf("product %d: price must be >= 0: %w", p.ID, ErrInvalid)
	case p.Stock < 0:
		return fmt.Errorf("product %d: stock must be >= 0: %w", p.ID, ErrInvalid)
	}
	return nil
}

// Sale represents a sales transaction against a product.
//
// No endpoint exposes it yet and ProductID is not checked against any catalog.
type Sale struct {
	ID        int             `json:"id"`
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	SaleDate  time.Time       `json:"sale_date"`
}

// Validate checks the fields of s that can be checked without a catalog.
func (s Sale) Validate() error {
	switch {
	case s.Quantity <= 0:
		return fmt.Errorf("sale %d: quantity must be > 0: %w", s.ID, ErrInvalid)
	case s.Amount.IsNegative():
		return fmt.Errorf("sale %d: amount must be >= 0: %w", s.ID, ErrInvalid)
	case s.SaleDate.IsZero():
		return fmt.Errorf("sale %d: sale_date is required: %w", s.ID, ErrInvalid)
	}
	return nil
}

// UnitPrice is Amount divided by Quantity, rounded to two places.
func (s Sale) UnitPrice() decimal.Decimal {
	if s.Quantity == 0 {
		return decimal.Zero
	}
	return s.Amount.Div(decimal.NewFromInt(int64(s.Quantity))).Round(2)
}
