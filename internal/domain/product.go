package domain

import "time"

// Unit is how a product is measured at the till. Weighable products (kg/g)
// carry fractional stock and quantities.
type Unit string

const (
	UnitPiece Unit = "un"
	UnitKilo  Unit = "kg"
	UnitGram  Unit = "g"
	UnitPack  Unit = "pack"
	UnitBox   Unit = "box"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitPiece, UnitKilo, UnitGram, UnitPack, UnitBox:
		return true
	}
	return false
}

// Weighable reports whether the product is sold by weight.
func (u Unit) Weighable() bool {
	return u == UnitKilo || u == UnitGram
}

type Product struct {
	ID         string    `json:"id"`
	SKU        string    `json:"sku"`
	Name       string    `json:"name"`
	CategoryID *string   `json:"categoryId"`
	Price      float64   `json:"price"`
	CostPrice  float64   `json:"costPrice"`
	Stock      float64   `json:"stock"`
	MinStock   float64   `json:"minStock"`
	Unit       Unit      `json:"unit"`
	Image      string    `json:"image,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LowStock reports whether stock has fallen to or below the minimum.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
