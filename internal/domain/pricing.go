package domain

import "math"

// CartItem is one line of a POS cart or customer order. Quantity is a
// decimal so weighable products can carry fractions of a kilogram;
// PriceAtSale is the unit price snapshotted when the line was added.
type CartItem struct {
	ProductID   string  `json:"productId"`
	Quantity    float64 `json:"quantity"`
	PriceAtSale float64 `json:"priceAtSale"`
}

// DiscountType selects how a checkout discount is interpreted.
type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is applied once at checkout and discarded after the sale.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// Amount converts the discount into currency for the given subtotal.
// A fixed discount is not clamped here; SaleTotal clamps the final total at
// zero instead, matching the checkout behaviour.
func (d Discount) Amount(subtotal float64) float64 {
	switch d.Type {
	case DiscountPercentage:
		return roundCents(subtotal * d.Value / 100)
	case DiscountFixed:
		return roundCents(d.Value)
	default:
		return 0
	}
}

// Subtotal sums priceAtSale × quantity over the cart.
func Subtotal(items []CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.PriceAtSale * it.Quantity
	}
	return roundCents(sum)
}

// SaleTotal is the amount due: max(0, subtotal − discount).
func SaleTotal(subtotal, discountAmount float64) float64 {
	total := subtotal - discountAmount
	if total < 0 {
		return 0
	}
	return roundCents(total)
}

// Change is what the customer gets back on a cash payment:
// max(0, amountReceived − total).
func Change(total, amountReceived float64) float64 {
	change := amountReceived - total
	if change < 0 {
		return 0
	}
	return roundCents(change)
}

// KilosFromGrams converts a weight entered in grams into the kilogram
// quantity stored on the cart line. The unit price stays per kilogram.
func KilosFromGrams(grams float64) float64 {
	return grams / 1000
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
