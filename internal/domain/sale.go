package domain

import "time"

// PaymentMethod covers both till payments and customer-order payments.
type PaymentMethod string

const (
	PayCash  PaymentMethod = "cash"
	PayCard  PaymentMethod = "card"
	PayPix   PaymentMethod = "pix"
	PayMpesa PaymentMethod = "mpesa"
	PayEmola PaymentMethod = "emola"
	PayPOS   PaymentMethod = "pos"
	PayBank  PaymentMethod = "bank"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayCard, PayPix, PayMpesa, PayEmola, PayPOS, PayBank:
		return true
	}
	return false
}

// Sale is a completed POS transaction. Sales are append-only: stock is
// decremented once when the sale is created and the row never changes.
type Sale struct {
	ID             string        `json:"id"`
	UserID         string        `json:"userId"`
	Total          float64       `json:"total"`
	AmountReceived *float64      `json:"amountReceived"`
	Change         *float64      `json:"change"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	Items          []CartItem    `json:"items"`
	CreatedAt      time.Time     `json:"createdAt"`
}
