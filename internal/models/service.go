package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMin int             `json:"duration_min"`
	Category    string          `gorm:"size:50" json:"category"` // "hair" or "nails"

	RequiresDownPayment bool             `gorm:"default:false" json:"requires_down_payment"`
	DownPaymentAmount   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"down_payment_amount"`

	ImageURL string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
