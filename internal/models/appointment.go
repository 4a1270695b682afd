package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StaffID uint  `json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	AppointmentDate time.Time `json:"appointment_date"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	TotalAmount       decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	DownPaymentAmount *decimal.Decimal `gorm:"type:decimal(10,2)" json:"down_payment_amount"`
	DownPaymentPaid   bool             `gorm:"default:false" json:"down_payment_paid"`
	RemainingAmount   decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"remaining_amount"`

	PaymentReference *string `gorm:"size:255" json:"payment_reference"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
