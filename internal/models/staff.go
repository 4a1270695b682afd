package models

import (
	"time"

	"github.com/lib/pq"
)

type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name       string `gorm:"size:100;not null" json:"name"`
	Title      string `gorm:"size:100" json:"title"`
	Experience string `gorm:"size:100" json:"experience"`
	ImageURL   string `gorm:"size:255" json:"image_url"`

	Specialties pq.StringArray `gorm:"type:text[]" json:"specialties"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}
