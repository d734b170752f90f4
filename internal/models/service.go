package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string  `gorm:"size:100;not null" json:"title"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
