package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Public reference handed to the customer on admission.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	PhoneNumber  string `gorm:"size:20;not null" json:"phone_number"`

	// Slot start instant. A composite index with status backs the
	// availability lookup at admission time.
	SlotStart time.Time `gorm:"index:idx_bookings_slot_status" json:"slot_start"`
	Status    string    `gorm:"size:20;default:'pending';index:idx_bookings_slot_status" json:"status"`

	// Staff acknowledgment, orthogonal to the primary status.
	Seen bool `gorm:"default:false" json:"seen"`

	SuggestedDate *time.Time `json:"suggested_date"`
	AdminNotes    string     `gorm:"size:255" json:"admin_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
