package models

import "time"

// LostItem defines the found-item model based on the 'items' table.
// PickupTime is free text as entered by staff; listings order by it
// lexically, matching how the records have always been kept.
type LostItem struct {
	ID          int64        `json:"id" db:"id" example:"1"`
	Name        string       `json:"name" db:"name" example:"black wallet"`
	Description string       `json:"description" db:"description"`
	PickupTime  string       `json:"pickupTime" db:"pickup_time" example:"2026-03-01 14:00"`
	Location    string       `json:"location" db:"location" example:"library 2F"`
	Status      ReviewStatus `json:"status" db:"status" example:"pending"`
	ImageRef    string       `json:"imageRef" db:"image_ref" example:"uploads/3f2a.jpg"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
}
