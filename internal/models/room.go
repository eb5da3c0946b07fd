package models

import (
	"time"
)

type RoomType string

const (
	RoomTypeStandard RoomType = "STANDARD"
	RoomTypeVIP      RoomType = "VIP"
	RoomTypeSuite    RoomType = "SUITE"
)

// RoomTypes returns every room type in the order the add-room form
// presents them.
func RoomTypes() []RoomType {
	return []RoomType{RoomTypeStandard, RoomTypeVIP, RoomTypeSuite}
}

type Room struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	Type        RoomType  `json:"type"`
	Floor       int       `json:"floor"`
	Beds        int       `json:"beds"`
	IsAvailable bool      `json:"is_available"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Bookings    []Booking `json:"bookings,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CurrentBooking returns the booking the room is currently held under,
// or nil when the room is available. Bookings is an append-only history,
// so the active booking is always the most recent entry.
func (r *Room) CurrentBooking() *Booking {
	if r.IsAvailable || len(r.Bookings) == 0 {
		return nil
	}
	return &r.Bookings[len(r.Bookings)-1]
}

// RoomDraft carries the add-room form fields before an ID is assigned.
type RoomDraft struct {
	Number      string   `validate:"required"`
	Type        RoomType `validate:"required,oneof=STANDARD VIP SUITE"`
	Floor       int      `validate:"gte=0"`
	Beds        int      `validate:"gte=1"`
	IsAvailable bool
	Price       float64 `validate:"gte=0"`
	Description string
}
