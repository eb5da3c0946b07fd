package models

import (
	"time"
)

type Booking struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	GuestName string    `json:"guest_name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Nights returns the length of the stay in whole nights. The dashboard
// shows it next to the per-night rate; end dates before the start date
// are not rejected anywhere, so this can go negative.
func (b *Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}
