package services

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/hoteldash/hotel-dashboard/internal/models"
)

const bookingIDLength = 12

// Lifecycle computes room state transitions. Its methods never mutate
// the room they are given; they return the next room value, which the
// caller stores.
type Lifecycle struct {
	// PlaceholderGuest is substituted when a reservation arrives with an
	// empty guest name.
	PlaceholderGuest string
}

// Reserve moves an available room to booked under a fresh booking.
// Booked rooms cannot be re-reserved; changing an active booking's
// dates requires a release first.
func (lc *Lifecycle) Reserve(room models.Room, guestName string, start, end time.Time) (models.Room, error) {
	if !room.IsAvailable {
		return models.Room{}, fmt.Errorf("reserve room %s: %w", room.Number, models.ErrRoomBooked)
	}

	bookingID, err := gonanoid.New(bookingIDLength)
	if err != nil {
		return models.Room{}, fmt.Errorf("generate booking id: %w", err)
	}

	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		guestName = lc.PlaceholderGuest
	}

	booking := models.Booking{
		ID:        bookingID,
		RoomID:    room.ID,
		GuestName: guestName,
		StartDate: start,
		EndDate:   end,
		CreatedAt: time.Now(),
	}

	// Copy the history so the stored room and the returned room never
	// share a backing array.
	history := make([]models.Booking, len(room.Bookings), len(room.Bookings)+1)
	copy(history, room.Bookings)

	room.Bookings = append(history, booking)
	room.IsAvailable = false

	return room, nil
}

// Release moves a booked room back to available. The booking history is
// kept; only the availability flag changes, which is what makes the most
// recent entry stop counting as active. Releasing an already available
// room is a no-op.
func (lc *Lifecycle) Release(room models.Room) models.Room {
	room.IsAvailable = true

	return room
}
