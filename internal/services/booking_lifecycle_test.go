package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldash/hotel-dashboard/internal/models"
	"github.com/hoteldash/hotel-dashboard/internal/services"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func availableRoom() models.Room {
	return models.Room{
		ID:          "room-1",
		Number:      "101",
		Type:        models.RoomTypeStandard,
		Floor:       1,
		Beds:        1,
		IsAvailable: true,
		Price:       100,
	}
}

func TestLifecycle_Reserve(t *testing.T) {
	lc := &services.Lifecycle{PlaceholderGuest: "Guest"}

	next, err := lc.Reserve(availableRoom(), "Ali", date(2024, 1, 1), date(2024, 1, 3))

	require.NoError(t, err)
	assert.False(t, next.IsAvailable)

	booking := next.CurrentBooking()
	require.NotNil(t, booking)
	assert.Equal(t, "Ali", booking.GuestName)
	assert.Equal(t, "room-1", booking.RoomID)
	assert.Equal(t, date(2024, 1, 1), booking.StartDate)
	assert.Equal(t, date(2024, 1, 3), booking.EndDate)
	assert.NotEmpty(t, booking.ID)
}

func TestLifecycle_Reserve_EmptyGuestName(t *testing.T) {
	lc := &services.Lifecycle{PlaceholderGuest: "Guest"}

	for _, name := range []string{"", "   "} {
		next, err := lc.Reserve(availableRoom(), name, date(2024, 1, 1), date(2024, 1, 3))

		require.NoError(t, err)
		require.NotNil(t, next.CurrentBooking())
		assert.Equal(t, "Guest", next.CurrentBooking().GuestName)
	}
}

func TestLifecycle_Reserve_BookedRoom(t *testing.T) {
	lc := &services.Lifecycle{PlaceholderGuest: "Guest"}

	booked, err := lc.Reserve(availableRoom(), "Ali", date(2024, 1, 1), date(2024, 1, 3))
	require.NoError(t, err)

	// No direct Booked to Booked transition: release first.
	_, err = lc.Reserve(booked, "Sara", date(2024, 2, 1), date(2024, 2, 3))
	assert.ErrorIs(t, err, models.ErrRoomBooked)
}

func TestLifecycle_Reserve_DoesNotMutateInput(t *testing.T) {
	lc := &services.Lifecycle{PlaceholderGuest: "Guest"}
	room := availableRoom()

	_, err := lc.Reserve(room, "Ali", date(2024, 1, 1), date(2024, 1, 3))

	require.NoError(t, err)
	assert.True(t, room.IsAvailable)
	assert.Empty(t, room.Bookings)
}

func TestLifecycle_Release(t *testing.T) {
	lc := &services.Lifecycle{PlaceholderGuest: "Guest"}

	booked, err := lc.Reserve(availableRoom(), "Ali", date(2024, 1, 1), date(2024, 1, 3))
	require.NoError(t, err)

	released := lc.Release(booked)

	assert.True(t, released.IsAvailable)
	assert.Nil(t, released.CurrentBooking())
	// History survives the release.
	require.Len(t, released.Bookings, 1)
	assert.Equal(t, "Ali", released.Bookings[0].GuestName)
}

func TestLifecycle_Release_Idempotent(t *testing.T) {
	lc := &services.Lifecycle{PlaceholderGuest: "Guest"}
	room := availableRoom()

	released := lc.Release(room)

	assert.Equal(t, room, released)
	assert.True(t, released.IsAvailable)
	assert.Nil(t, released.CurrentBooking())
}

func TestLifecycle_ReserveAgainAfterRelease(t *testing.T) {
	lc := &services.Lifecycle{PlaceholderGuest: "Guest"}

	first, err := lc.Reserve(availableRoom(), "Ali", date(2024, 1, 1), date(2024, 1, 3))
	require.NoError(t, err)

	second, err := lc.Reserve(lc.Release(first), "Sara", date(2024, 2, 1), date(2024, 2, 5))
	require.NoError(t, err)

	require.Len(t, second.Bookings, 2)
	assert.Equal(t, "Sara", second.CurrentBooking().GuestName)
	// Booking ids stay unique within the room's history.
	assert.NotEqual(t, second.Bookings[0].ID, second.Bookings[1].ID)
}
