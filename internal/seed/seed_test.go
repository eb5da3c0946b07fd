package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldash/hotel-dashboard/internal/notify"
	"github.com/hoteldash/hotel-dashboard/internal/repositories"
	"github.com/hoteldash/hotel-dashboard/internal/seed"
	"github.com/hoteldash/hotel-dashboard/internal/services"
)

func TestUp(t *testing.T) {
	svc := services.NewRoomService(repositories.NewRoomRepository(), notify.NewHub(), "Guest")

	require.NoError(t, seed.Up(svc))

	rooms := svc.ListRooms()
	require.NotEmpty(t, rooms)

	numbers := make(map[string]bool)
	for _, room := range rooms {
		assert.True(t, room.IsAvailable, "seeded rooms start available")
		assert.Empty(t, room.Bookings)
		assert.False(t, numbers[room.Number], "room number %s seeded twice", room.Number)
		numbers[room.Number] = true
	}
}
