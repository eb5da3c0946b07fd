// Package seed loads demo fixtures so the dashboard is not empty on
// first run. Enabled with SEED_DEMO_ROOMS=true; everything here goes
// through the normal service path, nothing is written behind its back.
package seed

import (
	"fmt"
	"log"

	"github.com/hoteldash/hotel-dashboard/internal/models"
	"github.com/hoteldash/hotel-dashboard/internal/services"
)

func demoRooms() []models.RoomDraft {
	return []models.RoomDraft{
		{
			Number:      "101",
			Type:        models.RoomTypeStandard,
			Floor:       1,
			Beds:        1,
			IsAvailable: true,
			Price:       100,
			Description: "Single room overlooking the courtyard",
		},
		{
			Number:      "102",
			Type:        models.RoomTypeStandard,
			Floor:       1,
			Beds:        2,
			IsAvailable: true,
			Price:       140,
			Description: "Twin room near the elevator",
		},
		{
			Number:      "205",
			Type:        models.RoomTypeVIP,
			Floor:       2,
			Beds:        2,
			IsAvailable: true,
			Price:       260,
			Description: "Corner room with balcony",
		},
		{
			Number:      "301",
			Type:        models.RoomTypeSuite,
			Floor:       3,
			Beds:        3,
			IsAvailable: true,
			Price:       480,
			Description: "Two-bedroom suite with sea view",
		},
	}
}

// Up adds the demo rooms through the room service.
func Up(svc services.RoomService) error {
	for _, draft := range demoRooms() {
		room, err := svc.AddRoom(draft)
		if err != nil {
			return fmt.Errorf("seed room %s: %w", draft.Number, err)
		}

		log.Printf("seeded room %s (%s)", room.Number, room.Type)
	}

	return nil
}
