package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hoteldash/hotel-dashboard/internal/models"
)

type RoomRepository interface {
	Add(draft models.RoomDraft) (models.Room, error)
	Update(room models.Room) error
	FindByID(id string) (models.Room, error)
	List() []models.Room
}

// roomRepo keeps the session's rooms in insertion order. The slice is
// the source of truth for ordering; the index map only resolves IDs to
// positions.
type roomRepo struct {
	mu    sync.RWMutex
	rooms []models.Room
	index map[string]int
}

func NewRoomRepository() RoomRepository {
	return &roomRepo{
		index: make(map[string]int),
	}
}

func (r *roomRepo) Add(draft models.RoomDraft) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	room := models.Room{
		ID:          uuid.New().String(),
		Number:      draft.Number,
		Type:        draft.Type,
		Floor:       draft.Floor,
		Beds:        draft.Beds,
		IsAvailable: draft.IsAvailable,
		Price:       draft.Price,
		Description: draft.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.index[room.ID] = len(r.rooms)
	r.rooms = append(r.rooms, room)

	return room, nil
}

func (r *roomRepo) Update(room models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[room.ID]
	if !ok {
		return fmt.Errorf("update room %s: %w", room.ID, models.ErrRoomNotFound)
	}

	room.CreatedAt = r.rooms[pos].CreatedAt
	room.UpdatedAt = time.Now()
	r.rooms[pos] = room

	return nil
}

func (r *roomRepo) FindByID(id string) (models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return models.Room{}, fmt.Errorf("find room %s: %w", id, models.ErrRoomNotFound)
	}

	return r.rooms[pos], nil
}

// List returns the rooms in insertion order. The returned slice is a
// copy; callers can hold it across later updates.
func (r *roomRepo) List() []models.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Room, len(r.rooms))
	copy(out, r.rooms)

	return out
}
