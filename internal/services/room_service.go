package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hoteldash/hotel-dashboard/internal/models"
	"github.com/hoteldash/hotel-dashboard/internal/notify"
	"github.com/hoteldash/hotel-dashboard/internal/repositories"
)

type RoomService interface {
	AddRoom(draft models.RoomDraft) (models.Room, error)
	UpdateRoom(room models.Room) (models.Room, error)
	FindRoom(id string) (models.Room, error)
	ListRooms() []models.Room
	Reserve(roomID, guestName string, start, end time.Time) (models.Room, error)
	Release(roomID string) (models.Room, error)
}

type roomService struct {
	repo      repositories.RoomRepository
	lifecycle *Lifecycle
	validate  *validator.Validate
	notifier  notify.Notifier
}

func NewRoomService(repo repositories.RoomRepository, notifier notify.Notifier, placeholderGuest string) RoomService {
	return &roomService{
		repo:      repo,
		lifecycle: &Lifecycle{PlaceholderGuest: placeholderGuest},
		validate:  validator.New(),
		notifier:  notifier,
	}
}

func (s *roomService) AddRoom(draft models.RoomDraft) (models.Room, error) {
	if err := s.validateDraft(draft); err != nil {
		return models.Room{}, err
	}

	room, err := s.repo.Add(draft)
	if err != nil {
		return models.Room{}, fmt.Errorf("add room: %w", err)
	}

	s.notifier.Notify("Room added", fmt.Sprintf("Room %s is %s", room.Number, statusLabel(room)))

	return room, nil
}

func (s *roomService) UpdateRoom(room models.Room) (models.Room, error) {
	if err := s.repo.Update(room); err != nil {
		return models.Room{}, err
	}

	updated, err := s.repo.FindByID(room.ID)
	if err != nil {
		return models.Room{}, err
	}

	s.notifier.Notify("Room updated", fmt.Sprintf("Room %s is %s", updated.Number, statusLabel(updated)))

	return updated, nil
}

func (s *roomService) FindRoom(id string) (models.Room, error) {
	return s.repo.FindByID(id)
}

func (s *roomService) ListRooms() []models.Room {
	return s.repo.List()
}

func (s *roomService) Reserve(roomID, guestName string, start, end time.Time) (models.Room, error) {
	room, err := s.repo.FindByID(roomID)
	if err != nil {
		return models.Room{}, err
	}

	next, err := s.lifecycle.Reserve(room, guestName, start, end)
	if err != nil {
		return models.Room{}, err
	}

	if err := s.repo.Update(next); err != nil {
		return models.Room{}, err
	}

	booking := next.CurrentBooking()
	s.notifier.Notify("Room booked", fmt.Sprintf("Room %s is booked for %s", next.Number, booking.GuestName))

	return next, nil
}

func (s *roomService) Release(roomID string) (models.Room, error) {
	room, err := s.repo.FindByID(roomID)
	if err != nil {
		return models.Room{}, err
	}

	next := s.lifecycle.Release(room)
	if err := s.repo.Update(next); err != nil {
		return models.Room{}, err
	}

	s.notifier.Notify("Room released", fmt.Sprintf("Room %s is available again", next.Number))

	return next, nil
}

func (s *roomService) validateDraft(draft models.RoomDraft) error {
	err := s.validate.Struct(draft)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", models.ErrValidation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func statusLabel(room models.Room) string {
	if room.IsAvailable {
		return "available"
	}
	return "booked"
}
