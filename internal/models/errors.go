package models

import "errors"

// ErrRoomNotFound is returned when an update or lookup targets a room
// ID that is not in the store.
var ErrRoomNotFound = errors.New("room not found")

// ErrValidation is returned when a room draft fails field validation.
// The submitting form should stay open and show the detail.
var ErrValidation = errors.New("validation error")

// ErrRoomBooked is returned when a reservation is requested for a room
// that already holds an active booking. The room must be released first.
var ErrRoomBooked = errors.New("room is already booked")
