// Package repository defines error types that are reused across multiple
// repositories. Handlers and the booking service match on these with
// errors.Is to pick a response.
package repository

import "errors"

// ErrResortNotFound is returned when a resort id does not exist.
var ErrResortNotFound = errors.New("resort not found")

// ErrRoomNotFound is returned when a room id does not exist.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking id does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrConflict is returned when an insert collides with an existing row,
// e.g. a booking id generated twice.
var ErrConflict = errors.New("conflict")
