// Package store owns the in-memory catalog and ledger state. The sentinel
// errors below are shared across layers so that the services and the
// console can distinguish failure cases with errors.Is instead of matching
// message strings.
package store

import "errors"

// ErrInvalidInput is returned (wrapped with a reason) when a request fails
// validation before any state is touched.
var ErrInvalidInput = errors.New("invalid input")

// ErrRoomNotFound is returned when a room number is not part of the fixed
// seed catalog.
var ErrRoomNotFound = errors.New("room not found")

// ErrInsufficientPayment is returned when the cash tendered does not cover
// the total cost. Nothing is mutated in that case.
var ErrInsufficientPayment = errors.New("insufficient payment")

// ErrReservationNotFound is returned when an operation needs an existing
// reservation for a guest name and none exists.
var ErrReservationNotFound = errors.New("reservation not found")
