package services

import (
	"hotel-reservation/models"
	"hotel-reservation/store"
)

// RoomService exposes the room catalog: the fixed inventory and its live
// availability.
type RoomService struct {
	Store *store.Store
}

func NewRoomService(st *store.Store) *RoomService {
	return &RoomService{Store: st}
}

// GetAll returns the whole catalog in seed order, availability included.
func (s *RoomService) GetAll() []models.Room {
	return s.Store.Rooms()
}

// ListAvailable returns the rooms still open for booking, in seed order.
func (s *RoomService) ListAvailable() []models.Room {
	return s.Store.AvailableRooms()
}

// Get looks a room up by number; store.ErrRoomNotFound when the number is
// not part of the seed set.
func (s *RoomService) Get(number string) (models.Room, error) {
	return s.Store.Room(number)
}

// SetAvailable flips a room's availability flag.
func (s *RoomService) SetAvailable(number string, available bool) error {
	return s.Store.SetRoomAvailable(number, available)
}
