package store

import (
	"sort"
	"sync"
	"time"

	"hotel-reservation/models"
)

// Store holds the room catalog and the reservation ledger behind a single
// lock. The original flow is read-validate-mutate, so every compound
// operation runs under one critical section; reads hand out copies.
type Store struct {
	mu           sync.RWMutex
	rooms        map[string]*models.Room
	roomOrder    []string
	reservations map[string]*models.Reservation
}

// New builds a Store from the seed catalog. Seed order is preserved for
// listings; duplicate numbers keep the first entry.
func New(seed []models.Room) *Store {
	s := &Store{
		rooms:        make(map[string]*models.Room, len(seed)),
		roomOrder:    make([]string, 0, len(seed)),
		reservations: make(map[string]*models.Reservation),
	}
	for i := range seed {
		room := seed[i]
		if _, ok := s.rooms[room.Number]; ok {
			continue
		}
		s.rooms[room.Number] = &room
		s.roomOrder = append(s.roomOrder, room.Number)
	}
	return s
}

// Rooms returns the whole catalog in seed order.
func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, 0, len(s.roomOrder))
	for _, number := range s.roomOrder {
		out = append(out, *s.rooms[number])
	}
	return out
}

// AvailableRooms returns, in seed order, every room still available.
func (s *Store) AvailableRooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, 0, len(s.roomOrder))
	for _, number := range s.roomOrder {
		if room := s.rooms[number]; room.Available {
			out = append(out, *room)
		}
	}
	return out
}

// Room looks a room up by number.
func (s *Store) Room(number string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[number]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	return *room, nil
}

// SetRoomAvailable flips a room's availability flag.
func (s *Store) SetRoomAvailable(number string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[number]
	if !ok {
		return ErrRoomNotFound
	}
	room.Available = available
	return nil
}

// BookingUpdate carries the validated inputs of a booking or modification
// into the critical section. Policy values (points earned, reference code)
// are decided by the caller.
type BookingUpdate struct {
	GuestName     string
	RoomNumber    string
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int
	CashTendered  float64
	PointsEarned  int
	ReferenceCode string
}

// ApplyBooking runs the state-dependent half of a booking under one lock:
// room lookup, cost and payment check, then the mutation. On success the
// room is consumed, the guest's reservation is created or overwritten (the
// loyalty counter carries over and grows by PointsEarned) and the updated
// reservation plus the change due is returned. On any error nothing is
// mutated.
func (s *Store) ApplyBooking(u BookingUpdate) (models.Reservation, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[u.RoomNumber]
	if !ok {
		return models.Reservation{}, 0, ErrRoomNotFound
	}

	totalCost := u.Nights * room.PricePerNight
	if u.CashTendered < float64(totalCost) {
		return models.Reservation{}, 0, ErrInsufficientPayment
	}
	change := u.CashTendered - float64(totalCost)

	room.Available = false

	now := time.Now()
	res, ok := s.reservations[u.GuestName]
	if !ok {
		res = &models.Reservation{
			GuestName: u.GuestName,
			CreatedAt: now,
		}
		s.reservations[u.GuestName] = res
	}
	res.RoomNumber = u.RoomNumber
	res.ReferenceCode = u.ReferenceCode
	res.CheckIn = u.CheckIn
	res.CheckOut = u.CheckOut
	res.Nights = u.Nights
	res.TotalCost = totalCost
	res.LoyaltyPoints += u.PointsEarned
	res.UpdatedAt = now

	return *res, change, nil
}

// Reservation returns the current reservation for a guest name.
func (s *Store) Reservation(guestName string) (models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.reservations[guestName]
	if !ok {
		return models.Reservation{}, ErrReservationNotFound
	}
	return *res, nil
}

// Reservations returns all current reservations sorted by guest name
// ascending. Empty ledger gives an empty slice.
func (s *Store) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, 0, len(s.reservations))
	for _, res := range s.reservations {
		out = append(out, *res)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GuestName < out[j].GuestName
	})
	return out
}

// CancelReservation removes a guest's reservation entirely, loyalty points
// included, and returns the removed state.
//
// The booked room is left unavailable. That matches the behavior this
// system replaces, where cancelling never freed the room.
// TODO: decide with the product owner whether cancellation should set the
// room back to available.
func (s *Store) CancelReservation(guestName string) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[guestName]
	if !ok {
		return models.Reservation{}, ErrReservationNotFound
	}
	delete(s.reservations, guestName)
	return *res, nil
}
