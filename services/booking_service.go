package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hotel-reservation/models"
	"hotel-reservation/store"
	"hotel-reservation/utils"
)

// BookingService is the reservation ledger: it enforces booking validity,
// computes cost, applies payment and tracks loyalty points. Booking and
// modification are the same operation; modifying is booking again under a
// guest name that already holds a reservation.
type BookingService struct {
	Store          *store.Store
	LoyaltyPerStay int

	validate *validator.Validate
}

func NewBookingService(st *store.Store, loyaltyPerStay int) *BookingService {
	return &BookingService{
		Store:          st,
		LoyaltyPerStay: loyaltyPerStay,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

func invalidInput(reason string) error {
	return fmt.Errorf("%w: %s", store.ErrInvalidInput, reason)
}

// failedFields trims the request and runs struct-tag validation, returning
// the set of broken fields. The caller reports them in the order the
// original form checked its inputs: name, room, dates, cash.
func (s *BookingService) failedFields(req *models.BookingRequest) (map[string]bool, error) {
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.RoomNumber = strings.TrimSpace(req.RoomNumber)

	err := s.validate.Struct(req)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, invalidInput(err.Error())
	}
	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.Field()] = true
	}
	return failed, nil
}

// Quote computes nights and total cost for a prospective stay without
// touching any state. The front desk shows this as the amount due before
// asking for cash.
func (s *BookingService) Quote(roomNumber, checkIn, checkOut string) (models.QuoteResult, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return models.QuoteResult{}, invalidInput("room required")
	}
	room, err := s.Store.Room(roomNumber)
	if err != nil {
		return models.QuoteResult{}, err
	}

	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return models.QuoteResult{}, invalidInput("invalid date range")
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return models.QuoteResult{}, invalidInput("invalid date range")
	}
	nights := utils.Nights(in, out)
	if nights <= 0 {
		return models.QuoteResult{}, invalidInput("invalid date range")
	}

	return models.QuoteResult{
		RoomNumber: room.Number,
		RoomType:   room.Type,
		Nights:     nights,
		TotalCost:  nights * room.PricePerNight,
	}, nil
}

// BookOrModify runs the whole booking in one call: validation, cost,
// payment, then the mutation. Every check is a hard stop that leaves all
// state untouched. On success the room is consumed, the guest's
// reservation is created or overwritten, and the loyalty counter grows by
// the configured rate.
func (s *BookingService) BookOrModify(req models.BookingRequest) (models.BookingResult, error) {
	failed, err := s.failedFields(&req)
	if err != nil {
		return models.BookingResult{}, err
	}
	if failed["GuestName"] {
		return models.BookingResult{}, invalidInput("name required")
	}
	if failed["RoomNumber"] {
		return models.BookingResult{}, invalidInput("room required")
	}
	if _, err := s.Store.Room(req.RoomNumber); err != nil {
		return models.BookingResult{}, err
	}
	if failed["CheckIn"] || failed["CheckOut"] {
		return models.BookingResult{}, invalidInput("invalid date range")
	}
	if failed["CashTendered"] {
		return models.BookingResult{}, invalidInput("invalid cash amount")
	}

	in, _ := utils.ParseDate(req.CheckIn)
	out, _ := utils.ParseDate(req.CheckOut)
	nights := utils.Nights(in, out)
	if nights <= 0 {
		return models.BookingResult{}, invalidInput("invalid date range")
	}

	res, change, err := s.Store.ApplyBooking(store.BookingUpdate{
		GuestName:     req.GuestName,
		RoomNumber:    req.RoomNumber,
		CheckIn:       in,
		CheckOut:      out,
		Nights:        nights,
		CashTendered:  req.CashTendered,
		PointsEarned:  s.LoyaltyPerStay,
		ReferenceCode: utils.NewReferenceCode(),
	})
	if err != nil {
		return models.BookingResult{}, err
	}

	return models.BookingResult{
		Reservation:  res,
		Nights:       nights,
		TotalCost:    res.TotalCost,
		Change:       change,
		PointsEarned: s.LoyaltyPerStay,
	}, nil
}

// CancelBooking removes the guest's reservation entirely. Loyalty points
// go with it; the room is not released (see store.CancelReservation).
func (s *BookingService) CancelBooking(guestName string) (models.CancelResult, error) {
	res, err := s.Store.CancelReservation(strings.TrimSpace(guestName))
	if err != nil {
		return models.CancelResult{}, err
	}
	return models.CancelResult{Reservation: res}, nil
}

// ListBookings returns every current reservation sorted by guest name
// ascending; an empty ledger gives an empty slice, not an error.
func (s *BookingService) ListBookings() []models.Reservation {
	return s.Store.Reservations()
}

// Reservation returns a guest's current reservation.
func (s *BookingService) Reservation(guestName string) (models.Reservation, error) {
	return s.Store.Reservation(strings.TrimSpace(guestName))
}

// LoyaltyPoints returns the guest's accumulated points.
func (s *BookingService) LoyaltyPoints(guestName string) (int, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return 0, invalidInput("name required")
	}
	res, err := s.Store.Reservation(guestName)
	if err != nil {
		return 0, err
	}
	return res.LoyaltyPoints, nil
}
