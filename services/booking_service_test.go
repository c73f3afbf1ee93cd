package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation/config"
	"hotel-reservation/models"
	"hotel-reservation/store"
)

func newBookingService() *BookingService {
	return NewBookingService(store.New(config.SeedRooms()), 30)
}

func request(guest, room, checkIn, checkOut string, cash float64) models.BookingRequest {
	return models.BookingRequest{
		GuestName:    guest,
		RoomNumber:   room,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		CashTendered: cash,
	}
}

func TestBookOrModifyValidation(t *testing.T) {
	svc := newBookingService()

	cases := []struct {
		name   string
		req    models.BookingRequest
		reason string
	}{
		{"empty name", request("", "101", "2024-01-01", "2024-01-03", 15000), "name required"},
		{"whitespace name", request("   ", "101", "2024-01-01", "2024-01-03", 15000), "name required"},
		{"empty room", request("Doe, Jane", "", "2024-01-01", "2024-01-03", 15000), "room required"},
		{"malformed check-in", request("Doe, Jane", "101", "01/01/2024", "2024-01-03", 15000), "invalid date range"},
		{"malformed check-out", request("Doe, Jane", "101", "2024-01-01", "soon", 15000), "invalid date range"},
		{"same-day stay", request("Doe, Jane", "101", "2024-01-01", "2024-01-01", 15000), "invalid date range"},
		{"inverted range", request("Doe, Jane", "101", "2024-01-03", "2024-01-01", 15000), "invalid date range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.BookOrModify(tc.req)
			assert.ErrorIs(t, err, store.ErrInvalidInput)
			assert.Contains(t, err.Error(), tc.reason)
		})
	}

	// none of the rejected requests touched the ledger or the catalog
	assert.Empty(t, svc.ListBookings())
	assert.Len(t, svc.Store.AvailableRooms(), len(config.SeedRooms()))
}

func TestBookOrModifyUnknownRoom(t *testing.T) {
	svc := newBookingService()

	_, err := svc.BookOrModify(request("Doe, Jane", "110", "2024-01-01", "2024-01-03", 15000))
	assert.ErrorIs(t, err, store.ErrRoomNotFound)

	// room resolution comes before the date-range check
	_, err = svc.BookOrModify(request("Doe, Jane", "110", "2024-01-03", "2024-01-01", 15000))
	assert.ErrorIs(t, err, store.ErrRoomNotFound)
	assert.Empty(t, svc.ListBookings())
}

func TestBookOrModifyInsufficientPayment(t *testing.T) {
	svc := newBookingService()

	_, err := svc.BookOrModify(request("Doe, Jane", "101", "2024-01-01", "2024-01-03", 11599))
	assert.ErrorIs(t, err, store.ErrInsufficientPayment)

	room, roomErr := svc.Store.Room("101")
	require.NoError(t, roomErr)
	assert.True(t, room.Available)
	assert.Empty(t, svc.ListBookings())
}

// The worked example: room 101 at 5800/night, two nights, 15000 tendered,
// then a one-night modification to suite 103 at 17400 with 20000 tendered.
func TestBookThenModifyScenario(t *testing.T) {
	svc := newBookingService()

	first, err := svc.BookOrModify(request("Doe, Jane", "101", "2024-01-01", "2024-01-03", 15000))
	require.NoError(t, err)
	assert.Equal(t, 2, first.Nights)
	assert.Equal(t, 11600, first.TotalCost)
	assert.InDelta(t, 3400, first.Change, 0.001)
	assert.Equal(t, 30, first.PointsEarned)
	assert.Equal(t, 30, first.Reservation.LoyaltyPoints)

	room, err := svc.Store.Room("101")
	require.NoError(t, err)
	assert.False(t, room.Available)

	second, err := svc.BookOrModify(request("Doe, Jane", "103", "2024-02-10", "2024-02-11", 20000))
	require.NoError(t, err)
	assert.Equal(t, 1, second.Nights)
	assert.Equal(t, 17400, second.TotalCost)
	assert.InDelta(t, 2600, second.Change, 0.001)
	assert.Equal(t, 60, second.Reservation.LoyaltyPoints)
	assert.Equal(t, "103", second.Reservation.RoomNumber)
	assert.NotEqual(t, first.Reservation.ReferenceCode, second.Reservation.ReferenceCode)

	// only the latest state is retained
	all := svc.ListBookings()
	require.Len(t, all, 1)
	assert.Equal(t, "103", all[0].RoomNumber)
	assert.Equal(t, 17400, all[0].TotalCost)
}

func TestBookOrModifyTrimsGuestName(t *testing.T) {
	svc := newBookingService()

	result, err := svc.BookOrModify(request("  Doe, Jane  ", "101", "2024-01-01", "2024-01-02", 6000))
	require.NoError(t, err)
	assert.Equal(t, "Doe, Jane", result.Reservation.GuestName)

	points, err := svc.LoyaltyPoints("Doe, Jane")
	require.NoError(t, err)
	assert.Equal(t, 30, points)
}

func TestQuote(t *testing.T) {
	svc := newBookingService()

	quote, err := svc.Quote("101", "2024-01-01", "2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, 11600, quote.TotalCost)
	assert.Equal(t, models.Single, quote.RoomType)

	_, err = svc.Quote("999", "2024-01-01", "2024-01-03")
	assert.ErrorIs(t, err, store.ErrRoomNotFound)

	_, err = svc.Quote("", "2024-01-01", "2024-01-03")
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = svc.Quote("101", "2024-01-03", "2024-01-01")
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	// quoting never consumes the room
	room, err := svc.Store.Room("101")
	require.NoError(t, err)
	assert.True(t, room.Available)
}

func TestCancelBooking(t *testing.T) {
	svc := newBookingService()

	_, err := svc.BookOrModify(request("Doe, Jane", "101", "2024-01-01", "2024-01-03", 15000))
	require.NoError(t, err)

	result, err := svc.CancelBooking("Doe, Jane")
	require.NoError(t, err)
	assert.Equal(t, "101", result.Reservation.RoomNumber)

	_, err = svc.LoyaltyPoints("Doe, Jane")
	assert.ErrorIs(t, err, store.ErrReservationNotFound)

	_, err = svc.CancelBooking("Doe, Jane")
	assert.ErrorIs(t, err, store.ErrReservationNotFound)
}

func TestLoyaltyPoints(t *testing.T) {
	svc := newBookingService()

	_, err := svc.LoyaltyPoints("")
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = svc.LoyaltyPoints("Nobody")
	assert.ErrorIs(t, err, store.ErrReservationNotFound)

	_, err = svc.BookOrModify(request("Doe, Jane", "101", "2024-01-01", "2024-01-03", 15000))
	require.NoError(t, err)

	points, err := svc.LoyaltyPoints("  Doe, Jane ")
	require.NoError(t, err)
	assert.Equal(t, 30, points)
}

func TestListBookingsOrderedByName(t *testing.T) {
	svc := newBookingService()

	for _, guest := range []string{"Reyes, Ana", "Cruz, Ben", "Doe, Jane"} {
		_, err := svc.BookOrModify(request(guest, "102", "2024-01-01", "2024-01-02", 10000))
		require.NoError(t, err)
	}

	all := svc.ListBookings()
	require.Len(t, all, 3)
	assert.Equal(t, "Cruz, Ben", all[0].GuestName)
	assert.Equal(t, "Doe, Jane", all[1].GuestName)
	assert.Equal(t, "Reyes, Ana", all[2].GuestName)
}

func TestConfigurableLoyaltyRate(t *testing.T) {
	svc := NewBookingService(store.New(config.SeedRooms()), 50)

	result, err := svc.BookOrModify(request("Doe, Jane", "101", "2024-01-01", "2024-01-02", 6000))
	require.NoError(t, err)
	assert.Equal(t, 50, result.PointsEarned)
	assert.Equal(t, 50, result.Reservation.LoyaltyPoints)
}
