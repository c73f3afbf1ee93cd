package models

import "time"

// Reservation is a guest's single active booking. The guest name is the
// key: booking again under the same name overwrites room, dates and cost
// while the loyalty counter keeps accumulating.
type Reservation struct {
	GuestName     string    `json:"guestName"`
	RoomNumber    string    `json:"roomNumber"`
	ReferenceCode string    `json:"referenceCode"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Nights        int       `json:"nights"`
	TotalCost     int       `json:"totalCost"`
	LoyaltyPoints int       `json:"loyaltyPoints"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingRequest carries every input of a booking or modification in one
// shot, including the cash handed over at the payment step. Dates are the
// raw YYYY-MM-DD strings as entered.
type BookingRequest struct {
	GuestName    string  `json:"guestName" validate:"required"`
	RoomNumber   string  `json:"roomNumber" validate:"required"`
	CheckIn      string  `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut     string  `json:"checkOut" validate:"required,datetime=2006-01-02"`
	CashTendered float64 `json:"cashTendered" validate:"gte=0"`
}

// QuoteResult is the read-only answer to "how much would this stay cost",
// shown as the amount due before cash is collected.
type QuoteResult struct {
	RoomNumber string   `json:"roomNumber"`
	RoomType   RoomType `json:"roomType"`
	Nights     int      `json:"nights"`
	TotalCost  int      `json:"totalCost"`
}

// BookingResult reports a successful booking or modification.
type BookingResult struct {
	Reservation  Reservation `json:"reservation"`
	Nights       int         `json:"nights"`
	TotalCost    int         `json:"totalCost"`
	Change       float64     `json:"change"`
	PointsEarned int         `json:"pointsEarned"`
}

// CancelResult reports a successful cancellation; Reservation is the
// state that was removed.
type CancelResult struct {
	Reservation Reservation `json:"reservation"`
}
