// Package console is the front-desk session: a menu loop that collects
// input, calls the room and booking services, and renders their results.
// It holds no state of its own; every user action is one synchronous
// service call.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"hotel-reservation/config"
	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/store"
	"hotel-reservation/utils"
)

type Console struct {
	Cfg      config.Config
	Rooms    *services.RoomService
	Bookings *services.BookingService

	in  *bufio.Scanner
	out io.Writer
}

func New(cfg config.Config, rooms *services.RoomService, bookings *services.BookingService, in io.Reader, out io.Writer) *Console {
	return &Console{
		Cfg:      cfg,
		Rooms:    rooms,
		Bookings: bookings,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run drives the session until the user exits or input ends.
func (c *Console) Run() {
	fmt.Fprintf(c.out, "==========================================\n")
	fmt.Fprintf(c.out, "  %s\n", c.Cfg.HotelName)
	fmt.Fprintf(c.out, "==========================================\n")

	for {
		fmt.Fprint(c.out, "\n"+
			" 1) Check room availability\n"+
			" 2) Book a room\n"+
			" 3) View bookings\n"+
			" 4) View loyalty points\n"+
			" 5) Modify reservation\n"+
			" 6) Cancel booking\n"+
			" 0) Exit\n")
		choice, ok := c.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.checkAvailability()
		case "2":
			c.bookRoom()
		case "3":
			c.viewBookings()
		case "4":
			c.viewLoyaltyPoints()
		case "5":
			c.modifyReservation()
		case "6":
			c.cancelBooking()
		case "0", "q", "exit":
			fmt.Fprintln(c.out, "Goodbye.")
			return
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}
	}
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) checkAvailability() {
	defer logAction("availability", time.Now())

	rooms := c.Rooms.ListAvailable()
	if len(rooms) == 0 {
		fmt.Fprintln(c.out, "No rooms available.")
		return
	}
	fmt.Fprintln(c.out, "Available rooms:")
	for _, room := range rooms {
		fmt.Fprintf(c.out, "  Room %s: %s - %s/night\n",
			room.Number, room.Type, utils.FormatMoney(c.Cfg.CurrencySymbol, room.PricePerNight))
	}
}

// printCatalog shows every room with its rate, the way the original room
// picker did, so the guest can choose a number.
func (c *Console) printCatalog() {
	for _, room := range c.Rooms.GetAll() {
		marker := ""
		if !room.Available {
			marker = "  [unavailable]"
		}
		fmt.Fprintf(c.out, "  Room %s - %s (%s/night)%s\n",
			room.Number, room.Type, utils.FormatMoney(c.Cfg.CurrencySymbol, room.PricePerNight), marker)
	}
}

func (c *Console) bookRoom() {
	defer logAction("book", time.Now())

	name, ok := c.prompt("Guest name [Last Name, First Name]: ")
	if !ok {
		return
	}
	if name == "" {
		fmt.Fprintln(c.out, "Please enter your name.")
		return
	}
	c.stayAndPayment(name)
}

func (c *Console) modifyReservation() {
	defer logAction("modify", time.Now())

	name, ok := c.prompt("Guest name [Last Name, First Name]: ")
	if !ok {
		return
	}
	if _, err := c.Bookings.Reservation(name); err != nil {
		fmt.Fprintf(c.out, "No reservation found for %s.\n", name)
		return
	}
	c.stayAndPayment(name)
}

// stayAndPayment is the shared tail of booking and modification: pick a
// room and dates, show the amount due, collect cash, submit. Declining or
// abandoning any prompt leaves everything untouched.
func (c *Console) stayAndPayment(name string) {
	c.printCatalog()
	roomNumber, ok := c.prompt("Room number: ")
	if !ok {
		return
	}
	checkIn, ok := c.prompt("Check-in date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	checkOut, ok := c.prompt("Check-out date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	quote, err := c.Bookings.Quote(roomNumber, checkIn, checkOut)
	if err != nil {
		c.renderError(err)
		return
	}
	fmt.Fprintf(c.out, "Total nights: %d\n", quote.Nights)
	fmt.Fprintf(c.out, "Amount due: %s\n", utils.FormatMoney(c.Cfg.CurrencySymbol, quote.TotalCost))

	answer, ok := c.prompt("Pay now? [y/N]: ")
	if !ok || !strings.EqualFold(answer, "y") {
		fmt.Fprintln(c.out, "Payment cancelled.")
		return
	}
	raw, ok := c.prompt("Enter cash amount: ")
	if !ok || raw == "" {
		fmt.Fprintln(c.out, "Payment cancelled.")
		return
	}
	cash, err := strconv.ParseFloat(raw, 64)
	if err != nil || cash < 0 {
		fmt.Fprintln(c.out, "Invalid cash amount.")
		return
	}

	result, err := c.Bookings.BookOrModify(models.BookingRequest{
		GuestName:    name,
		RoomNumber:   roomNumber,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		CashTendered: cash,
	})
	if err != nil {
		c.renderError(err)
		return
	}
	c.renderBooking(result)
}

func (c *Console) renderBooking(result models.BookingResult) {
	res := result.Reservation
	fmt.Fprintf(c.out, "Payment of %s processed successfully. Change: %s\n",
		utils.FormatMoney(c.Cfg.CurrencySymbol, result.TotalCost),
		utils.FormatCash(c.Cfg.CurrencySymbol, result.Change))
	fmt.Fprintln(c.out, "Booking confirmed:")
	fmt.Fprintf(c.out, "  Guest:      %s\n", res.GuestName)
	fmt.Fprintf(c.out, "  Room:       %s\n", res.RoomNumber)
	fmt.Fprintf(c.out, "  Reference:  %s\n", res.ReferenceCode)
	fmt.Fprintf(c.out, "  Stay:       %s to %s (%d nights)\n",
		utils.FormatDate(res.CheckIn), utils.FormatDate(res.CheckOut), res.Nights)
	fmt.Fprintf(c.out, "  Points earned: %d (total %d)\n", result.PointsEarned, res.LoyaltyPoints)
}

func (c *Console) viewBookings() {
	defer logAction("bookings", time.Now())

	bookings := c.Bookings.ListBookings()
	if len(bookings) == 0 {
		fmt.Fprintln(c.out, "No bookings available.")
		return
	}
	for _, res := range bookings {
		fmt.Fprintf(c.out, "Guest: %s, Room: %s, Check-in: %s, Check-out: %s, Total Cost: %s, Points: %d\n",
			res.GuestName, res.RoomNumber,
			utils.FormatDate(res.CheckIn), utils.FormatDate(res.CheckOut),
			utils.FormatMoney(c.Cfg.CurrencySymbol, res.TotalCost), res.LoyaltyPoints)
	}
}

func (c *Console) viewLoyaltyPoints() {
	defer logAction("loyalty", time.Now())

	name, ok := c.prompt("Guest name [Last Name, First Name]: ")
	if !ok {
		return
	}
	points, err := c.Bookings.LoyaltyPoints(name)
	if err != nil {
		if errors.Is(err, store.ErrReservationNotFound) {
			fmt.Fprintf(c.out, "No loyalty points found for %s.\n", name)
			return
		}
		c.renderError(err)
		return
	}
	fmt.Fprintf(c.out, "%s has %d loyalty points.\n", name, points)
}

func (c *Console) cancelBooking() {
	defer logAction("cancel", time.Now())

	name, ok := c.prompt("Guest name [Last Name, First Name]: ")
	if !ok {
		return
	}
	result, err := c.Bookings.CancelBooking(name)
	if err != nil {
		if errors.Is(err, store.ErrReservationNotFound) {
			fmt.Fprintf(c.out, "No reservation found for %s.\n", name)
			return
		}
		c.renderError(err)
		return
	}
	fmt.Fprintf(c.out, "Reservation for %s has been canceled.\n", result.Reservation.GuestName)
}

func (c *Console) renderError(err error) {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		fmt.Fprintf(c.out, "Input error: %s\n", strings.TrimPrefix(err.Error(), store.ErrInvalidInput.Error()+": "))
	case errors.Is(err, store.ErrRoomNotFound):
		fmt.Fprintln(c.out, "That room is not part of the catalog.")
	case errors.Is(err, store.ErrInsufficientPayment):
		fmt.Fprintln(c.out, "The cash provided is not enough to cover the total cost.")
	case errors.Is(err, store.ErrReservationNotFound):
		fmt.Fprintln(c.out, "No reservation found.")
	default:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}
