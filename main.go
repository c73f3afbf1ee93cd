package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"hotel-reservation/config"
	"hotel-reservation/console"
	"hotel-reservation/services"
	"hotel-reservation/store"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	// Seed the catalog and build the shared in-memory store. Everything
	// lives in process memory and vanishes on exit.
	st := store.New(config.SeedRooms())
	log.Printf("✅ Catalog seeded with %d rooms", len(st.Rooms()))

	// Initialize services
	roomService := services.NewRoomService(st)
	bookingService := services.NewBookingService(st, cfg.LoyaltyPerStay)

	// Run the front-desk session on the terminal
	desk := console.New(cfg, roomService, bookingService, os.Stdin, os.Stdout)
	desk.Run()

	log.Println("✅ Session ended")
}
