package config

import "hotel-reservation/models"

// SeedRooms is the fixed nine-room inventory. There is no add/remove-room
// operation anywhere, so this slice is the catalog for the whole process
// lifetime.
func SeedRooms() []models.Room {
	return []models.Room{
		{Number: "101", Type: models.Single, PricePerNight: 5800, Available: true},
		{Number: "102", Type: models.Double, PricePerNight: 8700, Available: true},
		{Number: "103", Type: models.Suite, PricePerNight: 17400, Available: true},
		{Number: "104", Type: models.Single, PricePerNight: 6380, Available: true},
		{Number: "105", Type: models.Double, PricePerNight: 9280, Available: true},
		{Number: "106", Type: models.Suite, PricePerNight: 17980, Available: true},
		{Number: "107", Type: models.Single, PricePerNight: 6960, Available: true},
		{Number: "108", Type: models.Double, PricePerNight: 9860, Available: true},
		{Number: "109", Type: models.Suite, PricePerNight: 18580, Available: true},
	}
}
