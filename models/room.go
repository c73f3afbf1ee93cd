package models

// RoomType is the category of a room in the fixed catalog.
type RoomType string

const (
	Single = RoomType("Single")
	Double = RoomType("Double")
	Suite  = RoomType("Suite")
)

func (t RoomType) String() string {
	return string(t)
}

// Room is one entry of the fixed inventory. Numbers are unique and
// immutable after seeding; only Available changes at runtime.
type Room struct {
	Number        string   `json:"roomNumber"`
	Type          RoomType `json:"type"`
	PricePerNight int      `json:"pricePerNight"`
	Available     bool     `json:"available"`
}
