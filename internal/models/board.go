package models

// BoardOutput represents the complete JSON document handed to the display
// frontend. It is rebuilt from scratch on every run.
type BoardOutput struct {
	DayStartMinute int    `json:"dayStartMinute"`
	DayEndMinute   int    `json:"dayEndMinute"`
	Mode           string `json:"mode"` // court|turf
	Rooms          []Room `json:"rooms"`
	Slots          []Slot `json:"slots"`
}

// Room is one member of the fixed display catalog for the active mode.
type Room struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Group string `json:"group"` // south|fieldhouse|north
}

// Slot is one atomic occupancy record: one room, one interval, derived
// display text. Minutes are since local midnight; EndMinute may exceed 1440
// when a booking crosses midnight.
type Slot struct {
	RoomID      string `json:"roomId"`
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Org         string `json:"org"`
	Contact     string `json:"contact"`
}

// Mode is the day's fieldhouse physical configuration. It is computed exactly
// once per run from the sentinel rows and is immutable afterward: the same
// physical floor is numbered courts or turf quarters, never both.
type Mode string

// Mode constants
const (
	ModeCourt Mode = "court"
	ModeTurf  Mode = "turf"
)

// Room group constants
const (
	GroupSouth      = "south"
	GroupFieldhouse = "fieldhouse"
	GroupNorth      = "north"
)

// RoomCatalog returns the fixed room catalog for a mode in canonical display
// order: south halves, fieldhouse units, north halves.
func RoomCatalog(mode Mode) []Room {
	rooms := []Room{
		{ID: "1A", Label: "Court 1A", Group: GroupSouth},
		{ID: "1B", Label: "Court 1B", Group: GroupSouth},
		{ID: "2A", Label: "Court 2A", Group: GroupSouth},
		{ID: "2B", Label: "Court 2B", Group: GroupSouth},
	}

	if mode == ModeTurf {
		rooms = append(rooms,
			Room{ID: "T1", Label: "Turf Quarter 1", Group: GroupFieldhouse},
			Room{ID: "T2", Label: "Turf Quarter 2", Group: GroupFieldhouse},
			Room{ID: "T3", Label: "Turf Quarter 3", Group: GroupFieldhouse},
			Room{ID: "T4", Label: "Turf Quarter 4", Group: GroupFieldhouse},
		)
	} else {
		rooms = append(rooms,
			Room{ID: "3", Label: "Court 3", Group: GroupFieldhouse},
			Room{ID: "4", Label: "Court 4", Group: GroupFieldhouse},
			Room{ID: "5", Label: "Court 5", Group: GroupFieldhouse},
			Room{ID: "6", Label: "Court 6", Group: GroupFieldhouse},
			Room{ID: "7", Label: "Court 7", Group: GroupFieldhouse},
			Room{ID: "8", Label: "Court 8", Group: GroupFieldhouse},
		)
	}

	rooms = append(rooms,
		Room{ID: "9A", Label: "Court 9A", Group: GroupNorth},
		Room{ID: "9B", Label: "Court 9B", Group: GroupNorth},
		Room{ID: "10A", Label: "Court 10A", Group: GroupNorth},
		Room{ID: "10B", Label: "Court 10B", Group: GroupNorth},
	)

	return rooms
}

// RoomOrder returns the canonical sort index of every room ID in a mode's
// catalog.
func RoomOrder(mode Mode) map[string]int {
	order := make(map[string]int)
	for i, room := range RoomCatalog(mode) {
		order[room.ID] = i
	}
	return order
}
