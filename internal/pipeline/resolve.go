package pipeline

import (
	"fmt"
	"sort"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

// ResolveRooms converts a booking group's unioned token set into the
// deduplicated, canonically ordered list of room IDs it occupies.
//
// Precedence inside a gym court: an explicit half token always wins over any
// coarser pair or whole-gym token present in the same group. The export often
// carries both (one row books "Half Court 1A", a sibling row books
// "Court 1-AB" for setup space), and a specific per-half signal must never be
// widened away by a coarse one. Only when no half token exists does a
// pair/whole-gym token expand to both halves.
func ResolveRooms(tokens models.TokenSet, mode models.Mode) []string {
	roomSet := make(map[string]struct{})

	// Per-court signals for the halved gym courts.
	halves := make(map[int]map[string]struct{})
	coarse := make(map[int]bool)

	for token := range tokens {
		switch token.Kind {
		case models.TokenHalfCourt:
			if halves[token.Court] == nil {
				halves[token.Court] = make(map[string]struct{})
			}
			halves[token.Court][token.Side] = struct{}{}

		case models.TokenCourtPair:
			coarse[token.Court] = true

		case models.TokenWholeGym:
			for court, gym := range halvedCourts {
				if gym == token.Gym {
					coarse[court] = true
				}
			}

		case models.TokenFieldCourt:
			if mode == models.ModeCourt {
				roomSet[fmt.Sprintf("%d", token.Court)] = struct{}{}
			}

		case models.TokenTurfQuarter:
			if mode == models.ModeTurf {
				roomSet[fmt.Sprintf("T%d", token.Quarter)] = struct{}{}
			}
		}
	}

	for court, sides := range halves {
		for side := range sides {
			roomSet[fmt.Sprintf("%d%s", court, side)] = struct{}{}
		}
	}
	for court := range coarse {
		if _, hasHalf := halves[court]; hasHalf {
			continue // explicit half overrides the coarse token
		}
		roomSet[fmt.Sprintf("%dA", court)] = struct{}{}
		roomSet[fmt.Sprintf("%dB", court)] = struct{}{}
	}

	order := models.RoomOrder(mode)
	rooms := make([]string, 0, len(roomSet))
	for id := range roomSet {
		if _, inCatalog := order[id]; inCatalog {
			rooms = append(rooms, id)
		}
	}
	sort.Slice(rooms, func(i, j int) bool {
		return order[rooms[i]] < order[rooms[j]]
	})

	return rooms
}
