package pipeline

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

// BuildBoard sorts the final slots into canonical display order and wraps
// them with the day window and the active mode's room catalog. This document
// is the only contract handed to the rendering collaborator.
func BuildBoard(slots []models.Slot, mode models.Mode, dayStartMinute, dayEndMinute int) models.BoardOutput {
	order := models.RoomOrder(mode)

	sorted := make([]models.Slot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if order[a.RoomID] != order[b.RoomID] {
			return order[a.RoomID] < order[b.RoomID]
		}
		if a.StartMinute != b.StartMinute {
			return a.StartMinute < b.StartMinute
		}
		if a.EndMinute != b.EndMinute {
			return a.EndMinute < b.EndMinute
		}
		return a.Title < b.Title
	})

	if sorted == nil {
		sorted = []models.Slot{}
	}

	return models.BoardOutput{
		DayStartMinute: dayStartMinute,
		DayEndMinute:   dayEndMinute,
		Mode:           string(mode),
		Rooms:          models.RoomCatalog(mode),
		Slots:          sorted,
	}
}

// EncodeBoard serializes a board deterministically: the document contains
// only ordered slices, so identical input always produces identical bytes.
func EncodeBoard(board models.BoardOutput) ([]byte, error) {
	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board to JSON: %w", err)
	}
	return append(data, '\n'), nil
}
