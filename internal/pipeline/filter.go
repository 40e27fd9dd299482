package pipeline

import (
	"strings"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

// DropReason identifies which filter rejected a row. Filters never raise;
// every rejection lands in exactly one tally bucket.
type DropReason int

// Drop reasons, in the order the filters apply.
const (
	DropNone DropReason = iota
	DropWrongLocation
	DropBadTime
	DropStale
	DropAdministrative
)

// adminPurposeMarkers flag bookings the facility places for itself. Rows
// matching these never describe occupancy the public display should show.
var adminPurposeMarkers = []string{
	"maintenance",
	"do not book",
	"internal hold",
	"facility closed",
}

// FilterRow applies the row-exclusion rules in their documented order:
// location, time validity, staleness, administrative markers. The parsed
// range is only meaningful when the returned reason is not DropBadTime.
func FilterRow(row models.RawRow, building string, graceMinutes, nowMinute int) (models.ParsedTimeRange, DropReason) {
	if !strings.Contains(strings.ToLower(row.Location), strings.ToLower(building)) {
		return models.ParsedTimeRange{}, DropWrongLocation
	}

	parsed, ok := ParseTimeRange(row.ReservedTime)
	if !ok {
		return models.ParsedTimeRange{}, DropBadTime
	}

	if parsed.EndMinute < nowMinute-graceMinutes {
		return parsed, DropStale
	}

	if isAdministrativeRow(row) {
		return parsed, DropAdministrative
	}

	return parsed, DropNone
}

// isAdministrativeRow reports whether the reservee or purpose text marks the
// row as internal. The mode sentinels are administrative by definition.
func isAdministrativeRow(row models.RawRow) bool {
	if IsModeSentinel(row) {
		return true
	}
	text := strings.ToLower(row.Reservee + " " + row.Purpose)
	for _, marker := range adminPurposeMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
