package pipeline

import (
	"strings"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

// The reservation system never states which physical configuration the
// fieldhouse is in. The only signal is an administrative booking the front
// desk places on the fieldhouse-wide facility whose purpose text names the
// installation. Detection runs over every row once, before any
// classification, because the facility-label mappings for the fieldhouse
// differ entirely by mode.

// Sentinel purpose fragments, matched case-insensitively.
const (
	turfSentinelPurpose  = "turf install"
	courtSentinelPurpose = "court install"
)

// DetectMode scans all rows once and returns the fieldhouse configuration for
// the day. When both sentinels appear in the same export the configured
// precedence mode wins; with no sentinel at all the courts are assumed
// installed.
func DetectMode(rows []models.RawRow, precedence models.Mode) models.Mode {
	var turfSeen, courtSeen bool

	for _, row := range rows {
		if !isFieldhouseWideLabel(row.Facility) {
			continue
		}
		purpose := strings.ToLower(row.Purpose)
		if strings.Contains(purpose, turfSentinelPurpose) {
			turfSeen = true
		}
		if strings.Contains(purpose, courtSentinelPurpose) {
			courtSeen = true
		}
	}

	switch {
	case turfSeen && courtSeen:
		return precedence
	case turfSeen:
		return models.ModeTurf
	case courtSeen:
		return models.ModeCourt
	default:
		return models.ModeCourt
	}
}

// IsModeSentinel reports whether a row is one of the administrative
// installation bookings that drive mode detection. These rows must never
// reach the display, so the row filter drops them as administrative.
func IsModeSentinel(row models.RawRow) bool {
	if !isFieldhouseWideLabel(row.Facility) {
		return false
	}
	purpose := strings.ToLower(row.Purpose)
	return strings.Contains(purpose, turfSentinelPurpose) ||
		strings.Contains(purpose, courtSentinelPurpose)
}

// isFieldhouseWideLabel matches the facility label that covers the whole
// fieldhouse, as opposed to one of its courts or turf sections.
func isFieldhouseWideLabel(label string) bool {
	l := strings.ToLower(label)
	if !strings.Contains(l, "fieldhouse") {
		return false
	}
	return !strings.Contains(l, "court") && !strings.Contains(l, "turf")
}
