package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateRunID creates a unique ID for a board run
func GenerateRunID(timestamp time.Time) string {
	input := fmt.Sprintf("run|%d", timestamp.Unix())
	hash := sha256.Sum256([]byte(input))
	return "run_" + hex.EncodeToString(hash[:])[:8]
}

// SlotKey builds the dedup identity of a slot: two slots with the same key
// are the same occupancy record even when their source purpose text differed.
func SlotKey(s Slot) string {
	return fmt.Sprintf("%s|%d|%d|%s|%s",
		s.RoomID, s.StartMinute, s.EndMinute,
		strings.ToLower(s.Title), strings.ToLower(s.Subtitle))
}

// ValidateMode checks if the mode is valid
func ValidateMode(mode Mode) bool {
	return mode == ModeCourt || mode == ModeTurf
}

// ValidateRoomID checks if a room ID belongs to the mode's catalog
func ValidateRoomID(mode Mode, id string) bool {
	for _, room := range RoomCatalog(mode) {
		if room.ID == id {
			return true
		}
	}
	return false
}

// GetModeDisplayName returns a human-readable name for a mode
func GetModeDisplayName(mode Mode) string {
	displayNames := map[Mode]string{
		ModeCourt: "Court Configuration",
		ModeTurf:  "Turf Configuration",
	}

	if displayName, exists := displayNames[mode]; exists {
		return displayName
	}

	return string(mode)
}

// CalculateTTL calculates a TTL timestamp for auto-expiring run history
func CalculateTTL(duration time.Duration) int64 {
	return time.Now().Add(duration).Unix()
}

// MinutesSinceMidnight converts a wall-clock time to minutes since local
// midnight, the unit every pipeline interval uses.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatMinute renders a minute offset as a 12-hour clock string, wrapping
// offsets past midnight back onto the clock face.
func FormatMinute(minute int) string {
	minute = ((minute % 1440) + 1440) % 1440
	h := minute / 60
	m := minute % 60

	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", h12, m, meridiem)
}
