package models

import (
	"testing"
	"time"
)

func TestRoomCatalog(t *testing.T) {
	court := RoomCatalog(ModeCourt)
	if len(court) != 14 {
		t.Errorf("court catalog has %d rooms, want 14", len(court))
	}
	if court[0].ID != "1A" || court[len(court)-1].ID != "10B" {
		t.Errorf("court catalog order wrong: first=%s last=%s", court[0].ID, court[len(court)-1].ID)
	}

	turf := RoomCatalog(ModeTurf)
	if len(turf) != 12 {
		t.Errorf("turf catalog has %d rooms, want 12", len(turf))
	}

	var fieldhouse []string
	for _, room := range turf {
		if room.Group == GroupFieldhouse {
			fieldhouse = append(fieldhouse, room.ID)
		}
	}
	if len(fieldhouse) != 4 || fieldhouse[0] != "T1" || fieldhouse[3] != "T4" {
		t.Errorf("turf fieldhouse rooms = %v, want [T1 T2 T3 T4]", fieldhouse)
	}

	// The gym wings are identical across modes
	for i := 0; i < 4; i++ {
		if court[i] != turf[i] {
			t.Errorf("south gym room %d differs across modes: %v vs %v", i, court[i], turf[i])
		}
	}
}

func TestRoomOrder(t *testing.T) {
	order := RoomOrder(ModeCourt)
	if order["1A"] >= order["1B"] {
		t.Error("1A should sort before 1B")
	}
	if order["2B"] >= order["3"] {
		t.Error("south gym should sort before fieldhouse")
	}
	if order["8"] >= order["9A"] {
		t.Error("fieldhouse should sort before north gym")
	}
}

func TestValidateRoomID(t *testing.T) {
	if !ValidateRoomID(ModeCourt, "5") {
		t.Error("court 5 should be valid in court mode")
	}
	if ValidateRoomID(ModeTurf, "5") {
		t.Error("court 5 should be invalid in turf mode")
	}
	if !ValidateRoomID(ModeTurf, "T3") {
		t.Error("T3 should be valid in turf mode")
	}
	if ValidateRoomID(ModeCourt, "T3") {
		t.Error("T3 should be invalid in court mode")
	}
}

func TestSlotKey(t *testing.T) {
	a := Slot{RoomID: "9A", StartMinute: 1080, EndMinute: 1200, Title: "Flight Academy", Subtitle: "Practice"}
	b := Slot{RoomID: "9A", StartMinute: 1080, EndMinute: 1200, Title: "flight academy", Subtitle: "PRACTICE"}
	if SlotKey(a) != SlotKey(b) {
		t.Error("slot keys should be case-insensitive on title and subtitle")
	}

	c := Slot{RoomID: "9B", StartMinute: 1080, EndMinute: 1200, Title: "Flight Academy", Subtitle: "Practice"}
	if SlotKey(a) == SlotKey(c) {
		t.Error("slot keys should differ across rooms")
	}
}

func TestGenerateRunID(t *testing.T) {
	ts := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	id := GenerateRunID(ts)
	if len(id) != len("run_")+8 {
		t.Errorf("run ID %q has unexpected length", id)
	}
	if id != GenerateRunID(ts) {
		t.Error("run ID should be stable for the same timestamp")
	}
	if id == GenerateRunID(ts.Add(time.Second)) {
		t.Error("run ID should differ across timestamps")
	}
}

func TestMinutesSinceMidnight(t *testing.T) {
	tests := []struct {
		hour, min int
		want      int
	}{
		{0, 0, 0},
		{6, 0, 360},
		{18, 30, 1110},
		{23, 59, 1439},
	}

	for _, tt := range tests {
		ts := time.Date(2026, 1, 15, tt.hour, tt.min, 45, 0, time.UTC)
		if got := MinutesSinceMidnight(ts); got != tt.want {
			t.Errorf("MinutesSinceMidnight(%02d:%02d) = %d, want %d", tt.hour, tt.min, got, tt.want)
		}
	}
}

func TestFormatMinute(t *testing.T) {
	tests := []struct {
		minute int
		want   string
	}{
		{0, "12:00 AM"},
		{360, "6:00 AM"},
		{720, "12:00 PM"},
		{1080, "6:00 PM"},
		{1439, "11:59 PM"},
		{1470, "12:30 AM"}, // past-midnight wrap
	}

	for _, tt := range tests {
		if got := FormatMinute(tt.minute); got != tt.want {
			t.Errorf("FormatMinute(%d) = %q, want %q", tt.minute, got, tt.want)
		}
	}
}
