package pipeline

import (
	"testing"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

func sentinelRow(purpose string) models.RawRow {
	return models.RawRow{
		Location:     "Athletic & Event Center",
		Facility:     "AC Fieldhouse",
		ReservedTime: "6:00 AM - 10:00 PM",
		Reservee:     "Front Desk",
		Purpose:      purpose,
	}
}

func TestDetectMode(t *testing.T) {
	turf := sentinelRow("Turf Install")
	court := sentinelRow("Court Install")
	plain := models.RawRow{
		Facility: "AC Gym - Court 1-AB",
		Purpose:  "Practice",
	}

	tests := []struct {
		name       string
		rows       []models.RawRow
		precedence models.Mode
		want       models.Mode
	}{
		{name: "no sentinel defaults to court", rows: []models.RawRow{plain}, precedence: models.ModeTurf, want: models.ModeCourt},
		{name: "turf sentinel", rows: []models.RawRow{plain, turf}, precedence: models.ModeCourt, want: models.ModeTurf},
		{name: "court sentinel", rows: []models.RawRow{court, plain}, precedence: models.ModeTurf, want: models.ModeCourt},
		{name: "both sentinels turf precedence", rows: []models.RawRow{turf, court}, precedence: models.ModeTurf, want: models.ModeTurf},
		{name: "both sentinels court precedence", rows: []models.RawRow{turf, court}, precedence: models.ModeCourt, want: models.ModeCourt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMode(tt.rows, tt.precedence); got != tt.want {
				t.Errorf("DetectMode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSentinelRequiresFieldhouseWideLabel(t *testing.T) {
	// The purpose text alone must not trigger detection; the booking has to
	// sit on the fieldhouse-wide facility.
	row := models.RawRow{
		Facility: "AC Fieldhouse - Court 5",
		Purpose:  "Turf Install",
	}
	if got := DetectMode([]models.RawRow{row}, models.ModeTurf); got != models.ModeCourt {
		t.Errorf("DetectMode() = %s, want court", got)
	}
	if IsModeSentinel(row) {
		t.Error("IsModeSentinel() = true for a per-court booking")
	}
	if !IsModeSentinel(sentinelRow("turf install")) {
		t.Error("IsModeSentinel() = false for a fieldhouse-wide sentinel")
	}
}
