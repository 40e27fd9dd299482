package pipeline

import (
	"reflect"
	"testing"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

func TestClassifyFacilityCourtMode(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		tokens []models.FacilityToken
	}{
		{
			name:   "half court",
			label:  "AC Gym - Half Court 1A",
			tokens: []models.FacilityToken{{Kind: models.TokenHalfCourt, Court: 1, Side: "A"}},
		},
		{
			name:   "half court lowercase side",
			label:  "half court 10b",
			tokens: []models.FacilityToken{{Kind: models.TokenHalfCourt, Court: 10, Side: "B"}},
		},
		{
			name:   "court pair",
			label:  "AC Gym - Court 9-AB",
			tokens: []models.FacilityToken{{Kind: models.TokenCourtPair, Court: 9}},
		},
		{
			name:  "south gym",
			label: "AC South Gym",
			tokens: []models.FacilityToken{
				{Kind: models.TokenWholeGym, Gym: models.GroupSouth},
			},
		},
		{
			name:   "fieldhouse court",
			label:  "AC Fieldhouse - Court 5",
			tokens: []models.FacilityToken{{Kind: models.TokenFieldCourt, Court: 5}},
		},
		{
			name:  "fieldhouse court range",
			label: "AC Fieldhouse - Court 3-8",
			tokens: []models.FacilityToken{
				{Kind: models.TokenFieldCourt, Court: 3},
				{Kind: models.TokenFieldCourt, Court: 4},
				{Kind: models.TokenFieldCourt, Court: 5},
				{Kind: models.TokenFieldCourt, Court: 6},
				{Kind: models.TokenFieldCourt, Court: 7},
				{Kind: models.TokenFieldCourt, Court: 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := ClassifyFacility(tt.label, models.ModeCourt)
			if !matched {
				t.Fatalf("ClassifyFacility(%q) unmatched", tt.label)
			}
			if !reflect.DeepEqual(got, tt.tokens) {
				t.Errorf("tokens = %v, want %v", got, tt.tokens)
			}
		})
	}
}

func TestClassifyFacilityTurfMode(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		tokens []models.FacilityToken
	}{
		{name: "full turf", label: "AC Fieldhouse - Full Turf", tokens: turfQuarters(1, 2, 3, 4)},
		{name: "full field spelling", label: "AC Fieldhouse - Full Field", tokens: turfQuarters(1, 2, 3, 4)},
		{name: "north half turf", label: "AC Fieldhouse - North Half Turf", tokens: turfQuarters(1, 2)},
		{name: "south half turf", label: "AC Fieldhouse - South Half Turf", tokens: turfQuarters(3, 4)},
		{name: "single quarter", label: "AC Fieldhouse - Turf Quarter 3", tokens: turfQuarters(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := ClassifyFacility(tt.label, models.ModeTurf)
			if !matched {
				t.Fatalf("ClassifyFacility(%q) unmatched", tt.label)
			}
			if !reflect.DeepEqual(got, tt.tokens) {
				t.Errorf("tokens = %v, want %v", got, tt.tokens)
			}
		})
	}
}

func TestClassifyFacilityModeMismatch(t *testing.T) {
	// A recognized label for the other mode's floor matches with zero
	// tokens; the caller counts it as administrative, not unknown.
	tests := []struct {
		label string
		mode  models.Mode
	}{
		{label: "AC Fieldhouse - Turf Quarter 2", mode: models.ModeCourt},
		{label: "AC Fieldhouse - Full Turf", mode: models.ModeCourt},
		{label: "AC Fieldhouse - Full Field", mode: models.ModeCourt},
		{label: "AC Fieldhouse - Court 5", mode: models.ModeTurf},
		{label: "AC Fieldhouse - Court 3-8", mode: models.ModeTurf},
	}

	for _, tt := range tests {
		tokens, matched := ClassifyFacility(tt.label, tt.mode)
		if !matched {
			t.Errorf("ClassifyFacility(%q, %s) unmatched, want matched", tt.label, tt.mode)
		}
		if len(tokens) != 0 {
			t.Errorf("ClassifyFacility(%q, %s) = %v, want no tokens", tt.label, tt.mode, tokens)
		}
	}
}

func TestClassifyFacilityUnknownLabels(t *testing.T) {
	labels := []string{
		"",
		"Meeting Room B",
		"AC Lobby",
		"Half Court 5A", // court 5 has no halves
		"Court 12-AB",   // no such court
	}

	for _, label := range labels {
		if _, matched := ClassifyFacility(label, models.ModeCourt); matched {
			t.Errorf("ClassifyFacility(%q) matched, want unmatched", label)
		}
	}
}
