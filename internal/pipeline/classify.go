package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

// Facility labels arrive as free text ("AC Gym - Court 9-AB", "Half Court
// 1A", "AC Fieldhouse - Turf Quarter 3"). Classification runs an ordered rule
// table top to bottom; the first rule whose pattern matches owns the label.
// A rule may legitimately emit zero tokens: a turf label while the courts are
// installed (or vice versa) is administrative noise for the active mode, not
// an unknown label.
//
// ClassifyFacility reports (tokens, matched): matched=false means no rule
// recognized the label at all, which the caller tallies as no_mapping.

type classifierRule struct {
	name  string
	apply func(label string, mode models.Mode) ([]models.FacilityToken, bool)
}

var (
	halfCourtPattern   = regexp.MustCompile(`(?i)half\s*court\s*(\d{1,2})\s*([ab])\b`)
	courtRangePattern  = regexp.MustCompile(`(?i)court\s*3\s*-\s*8\b`)
	courtPairPattern   = regexp.MustCompile(`(?i)court\s*(\d{1,2})\s*-\s*ab\b`)
	fieldCourtPattern  = regexp.MustCompile(`(?i)court\s*([3-8])\b`)
	turfQuarterPattern = regexp.MustCompile(`(?i)turf\s*quarter\s*([1-4])\b`)
)

// halvedCourts are the gym courts that split into A/B halves. Everything else
// numbered lives in the fieldhouse.
var halvedCourts = map[int]string{
	1:  models.GroupSouth,
	2:  models.GroupSouth,
	9:  models.GroupNorth,
	10: models.GroupNorth,
}

var classifierRules = []classifierRule{
	{name: "half-court", apply: matchHalfCourt},
	{name: "fieldhouse-court-range", apply: matchCourtRange},
	{name: "court-pair", apply: matchCourtPair},
	{name: "whole-gym", apply: matchWholeGym},
	{name: "fieldhouse-court", apply: matchFieldCourt},
	{name: "full-turf", apply: matchFullTurf},
	{name: "half-turf", apply: matchHalfTurf},
	{name: "turf-quarter", apply: matchTurfQuarter},
	{name: "other-turf", apply: matchOtherTurf},
}

// ClassifyFacility maps one raw facility label under the active mode to zero
// or more tokens. Unrecognized labels return matched=false.
func ClassifyFacility(label string, mode models.Mode) ([]models.FacilityToken, bool) {
	for _, rule := range classifierRules {
		if tokens, ok := rule.apply(label, mode); ok {
			return tokens, true
		}
	}
	return nil, false
}

// matchHalfCourt handles explicit half labels such as "Half Court 1A". These
// are mode-independent: the gym courts are halved regardless of the
// fieldhouse floor.
func matchHalfCourt(label string, _ models.Mode) ([]models.FacilityToken, bool) {
	m := halfCourtPattern.FindStringSubmatch(label)
	if m == nil {
		return nil, false
	}
	court, _ := strconv.Atoi(m[1])
	if _, ok := halvedCourts[court]; !ok {
		return nil, false
	}
	return []models.FacilityToken{{
		Kind:  models.TokenHalfCourt,
		Court: court,
		Side:  strings.ToUpper(m[2]),
	}}, true
}

// matchCourtRange handles the fieldhouse-wide "Court 3-8" label. With the
// turf installed the courts do not exist, so the label carries no tokens.
func matchCourtRange(label string, mode models.Mode) ([]models.FacilityToken, bool) {
	if !courtRangePattern.MatchString(label) {
		return nil, false
	}
	if mode != models.ModeCourt {
		return nil, true
	}
	tokens := make([]models.FacilityToken, 0, 6)
	for n := 3; n <= 8; n++ {
		tokens = append(tokens, models.FacilityToken{Kind: models.TokenFieldCourt, Court: n})
	}
	return tokens, true
}

// matchCourtPair handles "Court N-AB" labels covering both halves of one gym
// court.
func matchCourtPair(label string, _ models.Mode) ([]models.FacilityToken, bool) {
	m := courtPairPattern.FindStringSubmatch(label)
	if m == nil {
		return nil, false
	}
	court, _ := strconv.Atoi(m[1])
	if _, ok := halvedCourts[court]; !ok {
		return nil, false
	}
	return []models.FacilityToken{{Kind: models.TokenCourtPair, Court: court}}, true
}

// matchWholeGym handles labels that book an entire gym wing.
func matchWholeGym(label string, _ models.Mode) ([]models.FacilityToken, bool) {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "south gym"):
		return []models.FacilityToken{{Kind: models.TokenWholeGym, Gym: models.GroupSouth}}, true
	case strings.Contains(l, "north gym"):
		return []models.FacilityToken{{Kind: models.TokenWholeGym, Gym: models.GroupNorth}}, true
	}
	return nil, false
}

// matchFieldCourt handles single numbered fieldhouse courts ("Court 5").
// Runs after the range and pair rules so their labels never land here.
func matchFieldCourt(label string, mode models.Mode) ([]models.FacilityToken, bool) {
	m := fieldCourtPattern.FindStringSubmatch(label)
	if m == nil {
		return nil, false
	}
	if mode != models.ModeCourt {
		return nil, true
	}
	court, _ := strconv.Atoi(m[1])
	return []models.FacilityToken{{Kind: models.TokenFieldCourt, Court: court}}, true
}

// matchFullTurf handles the whole-field turf label. "Full Field" is the older
// spelling of the same reservation.
func matchFullTurf(label string, mode models.Mode) ([]models.FacilityToken, bool) {
	l := strings.ToLower(label)
	if !strings.Contains(l, "full turf") && !strings.Contains(l, "full field") {
		return nil, false
	}
	if mode != models.ModeTurf {
		return nil, true
	}
	return turfQuarters(1, 2, 3, 4), true
}

// matchHalfTurf handles the north/south half-field turf labels.
func matchHalfTurf(label string, mode models.Mode) ([]models.FacilityToken, bool) {
	l := strings.ToLower(label)
	if !strings.Contains(l, "half turf") {
		return nil, false
	}
	north := strings.Contains(l, "north")
	south := strings.Contains(l, "south")
	if !north && !south {
		return nil, false
	}
	if mode != models.ModeTurf {
		return nil, true
	}
	if north {
		return turfQuarters(1, 2), true
	}
	return turfQuarters(3, 4), true
}

// matchTurfQuarter handles single-quarter turf labels.
func matchTurfQuarter(label string, mode models.Mode) ([]models.FacilityToken, bool) {
	m := turfQuarterPattern.FindStringSubmatch(label)
	if m == nil {
		return nil, false
	}
	if mode != models.ModeTurf {
		return nil, true
	}
	q, _ := strconv.Atoi(m[1])
	return turfQuarters(q), true
}

// matchOtherTurf absorbs any remaining turf-labeled facility while the courts
// are installed, so it counts as administrative rather than unknown.
func matchOtherTurf(label string, mode models.Mode) ([]models.FacilityToken, bool) {
	if mode != models.ModeCourt {
		return nil, false
	}
	if !strings.Contains(strings.ToLower(label), "turf") {
		return nil, false
	}
	return nil, true
}

func turfQuarters(quarters ...int) []models.FacilityToken {
	tokens := make([]models.FacilityToken, 0, len(quarters))
	for _, q := range quarters {
		tokens = append(tokens, models.FacilityToken{Kind: models.TokenTurfQuarter, Quarter: q})
	}
	return tokens
}
