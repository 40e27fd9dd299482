package pipeline

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

// The export splits a single reservation across one row per booked facility:
// a team renting "Court 1-AB" and "Half Court 2A" for the same hour appears
// as two rows with identical reservee, purpose and times. Grouping joins
// those rows back into one booking so their token sets can be unioned before
// room resolution.

// volatile substrings that vary between rows of the same logical booking
var (
	confirmationRef = regexp.MustCompile(`#\d+`)
	bracketNote     = regexp.MustCompile(`\[[^\]]*\]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// classifiedRow is one surviving row paired with its parse results.
type classifiedRow struct {
	row    models.RawRow
	parsed models.ParsedTimeRange
	tokens []models.FacilityToken
}

// GroupRows partitions classified rows by booking identity and unions their
// token sets. The returned groups are ordered deterministically by (start,
// end, reservee, purpose) so identical input always yields identical output.
func GroupRows(rows []classifiedRow) []*models.BookingGroup {
	byKey := make(map[string]*models.BookingGroup)

	for _, cr := range rows {
		reservee := normalizeIdentity(cr.row.Reservee)
		purpose := normalizeIdentity(stripVolatile(cr.row.Purpose))
		key := fmt.Sprintf("%s|%s|%d|%d", reservee, purpose, cr.parsed.StartMinute, cr.parsed.EndMinute)

		group, exists := byKey[key]
		if !exists {
			group = &models.BookingGroup{
				Reservee:    strings.TrimSpace(cr.row.Reservee),
				Purpose:     strings.TrimSpace(stripVolatile(cr.row.Purpose)),
				StartMinute: cr.parsed.StartMinute,
				EndMinute:   cr.parsed.EndMinute,
				Tokens:      make(models.TokenSet),
			}
			byKey[key] = group
		}

		group.Rows = append(group.Rows, cr.row)
		for _, token := range cr.tokens {
			group.Tokens.Add(token)
		}
	}

	groups := make([]*models.BookingGroup, 0, len(byKey))
	for _, group := range byKey {
		groups = append(groups, group)
	}

	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.StartMinute != b.StartMinute {
			return a.StartMinute < b.StartMinute
		}
		if a.EndMinute != b.EndMinute {
			return a.EndMinute < b.EndMinute
		}
		if a.Reservee != b.Reservee {
			return a.Reservee < b.Reservee
		}
		return a.Purpose < b.Purpose
	})

	return groups
}

// stripVolatile removes the substrings that differ between rows of one
// booking: confirmation numbers and bracketed office notes.
func stripVolatile(text string) string {
	text = confirmationRef.ReplaceAllString(text, "")
	text = bracketNote.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// normalizeIdentity lowercases and collapses whitespace for key comparison.
func normalizeIdentity(text string) string {
	return strings.ToLower(strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " ")))
}
