package pipeline

import (
	"strings"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

// DisplayText holds the derived text fields of a slot.
type DisplayText struct {
	Title    string
	Subtitle string
	Org      string
	Contact  string
}

// pickleballTitle is the fixed display title for all pickleball sessions,
// regardless of how the front desk phrased the booking.
const pickleballTitle = "Open Pickleball"

// pickleballBoilerplate lists phrases carrying no information beyond "this is
// pickleball"; whatever survives their removal is genuinely descriptive and
// stays as the subtitle.
var pickleballBoilerplate = []string{
	"open pickleball",
	"pickleball",
	"drop-in",
	"drop in",
	"open play",
	"front desk",
}

// DeriveDisplay turns a booking group's reservee and purpose text into the
// title/subtitle/org/contact a viewer sees. The rules apply in precedence
// order: pickleball override, organization split, person-name flip.
func DeriveDisplay(group *models.BookingGroup, orgKeywords []string) DisplayText {
	reservee := strings.TrimSpace(group.Reservee)
	purpose := scrubInternalNotes(group.Purpose)

	if mentionsPickleball(reservee, purpose) {
		return DisplayText{
			Title:    pickleballTitle,
			Subtitle: pickleballResidual(purpose),
		}
	}

	if left, right, ok := splitReservee(reservee); ok && matchesOrgKeyword(left, orgKeywords) {
		return DisplayText{
			Title:    left,
			Subtitle: purpose,
			Org:      left,
			Contact:  right,
		}
	}

	return DisplayText{
		Title:    flipPersonName(reservee),
		Subtitle: purpose,
	}
}

func mentionsPickleball(reservee, purpose string) bool {
	text := strings.ToLower(reservee + " " + purpose)
	return strings.Contains(text, "pickleball")
}

// pickleballResidual strips the boilerplate phrasing and returns what is left
// of the purpose, if anything.
func pickleballResidual(purpose string) string {
	residual := strings.ToLower(purpose)
	for _, phrase := range pickleballBoilerplate {
		residual = strings.ReplaceAll(residual, phrase, " ")
	}
	residual = collapseSeparators(residual)
	if residual == "" {
		return ""
	}

	// Recover the original casing by locating the residual words in the
	// scrubbed purpose text.
	words := strings.Fields(residual)
	kept := make([]string, 0, len(words))
	for _, original := range strings.Fields(collapseSeparators(purpose)) {
		for _, w := range words {
			if strings.EqualFold(original, w) {
				kept = append(kept, original)
				break
			}
		}
	}
	return strings.Join(kept, " ")
}

// splitReservee splits "Left, Right" reservee text once on the first comma.
func splitReservee(reservee string) (left, right string, ok bool) {
	idx := strings.Index(reservee, ",")
	if idx < 0 {
		return "", "", false
	}
	left = strings.TrimSpace(reservee[:idx])
	right = strings.TrimSpace(reservee[idx+1:])
	if left == "" {
		return "", "", false
	}
	return left, right, true
}

// matchesOrgKeyword reports whether the segment names an organization rather
// than a person's last name. The keyword list is configuration; the default
// set came from observed reservee text, not from any documented contract.
func matchesOrgKeyword(segment string, keywords []string) bool {
	l := strings.ToLower(segment)
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(l, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// flipPersonName converts "Last, First" to "First Last". Text without a
// comma passes through unchanged.
func flipPersonName(reservee string) string {
	left, right, ok := splitReservee(reservee)
	if !ok || right == "" {
		return reservee
	}
	return right + " " + left
}

// scrubInternalNotes removes office-only annotations from text destined for
// the display: bracketed notes, confirmation refs, and the separator debris
// their removal leaves behind.
func scrubInternalNotes(text string) string {
	text = bracketNote.ReplaceAllString(text, " ")
	text = confirmationRef.ReplaceAllString(text, " ")
	return collapseSeparators(text)
}

// collapseSeparators squeezes whitespace runs and trims stray separator
// characters left at the edges after scrubbing.
func collapseSeparators(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "-–—,/;:")
	return strings.TrimSpace(text)
}
