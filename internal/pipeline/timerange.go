package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

// The export writes reservation times as two 12-hour clock readings joined by
// a separator the operators type by hand. The accepted grammar is small and
// enumerated; anything outside it is reported as unparseable rather than
// guessed at.
var clockToken = regexp.MustCompile(`(?i)\b(\d{1,2})(?::([0-5]\d))?\s*([ap])\.?m\.?\b`)

// separator variants seen in real exports, normalized to a plain hyphen
var separatorReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‒", "-", // figure dash
)

var wordSeparator = regexp.MustCompile(`(?i)\bto\b`)

// ParseTimeRange converts free text such as "6:00 PM - 8:00 PM" into a
// minute-offset interval. The second value reports whether the text matched
// the accepted grammar; callers drop the row on false instead of receiving an
// error. When the computed end is not after the start the booking is assumed
// to cross midnight and 1440 is added to the end.
func ParseTimeRange(text string) (models.ParsedTimeRange, bool) {
	normalized := separatorReplacer.Replace(text)
	normalized = wordSeparator.ReplaceAllString(normalized, "-")

	matches := clockToken.FindAllStringSubmatch(normalized, -1)
	if len(matches) != 2 {
		return models.ParsedTimeRange{}, false
	}

	start, ok := clockToMinutes(matches[0])
	if !ok {
		return models.ParsedTimeRange{}, false
	}
	end, ok := clockToMinutes(matches[1])
	if !ok {
		return models.ParsedTimeRange{}, false
	}

	// Overnight span
	if end <= start {
		end += 1440
	}

	return models.ParsedTimeRange{StartMinute: start, EndMinute: end}, true
}

// clockToMinutes converts one matched clock token to minutes since midnight.
func clockToMinutes(match []string) (int, bool) {
	hour, err := strconv.Atoi(match[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}

	minute := 0
	if match[2] != "" {
		minute, err = strconv.Atoi(match[2])
		if err != nil {
			return 0, false
		}
	}

	// The source system adds 12 for PM readings only. A "12:xx AM" reading
	// keeps its literal hour (12:30 AM is 750) and relies on the overnight
	// wrap instead of mapping to hour zero.
	if strings.EqualFold(match[3], "p") {
		hour = hour%12 + 12
	}

	return hour*60 + minute, true
}
