package pipeline

import (
	"log"
	"sort"
	"time"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/config"
	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

// Options carries the normalization knobs of one run. Everything here is a
// pure input: running the pipeline twice with the same rows, the same "now"
// and the same options produces byte-identical output.
type Options struct {
	Building          string
	StaleGraceMinutes int
	DayStartMinute    int
	DayEndMinute      int
	ModePrecedence    models.Mode
	OrgKeywords       []string
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		Building:          "Athletic & Event Center",
		StaleGraceMinutes: 15,
		DayStartMinute:    360,
		DayEndMinute:      1380,
		ModePrecedence:    models.ModeTurf,
		OrgKeywords: []string{
			"academy", "club", "association", "league", "athletics",
			"volleyball", "basketball", "soccer", "futsal", "school",
			"church", "university", "college", "ymca", "parks",
		},
	}
}

// OptionsFromConfig builds pipeline options from the environment config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Building:          cfg.Building,
		StaleGraceMinutes: cfg.StaleGraceMinutes,
		DayStartMinute:    cfg.DayStartMinute,
		DayEndMinute:      cfg.DayEndMinute,
		ModePrecedence:    models.Mode(cfg.ModePrecedence),
		OrgKeywords:       cfg.OrgKeywords,
	}
}

// Run executes the full normalization pipeline over one export snapshot:
// mode detection, per-row filtering and classification, booking grouping,
// room resolution, display derivation, dedup and assembly. The missing
// parameter is the missing-column list from ReadExport; when non-empty the
// run degrades to a scaffold board so the display always has something to
// load. The wall clock enters only through now (staleness filtering).
func Run(rows []models.RawRow, missing []string, now time.Time, opts Options) (models.BoardOutput, models.RunStats) {
	stats := models.RunStats{RowsTotal: len(rows)}

	mode := DetectMode(rows, opts.ModePrecedence)

	if len(missing) > 0 {
		stats.MissingColumns = missing
		return BuildBoard(nil, mode, opts.DayStartMinute, opts.DayEndMinute), stats
	}

	nowMinute := models.MinutesSinceMidnight(now)
	unmapped := make(map[string]struct{})

	var kept []classifiedRow
	for _, row := range rows {
		parsed, reason := FilterRow(row, opts.Building, opts.StaleGraceMinutes, nowMinute)
		switch reason {
		case DropWrongLocation:
			stats.Rejections.WrongLocation++
			continue
		case DropBadTime:
			stats.Rejections.UnparseableTime++
			continue
		case DropStale:
			stats.Rejections.Stale++
			continue
		case DropAdministrative:
			stats.Rejections.Administrative++
			continue
		}

		tokens, matched := ClassifyFacility(row.Facility, mode)
		if !matched {
			stats.Rejections.NoMapping++
			unmapped[row.Facility] = struct{}{}
			continue
		}
		if len(tokens) == 0 {
			// Recognized label that does not exist under the active mode:
			// administrative noise, not an unknown facility.
			stats.Rejections.Administrative++
			continue
		}

		kept = append(kept, classifiedRow{row: row, parsed: parsed, tokens: tokens})
	}
	stats.RowsKept = len(kept)

	groups := GroupRows(kept)
	stats.Groups = len(groups)

	var slots []models.Slot
	seen := make(map[string]struct{})
	for _, group := range groups {
		display := DeriveDisplay(group, opts.OrgKeywords)
		for _, roomID := range ResolveRooms(group.Tokens, mode) {
			slot := models.Slot{
				RoomID:      roomID,
				StartMinute: group.StartMinute,
				EndMinute:   group.EndMinute,
				Title:       display.Title,
				Subtitle:    display.Subtitle,
				Org:         display.Org,
				Contact:     display.Contact,
			}
			key := models.SlotKey(slot)
			if _, dup := seen[key]; dup {
				stats.DuplicatesRemoved++
				continue
			}
			seen[key] = struct{}{}
			slots = append(slots, slot)
		}
	}
	stats.Slots = len(slots)

	for label := range unmapped {
		stats.UnmappedLabels = append(stats.UnmappedLabels, label)
	}
	sort.Strings(stats.UnmappedLabels)

	return BuildBoard(slots, mode, opts.DayStartMinute, opts.DayEndMinute), stats
}

// LogRunSummary writes the per-category tallies in one place so a run can be
// audited from the logs alone.
func LogRunSummary(mode models.Mode, stats models.RunStats) {
	log.Printf("[METRICS] === BOARD RUN SUMMARY ===")
	log.Printf("[METRICS] Mode: %s", models.GetModeDisplayName(mode))
	log.Printf("[METRICS] Rows: %d total, %d kept, %d rejected",
		stats.RowsTotal, stats.RowsKept, stats.Rejections.Total())
	log.Printf("[METRICS] Rejections: location=%d time=%d stale=%d admin=%d unmapped=%d",
		stats.Rejections.WrongLocation, stats.Rejections.UnparseableTime,
		stats.Rejections.Stale, stats.Rejections.Administrative, stats.Rejections.NoMapping)
	log.Printf("[METRICS] Bookings: %d groups, %d slots, %d duplicates removed",
		stats.Groups, stats.Slots, stats.DuplicatesRemoved)
	if len(stats.UnmappedLabels) > 0 {
		log.Printf("[METRICS] Unmapped facility labels: %v", stats.UnmappedLabels)
	}
	if len(stats.MissingColumns) > 0 {
		log.Printf("[METRICS] Missing export columns: %v (scaffold board emitted)", stats.MissingColumns)
	}
	log.Printf("[METRICS] =========================")
}
