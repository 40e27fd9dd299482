package main

import (
	"strings"
	"testing"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

func TestFormatRun(t *testing.T) {
	run := &models.BoardRun{
		ID:          "run_ab12cd34",
		Status:      models.RunStatusCompleted,
		TriggerType: models.TriggerTypeScheduled,
		Mode:        "court",
		Duration:    1200,
		Stats: models.RunStats{
			Slots: 18,
			Rejections: models.RejectionTally{
				Stale:     3,
				NoMapping: 2,
			},
		},
	}

	line := formatRun(run)
	for _, want := range []string{"run_ab12cd34", "completed", "scheduled", "mode=court", "slots=18", "rejected=5", "1200ms"} {
		if !strings.Contains(line, want) {
			t.Errorf("formatRun() = %q, missing %q", line, want)
		}
	}
	if strings.Count(line, "\n") != 1 {
		t.Errorf("clean run should format as one line, got %q", line)
	}
}

func TestFormatRunIncludesErrorSummary(t *testing.T) {
	run := &models.BoardRun{
		ID:           "run_ef56ab78",
		Status:       models.RunStatusFailed,
		TriggerType:  models.TriggerTypeManual,
		ErrorSummary: "export fetch failed: no export files found under prefix exports/",
	}

	line := formatRun(run)
	if !strings.Contains(line, "export fetch failed") {
		t.Errorf("formatRun() = %q, missing error summary", line)
	}
	if strings.Count(line, "\n") != 2 {
		t.Errorf("failed run should format as two lines, got %q", line)
	}
}
