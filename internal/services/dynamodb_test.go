package services

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

func TestNewDynamoDBService(t *testing.T) {
	service := NewDynamoDBService(nil, "raec-board-runs")

	if service.boardRunsTable != "raec-board-runs" {
		t.Errorf("boardRunsTable = %q, want raec-board-runs", service.boardRunsTable)
	}
}

func TestBoardRunItem(t *testing.T) {
	started := time.Date(2026, 8, 29, 17, 30, 0, 0, time.UTC)
	run := &models.BoardRun{
		StartedAt:   started,
		Status:      models.RunStatusCompleted,
		TriggerType: models.TriggerTypeScheduled,
		Mode:        "court",
	}

	item, err := boardRunItem(run)
	if err != nil {
		t.Fatalf("boardRunItem() error: %v", err)
	}

	// A run without an id gets one derived from its start time
	if run.ID == "" {
		t.Error("expected run id to be assigned")
	}
	if run.ID != models.GenerateRunID(started) {
		t.Errorf("run id = %q, want %q", run.ID, models.GenerateRunID(started))
	}

	// Partition key is the UTC calendar date of the run
	runDate, ok := item["runDate"].(*types.AttributeValueMemberS)
	if !ok {
		t.Fatal("runDate attribute missing or not a string")
	}
	if runDate.Value != "2026-08-29" {
		t.Errorf("runDate = %q, want 2026-08-29", runDate.Value)
	}

	if _, ok := item["status"]; !ok {
		t.Error("status attribute missing")
	}
	if _, ok := item["TTL"]; !ok {
		t.Error("TTL attribute missing")
	}

	// History expires about 90 days out
	wantTTL := time.Now().Add(runHistoryTTL).Unix()
	if run.TTL < wantTTL-60 || run.TTL > wantTTL+60 {
		t.Errorf("TTL = %d, want within a minute of %d", run.TTL, wantTTL)
	}
}

func TestBoardRunItemKeepsExistingID(t *testing.T) {
	run := &models.BoardRun{
		ID:        "run_ab12cd34",
		StartedAt: time.Date(2026, 8, 29, 17, 30, 0, 0, time.UTC),
		Status:    models.RunStatusFailed,
	}

	if _, err := boardRunItem(run); err != nil {
		t.Fatalf("boardRunItem() error: %v", err)
	}
	if run.ID != "run_ab12cd34" {
		t.Errorf("run id = %q, want run_ab12cd34", run.ID)
	}
}
