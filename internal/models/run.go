package models

import "time"

// RejectionTally counts rows dropped per category during one run. Rows are
// never raised as errors; they land in exactly one of these buckets.
type RejectionTally struct {
	WrongLocation   int `json:"wrongLocation" dynamodbav:"wrongLocation"`
	UnparseableTime int `json:"unparseableTime" dynamodbav:"unparseableTime"`
	Stale           int `json:"stale" dynamodbav:"stale"`
	Administrative  int `json:"administrative" dynamodbav:"administrative"`
	NoMapping       int `json:"noMapping" dynamodbav:"noMapping"`
}

// Total returns the number of rejected rows across all categories.
func (t RejectionTally) Total() int {
	return t.WrongLocation + t.UnparseableTime + t.Stale + t.Administrative + t.NoMapping
}

// RunStats summarizes what one pipeline run did to the input rows.
type RunStats struct {
	RowsTotal         int            `json:"rowsTotal" dynamodbav:"rowsTotal"`
	RowsKept          int            `json:"rowsKept" dynamodbav:"rowsKept"`
	Groups            int            `json:"groups" dynamodbav:"groups"`
	Slots             int            `json:"slots" dynamodbav:"slots"`
	DuplicatesRemoved int            `json:"duplicatesRemoved" dynamodbav:"duplicatesRemoved"`
	Rejections        RejectionTally `json:"rejections" dynamodbav:"rejections"`

	// UnmappedLabels collects the distinct facility labels that produced no
	// tokens, for the label advisor to review.
	UnmappedLabels []string `json:"unmappedLabels,omitempty" dynamodbav:"unmappedLabels,omitempty"`

	// MissingColumns is non-empty when the export header lacked required
	// columns and the run degraded to a scaffold board.
	MissingColumns []string `json:"missingColumns,omitempty" dynamodbav:"missingColumns,omitempty"`
}

// BoardRun represents one complete refresh of the rooms board, stored for
// operational history.
type BoardRun struct {
	ID          string    `json:"id" dynamodbav:"id"`
	StartedAt   time.Time `json:"startedAt" dynamodbav:"startedAt"`
	CompletedAt time.Time `json:"completedAt,omitempty" dynamodbav:"completedAt"`
	Duration    int64     `json:"duration,omitempty" dynamodbav:"duration"` // milliseconds
	Status      string    `json:"status" dynamodbav:"status"`               // completed|degraded|failed
	TriggerType string    `json:"triggerType" dynamodbav:"triggerType"`     // scheduled|manual

	Mode  string   `json:"mode" dynamodbav:"mode"`
	Stats RunStats `json:"stats" dynamodbav:"stats"`

	SourceKey     string   `json:"sourceKey,omitempty" dynamodbav:"sourceKey"`
	UploadedFiles []string `json:"uploadedFiles,omitempty" dynamodbav:"uploadedFiles,omitempty"`
	ErrorSummary  string   `json:"errorSummary,omitempty" dynamodbav:"errorSummary,omitempty"`

	// TTL auto-expires run history in DynamoDB.
	TTL int64 `json:"-" dynamodbav:"TTL,omitempty"`
}

// Run status constants
const (
	RunStatusCompleted = "completed"
	RunStatusDegraded  = "degraded"
	RunStatusFailed    = "failed"
)

// Trigger type constants
const (
	TriggerTypeScheduled = "scheduled"
	TriggerTypeManual    = "manual"
)
