package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration for the rooms board pipeline and its
// AWS collaborators. The normalization constants the source system never
// documents (staleness grace, organizational keywords, mode tie-breaking) are
// deliberately exposed here instead of being buried in the pipeline.
type Config struct {
	// Pipeline
	Building          string   `envconfig:"RAEC_BUILDING" default:"Athletic & Event Center"`
	StaleGraceMinutes int      `envconfig:"RAEC_STALE_GRACE_MINUTES" default:"15"`
	DayStartMinute    int      `envconfig:"RAEC_DAY_START_MINUTE" default:"360"`
	DayEndMinute      int      `envconfig:"RAEC_DAY_END_MINUTE" default:"1380"`
	ModePrecedence    string   `envconfig:"RAEC_MODE_PRECEDENCE" default:"turf"`
	OrgKeywords       []string `envconfig:"RAEC_ORG_KEYWORDS" default:"academy,club,association,league,athletics,volleyball,basketball,soccer,futsal,school,church,university,college,ymca,parks"`
	Timezone          string   `envconfig:"RAEC_TIMEZONE" default:"America/Chicago"`

	// S3 transport
	DataBucket   string `envconfig:"RAEC_DATA_BUCKET" default:"raec-rooms-board-data"`
	ExportPrefix string `envconfig:"RAEC_EXPORT_PREFIX" default:"exports/"`
	BoardKey     string `envconfig:"RAEC_BOARD_KEY" default:"board/latest.json"`

	// DynamoDB run history
	BoardRunsTable string `envconfig:"RAEC_BOARD_RUNS_TABLE" default:"raec-board-runs"`

	// Display refresh
	RefreshFunctionName string `envconfig:"RAEC_REFRESH_FUNCTION" default:""`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	if c.ModePrecedence != "turf" && c.ModePrecedence != "court" {
		return nil, fmt.Errorf("invalid RAEC_MODE_PRECEDENCE %q: must be turf or court", c.ModePrecedence)
	}
	if c.DayStartMinute < 0 || c.DayEndMinute > 1440 || c.DayEndMinute <= c.DayStartMinute {
		return nil, fmt.Errorf("invalid day window: start=%d end=%d", c.DayStartMinute, c.DayEndMinute)
	}
	return &c, nil
}
