package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	lambdaclient "github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/config"
	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
	"github.com/kmchale1974/raec-rooms-board-sub000/internal/pipeline"
	"github.com/kmchale1974/raec-rooms-board-sub000/internal/services"
)

// LambdaEvent represents the EventBridge trigger event
type LambdaEvent struct {
	Source      string                 `json:"source"`
	DetailType  string                 `json:"detail-type"`
	Detail      map[string]interface{} `json:"detail"`
	TriggerType string                 `json:"trigger-type,omitempty"` // manual, scheduled
}

// LambdaResponse represents the function response
type LambdaResponse struct {
	Success        bool             `json:"success"`
	Message        string           `json:"message"`
	BoardRunID     string           `json:"board_run_id"`
	Mode           string           `json:"mode"`
	SlotCount      int              `json:"slot_count"`
	ProcessingTime int64            `json:"processing_time_ms"`
	Stats          *models.RunStats `json:"stats,omitempty"`
	UploadedFiles  []string         `json:"uploaded_files,omitempty"`
	Errors         []string         `json:"errors,omitempty"`
}

// BoardOrchestrator handles the complete board refresh workflow
type BoardOrchestrator struct {
	cfg            *config.Config
	s3Client       *services.S3Client
	dynamoService  *services.DynamoDBService
	refreshService *services.RefreshService
	location       *time.Location
	runID          string
	startTime      time.Time
}

// NewBoardOrchestrator creates a new orchestrator with all required services
func NewBoardOrchestrator(ctx context.Context) (*BoardOrchestrator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client, err := services.NewS3ClientWithConfig(services.S3Config{
		BucketName: cfg.DataBucket,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	dynamoService := services.NewDynamoDBService(dynamodb.NewFromConfig(awsCfg), cfg.BoardRunsTable)
	refreshService := services.NewRefreshService(lambdaclient.NewFromConfig(awsCfg), cfg.RefreshFunctionName)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", cfg.Timezone, err)
	}

	startTime := time.Now()

	return &BoardOrchestrator{
		cfg:            cfg,
		s3Client:       s3Client,
		dynamoService:  dynamoService,
		refreshService: refreshService,
		location:       location,
		runID:          models.GenerateRunID(startTime),
		startTime:      startTime,
	}, nil
}

// RefreshBoard runs the full refresh: fetch the newest export, normalize it,
// publish the board document.
func (bo *BoardOrchestrator) RefreshBoard(ctx context.Context, triggerType string) (LambdaResponse, error) {
	run := &models.BoardRun{
		ID:          bo.runID,
		StartedAt:   bo.startTime,
		TriggerType: triggerType,
	}

	// Step 1: Fetch the newest export from S3
	data, sourceKey, err := bo.s3Client.DownloadNewestExport(bo.cfg.ExportPrefix)
	if err != nil {
		return bo.failRun(ctx, run, fmt.Errorf("export fetch failed: %w", err))
	}
	run.SourceKey = sourceKey
	log.Printf("Fetched export %s (%d bytes)", sourceKey, len(data))

	// Step 2: Parse the CSV. An unreadable file fails the run; a readable
	// file with missing columns only degrades it.
	rows, missing, err := pipeline.ReadExport(bytes.NewReader(data))
	if err != nil {
		return bo.failRun(ctx, run, fmt.Errorf("export parse failed: %w", err))
	}

	// Step 3: Run the normalization pipeline
	now := time.Now().In(bo.location)
	board, stats := pipeline.Run(rows, missing, now, pipeline.OptionsFromConfig(bo.cfg))
	mode := models.Mode(board.Mode)
	pipeline.LogRunSummary(mode, stats)

	run.Mode = board.Mode
	run.Stats = stats
	run.Status = models.RunStatusCompleted
	if len(missing) > 0 {
		run.Status = models.RunStatusDegraded
		run.ErrorSummary = fmt.Sprintf("export missing columns: %v", missing)
	}

	// Step 4: Encode and publish
	encoded, err := pipeline.EncodeBoard(board)
	if err != nil {
		return bo.failRun(ctx, run, fmt.Errorf("board encoding failed: %w", err))
	}

	var warnings []string
	latestResult, err := bo.s3Client.UploadLatestBoard(encoded, bo.cfg.BoardKey)
	if err != nil {
		// The display keeps showing the previous document; do not fail the
		// whole run for a publish hiccup.
		log.Printf("WARNING: Failed to upload latest board: %v", err)
		warnings = append(warnings, fmt.Sprintf("latest upload: %v", err))
	} else {
		run.UploadedFiles = append(run.UploadedFiles, latestResult.Key)
		log.Printf("Uploaded latest board: %s", latestResult.PublicURL)
	}

	backupResult, err := bo.s3Client.BackupBoard(encoded)
	if err != nil {
		log.Printf("WARNING: Failed to create backup: %v", err)
		warnings = append(warnings, fmt.Sprintf("backup upload: %v", err))
	} else {
		run.UploadedFiles = append(run.UploadedFiles, backupResult.Key)
		log.Printf("Created backup: %s", backupResult.Key)
	}

	// Step 5: Record the run and poke the displays
	run.CompletedAt = time.Now()
	run.Duration = time.Since(bo.startTime).Milliseconds()
	bo.recordRun(ctx, run)

	// Mirror the run report to S3 so operators can read it without table
	// access
	if runResult, err := bo.s3Client.UploadBoardRunWithTimestamp(run); err != nil {
		log.Printf("WARNING: Failed to upload run report: %v", err)
		warnings = append(warnings, fmt.Sprintf("run report upload: %v", err))
	} else {
		log.Printf("Uploaded run report: %s", runResult.Key)
	}

	err = bo.refreshService.InvokeDisplayRefresh(ctx, services.RefreshPayload{
		BoardKey:  bo.cfg.BoardKey,
		RunID:     bo.runID,
		Mode:      board.Mode,
		SlotCount: len(board.Slots),
	})
	if err != nil {
		log.Printf("WARNING: Display refresh invoke failed: %v", err)
		warnings = append(warnings, fmt.Sprintf("display refresh: %v", err))
	}

	return LambdaResponse{
		Success:        true,
		Message:        fmt.Sprintf("Published %d slots in %s mode from %d rows", len(board.Slots), board.Mode, stats.RowsTotal),
		BoardRunID:     bo.runID,
		Mode:           board.Mode,
		SlotCount:      len(board.Slots),
		ProcessingTime: time.Since(bo.startTime).Milliseconds(),
		Stats:          &stats,
		UploadedFiles:  run.UploadedFiles,
		Errors:         warnings,
	}, nil
}

// failRun records the failed run and builds the error response
func (bo *BoardOrchestrator) failRun(ctx context.Context, run *models.BoardRun, err error) (LambdaResponse, error) {
	log.Printf("ERROR: %v", err)

	run.Status = models.RunStatusFailed
	run.ErrorSummary = err.Error()
	run.CompletedAt = time.Now()
	run.Duration = time.Since(bo.startTime).Milliseconds()
	bo.recordRun(ctx, run)

	return LambdaResponse{
		Success:        false,
		Message:        err.Error(),
		BoardRunID:     bo.runID,
		ProcessingTime: time.Since(bo.startTime).Milliseconds(),
	}, err
}

// recordRun writes the run record to DynamoDB; history failures are logged,
// never fatal
func (bo *BoardOrchestrator) recordRun(ctx context.Context, run *models.BoardRun) {
	if err := bo.dynamoService.CreateBoardRun(ctx, run); err != nil {
		log.Printf("WARNING: Failed to record board run: %v", err)
	}
}

// HandleLambdaEvent is the main Lambda handler function
func HandleLambdaEvent(ctx context.Context, event LambdaEvent) (LambdaResponse, error) {
	start := time.Now()

	log.Printf("Lambda function started with event: %+v", event)

	orchestrator, err := NewBoardOrchestrator(ctx)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to initialize orchestrator: %v", err)
		log.Printf("ERROR: %s", errorMsg)
		return LambdaResponse{
			Success:        false,
			Message:        errorMsg,
			ProcessingTime: time.Since(start).Milliseconds(),
		}, err
	}

	// Determine trigger type
	triggerType := event.TriggerType
	if triggerType == "" {
		if event.Source == "aws.events" {
			triggerType = models.TriggerTypeScheduled
		} else {
			triggerType = models.TriggerTypeManual
		}
	}

	log.Printf("Starting board refresh with trigger type: %s", triggerType)

	response, err := orchestrator.RefreshBoard(ctx, triggerType)
	if err != nil {
		return response, err
	}

	log.Printf("Lambda function completed successfully: %s", response.Message)
	log.Printf("Total processing time: %dms", response.ProcessingTime)

	return response, nil
}

// main is the entry point for the Lambda function
func main() {
	lambda.Start(HandleLambdaEvent)
}
