package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/config"
	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
	"github.com/kmchale1974/raec-rooms-board-sub000/internal/services"
)

// runhistory inspects recorded board runs and the currently published board
// document. Operators use it to answer "did this morning's refresh work"
// without opening the AWS console.
func main() {
	_ = godotenv.Load(".env")

	date := flag.String("date", "", "run date to query, YYYY-MM-DD (default today)")
	failedOnly := flag.Bool("failed", false, "list only runs that did not complete cleanly")
	runID := flag.String("run", "", "show one run by id")
	deleteID := flag.String("delete", "", "delete one run record by id")
	showBoard := flag.Bool("board", false, "summarize the currently published board document")
	pruneDays := flag.Int("prune-backups", 0, "delete board backups older than this many days")
	limit := flag.Int("limit", 25, "maximum runs to list")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %s: %v", cfg.Timezone, err)
	}

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	s3Client, err := services.NewS3ClientWithConfig(services.S3Config{
		BucketName: cfg.DataBucket,
	})
	if err != nil {
		log.Fatalf("Failed to initialize S3 client: %v", err)
	}

	dynamoService := services.NewDynamoDBService(dynamodb.NewFromConfig(awsCfg), cfg.BoardRunsTable)

	runDate := *date
	if runDate == "" {
		runDate = time.Now().In(location).Format("2006-01-02")
	}

	switch {
	case *showBoard:
		if err := summarizeBoard(s3Client, cfg.BoardKey); err != nil {
			log.Fatalf("Failed to summarize board: %v", err)
		}

	case *pruneDays > 0:
		if err := pruneBackups(s3Client, *pruneDays); err != nil {
			log.Fatalf("Failed to prune backups: %v", err)
		}

	case *deleteID != "":
		if err := dynamoService.DeleteBoardRun(ctx, runDate, *deleteID); err != nil {
			log.Fatalf("Failed to delete run %s: %v", *deleteID, err)
		}
		log.Printf("Deleted run %s (%s)", *deleteID, runDate)

	case *runID != "":
		run, err := dynamoService.GetBoardRun(ctx, runDate, *runID)
		if err != nil {
			log.Fatalf("Failed to get run %s: %v", *runID, err)
		}
		printRun(run)

	default:
		var runs []models.BoardRun
		if *failedOnly {
			runs, err = dynamoService.QueryFailedBoardRuns(ctx, runDate, int32(*limit))
		} else {
			runs, err = dynamoService.QueryBoardRunsByDate(ctx, runDate, int32(*limit))
		}
		if err != nil {
			log.Fatalf("Failed to query runs for %s: %v", runDate, err)
		}
		if len(runs) == 0 {
			fmt.Printf("No runs recorded for %s\n", runDate)
			return
		}
		for i := range runs {
			printRun(&runs[i])
		}
	}
}

// printRun writes one run record as a single scannable line plus its error
// summary when present.
func printRun(run *models.BoardRun) {
	fmt.Print(formatRun(run))
}

func formatRun(run *models.BoardRun) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %-9s  %-9s  mode=%-5s  slots=%-3d  rejected=%-3d  %dms\n",
		run.ID, run.Status, run.TriggerType, run.Mode,
		run.Stats.Slots, run.Stats.Rejections.Total(), run.Duration)
	if run.ErrorSummary != "" {
		fmt.Fprintf(&b, "    %s\n", run.ErrorSummary)
	}
	return b.String()
}

// summarizeBoard reports what the displays are showing right now.
func summarizeBoard(s3Client *services.S3Client, key string) error {
	exists, err := s3Client.FileExists(key)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Printf("No board published at %s\n", key)
		return nil
	}

	info, err := s3Client.GetFileInfo(key)
	if err != nil {
		return err
	}
	board, err := s3Client.DownloadBoard(key)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %d bytes  modified %s\n", info.Key, info.Size, info.LastModified.UTC().Format(time.RFC3339))
	fmt.Printf("mode=%s rooms=%d slots=%d window=%s-%s\n",
		board.Mode, len(board.Rooms), len(board.Slots),
		models.FormatMinute(board.DayStartMinute), models.FormatMinute(board.DayEndMinute))
	return nil
}

// pruneBackups removes backup documents older than the retention window.
func pruneBackups(s3Client *services.S3Client, days int) error {
	cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)

	files, err := s3Client.ListFiles("board/backups/")
	if err != nil {
		return err
	}

	removed := 0
	for _, file := range files {
		if file.Size == 0 || !file.LastModified.Before(cutoff) {
			continue
		}
		if err := s3Client.DeleteFile(file.Key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", file.Key, err)
		}
		removed++
	}

	log.Printf("Removed %d backups older than %d days", removed, days)
	return nil
}
