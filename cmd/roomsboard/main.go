package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/config"
	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
	"github.com/kmchale1974/raec-rooms-board-sub000/internal/pipeline"
)

// roomsboard runs the normalization pipeline against a local export file.
// It exists for operators and for inspecting what a given export would put
// on the displays, without touching S3.
func main() {
	_ = godotenv.Load(".env")

	inPath := flag.String("in", "", "path to the reservation export CSV (required)")
	outPath := flag.String("out", "", "path to write the board JSON (default stdout)")
	nowText := flag.String("now", "", "wall clock for staleness filtering, RFC3339 (default current time)")
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %s: %v", cfg.Timezone, err)
	}

	now := time.Now().In(location)
	if *nowText != "" {
		now, err = time.Parse(time.RFC3339, *nowText)
		if err != nil {
			log.Fatalf("Failed to parse -now %q: %v", *nowText, err)
		}
		now = now.In(location)
	}

	file, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("Failed to open export: %v", err)
	}
	defer file.Close()

	rows, missing, err := pipeline.ReadExport(file)
	if err != nil {
		log.Fatalf("Failed to read export: %v", err)
	}

	board, stats := pipeline.Run(rows, missing, now, pipeline.OptionsFromConfig(cfg))
	pipeline.LogRunSummary(models.Mode(board.Mode), stats)

	encoded, err := pipeline.EncodeBoard(board)
	if err != nil {
		log.Fatalf("Failed to encode board: %v", err)
	}

	if *outPath == "" {
		fmt.Print(string(encoded))
		return
	}

	if err := os.WriteFile(*outPath, encoded, 0o644); err != nil {
		log.Fatalf("Failed to write board: %v", err)
	}
	log.Printf("Wrote %d slots to %s", len(board.Slots), *outPath)
}
