package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/config"
	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
	"github.com/kmchale1974/raec-rooms-board-sub000/internal/pipeline"
	"github.com/kmchale1974/raec-rooms-board-sub000/internal/services"
)

// labeladvisor reads a local export, collects the facility labels the
// classifier could not map, and asks the advisor for proposed room mappings.
// The output is review material for extending the rule table; nothing it
// produces feeds the board directly.
func main() {
	_ = godotenv.Load(".env")

	inPath := flag.String("in", "", "path to the reservation export CSV (required)")
	model := flag.String("model", "", "override the OpenAI model")
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
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
	if len(missing) > 0 {
		log.Fatalf("Export is missing columns %v; nothing to classify", missing)
	}

	_, stats := pipeline.Run(rows, nil, time.Now(), pipeline.OptionsFromConfig(cfg))
	if len(stats.UnmappedLabels) == 0 {
		fmt.Println("All facility labels mapped; nothing to review.")
		return
	}

	log.Printf("Found %d unmapped labels: %v", len(stats.UnmappedLabels), stats.UnmappedLabels)

	advisor := services.NewLabelAdvisor()
	if *model != "" {
		advisor.SetModel(*model)
	}

	// Offer both catalogs so the advisor can place labels for either floor
	// configuration.
	var roomIDs []string
	for _, room := range models.RoomCatalog(models.ModeCourt) {
		roomIDs = append(roomIDs, room.ID)
	}
	for _, room := range models.RoomCatalog(models.ModeTurf) {
		if room.Group == models.GroupFieldhouse {
			roomIDs = append(roomIDs, room.ID)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	response, err := advisor.SuggestRoomMappings(ctx, stats.UnmappedLabels, roomIDs)
	if err != nil {
		log.Fatalf("Advisor request failed: %v", err)
	}

	fmt.Printf("Request %s (%d tokens, %dms)\n\n", response.RequestID, response.TokensUsed, response.ProcessingMS)
	for _, suggestion := range response.Suggestions {
		fmt.Printf("%-40s -> %v  [%s]\n", suggestion.Label, suggestion.RoomIDs, suggestion.Confidence)
		if suggestion.Rationale != "" {
			fmt.Printf("%-40s    %s\n", "", suggestion.Rationale)
		}
	}
}
