package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/reachronakofficial756/excelSort/internal/dataset"
	"github.com/reachronakofficial756/excelSort/pkg/config"
)

const JobName = "datacheck"

// datacheck loads both exports with the same loader the server uses and
// reports the snapshot shape. Run it after replacing the files to catch
// renamed columns or unreadable sheets before a deploy.
func main() {
	_ = godotenv.Load()

	cfg := config.Load(JobName)
	cfg.Log.Info("Starting dataset check job")

	snap, err := dataset.Load(cfg.LeadFile, cfg.OrderFile)
	if err != nil {
		cfg.Log.Error("Source tables failed to load",
			"lead_file", cfg.LeadFile,
			"order_file", cfg.OrderFile,
			"error", err,
		)
		os.Exit(1)
	}

	stats := snap.Stats()
	cfg.Log.Info("Source tables loaded",
		"lead_rows", stats.LeadRows,
		"order_rows", stats.OrderRows,
		"matched", stats.Matched,
		"lead_only", stats.LeadOnly,
		"pages", stats.TotalPages,
	)

	if snap.Empty() {
		cfg.Log.Error("No routable customers: every row is missing a usable mobile number")
		os.Exit(1)
	}

	fmt.Printf("Dataset check passed: %d customer pages ready.\n", stats.TotalPages)
}
