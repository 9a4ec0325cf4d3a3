package main

import (
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/reachronakofficial756/excelSort/internal/customers/handler"
	"github.com/reachronakofficial756/excelSort/internal/customers/repository"
	"github.com/reachronakofficial756/excelSort/internal/customers/service"
	"github.com/reachronakofficial756/excelSort/internal/customers/validator"
	"github.com/reachronakofficial756/excelSort/internal/dataset"
	"github.com/reachronakofficial756/excelSort/internal/observability"
	"github.com/reachronakofficial756/excelSort/internal/web"
	"github.com/reachronakofficial756/excelSort/pkg/app"
	"github.com/reachronakofficial756/excelSort/pkg/config"
)

const ServiceName = "profiles"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting customer profiles service")

	snap := loadSnapshot(cfg)

	observability.Register(prometheus.DefaultRegisterer)
	observability.RecordDataset(snap.Stats())

	customerService := initServices(cfg, snap)

	renderer, err := web.NewRenderer(cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to parse page templates", "error", err)
	}

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewPageHandler(customerService, renderer, cfg.LandingFile, cfg.Log),
		handler.NewCustomerHandler(customerService, cfg.Log),
		handler.NewHealthHandler(customerService, cfg.Log),
	)
	serverApp.Run()
}

// loadSnapshot reads both exports once at startup. A failed load is not
// fatal: the server comes up with an empty snapshot and every data route
// reports the unavailable condition until a restart with readable files.
func loadSnapshot(cfg *config.Config) *dataset.Snapshot {
	snap, err := dataset.Load(cfg.LeadFile, cfg.OrderFile)
	if err != nil {
		cfg.Log.Error("Failed to load source tables, serving empty dataset",
			"lead_file", cfg.LeadFile,
			"order_file", cfg.OrderFile,
			"error", err,
		)
		return dataset.EmptySnapshot()
	}

	stats := snap.Stats()
	cfg.Log.Info("Source tables loaded",
		"lead_rows", stats.LeadRows,
		"order_rows", stats.OrderRows,
		"matched", stats.Matched,
		"lead_only", stats.LeadOnly,
		"pages", stats.TotalPages,
	)
	return snap
}

func initServices(cfg *config.Config, snap *dataset.Snapshot) service.CustomerService {
	searchValidator := validator.NewSearchValidator(cfg.Log)
	customerRepo := repository.NewSnapshotCustomerRepository(snap)
	customerService := service.NewCustomerService(
		customerRepo,
		searchValidator,
		cfg,
	)

	cfg.Log.Info("Customer service initialized", "pages", customerService.TotalPages())
	return customerService
}
