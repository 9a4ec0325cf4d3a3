package common

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/reachronakofficial756/excelSort/internal/customers/handler"
	"github.com/reachronakofficial756/excelSort/internal/customers/repository"
	"github.com/reachronakofficial756/excelSort/internal/customers/service"
	"github.com/reachronakofficial756/excelSort/internal/customers/validator"
	"github.com/reachronakofficial756/excelSort/internal/dataset"
	"github.com/reachronakofficial756/excelSort/internal/web"
	"github.com/reachronakofficial756/excelSort/pkg/app"
	"github.com/reachronakofficial756/excelSort/pkg/client"
	"github.com/reachronakofficial756/excelSort/pkg/config"
	"github.com/reachronakofficial756/excelSort/pkg/logger"
)

// SuiteOptions shape the in-process server a test file spins up. Zero values
// fall back to the default fixture tables and limits generous enough to
// never trip during a normal run.
type SuiteOptions struct {
	LeadRows  [][]string
	OrderRows [][]string

	// Landing is literal HTML written next to the fixtures. Empty means no
	// landing file on disk, which exercises the fallback redirect.
	Landing string

	// RateLimitRequests of zero means 1000.
	RateLimitRequests int

	// EmptyDataset starts the server the way a failed startup load leaves
	// it: an empty snapshot and every data route unavailable.
	EmptyDataset bool
}

// IntegrationTestSuite runs the full service in one process: real routers,
// the real middleware stacks, and a snapshot loaded from fixture files.
type IntegrationTestSuite struct {
	Config    *config.Config
	Server    *httptest.Server
	Customers *client.CustomerClient
}

func NewIntegrationTestSuite(t *testing.T, opts SuiteOptions) *IntegrationTestSuite {
	t.Helper()

	cfg := testConfig(t, opts)
	writeFixtures(t, cfg, opts)

	snap := fixtureSnapshot(t, cfg, opts)

	searchValidator := validator.NewSearchValidator(cfg.Log)
	customerRepo := repository.NewSnapshotCustomerRepository(snap)
	customerService := service.NewCustomerService(customerRepo, searchValidator, cfg)

	renderer, err := web.NewRenderer(cfg.Log)
	if err != nil {
		t.Fatalf("Failed to parse page templates: %v", err)
	}

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewPageHandler(customerService, renderer, cfg.LandingFile, cfg.Log),
		handler.NewCustomerHandler(customerService, cfg.Log),
		handler.NewHealthHandler(customerService, cfg.Log),
	)
	t.Cleanup(serverApp.StopBackground)

	server := httptest.NewServer(serverApp.Handler())
	t.Cleanup(server.Close)

	return &IntegrationTestSuite{
		Config:    cfg,
		Server:    server,
		Customers: client.NewCustomerClient(server.URL),
	}
}

func testConfig(t *testing.T, opts SuiteOptions) *config.Config {
	t.Helper()

	rateLimit := opts.RateLimitRequests
	if rateLimit == 0 {
		rateLimit = 1000
	}

	dir := t.TempDir()
	return &config.Config{
		LeadFile:    filepath.Join(dir, "leads.csv"),
		OrderFile:   filepath.Join(dir, "orders.csv"),
		LandingFile: filepath.Join(dir, "index.html"),

		Port: "0",

		RateLimitRequests: rateLimit,
		RateLimitWindow:   time.Minute,

		RequestTimeout: 10 * time.Second,
		MaxRequestSize: 1 << 20,
		PageCacheTTL:   time.Minute,

		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     10 * time.Second,
		ShutdownTimeout: 5 * time.Second,

		Log: logger.Discard(),
	}
}

func writeFixtures(t *testing.T, cfg *config.Config, opts SuiteOptions) {
	t.Helper()

	leadRows := opts.LeadRows
	if leadRows == nil {
		leadRows = DefaultLeadRows()
	}
	orderRows := opts.OrderRows
	if orderRows == nil {
		orderRows = DefaultOrderRows()
	}

	WriteCSV(t, cfg.LeadFile, leadRows)
	WriteCSV(t, cfg.OrderFile, orderRows)
	if opts.Landing != "" {
		WriteFile(t, cfg.LandingFile, opts.Landing)
	}
}

func fixtureSnapshot(t *testing.T, cfg *config.Config, opts SuiteOptions) *dataset.Snapshot {
	t.Helper()

	if opts.EmptyDataset {
		return dataset.EmptySnapshot()
	}

	snap, err := dataset.Load(cfg.LeadFile, cfg.OrderFile)
	if err != nil {
		t.Fatalf("Failed to load fixture tables: %v", err)
	}
	return snap
}
