package config

import "time"

const (
	DefaultLeadFile    = "SDR_FILE_CLEANED.xlsx"
	DefaultOrderFile   = "Zomato_File.xlsx"
	DefaultLandingFile = "index.html"

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	// Rendered pages never go stale (the snapshot is immutable); the TTL
	// only bounds cache memory.
	DefaultPageCacheTTL = 5 * time.Minute

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100
)
