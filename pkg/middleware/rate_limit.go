package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"sync"
	"time"

	"github.com/reachronakofficial756/excelSort/pkg/logger"
)

type MobileExtractor func(r *http.Request) string

// MobileRateLimiter throttles lookups per submitted mobile number using a
// sliding window, so one number cannot be hammered through the search
// endpoints regardless of source address.
type MobileRateLimiter struct {
	mu              sync.RWMutex
	requests        map[string][]time.Time
	limit           int
	window          time.Duration
	mobileExtractor MobileExtractor
	log             *logger.Logger
	stopCh          chan struct{}
}

func NewMobileRateLimiter(limit int, window time.Duration, extractor MobileExtractor, log *logger.Logger) *MobileRateLimiter {
	limiter := &MobileRateLimiter{
		requests:        make(map[string][]time.Time),
		limit:           limit,
		window:          window,
		mobileExtractor: extractor,
		log:             log,
		stopCh:          make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

func (rl *MobileRateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for mobile, timestamps := range rl.requests {
				if len(timestamps) == 0 || time.Since(timestamps[len(timestamps)-1]) > rl.window {
					delete(rl.requests, mobile)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *MobileRateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *MobileRateLimiter) Allow(mobile string) bool {
	if mobile == "" {
		return true
	}

	now := time.Now()

	rl.mu.RLock()
	timestamps := rl.requests[mobile]
	rl.mu.RUnlock()

	validTimestamps := make([]time.Time, 0)
	for _, ts := range timestamps {
		if now.Sub(ts) < rl.window {
			validTimestamps = append(validTimestamps, ts)
		}
	}

	if len(validTimestamps) >= rl.limit {
		return false
	}

	validTimestamps = append(validTimestamps, now)

	rl.mu.Lock()
	rl.requests[mobile] = validTimestamps
	rl.mu.Unlock()

	return true
}

func MobileRateLimit(limiter *MobileRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mobile := extractMobileNumber(r, limiter.mobileExtractor)

			if mobile == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.Allow(mobile) {
				rejectRateLimited(w, limiter.log, r, mobile)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractMobileNumber(r *http.Request, extractor MobileExtractor) string {
	if extractor == nil {
		return DefaultMobileExtractor(r)
	}
	return extractor(r)
}

func rejectRateLimited(w http.ResponseWriter, log *logger.Logger, r *http.Request, mobile string) {
	requestID := ""
	if rid := r.Context().Value(RequestIDKey); rid != nil {
		requestID = rid.(string)
	}

	log.Warn("Rate limit exceeded",
		"request_id", requestID,
		"mobile", mobile,
		"path", r.URL.Path,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write([]byte(`{"error":"Rate limit exceeded"}`))
}

// DefaultMobileExtractor pulls the searched number out of a POST body. Form
// submissions are parsed in place (ParseForm caches the values for the
// handler); JSON bodies are read and restored so the handler still sees them.
func DefaultMobileExtractor(r *http.Request) string {
	if r.Method != http.MethodPost {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return r.PostFormValue("mobile")
	case "application/json":
		body, err := readAndRestoreBody(r)
		if err != nil {
			return ""
		}
		var payload struct {
			Mobile string `json:"mobile"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return ""
		}
		return payload.Mobile
	default:
		return ""
	}
}

func readAndRestoreBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
