package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"
)

// The customer dataset never changes after startup, so rendered pages can be
// replayed from memory. The TTL only bounds memory, not staleness.

type PageCacheStore interface {
	Get(key string) (*CachedPage, bool)
	Set(key string, page *CachedPage)
	Stop() // Stop cleanup goroutines and release resources
}

type CachedPage struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	CreatedAt  time.Time
}

type InMemoryPageCache struct {
	mu     sync.RWMutex
	store  map[string]*CachedPage
	ttl    time.Duration
	stopCh chan struct{}
}

func NewInMemoryPageCache(ttl time.Duration) *InMemoryPageCache {
	cache := &InMemoryPageCache{
		store:  make(map[string]*CachedPage),
		ttl:    ttl,
		stopCh: make(chan struct{}),
	}

	go cache.cleanup()

	return cache
}

func (s *InMemoryPageCache) Get(key string) (*CachedPage, bool) {
	s.mu.RLock()
	page, exists := s.store[key]
	s.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if time.Since(page.CreatedAt) > s.ttl {
		s.mu.Lock()
		delete(s.store, key)
		s.mu.Unlock()
		return nil, false
	}

	return page, true
}

func (s *InMemoryPageCache) Set(key string, page *CachedPage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page.CreatedAt = time.Now()
	s.store[key] = page
}

func (s *InMemoryPageCache) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			for key, page := range s.store {
				if time.Since(page.CreatedAt) > s.ttl {
					delete(s.store, key)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

func (s *InMemoryPageCache) Stop() {
	close(s.stopCh)
}

type pageCapture struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (pc *pageCapture) WriteHeader(statusCode int) {
	pc.statusCode = statusCode
	pc.ResponseWriter.WriteHeader(statusCode)
}

func (pc *pageCapture) Write(b []byte) (int, error) {
	pc.body.Write(b)
	return pc.ResponseWriter.Write(b)
}

func PageCache(store PageCacheStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(r)

			if replayCachedPage(w, store, key) {
				return
			}

			capture := capturePage(w)
			next.ServeHTTP(capture, r)
			cacheRenderedPage(store, key, capture, w)
		})
	}
}

func cacheKey(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return r.URL.Path
	}
	return r.URL.Path + "?" + r.URL.RawQuery
}

func replayCachedPage(w http.ResponseWriter, store PageCacheStore, key string) bool {
	cached, found := store.Get(key)
	if !found {
		return false
	}

	for key, values := range cached.Headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(cached.StatusCode)
	_, _ = w.Write(cached.Body)
	return true
}

func capturePage(w http.ResponseWriter) *pageCapture {
	return &pageCapture{
		ResponseWriter: w,
		statusCode:     200,
		body:           &bytes.Buffer{},
	}
}

func cacheRenderedPage(store PageCacheStore, key string, capture *pageCapture, w http.ResponseWriter) {
	if !shouldCachePage(capture.statusCode) {
		return
	}

	cached := &CachedPage{
		StatusCode: capture.statusCode,
		Headers:    w.Header().Clone(),
		Body:       capture.body.Bytes(),
	}
	store.Set(key, cached)
}

func shouldCachePage(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
