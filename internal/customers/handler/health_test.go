package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	"github.com/reachronakofficial756/excelSort/pkg/logger"
)

func newHealthRouter(svc *mockCustomerService) *httprouter.Router {
	router := httprouter.New()
	NewHealthHandler(svc, logger.Discard()).RegisterRoutes(router)
	return router
}

func TestHealth(t *testing.T) {
	router := newHealthRouter(&mockCustomerService{ready: false})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	// liveness is about the process, not the dataset
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestReady(t *testing.T) {
	router := newHealthRouter(&mockCustomerService{ready: true, totalPages: 17})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "ready" || resp.Pages != 17 {
		t.Errorf("response = %+v", resp)
	}
}

func TestReady_NoData(t *testing.T) {
	router := newHealthRouter(&mockCustomerService{ready: false})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "unavailable" || resp.Dataset != "empty" {
		t.Errorf("response = %+v", resp)
	}
}
