package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "github.com/reachronakofficial756/excelSort/pkg/errors"
	"github.com/reachronakofficial756/excelSort/pkg/logger"
	"github.com/reachronakofficial756/excelSort/pkg/model"
)

// Mock service for testing
type mockCustomerService struct {
	viewFunc       func(phone string) (*model.CustomerView, error)
	viewByPageFunc func(page int) (*model.CustomerView, error)
	searchFunc     func(mobile string) (*model.SearchResult, error)
	listFunc       func(limit int, offset int) ([]*model.CustomerSummary, int64, error)
	totalPages     int
	ready          bool
	stats          model.DatasetStats
}

func (m *mockCustomerService) View(phone string) (*model.CustomerView, error) {
	if m.viewFunc != nil {
		return m.viewFunc(phone)
	}
	return &model.CustomerView{Phone: phone}, nil
}

func (m *mockCustomerService) ViewByPage(page int) (*model.CustomerView, error) {
	if m.viewByPageFunc != nil {
		return m.viewByPageFunc(page)
	}
	return &model.CustomerView{}, nil
}

func (m *mockCustomerService) Search(mobile string) (*model.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(mobile)
	}
	return &model.SearchResult{}, nil
}

func (m *mockCustomerService) List(limit int, offset int) ([]*model.CustomerSummary, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(limit, offset)
	}
	return []*model.CustomerSummary{}, 0, nil
}

func (m *mockCustomerService) TotalPages() int { return m.totalPages }

func (m *mockCustomerService) Ready() bool { return m.ready }

func (m *mockCustomerService) Stats() model.DatasetStats { return m.stats }

func newAPIRouter(svc *mockCustomerService) *httprouter.Router {
	router := httprouter.New()
	NewCustomerHandler(svc, logger.Discard()).RegisterRoutes(router)
	return router
}

func TestList_Pagination(t *testing.T) {
	var receivedLimit, receivedOffset int
	svc := &mockCustomerService{
		listFunc: func(limit int, offset int) ([]*model.CustomerSummary, int64, error) {
			receivedLimit, receivedOffset = limit, offset
			return []*model.CustomerSummary{{Phone: "9876543210", Page: 3}}, 42, nil
		},
	}
	router := newAPIRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers?limit=2&offset=2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if receivedLimit != 2 || receivedOffset != 2 {
		t.Errorf("service received limit=%d offset=%d", receivedLimit, receivedOffset)
	}

	var resp struct {
		Data       []model.CustomerSummary `json:"data"`
		TotalCount int64                   `json:"total_count"`
		Limit      int                     `json:"limit"`
		Offset     int                     `json:"offset"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.TotalCount != 42 || len(resp.Data) != 1 || resp.Data[0].Page != 3 {
		t.Errorf("response = %+v", resp)
	}
}

func TestList_InvalidLimit(t *testing.T) {
	router := newAPIRouter(&mockCustomerService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers?limit=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestList_NoData(t *testing.T) {
	svc := &mockCustomerService{
		listFunc: func(int, int) ([]*model.CustomerSummary, int64, error) {
			return nil, 0, apperrors.Unavailable("Customer data")
		},
	}
	router := newAPIRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestGetByPage(t *testing.T) {
	svc := &mockCustomerService{
		viewByPageFunc: func(page int) (*model.CustomerView, error) {
			if page != 2 {
				t.Errorf("service received page %d", page)
			}
			return &model.CustomerView{Phone: "9876543210", Name: "Asha"}, nil
		},
	}
	router := newAPIRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers/page/2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "9876543210") {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestGetByPage_BadPageSegment(t *testing.T) {
	router := newAPIRouter(&mockCustomerService{})

	for _, raw := range []string{"abc", "0", "-1", "1.5"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers/page/"+raw, nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("page %q: status = %d, want 404", raw, rec.Code)
		}
	}
}

func TestGetByPage_OutOfRange(t *testing.T) {
	svc := &mockCustomerService{
		viewByPageFunc: func(page int) (*model.CustomerView, error) {
			return nil, apperrors.NotFound("page 99")
		},
	}
	router := newAPIRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers/page/99", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSearchAPI(t *testing.T) {
	svc := &mockCustomerService{
		searchFunc: func(mobile string) (*model.SearchResult, error) {
			return &model.SearchResult{Phone: "9876543210", Page: 7}, nil
		},
	}
	router := newAPIRouter(svc)

	body := strings.NewReader(`{"mobile": "+91 98765 43210"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/customers/search", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp struct {
		Data model.SearchResult `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data.Page != 7 || resp.Data.Phone != "9876543210" {
		t.Errorf("result = %+v", resp.Data)
	}
}

func TestSearchAPI_InvalidBody(t *testing.T) {
	router := newAPIRouter(&mockCustomerService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/customers/search", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSearchAPI_Statuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"miss", apperrors.NotFound("Customer 1234567890"), http.StatusNotFound},
		{"invalid", apperrors.Validation("Search validation failed", nil), http.StatusUnprocessableEntity},
		{"no data", apperrors.Unavailable("Customer data"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCustomerService{
				searchFunc: func(string) (*model.SearchResult, error) { return nil, tt.err },
			}
			router := newAPIRouter(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/customers/search", strings.NewReader(`{"mobile":"x1"}`)))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestStatsEndpoint(t *testing.T) {
	svc := &mockCustomerService{
		stats: model.DatasetStats{Matched: 12, LeadOnly: 30, TotalPages: 42},
	}
	router := newAPIRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data model.DatasetStats `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data.Matched != 12 || resp.Data.TotalPages != 42 {
		t.Errorf("stats = %+v", resp.Data)
	}
}
