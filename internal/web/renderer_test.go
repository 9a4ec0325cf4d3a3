package web

import (
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/reachronakofficial756/excelSort/pkg/logger"
	"github.com/reachronakofficial756/excelSort/pkg/model"
)

func testView() *model.CustomerView {
	return &model.CustomerView{
		Phone:        "9876543210",
		DisplayPhone: "+919876543210",
		Name:         "Asha Rao",
		Leads: []model.LeadRecord{
			{RowIndex: 0, Name: "Asha Rao", PresentAddress: "12 MG Road", AltNumber: "9812345678"},
		},
		Orders: []model.OrderRecord{
			{RowIndex: 0, CustomerName: "Asha", Restaurant: "Spice Villa", OrderValue: 450.75, OrderTime: "2023-01-15 19:30", City: "Bengaluru"},
		},
		TotalOrders:   1,
		AvgOrderValue: 450.75,
		PrimaryCity:   "Bengaluru",
		Active:        true,
	}
}

func TestRenderer_Customer(t *testing.T) {
	r, err := NewRenderer(logger.Discard())
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}

	rec := httptest.NewRecorder()
	r.Customer(rec, CustomerPageData{
		CurrentPage: 2,
		TotalPages:  3,
		PageNumbers: PageNumbers(3),
		Customer:    testView(),
	})

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"Asha Rao",
		"+919876543210",
		"Spice Villa",
		"450.75",
		"Bengaluru",
		`href="/customer/1"`,
		`href="/customer/3"`,
		"2 of 3",
		"Prev",
		"Next",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}

	// current page renders as text, not a link
	if strings.Contains(body, `href="/customer/2"`) {
		t.Error("current page should not be a link")
	}
	if strings.Contains(body, "not found") {
		t.Error("not-found banner should be absent by default")
	}
}

func TestRenderer_CustomerNotFoundBanner(t *testing.T) {
	r, err := NewRenderer(logger.Discard())
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}

	rec := httptest.NewRecorder()
	r.Customer(rec, CustomerPageData{
		CurrentPage: 1,
		TotalPages:  1,
		PageNumbers: PageNumbers(1),
		NotFound:    true,
		Customer:    testView(),
	})

	if !strings.Contains(rec.Body.String(), "was not found") {
		t.Error("banner missing when NotFound is set")
	}
}

func TestRenderer_EscapesUserData(t *testing.T) {
	r, err := NewRenderer(logger.Discard())
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}

	view := testView()
	view.Name = `<script>alert(1)</script>`

	rec := httptest.NewRecorder()
	r.Customer(rec, CustomerPageData{
		CurrentPage: 1,
		TotalPages:  1,
		PageNumbers: PageNumbers(1),
		Customer:    view,
	})

	if strings.Contains(rec.Body.String(), "<script>alert(1)") {
		t.Error("names from the export must be escaped")
	}
}

func TestRenderer_Error(t *testing.T) {
	r, err := NewRenderer(logger.Discard())
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}

	rec := httptest.NewRecorder()
	r.Error(rec, 404, "Page not found")

	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "404") || !strings.Contains(body, "Page not found") {
		t.Errorf("body = %q", body)
	}
}

func TestPageNumbers(t *testing.T) {
	if got := PageNumbers(3); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("PageNumbers(3) = %v", got)
	}
	if got := PageNumbers(0); len(got) != 0 {
		t.Errorf("PageNumbers(0) = %v", got)
	}
}
