// Package web renders the server-side HTML profile pages. Templates are
// compiled into the binary; the landing page stays a plain file on disk so
// it can be swapped without a rebuild.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/reachronakofficial756/excelSort/pkg/logger"
	"github.com/reachronakofficial756/excelSort/pkg/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// CustomerPageData is the full context of one rendered profile page.
type CustomerPageData struct {
	CurrentPage int
	TotalPages  int
	PageNumbers []int
	NotFound    bool
	Customer    *model.CustomerView
}

func (d CustomerPageData) HasPrev() bool { return d.CurrentPage > 1 }

func (d CustomerPageData) PrevPage() int { return d.CurrentPage - 1 }

func (d CustomerPageData) HasNext() bool { return d.CurrentPage < d.TotalPages }

func (d CustomerPageData) NextPage() int { return d.CurrentPage + 1 }

type ErrorPageData struct {
	Status  int
	Message string
}

type Renderer struct {
	tmpl *template.Template
	log  *logger.Logger
}

func NewRenderer(log *logger.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl, log: log}, nil
}

// Customer writes the profile page. Rendering goes through a buffer first so
// a template failure can still produce a clean 500.
func (r *Renderer) Customer(w http.ResponseWriter, data CustomerPageData) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "customer.html", data); err != nil {
		r.log.Error("Failed to render customer page",
			"page", data.CurrentPage,
			"error", err,
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		r.log.Error("Failed to write customer page", "error", err)
	}
}

func (r *Renderer) Error(w http.ResponseWriter, status int, message string) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "error.html", ErrorPageData{Status: status, Message: message}); err != nil {
		r.log.Error("Failed to render error page", "status", status, "error", err)
		http.Error(w, message, status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.log.Error("Failed to write error page", "error", err)
	}
}

// PageNumbers is the 1..total pager range shown under every profile.
func PageNumbers(total int) []int {
	nums := make([]int, total)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}
