package handler

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/reachronakofficial756/excelSort/internal/customers/service"
	"github.com/reachronakofficial756/excelSort/internal/web"
	apperrors "github.com/reachronakofficial756/excelSort/pkg/errors"
	httputil "github.com/reachronakofficial756/excelSort/pkg/http"
	"github.com/reachronakofficial756/excelSort/pkg/logger"
)

const noDataMessage = "No matching mobile numbers found in both datasets."

// PageHandler serves the browser-facing pages: the landing file, the search
// form, and the per-customer profile pages.
type PageHandler struct {
	service  service.CustomerService
	renderer *web.Renderer
	landing  string
	log      *logger.Logger
}

func NewPageHandler(service service.CustomerService, renderer *web.Renderer, landingFile string, log *logger.Logger) *PageHandler {
	return &PageHandler{
		service:  service,
		renderer: renderer,
		landing:  landingFile,
		log:      log,
	}
}

// Landing serves the landing file from disk so it can be edited without a
// restart. When the file is unreadable it falls back to the first profile
// page, or reports the no-data condition if there is nothing to show.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	content, err := os.ReadFile(h.landing)
	if err == nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(content); err != nil {
			h.log.Error("failed to write landing page", "error", err)
		}
		return
	}

	if !h.service.Ready() {
		h.renderer.Error(w, http.StatusInternalServerError, noDataMessage)
		return
	}
	http.Redirect(w, r, "/customer/1", http.StatusFound)
}

// Search resolves a submitted mobile number to its profile page. A blank
// form goes back to the landing page; a number with no match lands on the
// first profile with a not-found banner.
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !h.service.Ready() {
		h.renderer.Error(w, http.StatusInternalServerError, noDataMessage)
		return
	}

	mobile := strings.TrimSpace(r.PostFormValue("mobile"))
	if mobile == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	result, err := h.service.Search(mobile)
	if err != nil {
		switch apperrors.AsAppError(err).Code {
		case apperrors.CodeNotFound, apperrors.CodeValidation:
			http.Redirect(w, r, "/customer/1?not_found=1", http.StatusFound)
		case apperrors.CodeUnavailable:
			h.renderer.Error(w, http.StatusInternalServerError, noDataMessage)
		default:
			h.log.Error("search failed", "mobile", mobile, "error", err)
			h.renderer.Error(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/customer/%d", result.Page), http.StatusFound)
}

func (h *PageHandler) CustomerPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	page, err := httputil.ExtractPage(ps.ByName("page"))
	if err != nil {
		h.renderer.Error(w, http.StatusNotFound, "Page not found")
		return
	}

	view, err := h.service.ViewByPage(page)
	if err != nil {
		switch apperrors.AsAppError(err).Code {
		case apperrors.CodeUnavailable:
			h.renderer.Error(w, http.StatusInternalServerError, noDataMessage)
		case apperrors.CodeNotFound:
			h.renderer.Error(w, http.StatusNotFound, "Page not found")
		default:
			h.log.Error("failed to build customer page", "page", page, "error", err)
			h.renderer.Error(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	total := h.service.TotalPages()
	h.renderer.Customer(w, web.CustomerPageData{
		CurrentPage: page,
		TotalPages:  total,
		PageNumbers: web.PageNumbers(total),
		NotFound:    r.URL.Query().Get("not_found") == "1",
		Customer:    view,
	})
}

func (h *PageHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Landing)
	router.POST("/search", h.Search)
	router.GET("/customer/:page", h.CustomerPage)
}
