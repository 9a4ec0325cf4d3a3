package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/reachronakofficial756/excelSort/internal/customers/service"
	httputil "github.com/reachronakofficial756/excelSort/pkg/http"
	"github.com/reachronakofficial756/excelSort/pkg/logger"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Dataset string `json:"dataset,omitempty"`
	Pages   int    `json:"pages,omitempty"`
}

type HealthHandler struct {
	service service.CustomerService
	log     *logger.Logger
}

func NewHealthHandler(service service.CustomerService, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		log:     log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

// Ready reports whether the startup load produced a usable snapshot. The
// dataset never recovers in-process, so a 503 here means the pod needs a
// restart with readable source files.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !h.service.Ready() {
		h.log.Warn("Readiness check failed: no customer data loaded",
			"path", r.URL.Path,
		)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:  "unavailable",
			Dataset: "empty",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "ready",
		Dataset: "ok",
		Pages:   h.service.TotalPages(),
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
