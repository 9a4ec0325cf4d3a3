package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/reachronakofficial756/excelSort/pkg/model"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "excelsort_http_requests_total", Help: "HTTP requests"},
		[]string{"route", "status"},
	)
	RequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "excelsort_http_request_duration_seconds", Help: "HTTP request latency"},
	)
	Searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "excelsort_searches_total", Help: "Mobile search outcomes"},
		[]string{"outcome"},
	)
	DatasetPages = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "excelsort_dataset_pages", Help: "Routable customer pages in the snapshot"},
	)
	DatasetRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "excelsort_dataset_rows", Help: "Rows loaded per source table"},
		[]string{"table"},
	)
	DatasetMatched = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "excelsort_dataset_matched_phones", Help: "Phones present in both tables"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests, RequestDuration, Searches, DatasetPages, DatasetRows, DatasetMatched)
}

// RecordDataset publishes the snapshot shape once after the startup load.
// The gauges never move again for the process lifetime.
func RecordDataset(stats model.DatasetStats) {
	DatasetPages.Set(float64(stats.TotalPages))
	DatasetMatched.Set(float64(stats.Matched))
	DatasetRows.WithLabelValues("leads").Set(float64(stats.LeadRows))
	DatasetRows.WithLabelValues("orders").Set(float64(stats.OrderRows))
}
