package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	QueryPrimary  = "primary"
	QueryFallback = "fallback"
)

var (
	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Catalog requests by query kind and outcome",
		},
		[]string{"query", "outcome"},
	)

	RecommendationFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_fetches_total",
			Help: "Recommendation resolutions that reached the catalog, by mood",
		},
		[]string{"mood"},
	)

	RecommendationRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Recommendation lookups including memoized ones",
		},
	)
)

// RecordCatalogRequest counts one catalog call.
func RecordCatalogRequest(query string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	CatalogRequests.WithLabelValues(query, outcome).Inc()
}

func RegisterHandler(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
