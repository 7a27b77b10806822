package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	almaRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alma_requests_total",
		Help: "Alma API requests by endpoint and response code",
	}, []string{"endpoint", "code"})

	almaLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "alma_request_duration_seconds",
		Help:    "Alma API request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

func observeAlmaRequest(path string, reqErr *RequestError, elapsed time.Duration) {
	code := "200"
	if reqErr != nil {
		code = strconv.Itoa(reqErr.StatusCode)
	}
	ep := almaEndpoint(path)
	almaRequests.WithLabelValues(ep, code).Inc()
	almaLatency.WithLabelValues(ep).Observe(elapsed.Seconds())
}

// almaEndpoint reduces a request path to a low cardinality label,
// e.g. /bibs/991234/holdings/2234/items becomes /bibs/:id/holdings/:id/items
func almaEndpoint(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if parts[0] != "bibs" {
		return path
	}
	for i := range parts {
		if i%2 == 1 && parts[i] != "ALL" {
			parts[i] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}
