package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// SGSRequestDuration tracks calls to the storage-gateway service.
	SGSRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sg_console",
		Name:      "sgs_request_duration_seconds",
		Help:      "Duration of storage-gateway API calls",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})

	// PageFetchTotal counts paged list fetches by resource and outcome.
	PageFetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sg_console",
		Name:      "page_fetch_total",
		Help:      "Paged list fetches by resource and outcome",
	}, []string{"resource", "outcome"})
)

func init() {
	prometheus.MustRegister(SGSRequestDuration, PageFetchTotal)
}

// ObserveSGSRequest records one storage-gateway call. status 0 means the request never got a response.
func ObserveSGSRequest(method string, status int, started time.Time) {
	SGSRequestDuration.WithLabelValues(method, statusClass(status)).Observe(time.Since(started).Seconds())
}

// ObservePageFetch records one paged list fetch.
func ObservePageFetch(resource string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	PageFetchTotal.WithLabelValues(resource, outcome).Inc()
}

func statusClass(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
