package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(204))
	assert.Equal(t, "4xx", statusClass(404))
	assert.Equal(t, "5xx", statusClass(503))
	assert.Equal(t, "error", statusClass(0))
}

func TestObservePageFetch(t *testing.T) {
	before := testutil.ToFloat64(PageFetchTotal.WithLabelValues("volumes", "error"))

	ObservePageFetch("volumes", errors.New("boom"))

	assert.Equal(t, before+1, testutil.ToFloat64(PageFetchTotal.WithLabelValues("volumes", "error")))
}

func TestObserveSGSRequest(t *testing.T) {
	ObserveSGSRequest("GET", 200, time.Now())

	assert.Equal(t, 1, testutil.CollectAndCount(SGSRequestDuration))
}
