package http

import (
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	Timeout            time.Duration
	Retries            int
	RetryWait          time.Duration
	InsecureSkipVerify bool

	// Observe, when set, is called once per attempt with the method, the status code
	// (0 on transport error) and the attempt start time.
	Observe func(method string, status int, started time.Time)
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}
