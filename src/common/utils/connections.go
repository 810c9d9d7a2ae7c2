package utils

import (
	"net/http"
	"os"
	"strconv"
	"time"
)

// NewHTTPClient returns the client shared by every upstream call. It holds
// only a connection pool and is safe for concurrent use.
func NewHTTPClient() *http.Client {
	maxIdle := 16
	if v := os.Getenv("UPSTREAM_MAX_IDLE_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxIdle = parsed
		}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = maxIdle
	transport.IdleConnTimeout = 90 * time.Second

	return &http.Client{Transport: transport}
}
