package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// BrowserUserAgent is sent on every request; the upstream hosts reject
// clients that do not look like a browser.
const BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

const maxErrorBody = 4096

// Get issues a GET bounded by timeout and decodes the body into T.
func Get[T any](ctx context.Context, client *http.Client, url string, timeout time.Duration, logger *zap.SugaredLogger) (T, error) {
	var result T

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return result, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", BrowserUserAgent)
	req.Header.Set("Accept", "application/json")

	if logger != nil {
		logger.Debugw("upstream request", "url", url, "timeout", timeout)
	}

	resp, err := client.Do(req)
	if err != nil {
		return result, transportError(ctx, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return result, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode, Body: body}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, transportError(ctx, url, err)
	}

	if err := json.Unmarshal(body, &result); err != nil {
		var zero T
		return zero, &DeserializationError{URL: url, Err: err}
	}

	return result, nil
}

func transportError(ctx context.Context, url string, err error) error {
	return &TransportError{URL: url, Timeout: isTimeout(ctx, err), Err: err}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
