// Package external provides adapters for the Open-Meteo forecast and
// geocoding APIs together with logging and rate limiting decorators.
package external

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"flosscast.app/internal/ports"
	"flosscast.app/pkg/errors"
	"flosscast.app/pkg/jsonx"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "flosscast/1.0"
	// maxErrorBody bounds how much of an error response ends up in the log.
	maxErrorBody = 512
)

// openMeteoClient issues GET requests and parses the JSON object answer.
type openMeteoClient struct {
	name      string
	client    *http.Client
	userAgent string
	logger    ports.Logger
}

func newOpenMeteoClient(name string, timeout time.Duration, userAgent string, logger ports.Logger) openMeteoClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return openMeteoClient{
		name:      name,
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		logger:    logger,
	}
}

// getJSON fetches url. Transport failures and non-2xx answers are network
// errors; a body that is not a JSON object is a parse error.
func (c openMeteoClient) getJSON(ctx context.Context, url string) (*jsonx.Object, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewNetworkError(fmt.Sprintf("failed to build %s request", c.name), err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(fmt.Sprintf("failed to call %s", c.name), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close response body", ports.F("provider", c.name), ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("Upstream returned error status",
			ports.F("provider", c.name),
			ports.F("status", resp.StatusCode),
			ports.F("body", string(body)))
		return nil, errors.NewNetworkError(fmt.Sprintf("%s returned status %d", c.name, resp.StatusCode), nil)
	}

	obj, err := jsonx.ParseReader(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.NewNetworkError(fmt.Sprintf("reading %s response aborted", c.name), ctxErr)
		}
		return nil, err
	}
	return obj, nil
}
