package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bradykim7/mealplanner/internal/models"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// maxDocumentSize caps how much of a catalog response is read
const maxDocumentSize = 8 << 20

// HTTPSource fetches the catalog document from a URL on every Load.
// A failed request is reported as is; there is no retry.
type HTTPSource struct {
	URL     string
	Client  *http.Client
	Logger  *zap.Logger
	Headers map[string]string
}

// NewHTTPSource creates a new HTTP catalog source
func NewHTTPSource(url string, timeout time.Duration, log *zap.Logger) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPSource{
		URL: url,
		Client: &http.Client{
			Timeout: timeout,
		},
		Logger:  log.Named("http-catalog"),
		Headers: getDefaultHeaders(),
	}
}

// Name returns the name of the source
func (s *HTTPSource) Name() string {
	return "http"
}

// Load retrieves and decodes the catalog document
func (s *HTTPSource) Load(ctx context.Context) (models.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", models.ErrFetch, err)
	}

	for key, value := range s.Headers {
		req.Header.Set(key, value)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Logger.Warn("HTTP request failed", zap.Error(err), zap.String("url", s.URL))
		return nil, fmt.Errorf("%w: %v", models.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.Logger.Warn("Non-OK HTTP status",
			zap.Int("status", resp.StatusCode),
			zap.String("url", s.URL))
		return nil, fmt.Errorf("%w: status code %d", models.ErrFetch, resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", models.ErrFetch, err)
	}

	s.Logger.Debug("Fetched catalog",
		zap.String("url", s.URL),
		zap.Int("content_length", len(content)))

	return Decode(content, DetectFormat(resp.Header.Get("Content-Type"), req.URL.Path))
}

// getDefaultHeaders returns common headers for catalog requests
func getDefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent":    "mealplanner/1.0",
		"Accept":        "application/json,text/html;q=0.9,*/*;q=0.8",
		"Cache-Control": "no-cache",
	}
}
