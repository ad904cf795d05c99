package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	apperrors "confmate/internal/platform/errors"
)

// Client wraps the conference API transport: JSON in and out, one shared
// request timeout, device-id attribution, and mapping of transport failures
// onto the app error taxonomy.
type Client struct {
	http     *http.Client
	deviceID string
	logger   *logrus.Logger
}

func NewClient(timeout time.Duration, deviceID string, logger *logrus.Logger) *Client {
	return &Client{
		http:     &http.Client{Timeout: timeout},
		deviceID: deviceID,
		logger:   logger,
	}
}

// GetJSON fetches rawURL and decodes the body into v.
func (c *Client) GetJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, v)
}

// PostJSON sends body as JSON to rawURL. Any response body is discarded;
// only the status matters.
func (c *Client) PostJSON(ctx context.Context, rawURL string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, v any) error {
	if c.deviceID != "" {
		req.Header.Set("X-Device-Id", c.deviceID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Classify(err)
	}
	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrMalformed, err)
		}
	}
	c.logger.WithFields(logrus.Fields{"url": req.URL.String(), "bytes": len(body)}).Debug("request done")
	return nil
}

// Classify folds transport errors into the shared taxonomy. A deadline hit
// becomes ErrTimeout so callers can show the dedicated timed-out state;
// everything else stays a plain network failure.
func Classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", apperrors.ErrTimeout, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %v", apperrors.ErrTimeout, err)
	}
	return err
}
