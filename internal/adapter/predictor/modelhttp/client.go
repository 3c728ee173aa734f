// Package modelhttp calls an external model-serving endpoint for predictions.
package modelhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

// Client posts period history to the model endpoint. Every transport or
// protocol failure is reported as domain.ErrServiceUnavailable.
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the given endpoint URL.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "modelhttp"),
	}
}

type periodJSON struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type predictRequest struct {
	Periods []periodJSON `json:"periods"`
}

type predictResponse struct {
	CycleLength     int       `json:"cycle_length"`
	PeriodDuration  int       `json:"period_duration"`
	NextPeriodStart time.Time `json:"next_period_start"`
	NextPeriodEnd   time.Time `json:"next_period_end"`
}

// Predict sends history and decodes the model's answer.
func (c *Client) Predict(ctx context.Context, history []domain.PeriodSpan) (domain.PredictionResult, error) {
	body := predictRequest{Periods: make([]periodJSON, len(history))}
	for i, s := range history {
		body.Periods[i] = periodJSON{Start: s.Start.UTC(), End: s.End.UTC()}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("modelhttp: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("modelhttp: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "model request", slog.Int("periods", len(history)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "model request failed", slog.String("error", err.Error()))
		return domain.PredictionResult{}, fmt.Errorf("modelhttp: %v: %w", err, domain.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.PredictionResult{}, fmt.Errorf("modelhttp: unexpected status %d: %w", resp.StatusCode, domain.ErrServiceUnavailable)
	}

	var out predictResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return domain.PredictionResult{}, fmt.Errorf("modelhttp: decode response: %v: %w", err, domain.ErrServiceUnavailable)
	}
	if out.NextPeriodStart.IsZero() {
		return domain.PredictionResult{}, fmt.Errorf("modelhttp: response without next_period_start: %w", domain.ErrServiceUnavailable)
	}

	return domain.PredictionResult{
		CycleLength:     out.CycleLength,
		PeriodDuration:  out.PeriodDuration,
		NextPeriodStart: out.NextPeriodStart.UTC(),
		NextPeriodEnd:   out.NextPeriodEnd.UTC(),
	}, nil
}
