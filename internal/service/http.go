package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/jask/gofundme/internal/donation"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPSubmitter posts each donation as JSON to a donation endpoint. Any 2xx
// response accepts the donation; everything else fails it. There are no
// retries.
type HTTPSubmitter struct {
	Endpoint string
	Client   *http.Client
	Timeout  time.Duration
	Log      zerolog.Logger
}

// NewHTTPSubmitter returns a submitter posting to endpoint.
func NewHTTPSubmitter(endpoint string, timeout time.Duration, log zerolog.Logger) *HTTPSubmitter {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &HTTPSubmitter{
		Endpoint: endpoint,
		Client:   &http.Client{},
		Timeout:  timeout,
		Log:      log,
	}
}

type donationPayload struct {
	ID        string    `json:"id"`
	DonorName string    `json:"donor_name"`
	Caption   string    `json:"caption"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *HTTPSubmitter) Submit(ctx context.Context, r donation.Record) error {
	if s.Endpoint == "" {
		return donation.Failed(fmt.Errorf("http: endpoint not configured"))
	}
	body, err := json.Marshal(donationPayload{
		ID:        r.ID,
		DonorName: r.DonorName,
		Caption:   r.Caption,
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt.UTC(),
	})
	if err != nil {
		return donation.Failed(fmt.Errorf("encode donation: %w", err))
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return donation.Failed(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		s.Log.Warn().Err(err).Str("endpoint", s.Endpoint).Msg("donation post failed")
		return donation.Failed(fmt.Errorf("post donation: %w", err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	s.Log.Debug().
		Str("endpoint", s.Endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("donation_id", r.ID).
		Msg("donation posted")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return donation.Failed(fmt.Errorf("post donation: unexpected status %s", resp.Status))
	}
	return nil
}
