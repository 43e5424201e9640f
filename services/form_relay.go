package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// ErrRelayFailed is returned when a contact submission could not be delivered.
var ErrRelayFailed = errors.New("contact form relay failed")

// ContactSubmission is what gets delivered to the business inbox.
type ContactSubmission struct {
	Form           ContactForm
	QuoteReference string
}

// FormRelay delivers contact submissions and waits for the outcome.
type FormRelay interface {
	Submit(ctx context.Context, sub ContactSubmission) error
}

// HTTPFormRelay posts submissions to a formsubmit-style endpoint.
type HTTPFormRelay struct {
	endpoint   string
	nextURL    string
	maxRetries uint64
	httpClient *http.Client
	newBackOff func() backoff.BackOff
}

// RelayOption customises an HTTPFormRelay.
type RelayOption func(*HTTPFormRelay)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) RelayOption {
	return func(r *HTTPFormRelay) { r.httpClient = c }
}

// WithBackOff replaces the exponential retry schedule.
func WithBackOff(f func() backoff.BackOff) RelayOption {
	return func(r *HTTPFormRelay) { r.newBackOff = f }
}

// NewHTTPFormRelay returns a relay posting to endpoint. nextURL is passed to
// the relay as the page to return to for non-AJAX submissions.
func NewHTTPFormRelay(endpoint, nextURL string, timeout time.Duration, maxRetries uint64, opts ...RelayOption) *HTTPFormRelay {
	r := &HTTPFormRelay{
		endpoint:   endpoint,
		nextURL:    nextURL,
		maxRetries: maxRetries,
		httpClient: &http.Client{Timeout: timeout},
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 300 * time.Millisecond
			b.MaxElapsedTime = 15 * time.Second
			return b
		},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

type relayResponse struct {
	Success any    `json:"success"`
	Message string `json:"message"`
}

// Submit posts the submission, retrying network errors and 5xx responses.
// Any failure is reported as ErrRelayFailed.
func (r *HTTPFormRelay) Submit(ctx context.Context, sub ContactSubmission) error {
	body := r.encode(sub).Encode()
	attempt := 0

	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")

		resp, err := r.httpClient.Do(req)
		if err != nil {
			zap.L().Warn("form_relay: request failed", zap.Int("attempt", attempt), zap.Error(err))
			return fmt.Errorf("send request: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500:
			zap.L().Warn("form_relay: server error",
				zap.Int("attempt", attempt), zap.Int("status", resp.StatusCode))
			return fmt.Errorf("relay returned status %d", resp.StatusCode)
		case resp.StatusCode >= 400:
			return backoff.Permanent(fmt.Errorf("relay rejected submission: status %d", resp.StatusCode))
		}

		raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if err != nil {
			zap.L().Warn("form_relay: reading response failed",
				zap.Int("attempt", attempt), zap.Int("status", resp.StatusCode), zap.Error(err))
			return fmt.Errorf("read response: %w", err)
		}

		var rr relayResponse
		if json.Unmarshal(raw, &rr) == nil && isFalse(rr.Success) {
			return backoff.Permanent(fmt.Errorf("relay rejected submission: %s", rr.Message))
		}
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), r.maxRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		zap.L().Error("form_relay: giving up",
			zap.Int("attempts", attempt), zap.String("email", sub.Form.Email), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrRelayFailed, err)
	}

	zap.L().Info("form_relay: submission delivered", zap.Int("attempts", attempt))
	return nil
}

func (r *HTTPFormRelay) encode(sub ContactSubmission) url.Values {
	f := sub.Form
	v := url.Values{}
	v.Set("name", f.Name)
	v.Set("email", f.Email)
	v.Set("phone", f.Phone)
	v.Set("service", ServiceLabel(f.Service))
	v.Set("message", f.Message)
	if sub.QuoteReference != "" {
		v.Set("quote", sub.QuoteReference)
	}
	v.Set("_subject", "New Contact Form Submission")
	v.Set("_template", "table")
	v.Set("_captcha", "false")
	if r.nextURL != "" {
		v.Set("_next", r.nextURL)
	}
	return v
}

// isFalse accepts both false and "false"; the relay sends strings.
func isFalse(v any) bool {
	switch s := v.(type) {
	case bool:
		return !s
	case string:
		return s == "false"
	}
	return false
}
