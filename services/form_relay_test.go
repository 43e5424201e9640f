package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRelay(url string) *HTTPFormRelay {
	return NewHTTPFormRelay(url, "https://ironingangels.uk/contact", 2*time.Second, 3,
		WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }))
}

func TestHTTPFormRelay_Success(t *testing.T) {
	var method, accept string
	var form map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		method, accept = r.Method, r.Header.Get("Accept")
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":"true","message":"The form was submitted successfully."}`))
	}))
	defer srv.Close()

	relay := newTestRelay(srv.URL)
	err := relay.Submit(context.Background(), ContactSubmission{
		Form:           validContactForm(),
		QuoteReference: "IA-20261018-0930",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", accept)
	assert.Equal(t, []string{"Karen Smith"}, form["name"])
	assert.Equal(t, []string{"Regular Ironing Service"}, form["service"])
	assert.Equal(t, []string{"IA-20261018-0930"}, form["quote"])
	assert.Equal(t, []string{"table"}, form["_template"])
	assert.Equal(t, []string{"false"}, form["_captcha"])
	assert.Equal(t, []string{"https://ironingangels.uk/contact"}, form["_next"])
}

func TestHTTPFormRelay_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"success":"true"}`))
	}))
	defer srv.Close()

	err := newTestRelay(srv.URL).Submit(context.Background(), ContactSubmission{Form: validContactForm()})
	require.NoError(t, err)
	assert.EqualValues(t, 3, calls.Load())
}

func TestHTTPFormRelay_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestRelay(srv.URL).Submit(context.Background(), ContactSubmission{Form: validContactForm()})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRelayFailed)
	// One attempt plus three retries.
	assert.EqualValues(t, 4, calls.Load())
}

func TestHTTPFormRelay_ClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	err := newTestRelay(srv.URL).Submit(context.Background(), ContactSubmission{Form: validContactForm()})
	assert.ErrorIs(t, err, ErrRelayFailed)
	assert.EqualValues(t, 1, calls.Load())
}

func TestHTTPFormRelay_RejectedInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":"false","message":"This form needs Activation."}`))
	}))
	defer srv.Close()

	err := newTestRelay(srv.URL).Submit(context.Background(), ContactSubmission{Form: validContactForm()})
	require.ErrorIs(t, err, ErrRelayFailed)
	assert.Contains(t, err.Error(), "needs Activation")
}

func TestHTTPFormRelay_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestRelay(url).Submit(context.Background(), ContactSubmission{Form: validContactForm()})
	assert.ErrorIs(t, err, ErrRelayFailed)
}

func TestHTTPFormRelay_RetriesTruncatedBody(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Promise more bytes than are sent so the client sees an unexpected EOF.
			w.Header().Set("Content-Length", "100")
			w.Write([]byte(`{"success":`))
			return
		}
		w.Write([]byte(`{"success":"true"}`))
	}))
	defer srv.Close()

	err := newTestRelay(srv.URL).Submit(context.Background(), ContactSubmission{Form: validContactForm()})
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
}

func TestHTTPFormRelay_TruncatedBodyIsNotDelivered(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Length", "100")
		w.Write([]byte(`{"success":"tr`))
	}))
	defer srv.Close()

	err := newTestRelay(srv.URL).Submit(context.Background(), ContactSubmission{Form: validContactForm()})
	assert.ErrorIs(t, err, ErrRelayFailed)
	assert.EqualValues(t, 4, calls.Load())
}

func TestHTTPFormRelay_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestRelay(srv.URL).Submit(ctx, ContactSubmission{Form: validContactForm()})
	assert.ErrorIs(t, err, ErrRelayFailed)
}

func TestIsFalse(t *testing.T) {
	assert.True(t, isFalse(false))
	assert.True(t, isFalse("false"))
	assert.False(t, isFalse(true))
	assert.False(t, isFalse("true"))
	assert.False(t, isFalse(nil))
}
