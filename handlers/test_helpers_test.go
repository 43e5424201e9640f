package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ironingangels/config"
	"ironingangels/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newFormRequest builds a url-encoded POST request marked as coming from HTMX.
func newFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req
}

func fixedClock() time.Time {
	return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
}

// stubRelay records submissions and returns err.
type stubRelay struct {
	mu   sync.Mutex
	subs []services.ContactSubmission
	err  error
}

func (s *stubRelay) Submit(_ context.Context, sub services.ContactSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{
		SiteURL:          "https://ironingangels.uk",
		ClarityProjectID: "clarity123",
		ConsentMaxAge:    365 * 24 * time.Hour,
	}
}
