// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ironingangels/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory
// with all site collections set up. The directory is removed after the test.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestTestimonial creates a testimonial shown at position sortOrder.
func CreateTestTestimonial(t *testing.T, app *pocketbase.PocketBase, author, quote string, rating, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("testimonials")
	if err != nil {
		t.Fatalf("failed to find testimonials collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("author", author)
	record.Set("quote", quote)
	record.Set("rating", rating)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test testimonial: %v", err)
	}
	return record
}

// CreateTestQuoteRequest stores a quote request with the given reference and summary.
func CreateTestQuoteRequest(t *testing.T, app *pocketbase.PocketBase, reference, summary string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_requests")
	if err != nil {
		t.Fatalf("failed to find quote_requests collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("reference", reference)
	record.Set("summary", summary)
	record.Set("total", "45.00")
	record.Set("item_count", 3)
	record.Set("items", []map[string]any{{"id": "adult-10", "quantity": 3}})

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote request: %v", err)
	}
	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q", frag)
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
