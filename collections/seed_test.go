package collections_test

import (
	"testing"

	"ironingangels/collections"
	"ironingangels/testhelpers"
)

func TestSeed_CreatesTestimonials(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	records, err := app.FindRecordsByFilter("testimonials", "id != ''", "sort_order", 0, 0)
	if err != nil {
		t.Fatalf("query testimonials error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 testimonials, got %d", len(records))
	}
	if got := records[0].GetString("author"); got != "Karen" {
		t.Errorf("first author = %q, want Karen", got)
	}
	if got := records[2].GetInt("rating"); got != 4 {
		t.Errorf("Kelly Hall rating = %d, want 4", got)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	records, _ := app.FindAllRecords("testimonials")
	if len(records) != 3 {
		t.Errorf("expected 3 testimonials after two seeds, got %d", len(records))
	}
}
