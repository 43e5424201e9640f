package services

import (
	"testing"
	"time"

	"ironingangels/testhelpers"
)

func TestFormatQuoteRequestReference(t *testing.T) {
	if got := formatQuoteRequestReference("20261018", 7); got != "IAQ-20261018-007" {
		t.Errorf("got %q", got)
	}
	if got := formatQuoteRequestReference("20261018", 1234); got != "IAQ-20261018-1234" {
		t.Errorf("got %q", got)
	}
}

func TestNextQuoteRequestReference_SequencePerDay(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	day1 := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	ref, err := NextQuoteRequestReference(app, day1)
	if err != nil {
		t.Fatal(err)
	}
	if ref != "IAQ-20261018-001" {
		t.Errorf("first reference = %q", ref)
	}

	testhelpers.CreateTestQuoteRequest(t, app, "IAQ-20261018-001", "summary")
	testhelpers.CreateTestQuoteRequest(t, app, "IAQ-20261018-002", "summary")

	ref, _ = NextQuoteRequestReference(app, day1)
	if ref != "IAQ-20261018-003" {
		t.Errorf("third reference = %q", ref)
	}

	ref, _ = NextQuoteRequestReference(app, day2)
	if ref != "IAQ-20261019-001" {
		t.Errorf("next day reference = %q", ref)
	}
}
