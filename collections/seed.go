package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

type testimonialDef struct {
	quote  string
	author string
	rating int
}

var seedTestimonials = []testimonialDef{
	{"Ironing Angels are amazing, efficient and now my regular agency", "Karen", 5},
	{"Amazing prompt service", "Helen and Jeff", 5},
	{"I was skeptical at first, but after trying their service for my family's laundry, I'm completely converted. Great value and excellent results.", "Kelly Hall", 4},
}

// Seed inserts the launch testimonials. It does nothing once any testimonial
// exists, so it is safe to call on every startup.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("testimonials")
	if err != nil {
		return fmt.Errorf("seed: could not find testimonials collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query testimonials: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	zap.L().Info("seed: inserting testimonials", zap.Int("count", len(seedTestimonials)))

	for i, def := range seedTestimonials {
		rec := core.NewRecord(col)
		rec.Set("quote", def.quote)
		rec.Set("author", def.author)
		rec.Set("rating", def.rating)
		rec.Set("sort_order", i+1)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: save testimonial %q: %w", def.author, err)
		}
	}
	return nil
}
