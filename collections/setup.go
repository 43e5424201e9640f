package collections

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// Contact message delivery states.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Setup creates the testimonials, quote_requests and contact_messages
// collections when they do not exist yet.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "testimonials", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quote", Required: true})
		c.Fields.Add(&core.TextField{Name: "author", Required: true})
		lo, hi := 1.0, 5.0
		c.Fields.Add(&core.NumberField{Name: "rating", Required: true, Min: &lo, Max: &hi, OnlyInt: true})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
	})

	quotes := ensureCollection(app, "quote_requests", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "reference", Required: true})
		c.Fields.Add(&core.TextField{Name: "summary", Required: true})
		c.Fields.Add(&core.TextField{Name: "total", Required: true})
		c.Fields.Add(&core.NumberField{Name: "item_count", OnlyInt: true})
		c.Fields.Add(&core.JSONField{Name: "items"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "contact_messages", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email", Required: true})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "service", Required: true})
		c.Fields.Add(&core.TextField{Name: "message", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "quote",
			CollectionId: quotes.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{StatusPending, StatusSent, StatusFailed},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection returns the named collection, creating it with the fields
// added by addFields if it is missing.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		zap.L().Debug("collections: already exists", zap.String("collection", name))
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		zap.L().Fatal("collections: create failed", zap.String("collection", name), zap.Error(err))
	}

	zap.L().Info("collections: created", zap.String("collection", name), zap.String("id", collection.Id))
	return collection
}
