package features

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"ironingangels/services"
)

type estimatorTestContext struct {
	estimator *services.Estimator
	err       error
}

func (c *estimatorTestContext) reset() {
	c.estimator = services.NewEstimator(services.DefaultCatalog())
	c.err = nil
}

func (c *estimatorTestContext) anEmptyEstimator() error {
	c.reset()
	return nil
}

func (c *estimatorTestContext) iIncrementTimes(id string, n int) error {
	for range n {
		if err := c.estimator.Increment(id); err != nil {
			c.err = err
			return nil
		}
	}
	return nil
}

func (c *estimatorTestContext) iDecrementTimes(id string, n int) error {
	for range n {
		if err := c.estimator.Decrement(id); err != nil {
			c.err = err
			return nil
		}
	}
	return nil
}

func (c *estimatorTestContext) iSetTheQuantityOfTo(id, raw string) error {
	c.err = c.estimator.SetQuantity(id, raw)
	return nil
}

func (c *estimatorTestContext) iClearTheEstimator() error {
	c.estimator.ClearAll()
	return nil
}

func (c *estimatorTestContext) theTotalIs(want string) error {
	if got := services.FormatAmount(c.estimator.Total()); got != want {
		return fmt.Errorf("expected total %s, got %s", want, got)
	}
	return nil
}

func (c *estimatorTestContext) theQuantityOfIs(id string, want int) error {
	if got := c.estimator.Quantity(id); got != want {
		return fmt.Errorf("expected quantity of %s to be %d, got %d", id, want, got)
	}
	return nil
}

func (c *estimatorTestContext) theEstimatorHasItems() error {
	if !c.estimator.HasAnyItems() {
		return errors.New("expected estimator to have items")
	}
	return nil
}

func (c *estimatorTestContext) theEstimatorIsEmpty() error {
	if c.estimator.HasAnyItems() {
		return fmt.Errorf("expected empty estimator, got %v", c.estimator.Quantities())
	}
	if c.estimator.State() != services.StateEmpty {
		return fmt.Errorf("expected empty state, got %s", c.estimator.State())
	}
	return nil
}

func (c *estimatorTestContext) theBreakdownIs(table *godog.Table) error {
	var lines []services.LineItem
	for line := range c.estimator.Breakdown() {
		lines = append(lines, line)
	}

	rows := table.Rows[1:]
	if len(lines) != len(rows) {
		return fmt.Errorf("expected %d breakdown lines, got %d", len(rows), len(lines))
	}
	for i, row := range rows {
		id := row.Cells[0].Value
		qty := row.Cells[1].Value
		total := row.Cells[2].Value

		if lines[i].Item.ID != id {
			return fmt.Errorf("line %d: expected item %s, got %s", i, id, lines[i].Item.ID)
		}
		if got := fmt.Sprintf("%d", lines[i].Quantity); got != qty {
			return fmt.Errorf("line %d: expected quantity %s, got %s", i, qty, got)
		}
		if got := services.FormatAmount(lines[i].LineTotal); got != total {
			return fmt.Errorf("line %d: expected line total %s, got %s", i, total, got)
		}
	}
	return nil
}

func (c *estimatorTestContext) theLastOperationFailedWithAnUnknownItemError() error {
	if !errors.Is(c.err, services.ErrUnknownItem) {
		return fmt.Errorf("expected ErrUnknownItem, got %v", c.err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &estimatorTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty estimator$`, tc.anEmptyEstimator)

	// When steps
	ctx.Step(`^I increment "([^"]*)" (\d+) times$`, tc.iIncrementTimes)
	ctx.Step(`^I decrement "([^"]*)" (\d+) times$`, tc.iDecrementTimes)
	ctx.Step(`^I set the quantity of "([^"]*)" to "([^"]*)"$`, tc.iSetTheQuantityOfTo)
	ctx.Step(`^I clear the estimator$`, tc.iClearTheEstimator)

	// Then steps
	ctx.Step(`^the total is "([^"]*)"$`, tc.theTotalIs)
	ctx.Step(`^the quantity of "([^"]*)" is (\d+)$`, tc.theQuantityOfIs)
	ctx.Step(`^the estimator has items$`, tc.theEstimatorHasItems)
	ctx.Step(`^the estimator is empty$`, tc.theEstimatorIsEmpty)
	ctx.Step(`^the breakdown is:$`, tc.theBreakdownIs)
	ctx.Step(`^the last operation failed with an unknown item error$`, tc.theLastOperationFailedWithAnUnknownItemError)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"estimator.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
