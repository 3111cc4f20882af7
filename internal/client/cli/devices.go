package cli

import (
	"context"
	"fmt"

	"github.com/goldpos/jrdclient/internal/models"
)

func (c *Cli) runDevices(ctx context.Context) error {
	devices, err := c.fetchDevices(ctx)
	if err != nil {
		return err
	}
	return c.render(deviceListTemplate, devices)
}

func (c *Cli) runScenario(ctx context.Context) error {
	value, err := c.store.Fetch(ctx, c.controller.CurrentScenarioKey)
	if err != nil {
		return fmt.Errorf("fetch scenario: %w", err)
	}
	scenario, ok := value.(models.Scenario)
	if !ok {
		return fmt.Errorf("unexpected scenario cache value %T", value)
	}
	return c.render(scenarioTemplate, scenario)
}

func (c *Cli) runSerial(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: jrdclient serial <modules|scans>")
	}

	switch args[0] {
	case "modules":
		value, err := c.store.Fetch(ctx, c.serialModulesKey)
		if err != nil {
			return fmt.Errorf("fetch serial modules: %w", err)
		}
		devices, ok := value.([]models.Device)
		if !ok {
			return fmt.Errorf("unexpected serial modules cache value %T", value)
		}
		return c.render(deviceListTemplate, devices)
	case "scans", "scan-results":
		value, err := c.store.Fetch(ctx, c.serialScansKey)
		if err != nil {
			return fmt.Errorf("fetch serial scan results: %w", err)
		}
		results, ok := value.([]models.ScanResult)
		if !ok {
			return fmt.Errorf("unexpected serial scans cache value %T", value)
		}
		return c.render(scanListTemplate, results)
	default:
		return fmt.Errorf("unknown subcommand: %s. Use: modules or scans", args[0])
	}
}
