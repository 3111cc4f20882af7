package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "devices":
		err = c.runDevices(ctx)
	case "scenario":
		err = c.runScenario(ctx)
	case "serial":
		err = c.runSerial(ctx, args)
	case "init":
		err = c.runInit(ctx, args)
	case "start-scan":
		err = c.runStartScan(ctx, args)
	case "stop-scan":
		err = c.runStopScan(ctx, args)
	case "inventory":
		err = c.runInventory(ctx, args)
	case "set-power":
		err = c.runSetPower(ctx, args)
	case "set-mode":
		err = c.runSetMode(ctx, args)
	case "set-active":
		err = c.runSetActive(ctx, args)
	case "clear-history":
		err = c.runClearHistory(ctx, args)
	case "watch":
		err = c.runWatch(ctx)
	case "products":
		err = c.runProducts(ctx)
	case "invoices":
		err = c.runInvoices(ctx)
	case "invoice":
		err = c.runCreateInvoice(ctx, args)
	case "sales":
		err = c.runSales(ctx)
	case "gold":
		err = c.runGold(ctx)
	case "prefs":
		err = c.runPrefs(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
