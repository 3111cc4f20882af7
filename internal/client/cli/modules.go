package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goldpos/jrdclient/internal/models"
)

func (c *Cli) runInit(ctx context.Context, args []string) error {
	ids := args
	if len(ids) == 0 {
		// Без аргументов инициализируем те модули, что подключены
		// прямо сейчас, а не весь сохраненный список
		connected, err := c.connectedModuleIDs(ctx)
		if err != nil {
			return err
		}
		ids = connected
	}

	// Запрос собирается из сохраненных предпочтений модулей
	req, err := c.prefsService.InitSpecs(ctx, ids)
	if err != nil {
		return err
	}

	if err := c.controller.InitModules(ctx, req); err != nil {
		return err
	}

	c.io.Printf("✓ Initialized %d module(s)\n", len(ids))
	return nil
}

func (c *Cli) runStartScan(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing scan mode. Usage: jrdclient start-scan <mode> [id...]")
	}
	mode, ok := models.ParseMode(args[0])
	if !ok {
		return fmt.Errorf("unknown mode: %s. Use: %v", args[0], models.AllModes())
	}

	ids, err := c.moduleIDs(ctx, args[1:])
	if err != nil {
		return err
	}

	if err := c.controller.StartScenario(ctx, ids, mode); err != nil {
		return err
	}

	c.io.Printf("✓ Scan started in %s mode on %d module(s)\n", mode, len(ids))
	return nil
}

func (c *Cli) runStopScan(ctx context.Context, args []string) error {
	ids, err := c.moduleIDs(ctx, args)
	if err != nil {
		return err
	}

	if err := c.controller.StopScenario(ctx, ids); err != nil {
		return err
	}

	c.io.Println("✓ Scan stopped")
	return nil
}

func (c *Cli) runInventory(ctx context.Context, args []string) error {
	ids, err := c.moduleIDs(ctx, args)
	if err != nil {
		return err
	}

	if err := c.controller.StartInventoryScan(ctx, ids); err != nil {
		return err
	}

	c.io.Printf("✓ Inventory scan started on %d module(s)\n", len(ids))
	c.io.Printf("Auto-stop in %s. Press Ctrl+C to stop earlier.\n", c.controller.InventoryTimeout)

	// Таймер автостопа живет внутри процесса: ждем его срабатывания,
	// иначе выход убьет таймер и сканирование никогда не остановится
	select {
	case <-c.controller.InventoryDone():
		c.io.Println("✓ Inventory scan stopped")
		return nil
	case <-ctx.Done():
		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := c.controller.StopScenario(stopCtx, ids); err != nil {
			return err
		}
		c.io.Println("✓ Inventory scan stopped")
		return nil
	}
}

// runSetPower принимает мощность в процентах и переводит ее в dBm по
// нелинейной шкале ридера
func (c *Cli) runSetPower(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: jrdclient set-power <id> <percent>")
	}
	id := args[0]

	percent, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid percent: %s", args[1])
	}
	dbm, ok := models.PercentToPower(percent)
	if !ok {
		return fmt.Errorf("percent %d is not on the power scale", percent)
	}

	if err := c.controller.SetPower(ctx, id, &dbm, &dbm); err != nil {
		return err
	}

	c.io.Printf("✓ Power of %s set to %d%% (%d dBm)\n", id, percent, dbm)
	return nil
}

func (c *Cli) runSetMode(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: jrdclient set-mode <id> <mode>")
	}
	mode, ok := models.ParseMode(args[1])
	if !ok {
		return fmt.Errorf("unknown mode: %s. Use: %v", args[1], models.AllModes())
	}

	if err := c.controller.SetMode(ctx, args[0], mode); err != nil {
		return err
	}

	c.io.Printf("✓ Mode of %s set to %s\n", args[0], mode)
	return nil
}

func (c *Cli) runSetActive(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: jrdclient set-active <id> <on|off>")
	}
	active, err := parseOnOff(args[1])
	if err != nil {
		return err
	}

	if err := c.controller.SetActive(ctx, args[0], active); err != nil {
		return err
	}

	if active {
		c.io.Printf("✓ Module %s activated\n", args[0])
	} else {
		c.io.Printf("✓ Module %s deactivated\n", args[0])
	}
	return nil
}

func (c *Cli) runClearHistory(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: jrdclient clear-history <id> <mode>")
	}
	mode, ok := models.ParseMode(args[1])
	if !ok {
		return fmt.Errorf("unknown mode: %s. Use: %v", args[1], models.AllModes())
	}

	if err := c.controller.ClearScanHistory(ctx, args[0], mode); err != nil {
		return err
	}

	c.io.Printf("✓ Scan history of %s cleared for %s mode\n", args[0], mode)
	return nil
}

// connectedModuleIDs спрашивает сервер о подключенных сейчас модулях
func (c *Cli) connectedModuleIDs(ctx context.Context) ([]string, error) {
	patches, err := c.apiClient.ConnectedModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch connected modules: %w", err)
	}
	if len(patches) == 0 {
		return nil, fmt.Errorf("no modules connected")
	}

	ids := make([]string, 0, len(patches))
	for _, p := range patches {
		if p.ID == "" {
			continue
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// moduleIDs возвращает явно перечисленные id, либо все известные
// модули когда аргументов нет
func (c *Cli) moduleIDs(ctx context.Context, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	devices, err := c.fetchDevices(ctx)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("no modules known yet")
	}

	ids := make([]string, 0, len(devices))
	for _, d := range devices {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
