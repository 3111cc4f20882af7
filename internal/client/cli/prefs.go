package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goldpos/jrdclient/internal/client/storage"
	"github.com/goldpos/jrdclient/internal/models"
)

// runPrefs показывает или меняет локальные предпочтения модулей:
//
//	prefs                              - вся карта
//	prefs <id>                         - один модуль
//	prefs <id> <power> <mode> <on|off> - задать настройки
func (c *Cli) runPrefs(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		all, err := c.prefsService.Get(ctx)
		if err != nil {
			return err
		}
		return c.render(prefsTemplate, all.Modules)

	case 1:
		pref, ok, err := c.prefsService.Module(ctx, args[0])
		if err != nil {
			return err
		}
		if !ok {
			c.io.Printf("No preferences saved for %s\n", args[0])
			return nil
		}
		return c.render(prefsTemplate, map[string]storage.ModulePref{args[0]: pref})

	case 4:
		power, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid power: %s", args[1])
		}
		mode, ok := models.ParseMode(args[2])
		if !ok {
			return fmt.Errorf("unknown mode: %s. Use: %v", args[2], models.AllModes())
		}
		active, err := parseOnOff(args[3])
		if err != nil {
			return err
		}

		pref := storage.ModulePref{Power: power, Active: active, Mode: string(mode)}
		if err := c.prefsService.SetModule(ctx, args[0], pref); err != nil {
			return err
		}

		c.io.Printf("✓ Preferences for %s saved\n", args[0])
		return nil

	default:
		return fmt.Errorf("usage: jrdclient prefs [id] [power mode on|off]")
	}
}
