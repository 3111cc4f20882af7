package cli

import (
	"fmt"
	"text/template"
	"time"

	"github.com/goldpos/jrdclient/internal/models"
)

// render выполняет шаблон в IO клиента
func (c *Cli) render(tmpl string, data any) error {
	t, err := template.New("out").Funcs(templateFuncs).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := t.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return nil
}

var templateFuncs = template.FuncMap{
	// percent переводит мощность dBm в проценты шкалы ридера
	"percent": func(dbm int) int {
		p, _ := models.PowerToPercent(dbm)
		return p
	},
	"millis": func(ms int64) string {
		if ms == 0 {
			return "-"
		}
		return time.UnixMilli(ms).Format(time.RFC3339)
	},
	"scanCount": func(d models.Device) int {
		total := 0
		for _, list := range d.TagScanResults {
			total += len(list)
		}
		return total
	},
}

// parseOnOff разбирает значение переключателя
func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value: %s. Use: on or off", s)
	}
}
