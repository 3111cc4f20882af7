package cli

import (
	"context"
	"fmt"

	"github.com/goldpos/jrdclient/internal/client/live"
	"github.com/goldpos/jrdclient/internal/models"
)

// runWatch подключает realtime канал и печатает изменения кэша
// до прерывания
func (c *Cli) runWatch(ctx context.Context) error {
	if c.socket == nil {
		return fmt.Errorf("realtime socket is not configured")
	}

	// Первичная загрузка списка до подписки, чтобы события было
	// на что накладывать
	if _, err := c.fetchDevices(ctx); err != nil {
		return err
	}

	cue := c.notifier()
	deviceSub := live.AttachDeviceChannels(c.socket, c.store, c.controller.DevicesKey, cue, c.logger)
	defer deviceSub.Close()

	serialSub := live.SubscribeScanUpsert(c.socket, c.store, c.serialScansKey, c.cfg.Scan.RingCapacity, cue, c.logger)
	defer serialSub.Close()

	offDevices := c.store.Subscribe(c.controller.DevicesKey, func(value any) {
		devices, ok := value.([]models.Device)
		if !ok {
			return
		}
		scanning := 0
		for _, d := range devices {
			if d.IsScan {
				scanning++
			}
		}
		c.io.Printf("[devices] %d module(s), %d scanning\n", len(devices), scanning)
	})
	defer offDevices()

	offScans := c.store.Subscribe(c.serialScansKey, func(value any) {
		results, ok := value.([]models.ScanResult)
		if !ok || len(results) == 0 {
			return
		}
		latest := results[0]
		c.io.Printf("[scan] id=%d epc=%s device=%s rssi=%d\n",
			latest.ID, latest.EPC, latest.DeviceID, latest.ScanRSSI)
	})
	defer offScans()

	c.socket.Start(ctx)
	defer c.socket.Stop()

	c.io.Println("Watching for realtime updates. Press Ctrl+C to stop.")
	<-ctx.Done()
	return nil
}
