// Package monitoring watches the LED controller device node so stored light
// intent can be reapplied when the driver (re)loads.
package monitoring

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/smazurov/lightsd/internal/events"
)

// DeviceMonitor watches the directory containing the LED device node and
// publishes LEDDeviceChangedEvent when the node is created or removed.
type DeviceMonitor struct {
	path    string
	bus     *events.Bus
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewDeviceMonitor creates a monitor for the given device node path.
func NewDeviceMonitor(path string, bus *events.Bus, logger *slog.Logger) *DeviceMonitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &DeviceMonitor{
		path:   path,
		bus:    bus,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins watching for device node changes. The watch is placed on the
// parent directory because the node itself may not exist yet.
func (m *DeviceMonitor) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	m.watcher = watcher
	go m.loop()

	m.logger.Info("Device monitor started", "path", m.path)
	return nil
}

// Stop stops the monitor.
func (m *DeviceMonitor) Stop() {
	m.cancel()
	if m.watcher != nil {
		m.watcher.Close()
	}
	m.logger.Info("Device monitor stopped")
}

func (m *DeviceMonitor) loop() {
	for {
		select {
		case <-m.ctx.Done():
			return

		case evt, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if evt.Name != m.path {
				continue
			}

			switch {
			case evt.Has(fsnotify.Create):
				m.publish("added")
			case evt.Has(fsnotify.Remove):
				m.publish("removed")
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.logger.Warn("Device monitor error", "error", err)
		}
	}
}

func (m *DeviceMonitor) publish(action string) {
	m.logger.Debug("Device node changed", "path", m.path, "action", action)
	m.bus.Publish(events.LEDDeviceChangedEvent{
		Path:      m.path,
		Action:    action,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
