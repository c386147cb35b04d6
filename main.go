package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/smazurov/lightsd/cmd"
	"github.com/smazurov/lightsd/internal/api"
	"github.com/smazurov/lightsd/internal/config"
	"github.com/smazurov/lightsd/internal/events"
	"github.com/smazurov/lightsd/internal/lights"
	"github.com/smazurov/lightsd/internal/logging"
	"github.com/smazurov/lightsd/internal/metrics"
	"github.com/smazurov/lightsd/internal/monitoring"
	"github.com/smazurov/lightsd/pkg/an30259a"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"lightsd.toml"`

	// Server settings
	Port string `help:"Port to listen on" short:"p" default:":8091" toml:"server.port" env:"SERVER_PORT"`

	// Hardware settings
	BacklightPath string `help:"Backlight brightness file" default:"" toml:"hardware.backlight_path" env:"HARDWARE_BACKLIGHT_PATH"`
	LEDPath       string `help:"LED controller device node" default:"" toml:"hardware.led_path" env:"HARDWARE_LED_PATH"`

	// Feature settings
	DeviceMonitorEnabled bool `help:"Watch for the LED device node appearing" default:"true" toml:"features.device_monitor_enabled" env:"FEATURES_DEVICE_MONITOR"`
	MetricsEnabled       bool `help:"Enable Prometheus metrics" default:"true" toml:"metrics.enabled" env:"METRICS_ENABLED"`

	// Auth settings
	AuthUsername string `help:"Basic auth username" default:"admin" toml:"auth.username" env:"AUTH_USERNAME"`
	AuthPassword string `help:"Basic auth password" default:"password" toml:"auth.password" env:"AUTH_PASSWORD"`

	// Logging settings
	LoggingLevel      string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat     string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingLights     string `help:"Lights arbiter logging level" default:"info" toml:"logging.lights" env:"LOGGING_LIGHTS"`
	LoggingAPI        string `help:"API logging level" default:"info" toml:"logging.api" env:"LOGGING_API"`
	LoggingMonitoring string `help:"Device monitor logging level" default:"info" toml:"logging.monitoring" env:"LOGGING_MONITORING"`
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, opts *Options) {
		// Load configuration automatically
		if loadErr := config.LoadConfig(opts, nil); loadErr != nil {
			slog.Warn("Failed to load config", "error", loadErr)
		}

		// Initialize logging system
		logging.Initialize(logging.Config{
			Level:  opts.LoggingLevel,
			Format: opts.LoggingFormat,
			Modules: map[string]string{
				"lights":     opts.LoggingLights,
				"api":        opts.LoggingAPI,
				"monitoring": opts.LoggingMonitoring,
			},
		})

		logger := logging.GetLogger("main")

		// Create event bus for in-process event handling
		eventBus := events.New()

		// Metrics are optional; the arbiter takes nil when disabled
		var lightsMetrics *metrics.Lights
		var metricsHandler http.Handler
		if opts.MetricsEnabled {
			lightsMetrics = metrics.NewLights()
			metricsHandler = lightsMetrics.Handler()
		}

		// Hardware sinks and the arbiter they feed
		backlight, leds := lights.NewSinks(lights.SinkConfig{
			BacklightPath: opts.BacklightPath,
			LEDPath:       opts.LEDPath,
		}, logging.GetLogger("lights"))

		arbiter := lights.NewArbiter(backlight, leds, logging.GetLogger("lights"), lightsMetrics)

		// Manager bridges platform events to the arbiter
		manager := lights.NewManager(arbiter, eventBus, logging.GetLogger("lights"))

		// Watch for the LED device node so intent survives late driver loads
		var monitor *monitoring.DeviceMonitor
		if opts.DeviceMonitorEnabled {
			ledPath := opts.LEDPath
			if ledPath == "" {
				ledPath = an30259a.DefaultDevicePath
			}
			monitor = monitoring.NewDeviceMonitor(ledPath, eventBus, logging.GetLogger("monitoring"))
		}

		server := api.NewServer(&api.Options{
			AuthUsername:   opts.AuthUsername,
			AuthPassword:   opts.AuthPassword,
			Arbiter:        arbiter,
			MetricsHandler: metricsHandler,
		})

		hooks.OnStart(func() {
			manager.Start()

			if monitor != nil {
				if startErr := monitor.Start(); startErr != nil {
					logger.Warn("Failed to start device monitor", "error", startErr)
					monitor = nil
				}
			}

			logger.Info("Starting HTTP server", "port", opts.Port)
			if startErr := server.Start(opts.Port); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", startErr)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down server")
			if stopErr := server.Stop(); stopErr != nil {
				logger.Error("Error stopping HTTP server", "error", stopErr)
			}

			if monitor != nil {
				monitor.Stop()
			}
			manager.Stop()
		})
	})

	// Add set command for one-shot light control
	cli.Root().AddCommand(cmd.CreateSetCmd())

	cli.Run()
}
