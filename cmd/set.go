package cmd

import (
	"os"

	"github.com/smazurov/lightsd/internal/lights"
	"github.com/smazurov/lightsd/internal/logging"
	"github.com/spf13/cobra"
)

// CreateSetCmd creates the set command for one-shot light control.
func CreateSetCmd() *cobra.Command {
	var colorStr string
	var flash string
	var flashOnMS int
	var flashOffMS int
	var backlightPath string
	var ledPath string
	var logJSON bool

	cmd := &cobra.Command{
		Use:   "set [light]",
		Short: "Set a light state directly",
		Long: `Sets one light (backlight, notifications, attention, battery) straight through ` +
			`the hardware sinks, without the daemon. Intended for bench testing; the one-shot ` +
			`arbiter only knows about the slot written here.`,
		Args: cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			name := args[0]

			loggingConfig := logging.Config{
				Level:  "info",
				Format: "text",
			}
			if logJSON {
				loggingConfig.Format = "json"
			}
			logging.Initialize(loggingConfig)
			logger := logging.GetLogger("set")

			color, err := lights.ParseRGB(colorStr)
			if err != nil {
				logger.Error("Invalid color", "color", colorStr, "error", err)
				os.Exit(1)
			}

			flashMode, err := lights.ParseFlashMode(flash)
			if err != nil {
				logger.Error("Invalid flash mode", "flash", flash, "error", err)
				os.Exit(1)
			}

			backlight, leds := lights.NewSinks(lights.SinkConfig{
				BacklightPath: backlightPath,
				LEDPath:       ledPath,
			}, logger)

			arbiter := lights.NewArbiter(backlight, leds, logger, nil)
			setter, err := arbiter.Open(name)
			if err != nil {
				logger.Error("Unknown light", "name", name, "error", err)
				os.Exit(1)
			}

			state := lights.State{
				Color:      color,
				Flash:      flashMode,
				FlashOnMS:  flashOnMS,
				FlashOffMS: flashOffMS,
			}
			if err := setter(state); err != nil {
				logger.Error("Failed to set light", "name", name, "error", err)
				os.Exit(1)
			}

			logger.Info("Light set", "name", name, "color", color.String(), "flash", flashMode.String())
		},
	}

	cmd.Flags().StringVar(&colorStr, "color", "000000", "24-bit RGB color in hex")
	cmd.Flags().StringVar(&flash, "flash", "none", "Flash mode: none, timed, hardware")
	cmd.Flags().IntVar(&flashOnMS, "flash-on-ms", 0, "Flash on duration in milliseconds")
	cmd.Flags().IntVar(&flashOffMS, "flash-off-ms", 0, "Flash off duration in milliseconds")
	cmd.Flags().StringVar(&backlightPath, "backlight-path", "", "Backlight brightness file (board default when empty)")
	cmd.Flags().StringVar(&ledPath, "led-path", "", "LED controller device node (board default when empty)")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Log in JSON format")

	return cmd
}
