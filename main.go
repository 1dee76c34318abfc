package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	testMode   bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:          "statbar",
	Short:        "Single-line system status bar",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if testMode {
			return runProbes(cfg)
		}
		m, err := initialModel(cfg)
		if err != nil {
			return err
		}
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("program failed to run: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&testMode, "test", "t", false,
		"run each probe once, print the results and exit")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"config file (default ~/.config/statbar/config.json)")

	// Runtime errors stay terse, but a bad flag still gets the usage text.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%s\n\n%s", err, cmd.UsageString())
	})
}

// runProbes samples everything once without opening the display.
func runProbes(cfg *Config) error {
	n := fetchNetInfo()
	fmt.Printf("net:        %q\n", netSegment(n))
	if n.IP != nil {
		fmt.Printf("ip:         %s\n", *n.IP)
	}
	if n.AccessPoint != nil {
		fmt.Printf("ap:         %s\n", *n.AccessPoint)
	}
	if n.BitRate != nil {
		fmt.Printf("bitrate:    %.1f Mb/s\n", *n.BitRate)
	}
	if n.LinkQuality != nil {
		fmt.Printf("quality:    %s\n", *n.LinkQuality)
	}
	if n.SignalLevel != nil {
		fmt.Printf("signal:     %d dBm\n", *n.SignalLevel)
	}

	fmt.Printf("power:      %q\n", powerSegment(fetchPowerInfo()))
	fmt.Printf("cpu:        %q\n", cpuSegment(fetchCPUInfo()))

	clk := fetchClockInfo(cfg.AltZone)
	fmt.Printf("clock:      %s\n", clk.Local)
	fmt.Printf("alt clock:  %s\n", clk.Alt)

	fmt.Printf("recording:  %v\n", fetchRecording(cfg.RecordingProcs))
	fmt.Printf("fullscreen: %v\n", fetchFullScreen(cfg.FullScreenProcs))

	now := time.Now()
	fmt.Printf("bus:        %q\n", busSegment(cfg.scheduleFor(n.ESSID), now.Hour(), now.Minute()))

	w := newWeatherCache(cfg.WeatherCity, time.Duration(cfg.WeatherTTLSec)*time.Second)
	if desc, err := w.Current(); err != nil {
		fmt.Printf("weather:    error: %v\n", err)
	} else {
		fmt.Printf("weather:    %s\n", desc)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
