package main

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/anomredux/timerail/internal/config"
	"github.com/anomredux/timerail/internal/ui"
)

var (
	cfgFile   string
	dataDir   string
	timezone  string
	presetArg string
	scaleArg  string
	debugFile string
)

var rootCmd = &cobra.Command{
	Use:   "timerail",
	Short: "Select time ranges over your transactions on an interactive rail",
	Long: `timerail reads dated transactions from JSONL files and lets you pick a
time range on a draggable rail, compare it with the previous period or year,
and break it down into daily, monthly or quarterly buckets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	RunE: runTUI,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", config.DefaultPath(), "config file path (.toml or .yaml)")
	pf.StringVar(&dataDir, "data-dir", "", "transactions directory (default from config)")
	pf.StringVar(&timezone, "timezone", "", "override timezone (e.g. Europe/Berlin)")
	pf.StringVar(&presetArg, "preset", "", "initial preset (e.g. last_30_days)")
	pf.StringVar(&scaleArg, "scale", "", "rail scale: month, quarter or year")
	pf.StringVar(&debugFile, "debug", "", "write debug logs to this file")
}

// setupLogging routes slog to the debug file, or discards it. The TUI owns
// the terminal, so nothing is logged to stderr.
func setupLogging() error {
	if debugFile == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}
	f, err := tea.LogToFile(debugFile, "timerail")
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}
	log := slog.Default().With("component", "cli")
	if keys := config.EnvOverrides(); len(keys) > 0 {
		log.Info("environment overrides", "keys", keys)
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.General.DataDir = dataDir
	}
	if flags.Changed("timezone") {
		cfg.General.Timezone = timezone
	}
	if flags.Changed("preset") {
		cfg.Selector.Preset = presetArg
	}
	if flags.Changed("scale") {
		cfg.Selector.Scale = scaleArg
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	app, err := ui.NewApp(cfg, cfgFile, time.Now)
	if err != nil {
		return err
	}

	zone.NewGlobal()
	defer zone.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if cfg.Watch.Enabled {
		poll := time.Duration(cfg.Watch.PollSeconds) * time.Second
		w, err := ui.StartWatcher(p, cfg.General.DataDir, poll)
		if err != nil {
			slog.Warn("watcher disabled", "err", err)
		} else {
			defer w.Stop()
		}
	}

	_, err = p.Run()
	return err
}
