package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/nextep/internal/adapter"
	"github.com/mmcdole/nextep/internal/adapter/source"
	"github.com/mmcdole/nextep/internal/domain"
	"github.com/mmcdole/nextep/internal/service"
	"github.com/mmcdole/nextep/internal/tui"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	cfgFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "nextep",
		Short: "Explore movies and series from the terminal",
		Long: `nextep searches the OMDb title database and lets you page through
results, narrow them by type and year, and open the full record of a title.

An OMDb API key is required. Run "nextep setup" once, or set OMDB_API_KEY.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/nextep/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(newSetupCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the configuration and applies flag overrides
func loadConfig(opts *rootOptions) (*adapter.Config, error) {
	cfg, err := adapter.LoadConfig(opts.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	return cfg, nil
}

// setupLogger opens the log file, falling back to a null logger
func setupLogger(cfg *adapter.Config) (*slog.Logger, io.Closer) {
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		return adapter.NullLogger(), io.NopCloser(nil)
	}
	return logger, closer
}

func runTUI(opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("nextep needs an interactive terminal")
	}

	logger, closer := setupLogger(cfg)
	defer closer.Close()
	slog.SetDefault(logger)

	logger.Info("starting nextep", "version", Version)

	// A missing key is reported inside the UI on the first search
	if !cfg.HasAPIKey() {
		logger.Warn("no OMDb API key configured")
	}

	client, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create OMDb client: %w", err)
	}

	catalog := service.NewCatalogService(client, logger)

	model := tui.NewModel(catalog, tui.Options{
		GridColumns: cfg.UI.GridColumns,
		Plot:        domain.ParsePlotVerbosity(cfg.OMDb.Plot),
		Logger:      logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
