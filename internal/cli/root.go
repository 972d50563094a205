package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/gofundme/internal/config"
	"github.com/jask/gofundme/internal/database"
	"github.com/jask/gofundme/internal/database/repository"
	"github.com/jask/gofundme/internal/donation"
	"github.com/jask/gofundme/internal/logging"
	"github.com/jask/gofundme/internal/service"
	"github.com/jask/gofundme/internal/tui"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	flagConfig   string
	flagStrategy string
	flagEndpoint string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:   "gofundme",
	Short: "Donation form for the terminal",
	Long: `gofundme shows a donation form: enter a name, a caption and an amount,
press Donate and the donation joins the list of recent donations.

Submitted donations are handed to a submission strategy:
  local   keep donations in this session only (default)
  ledger  also append them to a SQLite ledger
  http    POST them as JSON to submit.endpoint`,
	SilenceUsage: true,
	RunE:         runForm,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("gofundme version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default $HOME/.config/gofundme/config.toml)")
	pf.StringVar(&flagStrategy, "strategy", "", "submission strategy: local, ledger or http")
	pf.StringVar(&flagEndpoint, "endpoint", "", "donation endpoint for the http strategy")
	pf.StringVar(&flagLogFile, "log-file", "", "log file path (empty keeps the configured path)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig() (config.Config, error) {
	return loadConfigWith(config.Load)
}

// loadConfigWith reads config through load and applies the command line
// flags on top.
func loadConfigWith(load func() (config.Config, error)) (config.Config, error) {
	if flagConfig != "" {
		if err := os.Setenv("GOFUNDME_CONFIG", flagConfig); err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := load()
	if err != nil {
		return config.Config{}, err
	}
	if flagStrategy != "" {
		cfg.Submit.Strategy = strings.ToLower(strings.TrimSpace(flagStrategy))
	}
	if flagEndpoint != "" {
		cfg.Submit.Endpoint = flagEndpoint
	}
	if flagLogFile != "" {
		cfg.Log.Path = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func runForm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	ctx := cmd.Context()
	sub, cleanup, err := buildSubmitter(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Info().Str("strategy", cfg.Submit.Strategy).Str("version", Version).Msg("starting")
	p := tea.NewProgram(tui.New(ctx, cfg, sub, log), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run form: %w", err)
	}
	return nil
}

// buildSubmitter returns the configured submission strategy and a cleanup
// func releasing anything it opened.
func buildSubmitter(cfg config.Config, log zerolog.Logger) (donation.Submitter, func(), error) {
	switch cfg.Submit.Strategy {
	case config.StrategyLedger:
		db, err := openLedger(cfg.Database.Path)
		if err != nil {
			return nil, func() {}, err
		}
		sub := &service.LedgerSubmitter{
			Donations: repository.NewDonationRepo(db),
			Log:       log.With().Str("component", "ledger").Logger(),
		}
		return sub, func() { _ = db.Close() }, nil
	case config.StrategyHTTP:
		sub := service.NewHTTPSubmitter(cfg.Submit.Endpoint, cfg.Submit.Timeout, log.With().Str("component", "http").Logger())
		return sub, func() {}, nil
	default:
		return donation.LocalSubmitter{}, func() {}, nil
	}
}

func openLedger(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}
