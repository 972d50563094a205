package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Submission strategies.
const (
	StrategyLocal  = "local"
	StrategyLedger = "ledger"
	StrategyHTTP   = "http"
)

// Config holds application configuration.
type Config struct {
	Donation DonationConfig
	Submit   SubmitConfig
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// DonationConfig holds the amount slider bounds.
type DonationConfig struct {
	Min     int
	Max     int
	Step    int
	Default int
}

// SubmitConfig selects where submitted donations go.
type SubmitConfig struct {
	Strategy string
	Endpoint string
	Timeout  time.Duration
}

// DatabaseConfig holds sqlite settings for the ledger strategy.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds log file settings. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings. Subtitle is shown under the fixed
// header.
type UIConfig struct {
	Subtitle       string
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "gofundme")
}

func defaultConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "gofundme", "config.toml")
}

// Load reads .env files, the config file and env. Env var overrides use prefix GOFUNDME_.
// A config file named by GOFUNDME_CONFIG must exist.
func Load() (Config, error) {
	return load(true)
}

// LoadAllowMissing is Load for callers about to create the config file: a
// missing GOFUNDME_CONFIG file yields defaults instead of an error.
func LoadAllowMissing() (Config, error) {
	return load(false)
}

func load(requireExplicit bool) (Config, error) {
	if err := loadDotEnv(".env", ".env.local"); err != nil {
		return Config{}, err
	}

	v := viper.New()

	v.SetDefault("donation.min", 1)
	v.SetDefault("donation.max", 1000)
	v.SetDefault("donation.step", 1)
	v.SetDefault("donation.default", 5)
	v.SetDefault("submit.strategy", StrategyLocal)
	v.SetDefault("submit.endpoint", "")
	v.SetDefault("submit.timeout", "10s")
	v.SetDefault("database.path", filepath.Join(dataDir(), "donations.db"))
	v.SetDefault("log.path", filepath.Join(dataDir(), "gofundme.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.subtitle", "")
	v.SetDefault("ui.currency_symbol", "$")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GOFUNDME_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(defaultConfigPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GOFUNDME")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default config file is fine; an explicit one must exist unless
	// the caller is about to write it
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !missing || (cfgPath != "" && requireExplicit) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Submit.Strategy = strings.ToLower(strings.TrimSpace(c.Submit.Strategy))
	return c, nil
}

// loadDotEnv loads each file that exists. Missing files are skipped; a file
// that cannot be parsed is an error.
func loadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Path returns the config file Load reads and Save writes.
func Path() string {
	if p := os.Getenv("GOFUNDME_CONFIG"); p != "" {
		return p
	}
	return defaultConfigPath()
}

// Validate checks the slider bounds and submission settings.
func (c Config) Validate() error {
	d := c.Donation
	if d.Step <= 0 {
		return fmt.Errorf("donation.step must be positive, got %d", d.Step)
	}
	if d.Min < 0 {
		return fmt.Errorf("donation.min must not be negative, got %d", d.Min)
	}
	if d.Max < d.Min {
		return fmt.Errorf("donation.max (%d) is below donation.min (%d)", d.Max, d.Min)
	}
	if d.Default < d.Min || d.Default > d.Max {
		return fmt.Errorf("donation.default (%d) is outside [%d, %d]", d.Default, d.Min, d.Max)
	}
	switch c.Submit.Strategy {
	case StrategyLocal:
	case StrategyLedger:
		if strings.TrimSpace(c.Database.Path) == "" {
			return fmt.Errorf("submit.strategy %q needs database.path", StrategyLedger)
		}
	case StrategyHTTP:
		if strings.TrimSpace(c.Submit.Endpoint) == "" {
			return fmt.Errorf("submit.strategy %q needs submit.endpoint", StrategyHTTP)
		}
	default:
		return fmt.Errorf("unknown submit.strategy %q", c.Submit.Strategy)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("donation.min", cfg.Donation.Min)
	v.Set("donation.max", cfg.Donation.Max)
	v.Set("donation.step", cfg.Donation.Step)
	v.Set("donation.default", cfg.Donation.Default)
	v.Set("submit.strategy", cfg.Submit.Strategy)
	v.Set("submit.endpoint", cfg.Submit.Endpoint)
	v.Set("submit.timeout", cfg.Submit.Timeout.String())
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.subtitle", cfg.UI.Subtitle)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
