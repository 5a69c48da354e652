package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Fetch   FetchConfig   `yaml:"fetch" mapstructure:"fetch"`
	Batch   BatchConfig   `yaml:"batch" mapstructure:"batch"`
	Compose ComposeConfig `yaml:"compose" mapstructure:"compose"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// InputConfig configures spreadsheet discovery.
type InputConfig struct {
	Dir        string `yaml:"dir" mapstructure:"dir"`
	SheetIndex int    `yaml:"sheet_index" mapstructure:"sheet_index"`
}

// OutputConfig configures where artifacts are written.
type OutputConfig struct {
	Dir        string `yaml:"dir" mapstructure:"dir"`
	CSVName    string `yaml:"csv_name" mapstructure:"csv_name"`
	RunLogName string `yaml:"run_log_name" mapstructure:"run_log_name"`
}

// FetchConfig configures the per-lead website fetch.
type FetchConfig struct {
	TimeoutSecs int  `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	Disabled    bool `yaml:"disabled" mapstructure:"disabled"`
}

// BatchConfig configures batch pacing and progress reporting.
type BatchConfig struct {
	LeadDelayMillis  int `yaml:"lead_delay_millis" mapstructure:"lead_delay_millis"`
	ProgressInterval int `yaml:"progress_interval" mapstructure:"progress_interval"`
}

// ComposeConfig configures email generation.
type ComposeConfig struct {
	DemoURL       string `yaml:"demo_url" mapstructure:"demo_url"`
	TemplatesFile string `yaml:"templates_file" mapstructure:"templates_file"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// FetchTimeout returns the website fetch timeout as a duration.
func (f FetchConfig) FetchTimeout() time.Duration {
	return time.Duration(f.TimeoutSecs) * time.Second
}

// LeadDelay returns the fixed inter-lead pacing delay.
func (b BatchConfig) LeadDelay() time.Duration {
	return time.Duration(b.LeadDelayMillis) * time.Millisecond
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("OUTREACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("input.dir", "leads")
	v.SetDefault("input.sheet_index", 0)
	v.SetDefault("output.dir", "out")
	v.SetDefault("output.csv_name", "leads.csv")
	v.SetDefault("output.run_log_name", "run.log")
	v.SetDefault("fetch.timeout_secs", 5)
	v.SetDefault("fetch.disabled", false)
	v.SetDefault("batch.lead_delay_millis", 150)
	v.SetDefault("batch.progress_interval", 10)
	v.SetDefault("compose.demo_url", "https://angebots-agent.de/demo")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
