package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	EDGAR   EDGARConfig   `yaml:"edgar" mapstructure:"edgar"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Miner   MinerConfig   `yaml:"miner" mapstructure:"miner"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// EDGARConfig configures access to the SEC EDGAR endpoints.
type EDGARConfig struct {
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// ExtractConfig configures the fact extraction run.
type ExtractConfig struct {
	Years    int    `yaml:"years" mapstructure:"years"`
	Strategy string `yaml:"strategy" mapstructure:"strategy"`
}

// MinerConfig configures the disclosure table miner.
type MinerConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled"`
	MaxFilings int    `yaml:"max_filings" mapstructure:"max_filings"`
	MaxTables  int    `yaml:"max_tables" mapstructure:"max_tables"`
	PacingMS   int    `yaml:"pacing_ms" mapstructure:"pacing_ms"`
	TopicsFile string `yaml:"topics_file" mapstructure:"topics_file"`
}

// OutputConfig configures workbook output.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("EDGAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("edgar.user_agent", "Sells Advisors blake@sellsadvisors.com")
	v.SetDefault("edgar.timeout_secs", 30)
	v.SetDefault("extract.years", 15)
	v.SetDefault("extract.strategy", "keyword")
	v.SetDefault("miner.enabled", true)
	v.SetDefault("miner.max_filings", 8)
	v.SetDefault("miner.max_tables", 25)
	v.SetDefault("miner.pacing_ms", 300)
	v.SetDefault("output.dir", ".")
	v.SetDefault("server.port", 8080)
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
