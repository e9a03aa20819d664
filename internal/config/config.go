// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	ServerCfg   ServerConfig   `mapstructure:"server" yaml:"server"`
	AnalysisCfg AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
}

// --- Getters ---

func (c *Config) Logger() LoggerConfig     { return c.LoggerCfg }
func (c *Config) Server() ServerConfig     { return c.ServerCfg }
func (c *Config) Analysis() AnalysisConfig { return c.AnalysisCfg }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// ServerConfig tunes the HTTP API surface.
type ServerConfig struct {
	Host             string        `mapstructure:"host" yaml:"host"`
	Port             int           `mapstructure:"port" yaml:"port"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	RateLimitRPS     float64       `mapstructure:"rate_limit_rps" yaml:"rate_limit_rps"`
	RateLimitBurst   int           `mapstructure:"rate_limit_burst" yaml:"rate_limit_burst"`
	CORSAllowOrigins []string      `mapstructure:"cors_allow_origins" yaml:"cors_allow_origins"`
}

// Addr returns the host:port the server binds to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AnalysisConfig carries the tunables of the classification and simulation
// core. The defaults are load-bearing: the confidence floor and the step cap
// are part of the observable contract and must not drift.
type AnalysisConfig struct {
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold"`
	StepCap             int     `mapstructure:"step_cap" yaml:"step_cap"`
	DefaultSequence     []int   `mapstructure:"default_sequence" yaml:"default_sequence"`
	DefaultTarget       int     `mapstructure:"default_target" yaml:"default_target"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "algolens")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "red")

	// -- Server --
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8001)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.rate_limit_rps", 20.0)
	v.SetDefault("server.rate_limit_burst", 40)
	v.SetDefault("server.cors_allow_origins", []string{"*"})

	// -- Analysis --
	// The threshold and cap mirror the values the step contract was written
	// against; changing them changes observable traces.
	v.SetDefault("analysis.confidence_threshold", 0.3)
	v.SetDefault("analysis.step_cap", 10)
	v.SetDefault("analysis.default_sequence", []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19})
	v.SetDefault("analysis.default_target", 7)
}

// Validate checks the configuration for values that would misbehave at runtime.
func (c *Config) Validate() error {
	if c.ServerCfg.Port < 1 || c.ServerCfg.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.ServerCfg.Port)
	}
	if c.ServerCfg.RateLimitRPS <= 0 {
		return fmt.Errorf("server.rate_limit_rps must be positive, got %v", c.ServerCfg.RateLimitRPS)
	}
	if c.ServerCfg.RateLimitBurst < 1 {
		return fmt.Errorf("server.rate_limit_burst must be a positive integer, got %d", c.ServerCfg.RateLimitBurst)
	}
	if c.AnalysisCfg.ConfidenceThreshold < 0 || c.AnalysisCfg.ConfidenceThreshold > 1 {
		return fmt.Errorf("analysis.confidence_threshold must be in [0, 1], got %v", c.AnalysisCfg.ConfidenceThreshold)
	}
	if c.AnalysisCfg.StepCap < 1 {
		return fmt.Errorf("analysis.step_cap must be a positive integer, got %d", c.AnalysisCfg.StepCap)
	}
	if len(c.AnalysisCfg.DefaultSequence) == 0 {
		return fmt.Errorf("analysis.default_sequence must not be empty")
	}
	return nil
}
