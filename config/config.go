// Package config resolves noisegen settings from flags, environment
// variables and an optional config file.
//
// Every setting has a dotted key (e.g. "render.output"). Flags use the key
// as their name, environment variables use the NOISEGEN_ prefix with dots
// replaced by underscores (NOISEGEN_RENDER_OUTPUT), and config files use
// the dotted path as nesting.
package config

import (
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/DriftingOtter/Gaussian-Signal-Generation/logging"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/render"
)

const (
	// CfgConfigFile is the path of an optional yaml/toml/json config file.
	CfgConfigFile = "config"

	// CfgRenderOutput is the histogram image path.
	CfgRenderOutput = "render.output"
	// CfgRenderWidth is the image width in pixels.
	CfgRenderWidth = "render.width"
	// CfgRenderHeight is the image height in pixels.
	CfgRenderHeight = "render.height"
	// CfgRenderDPI is the rasterisation DPI.
	CfgRenderDPI = "render.dpi"

	// CfgNoiseSeed seeds the sampler; 0 picks a time-based seed.
	CfgNoiseSeed = "noise.seed"
	// CfgNoiseLegacyDraw selects the resolution-1 draw count.
	CfgNoiseLegacyDraw = "noise.legacy_draw"

	// CfgInputFile reads prompt answers from a file instead of stdin.
	CfgInputFile = "input.file"
	// CfgEchoBuffer prints the raw sample buffer.
	CfgEchoBuffer = "echo.buffer"

	// CfgKafkaBrokers lists Kafka brokers for report publication.
	CfgKafkaBrokers = "report.kafka.brokers"
	// CfgKafkaTopic is the Kafka topic for reports.
	CfgKafkaTopic = "report.kafka.topic"

	cfgLogFile  = "log.file"
	cfgLogFmt   = "log.format"
	cfgLogLevel = "log.level"

	envPrefix = "NOISEGEN"
)

// ErrInvalidConfig is returned when a resolved setting is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Kafka holds the optional report sink settings.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether reports should be published.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

// Log holds the logging backend settings.
type Log struct {
	File   string
	Format logging.Format
	Level  logging.Level
}

// Config is the fully resolved run configuration.
type Config struct {
	Render     render.Config
	Seed       uint64
	LegacyDraw bool
	InputFile  string
	EchoBuffer bool
	Kafka      Kafka
	Log        Log
}

// Flags returns a new flag set holding every noisegen flag with its default.
func Flags() *flag.FlagSet {
	fs := flag.NewFlagSet("noisegen", flag.ContinueOnError)
	fs.String(CfgConfigFile, "", "config file (yaml, toml or json)")

	fs.String(CfgRenderOutput, render.DefaultPath, "histogram image path")
	fs.Int(CfgRenderWidth, render.DefaultWidth, "image width in pixels")
	fs.Int(CfgRenderHeight, render.DefaultHeight, "image height in pixels")
	fs.Int(CfgRenderDPI, render.DefaultDPI, "image DPI")

	fs.Uint64(CfgNoiseSeed, 0, "sampler seed (0 = time based)")
	fs.Bool(CfgNoiseLegacyDraw, false, "draw resolution-1 uniforms per sample")

	fs.String(CfgInputFile, "", "read prompt answers from this file instead of stdin")
	fs.Bool(CfgEchoBuffer, true, "print the generated sample buffer")

	fs.StringSlice(CfgKafkaBrokers, nil, "Kafka brokers for report publication")
	fs.String(CfgKafkaTopic, "", "Kafka topic for reports")

	logFmt := logging.FmtLogfmt
	logLevel := logging.LevelWarn
	fs.String(cfgLogFile, "", "log file (default stderr)")
	fs.Var(&logFmt, cfgLogFmt, "log format")
	fs.Var(&logLevel, cfgLogLevel, "log level")

	return fs
}

// NewViper returns a viper instance bound to fs and the NOISEGEN_ environment.
func NewViper(fs *flag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}

	return v, nil
}

// Load reads the optional config file named by CfgConfigFile and resolves
// all settings from v.
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString(CfgConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{
		Render:     render.DefaultConfig(),
		Seed:       v.GetUint64(CfgNoiseSeed),
		LegacyDraw: v.GetBool(CfgNoiseLegacyDraw),
		InputFile:  v.GetString(CfgInputFile),
		EchoBuffer: v.GetBool(CfgEchoBuffer),
		Kafka: Kafka{
			Brokers: splitList(v.GetStringSlice(CfgKafkaBrokers)),
			Topic:   v.GetString(CfgKafkaTopic),
		},
		Log: Log{
			File: v.GetString(cfgLogFile),
		},
	}
	cfg.Render.Path = v.GetString(CfgRenderOutput)
	cfg.Render.Width = v.GetInt(CfgRenderWidth)
	cfg.Render.Height = v.GetInt(CfgRenderHeight)
	cfg.Render.DPI = v.GetInt(CfgRenderDPI)

	if err := cfg.Log.Format.Set(v.GetString(cfgLogFmt)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Log.Level.Set(v.GetString(cfgLogLevel)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList flattens comma separated entries. Environment values reach
// GetStringSlice as one whitespace-split string, so "a,b" arrives whole.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

func (c *Config) validate() error {
	switch {
	case c.Render.Path == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, CfgRenderOutput)
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Render.Width, c.Render.Height)
	case c.Render.DPI <= 0:
		return fmt.Errorf("%w: %s=%d", ErrInvalidConfig, CfgRenderDPI, c.Render.DPI)
	case c.Kafka.Enabled() && c.Kafka.Topic == "":
		return fmt.Errorf("%w: %s is required with %s", ErrInvalidConfig, CfgKafkaTopic, CfgKafkaBrokers)
	}

	return nil
}
