// Package cmd implements the noisegen command.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/DriftingOtter/Gaussian-Signal-Generation/config"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/logging"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/noise"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/pipeline"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/prompt"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/report"
)

var logger = logging.GetLogger("cmd")

// NewRootCmd returns the noisegen command with a fresh flag set.
func NewRootCmd() *cobra.Command {
	fs := config.Flags()

	root := &cobra.Command{
		Use:   "noisegen",
		Short: "generate Irwin-Hall noise and render its histogram",
		Long: `noisegen asks for a resolution, center, width and sample count,
builds a buffer of Irwin-Hall samples, bins it automatically or over
user-supplied ranges and saves a bar chart of the bin counts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, fs)
		},
	}
	root.Flags().AddFlagSet(fs)

	return root
}

// Execute runs the command and exits with status 1 on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
		os.Exit(1)
	}
}

// runRoot resolves configuration and logging, then runs one session.
// Failures are logged while the log destination is still open.
func runRoot(cmd *cobra.Command, fs *flag.FlagSet) error {
	cfg, err := loadConfig(fs)
	if err != nil {
		// Nothing configured a destination yet; fall back to stderr.
		if lerr := logging.Initialize(cmd.ErrOrStderr(), logging.FmtLogfmt, logging.LevelWarn); lerr == nil {
			logger.Error("run failed", "err", err)
		}
		return err
	}

	closeLog, err := initLogging(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	if err = run(cmd, cfg); err != nil {
		logger.Error("run failed", "err", err)
	}

	return err
}

func loadConfig(fs *flag.FlagSet) (*config.Config, error) {
	v, err := config.NewViper(fs)
	if err != nil {
		return nil, err
	}

	return config.Load(v)
}

// run wires the configured input, options and publisher into pipeline.Run.
func run(cmd *cobra.Command, cfg *config.Config) error {
	in, closeIn, err := openInput(cfg.InputFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closeIn()

	opts := pipeline.Options{
		Render:     cfg.Render,
		Seed:       cfg.Seed,
		DrawMode:   noise.DrawExact,
		EchoBuffer: cfg.EchoBuffer,
	}
	if cfg.LegacyDraw {
		opts.DrawMode = noise.DrawLegacy
	}

	if cfg.Kafka.Enabled() {
		pub, err := report.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logger.Warn("closing kafka producer", "err", cerr)
			}
		}()
		opts.Publisher = pub
	}

	lvl := logging.GetLevel()
	logger.Debug("starting run",
		"log_level", lvl.String(),
		"output", cfg.Render.Path,
		"seed", cfg.Seed,
		"draw_mode", opts.DrawMode,
		"kafka", cfg.Kafka.Enabled(),
	)

	_, err = pipeline.Run(prompt.NewReader(in), cmd.OutOrStdout(), opts)

	return err
}

// initLogging sends logs to the configured file, or to stderr when unset.
func initLogging(cfg config.Log, stderr io.Writer) (func(), error) {
	var (
		w       io.Writer = stderr
		closeFn           = func() {}
	)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("root: failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	if err := logging.Initialize(w, cfg.Format, cfg.Level); err != nil {
		closeFn()
		return nil, fmt.Errorf("root: failed to initialize logging: %w", err)
	}

	return closeFn, nil
}

// openInput returns the answers file when set, otherwise stdin.
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" {
		return stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("root: failed to open input file: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
