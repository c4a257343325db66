// Package command holds helpers shared by the cobra commands.
package command

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bitpaper/paper-wallet/internal/config"
	"github.com/bitpaper/paper-wallet/internal/util"
	"github.com/bitpaper/paper-wallet/internal/wallet/chains"
	"github.com/bitpaper/paper-wallet/internal/wallet/factory"
	"github.com/bitpaper/paper-wallet/internal/wallet/plugin"
	"github.com/bitpaper/paper-wallet/internal/wallet/registry"
)

// NewSubcommandGroup returns a command that only groups subcommands and prints help when run
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: use + " subcommands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// ConfigureLogger sets the global zerolog logger. Logs go to w (stderr) so stdout only carries documents.
func ConfigureLogger(cfg config.LoggerConfig, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.ZerologLevel())

	if cfg.PrettyPrintConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	logCtx := zerolog.New(w).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}

	log.Logger = logCtx.Logger()

	return log.Logger
}

// Runtime is the wired application: registry with built-in and manifest plugins,
// a factory and its metrics registry
type Runtime struct {
	Config   config.Config
	Registry *registry.Registry
	Factory  *factory.Factory
	Metrics  *prometheus.Registry
}

// NewRuntime registers the built-in providers and loads plugins from cfg.Plugins.Dir
func NewRuntime(ctx context.Context, cfg config.Config) (*Runtime, error) {
	log := util.LogFromContext(ctx)

	reg := registry.New()
	if err := chains.RegisterBuiltIn(ctx, reg); err != nil {
		return nil, errors.Wrap(err, "failed to register built-in providers")
	}

	if dir := cfg.Plugins.Dir; dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			log.Warn().Str("dir", dir).Msg("Plugin directory not found")
		} else {
			report, err := reg.Load(ctx, plugin.NewDirSource(os.DirFS(dir)))
			if err != nil {
				return nil, errors.Wrap(err, "failed to load plugins")
			}
			log.Debug().Strs("loaded", report.Loaded).Int("rejected", len(report.Rejected)).Msg("Loaded plugins")
		}
	}

	promRegistry := prometheus.NewRegistry()
	metrics := factory.NewMetricsWithRegistry(promRegistry)

	return &Runtime{
		Config:   cfg,
		Registry: reg,
		Factory: factory.New(reg,
			factory.WithParallelism(cfg.Generate.Parallelism),
			factory.WithMetrics(metrics),
		),
		Metrics: promRegistry,
	}, nil
}

// WithRuntime builds a Runtime, runs f and writes the metrics textfile if configured
func WithRuntime(ctx context.Context, cfg config.Config, f func(ctx context.Context, rt *Runtime) error) error {
	rt, err := NewRuntime(ctx, cfg)
	if err != nil {
		return err
	}

	fErr := f(ctx, rt)

	if path := cfg.Metrics.Textfile; path != "" {
		if err := prometheus.WriteToTextfile(path, rt.Metrics); err != nil {
			util.LogFromContext(ctx).Error().Err(err).Str("path", path).Msg("Failed to write metrics textfile")
			if fErr == nil {
				fErr = errors.Wrap(err, "failed to write metrics textfile")
			}
		}
	}

	return fErr
}

// MustBindFlag binds a flag to a viper key, panicking on programmer error
func MustBindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if flag == nil {
		panic("flag for config key " + key + " not defined")
	}

	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
