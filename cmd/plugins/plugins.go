package plugins

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitpaper/paper-wallet/cmd/info"
	"github.com/bitpaper/paper-wallet/internal/config"
	"github.com/bitpaper/paper-wallet/internal/util/command"
	"github.com/bitpaper/paper-wallet/internal/wallet/plugin"
	"github.com/bitpaper/paper-wallet/internal/wallet/registry"
	"github.com/bitpaper/paper-wallet/internal/wallet/render"
)

// ErrRejectedPlugins is returned by check when at least one manifest was rejected
var ErrRejectedPlugins = errors.New("plugin directory contains rejected plugins")

func New(v *viper.Viper) *cobra.Command {
	return command.NewSubcommandGroup("plugins",
		newListCommand(v),
		newCheckCommand(),
	)
}

func newListCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and manifest plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			return command.WithRuntime(cmd.Context(), cfg, func(_ context.Context, rt *command.Runtime) error {
				info.Print(cmd.OutOrStdout(), rt.Registry, render.NewStyler(!color.NoColor))
				return nil
			})
		},
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <dir>",
		Short: "Validate the plugin manifests of a directory without registering them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if stat, err := os.Stat(dir); err != nil || !stat.IsDir() {
				return errors.Errorf("plugin directory %s not found", dir)
			}

			report, err := registry.New().Load(cmd.Context(), plugin.NewDirSource(os.DirFS(dir)))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			style := render.NewStyler(!color.NoColor)

			for _, id := range report.Loaded {
				fmt.Fprintln(out, style.Success("✅ "+id))
			}
			for _, rejected := range report.Rejected {
				fmt.Fprintln(out, style.Danger("❌ "+rejected.Error()))
			}
			fmt.Fprintln(out, style.Info(fmt.Sprintf("%d loaded, %d rejected", len(report.Loaded), len(report.Rejected))))

			if len(report.Rejected) > 0 {
				return ErrRejectedPlugins
			}

			return nil
		},
	}
}
