package generate

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitpaper/paper-wallet/internal/config"
	"github.com/bitpaper/paper-wallet/internal/util/command"
	"github.com/bitpaper/paper-wallet/internal/wallet/seed"
)

// New returns the generate command
func New(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate paper wallet(s)",
		Long: `Generates one or more paper wallet sets, each from a fresh 24-word
BIP39 mnemonic, for the selected currencies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindFlags(cmd, v)

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			opts := resolveOptions(cmd, cfg)
			if opts.dryRun {
				opts.mnemonic = seed.DryRunMnemonic
			}

			return command.WithRuntime(cmd.Context(), cfg, func(ctx context.Context, rt *command.Runtime) error {
				return run(ctx, cmd, rt, opts)
			})
		},
	}

	addDocumentFlags(cmd)

	flags := cmd.Flags()
	flags.IntP(countFlag, "c", 1, "number of wallet sets to generate")
	flags.Bool(dryRunFlag, false, "show the output format using a public example mnemonic, no real keys")

	return cmd
}
