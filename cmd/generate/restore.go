package generate

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitpaper/paper-wallet/internal/config"
	"github.com/bitpaper/paper-wallet/internal/util/command"
	"github.com/bitpaper/paper-wallet/internal/wallet/seed"
)

// NewRestore returns the restore command
func NewRestore(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <mnemonic>",
		Short: "Regenerate the wallets of an existing mnemonic phrase",
		Long: `Validates a BIP39 mnemonic and regenerates its paper wallet set.
The phrase may be passed as one quoted argument or as separate words.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic := seed.NormalizeMnemonic(strings.Join(args, " "))
			if !seed.ValidateMnemonic(mnemonic) {
				return errors.Wrap(seed.ErrInvalidMnemonic, "cannot restore")
			}

			bindFlags(cmd, v)

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			opts := resolveOptions(cmd, cfg)
			opts.count = 1
			opts.mnemonic = mnemonic

			return command.WithRuntime(cmd.Context(), cfg, func(ctx context.Context, rt *command.Runtime) error {
				return run(ctx, cmd, rt, opts)
			})
		},
	}

	addDocumentFlags(cmd)

	return cmd
}
