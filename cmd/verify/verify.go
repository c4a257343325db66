package verify

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bitpaper/paper-wallet/internal/wallet/render"
	"github.com/bitpaper/paper-wallet/internal/wallet/seed"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <mnemonic>",
		Short: "Verify a mnemonic phrase is valid",
		Long: `Checks the BIP39 word list and checksum of a mnemonic phrase.
Exits with a non-zero status if the phrase is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style := render.NewStyler(!color.NoColor)
			mnemonic := strings.Join(args, " ")

			if !seed.ValidateMnemonic(mnemonic) {
				fmt.Fprintln(cmd.OutOrStdout(), style.Danger("❌ Invalid mnemonic phrase"))
				return errors.WithStack(seed.ErrInvalidMnemonic)
			}

			words := len(strings.Fields(mnemonic))
			fmt.Fprintln(cmd.OutOrStdout(), style.Success(fmt.Sprintf("✅ Valid mnemonic phrase (%d words)", words)))

			return nil
		},
	}
}
