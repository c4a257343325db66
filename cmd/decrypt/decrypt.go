package decrypt

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitpaper/paper-wallet/internal/util"
	"github.com/bitpaper/paper-wallet/internal/wallet/keystore"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <file>",
		Short: "Decrypt a file written with generate --encrypt",
		Long: `Decrypts an encrypted paper wallet file and prints the document to stdout.
Only do this on an offline computer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// the scrypt parameters are read from the file
			ks, err := keystore.NewService(nil)
			if err != nil {
				return err
			}

			password, err := util.PromptPassword(cmd.ErrOrStderr(), "Password: ", false)
			if err != nil {
				return err
			}

			plaintext, err := ks.ReadFile(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(plaintext))

			return nil
		},
	}
}
