package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitpaper/paper-wallet/internal/config"
	"github.com/bitpaper/paper-wallet/internal/util/command"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
	"github.com/bitpaper/paper-wallet/internal/wallet/render"
)

// ErrInvalidAddress is returned when the address fails validation
var ErrInvalidAddress = errors.New("invalid address")

func New(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <currency> <address>",
		Short: "Check the syntax of an address",
		Long: `Validates address syntax and checksum offline and prints explorer links.
No network request is made; a valid address may still be unused.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			id := strings.ToLower(strings.TrimSpace(args[0]))
			address := strings.TrimSpace(args[1])

			return command.WithRuntime(cmd.Context(), cfg, func(_ context.Context, rt *command.Runtime) error {
				out := cmd.OutOrStdout()
				style := render.NewStyler(!color.NoColor)

				p, ok := rt.Registry.Get(id)
				if !ok {
					return errors.Wrapf(provider.UnknownProvider(id), "available: %s", strings.Join(rt.Registry.IDs(), ", "))
				}

				if !rt.Factory.ValidateAddress(id, address) {
					fmt.Fprintln(out, style.Danger(fmt.Sprintf("❌ Invalid %s address", p.Metadata().Name)))
					if checker, ok := p.(provider.AddressChecker); ok {
						for _, reason := range checker.CheckAddress(address).Errors {
							fmt.Fprintln(out, "   "+reason)
						}
					}
					return ErrInvalidAddress
				}

				fmt.Fprintln(out, style.Success(fmt.Sprintf("✅ Valid %s address", p.Metadata().Name)))
				if url, ok := rt.Factory.ExplorerURL(id, address); ok {
					fmt.Fprintln(out, "   Explorer: "+url)
				}
				if url, ok := rt.Factory.TestnetExplorerURL(id, address); ok {
					fmt.Fprintln(out, "   Testnet:  "+url)
				}

				return nil
			})
		},
	}
}
