package info

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitpaper/paper-wallet/internal/config"
	"github.com/bitpaper/paper-wallet/internal/util/command"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
	"github.com/bitpaper/paper-wallet/internal/wallet/registry"
	"github.com/bitpaper/paper-wallet/internal/wallet/render"
)

func New(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show information about supported cryptocurrencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			return command.WithRuntime(cmd.Context(), cfg, func(_ context.Context, rt *command.Runtime) error {
				Print(cmd.OutOrStdout(), rt.Registry, render.NewStyler(!color.NoColor))
				return nil
			})
		},
	}
}

// Print lists every registered provider with its metadata and capabilities
func Print(w io.Writer, reg *registry.Registry, style *render.Styler) {
	rule := style.Muted(strings.Repeat("=", provider.LineWidth))
	providers := reg.List()

	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Title("📋 Supported Cryptocurrencies"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	for _, p := range providers {
		meta := p.Metadata()

		fmt.Fprintln(w, style.Bold(fmt.Sprintf("%s  %s (%s)", meta.Icon, meta.Name, meta.Symbol)))
		fmt.Fprintf(w, "   ID: %s\n", meta.ID)
		if meta.Description != "" {
			fmt.Fprintf(w, "   %s\n", meta.Description)
		}
		if meta.DerivationPath != "" {
			fmt.Fprintf(w, "   Derivation Path: %s\n", meta.DerivationPath)
		}
		fmt.Fprintf(w, "   Plugin Version: %s\n", meta.Version)
		if names := provider.CapabilitiesOf(p).Names(); len(names) > 0 {
			fmt.Fprintf(w, "   Capabilities: %s\n", strings.Join(names, ", "))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, style.Info(fmt.Sprintf("Total Plugins Loaded: %d", len(providers))))
	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Warning("⚠️  Security Notice:"))
	fmt.Fprintln(w, style.Warning("   Always run this tool OFFLINE on a secure, air-gapped computer"))
	fmt.Fprintln(w)
}
