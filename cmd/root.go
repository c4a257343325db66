package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bitpaper/paper-wallet/cmd/decrypt"
	"github.com/bitpaper/paper-wallet/cmd/generate"
	"github.com/bitpaper/paper-wallet/cmd/info"
	"github.com/bitpaper/paper-wallet/cmd/plugins"
	"github.com/bitpaper/paper-wallet/cmd/validate"
	"github.com/bitpaper/paper-wallet/cmd/verify"
	"github.com/bitpaper/paper-wallet/internal/config"
	"github.com/bitpaper/paper-wallet/internal/util/command"
)

var (
	v       = config.NewViper()
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     config.ModuleName,
	Short:   "Generate secure paper wallets for multiple cryptocurrencies",
	Long: fmt.Sprintf(`%v

Generates deterministic paper wallets for several blockchains from one
BIP39 seed phrase. Run it OFFLINE on an air-gapped computer.
Configuration through flags, a YAML file (--config) or %s_* ENV variables.`, config.ModuleName, config.EnvPrefix),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cfgFile != "" {
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
		}

		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		logger := command.ConfigureLogger(cfg.Logger, os.Stderr)
		cmd.SetContext(logger.WithContext(cmd.Context()))

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path to a YAML config file")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.Bool("pretty", true, "human readable log output on stderr")
	flags.String("plugins-dir", "", "directory with <name>/plugin.json manifests to load")

	command.MustBindFlag(v, config.KeyLogLevel, flags.Lookup("log-level"))
	command.MustBindFlag(v, config.KeyLogPretty, flags.Lookup("pretty"))
	command.MustBindFlag(v, config.KeyPluginsDir, flags.Lookup("plugins-dir"))

	// attach the subcommands
	rootCmd.AddCommand(
		generate.New(v),
		generate.NewRestore(v),
		verify.New(),
		info.New(v),
		validate.New(v),
		decrypt.New(),
		plugins.New(v),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
