package generate

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitpaper/paper-wallet/internal/config"
	"github.com/bitpaper/paper-wallet/internal/util/command"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

const (
	outputFlag         = "output"
	currenciesFlag     = "currencies"
	formatFlag         = "format"
	noQRFlag           = "no-qr"
	noWarningsFlag     = "no-warnings"
	noInstructionsFlag = "no-instructions"
	encryptFlag        = "encrypt"
	parallelFlag       = "parallel"
	metricsFlag        = "metrics-textfile"
	countFlag          = "count"
	dryRunFlag         = "dry-run"
)

// options of one generate or restore invocation
type options struct {
	count        int
	output       string
	currencies   []string
	display      provider.DisplayOptions
	dryRun       bool
	warnings     bool
	instructions bool
	encrypt      bool
	mnemonic     string
}

// addDocumentFlags registers the flags shared by generate and restore
func addDocumentFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP(outputFlag, "o", "", "save output to file (mode 0600)")
	flags.StringSlice(currenciesFlag, nil, "comma-separated list of currencies (default: all registered)")
	flags.String(formatFlag, "all", "address format for multi-format currencies: legacy, p2sh-segwit, native-segwit or all")
	flags.Bool(noQRFlag, false, "omit QR codes")
	flags.Bool(noWarningsFlag, false, "skip security warnings")
	flags.Bool(noInstructionsFlag, false, "skip usage instructions")
	flags.Bool(encryptFlag, false, "encrypt the output file with a password (requires --output)")
	flags.Int(parallelFlag, 1, "number of providers generating concurrently")
	flags.String(metricsFlag, "", "write generation metrics in Prometheus text format to this file")
}

// bindFlags binds the flags of the executing command to viper keys. Generate and
// restore share keys, so binding happens at execution time.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()

	command.MustBindFlag(v, config.KeyGenerateCurrency, flags.Lookup(currenciesFlag))
	command.MustBindFlag(v, config.KeyGenerateFormat, flags.Lookup(formatFlag))
	command.MustBindFlag(v, config.KeyGenerateParallel, flags.Lookup(parallelFlag))
	command.MustBindFlag(v, config.KeyMetricsTextfile, flags.Lookup(metricsFlag))

	if count := flags.Lookup(countFlag); count != nil {
		command.MustBindFlag(v, config.KeyGenerateCount, count)
	}
}

// resolveOptions merges config (file, env) with negated flags that viper cannot bind
func resolveOptions(cmd *cobra.Command, cfg config.Config) options {
	flags := cmd.Flags()

	opts := options{
		count:        cfg.Generate.Count,
		currencies:   cfg.Generate.Currencies,
		warnings:     cfg.Generate.Warnings,
		instructions: cfg.Generate.Instructions,
		display: provider.DisplayOptions{
			// unknown formats are passed on, multi-format providers warn and show all
			Format: provider.AddressFormat(strings.ToLower(strings.TrimSpace(cfg.Generate.Format))),
			ShowQR: cfg.Generate.ShowQR,
		},
	}

	opts.output, _ = flags.GetString(outputFlag)
	opts.encrypt, _ = flags.GetBool(encryptFlag)

	if flags.Changed(noQRFlag) {
		noQR, _ := flags.GetBool(noQRFlag)
		opts.display.ShowQR = !noQR
	}
	if flags.Changed(noWarningsFlag) {
		noWarnings, _ := flags.GetBool(noWarningsFlag)
		opts.warnings = !noWarnings
	}
	if flags.Changed(noInstructionsFlag) {
		noInstructions, _ := flags.GetBool(noInstructionsFlag)
		opts.instructions = !noInstructions
	}
	if flags.Lookup(dryRunFlag) != nil {
		opts.dryRun, _ = flags.GetBool(dryRunFlag)
	}

	return opts
}
