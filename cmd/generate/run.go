package generate

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bitpaper/paper-wallet/internal/util"
	"github.com/bitpaper/paper-wallet/internal/util/command"
	"github.com/bitpaper/paper-wallet/internal/wallet/factory"
	"github.com/bitpaper/paper-wallet/internal/wallet/hdkey"
	"github.com/bitpaper/paper-wallet/internal/wallet/keystore"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
	"github.com/bitpaper/paper-wallet/internal/wallet/registry"
	"github.com/bitpaper/paper-wallet/internal/wallet/render"
	"github.com/bitpaper/paper-wallet/internal/wallet/seed"
)

// run generates opts.count wallet sets and prints or writes the document
func run(ctx context.Context, cmd *cobra.Command, rt *command.Runtime, opts options) error {
	log := util.LogFromContext(ctx)
	out := cmd.OutOrStdout()

	if opts.encrypt && opts.output == "" {
		return errors.New("--encrypt requires --output")
	}

	ids, err := selectCurrencies(ctx, rt.Registry, opts.currencies)
	if err != nil {
		return err
	}

	term := render.NewStyler(!color.NoColor)
	doc := term
	if opts.output != "" {
		doc = render.PlainStyler()
	}

	names := make([]string, 0, len(ids))
	metas := make([]provider.Metadata, 0, len(ids))
	for _, p := range rt.Registry.Providers(ids) {
		names = append(names, p.Metadata().Name)
		metas = append(metas, p.Metadata())
	}

	printLines(out, "", term.Info("📝 Generating wallets for: "+strings.Join(names, ", ")), "")

	if opts.dryRun {
		printLines(out, render.DryRunBanner(term)...)
	} else if opts.warnings {
		printLines(out, render.SecurityWarnings(term)...)
	}

	documents := make([]string, 0, opts.count)
	for i := 1; i <= opts.count; i++ {
		set, err := generateSet(ctx, rt.Factory, opts.mnemonic, ids, opts.dryRun)
		if err != nil {
			return err
		}

		if set.Len() == 0 {
			return errors.Errorf("no wallets generated for wallet set #%d", i)
		}
		for _, f := range set.Failures {
			log.Warn().Err(f.Err).Str("provider", f.ID).Int("set", i).Msg("Wallet omitted from set")
		}

		document, err := render.FormatWalletSet(ctx, set, i, opts.display, doc)
		if err != nil {
			return err
		}
		documents = append(documents, document)
	}

	if opts.dryRun {
		printLines(out, term.Warning(fmt.Sprintf("Generated %d example wallet set(s)!", opts.count)), "")
	} else {
		printLines(out, term.Success(fmt.Sprintf("Generated %d wallet set(s)!", opts.count)), "")
	}

	content := strings.Join(documents, "\n")
	if opts.output == "" {
		printLines(out, content)
	} else {
		if err := writeOutput(ctx, cmd, rt, opts, content); err != nil {
			return err
		}

		printLines(out, term.Success("✅ Wallets saved to: "+opts.output), "")
		if !opts.dryRun {
			printLines(out, render.FileReminders(term, opts.encrypt)...)
		}
	}

	if opts.dryRun {
		printLines(out, render.DryRunComplete(term)...)
		return nil
	}

	if opts.instructions {
		printLines(out, render.UsageInstructions(term, metas)...)
	}

	printLines(out, term.Success("✅ Generation complete!"), "")

	return nil
}

// selectCurrencies drops unknown ids; an empty request selects every registered provider
func selectCurrencies(ctx context.Context, reg *registry.Registry, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return reg.IDs(), nil
	}

	selected := make([]string, 0, len(requested))
	for _, id := range requested {
		id = strings.ToLower(strings.TrimSpace(id))
		if !reg.Has(id) {
			util.LogFromContext(ctx).Warn().Str("provider", id).Msg("Unknown currency, ignoring")
			continue
		}
		selected = append(selected, id)
	}

	if len(selected) == 0 {
		return nil, errors.Errorf("no valid currencies specified, available: %s", strings.Join(reg.IDs(), ", "))
	}

	return selected, nil
}

// generateSet derives one wallet set; an empty mnemonic means a fresh random one
func generateSet(ctx context.Context, f *factory.Factory, mnemonic string, ids []string, dryRun bool) (*factory.WalletSet, error) {
	if mnemonic == "" {
		generated, err := seed.GenerateMnemonic()
		if err != nil {
			return nil, errors.Wrap(err, "insufficient entropy for secure key generation")
		}
		mnemonic = generated
	}

	manager := seed.NewManager()
	if err := manager.Initialize(mnemonic, ""); err != nil {
		return nil, err
	}
	defer manager.Clear()

	seedBytes := manager.GetSeed()
	defer hdkey.Zero(seedBytes)

	set, err := f.Generate(ctx, seedBytes, manager.Mnemonic(), ids, dryRun)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate wallet set")
	}

	return set, nil
}

func writeOutput(ctx context.Context, cmd *cobra.Command, rt *command.Runtime, opts options, content string) error {
	if !opts.encrypt {
		if err := os.WriteFile(opts.output, []byte(content), keystore.FileMode); err != nil {
			return errors.Wrapf(err, "failed to write %s", opts.output)
		}
		return nil
	}

	ks, err := keystore.NewService(&keystore.ScryptParams{
		DKLen: keystore.DefaultScryptParams().DKLen,
		N:     rt.Config.Keystore.ScryptN,
		R:     rt.Config.Keystore.ScryptR,
		P:     rt.Config.Keystore.ScryptP,
	})
	if err != nil {
		return err
	}

	password, err := util.PromptPassword(cmd.ErrOrStderr(), "Encryption password: ", true)
	if err != nil {
		return err
	}

	return ks.WriteFile(ctx, opts.output, []byte(content), password)
}

func printLines(w io.Writer, lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
