package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/bitpaper/paper-wallet/internal/util"
	"github.com/bitpaper/paper-wallet/internal/wallet/factory"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

const (
	heavyRule = "═"
	lightRule = "─"
)

// FormatWalletSet renders wallet set number n. Providers are asked for their
// lines in selection order; requested ids without a wallet get an omission notice.
func FormatWalletSet(ctx context.Context, set *factory.WalletSet, n int, opts provider.DisplayOptions, style *Styler) (string, error) {
	if style == nil {
		style = PlainStyler()
	}

	rule := strings.Repeat(heavyRule, provider.LineWidth)
	lines := []string{
		"",
		style.Title(rule),
		style.Title(fmt.Sprintf("  PAPER WALLET SET #%d", n)),
		style.Title(rule),
		"",
		style.Muted("Generated: " + set.Timestamp),
		"",
		style.Bold(style.Warning("🔐 MASTER SEED PHRASE (BIP39 Mnemonic)")),
		style.Warning(strings.Repeat("-", provider.LineWidth)),
		style.Bold(set.Mnemonic),
		"",
		style.Danger("⚠️  CRITICAL: Write this down and store it securely! This can recover ALL wallets below."),
		"",
		style.Muted(strings.Repeat(lightRule, provider.LineWidth)),
		"",
	}

	seen := make(map[string]bool, len(set.SelectedCurrencies))
	for _, id := range set.SelectedCurrencies {
		if seen[id] {
			continue
		}
		seen[id] = true

		wallet, ok := set.Wallet(id)
		if !ok {
			lines = append(lines, omissionNotice(set, id, style)...)
			continue
		}

		p, _ := set.Provider(id)
		walletLines, err := p.FormatWalletInfo(ctx, wallet, opts)
		if err != nil {
			util.LogFromContext(ctx).Error().Err(err).Str("provider", id).Msg("Failed to format wallet")
			return "", errors.Wrapf(err, "failed to format %s wallet", id)
		}
		lines = append(lines, walletLines...)
	}

	lines = append(lines, style.Title(rule), "")

	return strings.Join(lines, "\n"), nil
}

func omissionNotice(set *factory.WalletSet, id string, style *Styler) []string {
	reason := "provider not available"
	if f, ok := set.Failure(id); ok && f.Err != nil {
		reason = failureReason(f.Err)
	}

	return []string{
		style.Danger(fmt.Sprintf("⚠️  %s: NOT GENERATED (%s)", strings.ToUpper(id), reason)),
		style.Muted("   No address or key for this currency is included in this set."),
		"",
	}
}

func failureReason(err error) string {
	var providerErr *provider.Error
	if errors.As(err, &providerErr) {
		switch providerErr.Code {
		case provider.CodeUnknownProvider:
			return "unknown currency"
		case provider.CodeAddressEncodingFailure:
			return "address encoding failed"
		case provider.CodeDerivationFailure:
			return "key derivation failed"
		}
	}

	return "generation failed"
}
