package render

import (
	"strings"

	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

// importHints tells users where each built-in currency's keys can be imported
var importHints = map[string]string{
	"bitcoin":   "Bitcoin: Use WIF or private key in any Bitcoin wallet",
	"ethereum":  "Ethereum: Import private key in MetaMask or similar",
	"chainlink": "Chainlink (LINK): Import the Ethereum private key in MetaMask or similar",
	"solana":    "Solana: Import the base58 secret key in Phantom or Solflare wallet",
}

func section(style *Styler, title string, body []string) []string {
	rule := style.Muted(strings.Repeat("=", provider.LineWidth))

	lines := []string{"", title, rule, ""}
	lines = append(lines, body...)
	return append(lines, "", rule, "")
}

// SecurityWarnings is printed before generating real wallets
func SecurityWarnings(style *Styler) []string {
	warnings := []string{
		"Run this tool OFFLINE on a secure, air-gapped computer",
		"Never share private keys or seed phrases with anyone",
		"Store paper wallets in a secure physical location (safe, vault)",
		"Make backup copies and store in separate secure locations",
		"Verify addresses before sending funds",
		"Use at your own risk",
	}

	body := make([]string, 0, len(warnings))
	for _, w := range warnings {
		body = append(body, style.Warning("  ⚠️  "+w))
	}

	return section(style, style.Bold(style.Danger("🔐 SECURITY WARNINGS")), body)
}

// UsageInstructions explains how to use the generated document
func UsageInstructions(style *Styler, providers []provider.Metadata) []string {
	body := []string{
		"1. Seed Phrase: Write down the 24-word mnemonic phrase",
		"2. Addresses: Use these to RECEIVE funds",
		"3. Private Keys: Use these to SEND funds or import to wallets",
		"4. Store Securely: Keep multiple copies in separate secure locations",
		"5. Test First: Send small amounts first to verify addresses work",
		"",
		style.Bold("To import wallets:"),
	}

	for _, meta := range providers {
		hint, ok := importHints[meta.ID]
		if !ok {
			hint = meta.Name + ": Import the private key in a compatible wallet"
		}
		body = append(body, "  • "+hint)
	}

	return section(style, style.Title("📖 USAGE INSTRUCTIONS"), body)
}

// DryRunBanner announces example output
func DryRunBanner(style *Styler) []string {
	return []string{
		"",
		style.Bold(style.Warning("🔍 DRY-RUN MODE")),
		style.Warning("No real addresses are being generated. This is for demonstration only."),
		style.Warning("⚠️  DO NOT send real funds to these addresses!"),
		"",
	}
}

// DryRunComplete closes a dry run
func DryRunComplete(style *Styler) []string {
	return []string{
		style.Bold(style.Warning("🔍 DRY-RUN MODE COMPLETE")),
		style.Warning("These were example addresses only. No real keys generated."),
		style.Warning("Remove --dry-run flag to generate real wallets."),
		"",
	}
}

// FileReminders follows writing real wallets to disk
func FileReminders(style *Styler, encrypted bool) []string {
	lines := []string{style.Warning("⚠️  Remember to:")}
	if encrypted {
		return append(lines,
			style.Warning("   1. Keep the password separate from the encrypted file"),
			style.Warning("   2. Decrypt only on an offline computer (bitpaper decrypt <file>)"),
			"",
		)
	}

	return append(lines,
		style.Warning("   1. Delete this file after printing/backing up"),
		style.Warning("   2. Securely wipe the file (use shred or similar tools)"),
		style.Warning("   3. Never store unencrypted wallets on networked devices"),
		"",
	)
}
