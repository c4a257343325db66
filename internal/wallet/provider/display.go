package provider

import (
	"fmt"
	"strings"
)

// AddressFormat selects which encodings multi-format providers display
type AddressFormat string

const (
	FormatAll          AddressFormat = "all"
	FormatLegacy       AddressFormat = "legacy"
	FormatP2SHSegwit   AddressFormat = "p2sh-segwit"
	FormatNativeSegwit AddressFormat = "native-segwit"
)

// KnownFormats lists every accepted AddressFormat
var KnownFormats = []AddressFormat{FormatLegacy, FormatP2SHSegwit, FormatNativeSegwit, FormatAll}

// ParseAddressFormat normalizes user input, an empty string means all formats
func ParseAddressFormat(s string) (AddressFormat, error) {
	f := AddressFormat(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatAll, nil
	}

	for _, known := range KnownFormats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("unsupported address format %q", s)
}

// DisplayOptions is threaded through FormatWalletInfo
type DisplayOptions struct {
	Format AddressFormat
	ShowQR bool
}

// DefaultDisplayOptions shows every format and a QR code
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{Format: FormatAll, ShowQR: true}
}

// SpecificFormat reports whether the user asked for a single format
func (o DisplayOptions) SpecificFormat() bool {
	return o.Format != "" && o.Format != FormatAll
}

// LineWidth is the width of separators in rendered output
const LineWidth = 80

// Header returns the title and separator lines every provider starts with
func Header(meta Metadata) []string {
	return []string{
		fmt.Sprintf("%s  %s (%s)", meta.Icon, strings.ToUpper(meta.Name), meta.Symbol),
		strings.Repeat("-", LineWidth),
	}
}

// SingleFormatNote is shown by single-format chains when a specific format was requested
func SingleFormatNote(opts DisplayOptions, reason string) []string {
	if !opts.SpecificFormat() {
		return nil
	}

	return []string{
		"Note: " + reason,
		"   The --format option only applies to currencies with multiple formats (e.g., Bitcoin).",
		"",
	}
}
