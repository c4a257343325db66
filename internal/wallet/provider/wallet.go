package provider

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Keys used in WalletInfo.AdditionalData
const (
	DataWIF             = "wif"
	DataFormats         = "formats"
	DataSecretKeyBase58 = "secretKeyBase58"
)

// secretDataKeys lists AdditionalData entries that hold key material
var secretDataKeys = map[string]bool{
	DataWIF:             true,
	DataSecretKeyBase58: true,
}

// WalletInfo is the key material derived for one chain.
// It carries secrets: the fmt and zerolog representations only expose the address.
type WalletInfo struct {
	Address        string         `json:"address"`
	PrivateKey     string         `json:"privateKey"`
	PublicKey      string         `json:"publicKey"`
	AdditionalData map[string]any `json:"additionalData,omitempty"`
}

// String implements fmt.Stringer without leaking key material
func (w *WalletInfo) String() string {
	if w == nil {
		return "<nil>"
	}

	return fmt.Sprintf("WalletInfo{address:%s privateKey:[REDACTED]}", w.Address)
}

// GoString is used by %#v
func (w *WalletInfo) GoString() string {
	return w.String()
}

// MarshalZerologObject only logs public fields
func (w *WalletInfo) MarshalZerologObject(e *zerolog.Event) {
	if w == nil {
		return
	}

	e.Str("address", w.Address)

	for key := range w.AdditionalData {
		if secretDataKeys[key] {
			e.Str(key, "[REDACTED]")
		}
	}
}

// StringData returns a string entry of AdditionalData
func (w *WalletInfo) StringData(key string) (string, bool) {
	if w == nil || w.AdditionalData == nil {
		return "", false
	}

	v, ok := w.AdditionalData[key].(string)
	return v, ok && v != ""
}

// Formats returns the label -> address entry of AdditionalData, if present
func (w *WalletInfo) Formats() (map[string]string, bool) {
	if w == nil || w.AdditionalData == nil {
		return nil, false
	}

	switch formats := w.AdditionalData[DataFormats].(type) {
	case map[string]string:
		return formats, len(formats) > 0
	case map[string]any:
		// decoded from JSON
		out := make(map[string]string, len(formats))
		for label, v := range formats {
			if s, ok := v.(string); ok {
				out[label] = s
			}
		}
		return out, len(out) > 0
	default:
		return nil, false
	}
}
