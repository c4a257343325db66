package factory

import (
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

// Entry is one generated wallet and the provider that produced it
type Entry struct {
	ID       string
	Wallet   *provider.WalletInfo
	Provider provider.Provider
}

// Failure records a requested id that produced no wallet
type Failure struct {
	ID  string
	Err error
}

// WalletSet is the result of one generation request. Entries exist only for
// providers that were resolved and succeeded, in selection order.
type WalletSet struct {
	Mnemonic           string
	Timestamp          string
	SelectedCurrencies []string
	Failures           []Failure

	entries []Entry
	index   map[string]int
}

func newWalletSet(mnemonic string, timestamp string, selected []string) *WalletSet {
	requested := make([]string, len(selected))
	copy(requested, selected)

	return &WalletSet{
		Mnemonic:           mnemonic,
		Timestamp:          timestamp,
		SelectedCurrencies: requested,
		index:              make(map[string]int),
	}
}

func (s *WalletSet) insert(id string, wallet *provider.WalletInfo, p provider.Provider) {
	if i, ok := s.index[id]; ok {
		s.entries[i] = Entry{ID: id, Wallet: wallet, Provider: p}
		return
	}

	s.index[id] = len(s.entries)
	s.entries = append(s.entries, Entry{ID: id, Wallet: wallet, Provider: p})
}

// Wallet returns the wallet generated for id
func (s *WalletSet) Wallet(id string) (*provider.WalletInfo, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}

	return s.entries[i].Wallet, true
}

// Provider returns the provider that generated the wallet for id
func (s *WalletSet) Provider(id string) (provider.Provider, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}

	return s.entries[i].Provider, true
}

// Entries returns the generated wallets in selection order
func (s *WalletSet) Entries() []Entry {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// IDs returns the ids of the generated wallets in selection order
func (s *WalletSet) IDs() []string {
	ids := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		ids = append(ids, e.ID)
	}

	return ids
}

// Len returns the number of generated wallets
func (s *WalletSet) Len() int {
	return len(s.entries)
}

// Failure returns the recorded failure of id
func (s *WalletSet) Failure(id string) (Failure, bool) {
	for _, f := range s.Failures {
		if f.ID == id {
			return f, true
		}
	}

	return Failure{}, false
}
