package keeper

import (
	deterministicmap "github.com/tokenize-x/vesting-escrow/pkg/deterministic_map"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

// walletIndex is a secondary, O(1) lookup from recipient wallet to
// its position in the keeper's authoritative recipient slice. It
// exists purely to make duplicate-wallet rejection in AddRecipients
// and lookups in RevokeRecipient/ReleaseToRecipient/EmitVestingQuote
// cheap on a 35-entry list; it is never itself the source of truth
// and its sorted iteration order (inherited from deterministicmap.Map)
// is never exposed to a caller.
type walletIndex struct {
	byWallet *deterministicmap.Map[string, int]
}

func newWalletIndex() *walletIndex {
	return &walletIndex{byWallet: deterministicmap.New[string, int]()}
}

// Lookup returns the slice position of wallet, if present.
func (w *walletIndex) Lookup(wallet types.Address) (int, bool) {
	return w.byWallet.Get(wallet.String())
}

// Contains reports whether wallet has already been recorded.
func (w *walletIndex) Contains(wallet types.Address) bool {
	return w.byWallet.Contains(wallet.String())
}

// Record associates wallet with its slice position. Callers must only
// call this when appending to the end of the recipient slice: the
// index never needs to renumber existing entries because the
// authoritative slice is append-only.
func (w *walletIndex) Record(wallet types.Address, position int) {
	w.byWallet.Set(wallet.String(), position)
}
