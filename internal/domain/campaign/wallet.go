package campaign

// Wallet is the per-faction resource ledger. A missing faction or resource
// key reads as zero; balances may go negative through debuffs. Validation is
// the caller's job, Credit and Debit apply unconditionally.
type Wallet map[string]map[string]int

func (w Wallet) Get(factionID, resourceID string) int {
	return w[factionID][resourceID]
}

func (w Wallet) Credit(factionID, resourceID string, amount int) {
	if w[factionID] == nil {
		w[factionID] = map[string]int{}
	}
	w[factionID][resourceID] += amount
}

func (w Wallet) Debit(factionID, resourceID string, amount int) {
	w.Credit(factionID, resourceID, -amount)
}

// CanAfford reports whether every cost entry is covered by the faction's
// current balance.
func (w Wallet) CanAfford(factionID string, cost map[string]int) bool {
	for resourceID, amount := range cost {
		if w.Get(factionID, resourceID) < amount {
			return false
		}
	}
	return true
}

// Balances returns a copy of one faction's ledger, never nil.
func (w Wallet) Balances(factionID string) map[string]int {
	out := map[string]int{}
	for resourceID, amount := range w[factionID] {
		out[resourceID] = amount
	}
	return out
}
