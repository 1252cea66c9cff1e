// CLAUDE:SUMMARY Runtime counters for held wrappers, pending snapshots, rejected cycles, and key collisions.
package domswap

// Stats holds keeper counters.
type Stats struct {
	// Held is the number of wrappers currently parked in the container.
	Held int `json:"held"`
	// PendingSnapshots is the number of scroll snapshots awaiting restore.
	PendingSnapshots int `json:"pending_snapshots"`
	// Rejected counts before-swap triggers refused because a previous
	// navigation cycle had not finished.
	Rejected int `json:"rejected"`
	// Collisions counts duplicate-key events, whichever policy applied.
	Collisions int `json:"collisions"`
}

// Stats returns a snapshot of the keeper's counters.
func (k *Keeper) Stats() Stats {
	k.mu.Lock()
	defer k.mu.Unlock()
	return Stats{
		Held:             k.store.Held(),
		PendingSnapshots: k.store.PendingSnapshots(),
		Rejected:         k.rejected,
		Collisions:       k.collisions,
	}
}
