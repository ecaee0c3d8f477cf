// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/zecsuite/zecd/wire"
)

// defaultSelectionProbeLimit is the default maximum number of spend checker
// invocations a single selection performs before giving up.
//
// The limit is a bounded-latency trade-off: it accepts false negatives on
// large unordered sets rather than exhaustively scanning them, which would
// make total construction cost quadratic in chain size.  It is a heuristic,
// not a correctness requirement, and can be tuned via the builder config.
const defaultSelectionProbeLimit = 100

// findSpendableUtxo searches the unspent output set for an outpoint the given
// transaction may spend, probing the spend checker for each candidate in the
// set's deterministic iteration order.
//
// When a candidate fails the check under the current restriction and the
// transaction carries shielded outputs, the same candidate is retried under a
// stricter restriction that additionally forbids new transparent outputs.  If
// that succeeds, the transaction's transparent outputs are cleared and the
// restriction is promoted in place for the remainder of the transaction's
// fixups.
//
// Returns nil when no spendable output was found within the probe limit.
func findSpendableUtxo(utxos *UtxoSet, tx *wire.MsgTx,
	restriction *SpendRestriction, checker SpendChecker,
	probeLimit int) *wire.OutPoint {

	hasShieldedOutputs := tx.HasShieldedOutputs()
	shieldedOnly := SpendRestriction{
		SpendHeight:  restriction.SpendHeight,
		ShieldedOnly: true,
	}

	var selected *wire.OutPoint
	probes := 0
	utxos.forEach(func(outpoint wire.OutPoint, entry *UtxoEntry) bool {
		// Try the utxo under the current restriction, then with the
		// transaction's transparent outputs deleted.
		if probes >= probeLimit {
			return false
		}
		probes++
		if checker.CheckSpend(outpoint, *restriction, entry) == nil {
			selected = &outpoint
			return false
		}

		if !hasShieldedOutputs || probes >= probeLimit {
			return probes < probeLimit
		}
		probes++
		if checker.CheckSpend(outpoint, shieldedOnly, entry) == nil {
			tx.TxOut = nil
			*restriction = shieldedOnly
			selected = &outpoint
			return false
		}

		return true
	})

	return selected
}
