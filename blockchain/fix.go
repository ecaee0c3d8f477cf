// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/zecsuite/zecd/wire"
)

// fixTransaction repairs one candidate transaction against the unspent
// output set so it obeys the bookkeeping rules:
//
//   - every transparent input referencing a prior output is rebound to a
//     spendable outpoint chosen by the selection logic, or silently dropped
//     when none can be found;
//   - coinbase-style inputs, which reference no prior output, pass through
//     unchanged;
//   - the transaction's value flow is repaired so the chain value pools stay
//     non-negative.
//
// A transaction that ends up with neither transparent nor shielded inputs is
// dropped entirely, reported by a nil transaction with a nil error.
// Otherwise, unless the transaction is part of the untracked genesis block,
// the new pool balances are committed and the transaction's outputs are
// recorded into the set.
func (b *ChainBuilder) fixTransaction(tx *wire.MsgTx, txIndex int,
	height int32) (*wire.MsgTx, error) {

	restriction := TransactionSpendRestriction(tx, height)
	spentOutputs := make(map[wire.OutPoint]*UtxoEntry)

	newInputs := make([]*wire.TxIn, 0, len(tx.TxIn))
	for _, txIn := range tx.TxIn {
		// Preserve coinbase inputs.
		if txIn.PreviousOutPoint.IsNull() {
			newInputs = append(newInputs, txIn)
			continue
		}

		// The transparent chain value pool is the sum of unspent
		// outputs, so it needs no separate check here: only unspent
		// outputs are ever selected.
		selected := findSpendableUtxo(b.utxos, tx, &restriction,
			b.checker, b.probeLimit)
		if selected == nil {
			// Drop the input: it has no spendable output.
			log.Tracef("Dropping input of transaction %d at "+
				"height %d: no spendable output", txIndex,
				height)
			continue
		}

		txIn.PreviousOutPoint = *selected
		newInputs = append(newInputs, txIn)

		spentEntry, err := b.utxos.Remove(*selected)
		if err != nil {
			return nil, err
		}
		spentOutputs[*selected] = spentEntry
	}
	tx.TxIn = newInputs

	newPools, err := rebalanceTransaction(tx, b.pools, spentOutputs)
	if err != nil {
		return nil, err
	}

	if !tx.HasTransparentOrShieldedInputs() {
		return nil, nil
	}

	// Genesis-created value is untracked: the pools and the unspent
	// output set only reflect transactions above height 0.
	if height > 0 {
		b.pools = newPools

		txHash := tx.TxHash()
		b.utxos.RecordTransaction(tx, &txHash, uint32(txIndex), height)
	}

	return tx, nil
}
