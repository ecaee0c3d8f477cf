// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/zecsuite/zecd/wire"
)

// UtxoEntry contains contextual information about an unspent transaction
// output such as which block it was created in, its position inside that
// block, and whether or not it was created by a coinbase transaction.
//
// Entries are never mutated in place: an entry is created when a kept
// transaction's outputs are recorded and destroyed exactly once, when the
// output is selected as a transaction input.
type UtxoEntry struct {
	amount      int64  // The amount of the output.
	pkScript    []byte // The public key script for the output.
	blockHeight int32  // Height of block containing the tx.
	blockIndex  uint32 // Index of the tx within that block.
	isCoinBase  bool   // Whether the containing tx is a coinbase.
}

// Amount returns the amount of the output.
func (entry *UtxoEntry) Amount() int64 {
	return entry.amount
}

// PkScript returns the public key script for the output.
func (entry *UtxoEntry) PkScript() []byte {
	return entry.pkScript
}

// BlockHeight returns the height of the block containing the transaction the
// utxo entry represents.
func (entry *UtxoEntry) BlockHeight() int32 {
	return entry.blockHeight
}

// BlockIndex returns the index within its block of the transaction the utxo
// entry represents.
func (entry *UtxoEntry) BlockIndex() uint32 {
	return entry.blockIndex
}

// IsCoinBase returns whether or not the transaction the utxo entry represents
// is a coinbase.
func (entry *UtxoEntry) IsCoinBase() bool {
	return entry.isCoinBase
}

// UtxoSet represents the set of unspent transparent outputs available to one
// chain construction run.  There is no persistence beyond the run.
//
// Go map iteration order is randomized, while chain construction must be a
// deterministic function of its input.  The set therefore maintains the
// outpoints in insertion order alongside the map and all iteration happens in
// that order.
type UtxoSet struct {
	entries map[wire.OutPoint]*UtxoEntry

	// order lists outpoints in insertion order.  Removed outpoints leave
	// a hole which iteration skips; holes are compacted once they make up
	// the majority of the slice.
	order []wire.OutPoint
	dead  int
}

// NewUtxoSet returns a new, empty unspent transaction output set.
func NewUtxoSet() *UtxoSet {
	return &UtxoSet{
		entries: make(map[wire.OutPoint]*UtxoEntry),
	}
}

// Len returns the number of unspent outputs in the set.
func (s *UtxoSet) Len() int {
	return len(s.entries)
}

// Entry returns the entry for the given outpoint, or nil when the outpoint
// is not in the set.
func (s *UtxoSet) Entry(outpoint wire.OutPoint) *UtxoEntry {
	return s.entries[outpoint]
}

// RecordTransaction inserts every transparent output of the given transaction
// into the set, keyed by its own outpoint, tagging coinbase status and
// creation height.  The caller is responsible for only recording kept
// transactions.
func (s *UtxoSet) RecordTransaction(tx *wire.MsgTx, txHash *chainhash.Hash,
	blockIndex uint32, height int32) {

	isCoinBase := tx.IsCoinBase()
	for outputIndex, txOut := range tx.TxOut {
		outpoint := wire.OutPoint{Hash: *txHash, Index: uint32(outputIndex)}
		s.entries[outpoint] = &UtxoEntry{
			amount:      txOut.Value,
			pkScript:    txOut.PkScript,
			blockHeight: height,
			blockIndex:  blockIndex,
			isCoinBase:  isCoinBase,
		}
		s.order = append(s.order, outpoint)
	}
}

// Remove destroys the entry for the given outpoint and returns it.  Removing
// an outpoint that is not in the set is a contract violation: the selection
// logic guarantees presence before any removal.
func (s *UtxoSet) Remove(outpoint wire.OutPoint) (*UtxoEntry, error) {
	entry, ok := s.entries[outpoint]
	if !ok {
		return nil, AssertError("removed outpoint " + outpoint.String() +
			" must have an unspent output")
	}
	delete(s.entries, outpoint)

	s.dead++
	if s.dead > len(s.order)/2 {
		s.compact()
	}

	return entry, nil
}

// compact rewrites the insertion order slice without the holes left behind by
// removed outpoints.  Relative order is preserved.
func (s *UtxoSet) compact() {
	live := s.order[:0]
	for _, outpoint := range s.order {
		if _, ok := s.entries[outpoint]; ok {
			live = append(live, outpoint)
		}
	}
	s.order = live
	s.dead = 0
}

// forEach invokes the callback for each unspent output in insertion order
// until the callback returns false.
func (s *UtxoSet) forEach(f func(wire.OutPoint, *UtxoEntry) bool) {
	for _, outpoint := range s.order {
		entry, ok := s.entries[outpoint]
		if !ok {
			continue
		}
		if !f(outpoint, entry) {
			return
		}
	}
}
