// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/zecsuite/zecd/wire"
)

// SpendRestriction classifies how a candidate unspent output may be spent by
// a transaction at a particular height.  Coinbase outputs may only be spent
// once mature, and depending on the active rules only inside a transaction
// without any transparent outputs (a fully shielding spend).
type SpendRestriction struct {
	// SpendHeight is the height of the block containing the spending
	// transaction.
	SpendHeight int32

	// ShieldedOnly indicates the spending transaction has no transparent
	// outputs, so the spent value can only flow into shielded pools.
	ShieldedOnly bool
}

// TransactionSpendRestriction derives the spend restriction class of the
// given transaction when included at the given height: the spend is shielded
// only when the transaction carries no transparent outputs.
func TransactionSpendRestriction(tx *wire.MsgTx, height int32) SpendRestriction {
	return SpendRestriction{
		SpendHeight:  height,
		ShieldedOnly: len(tx.TxOut) == 0,
	}
}

// SpendChecker decides whether an unspent output may be spent under the given
// restriction.  It represents the real consensus spend-validity rule, which
// is injected by the caller; this package ships no rule implementation of its
// own.
//
// Implementations must be pure and free of side effects: the selection logic
// may invoke the check many times for the same input, in any order.
type SpendChecker interface {
	// CheckSpend returns nil when the output identified by the outpoint
	// may be spent under the restriction, and a describing error
	// otherwise.
	CheckSpend(outpoint wire.OutPoint, restriction SpendRestriction,
		entry *UtxoEntry) error
}

// SpendCheckerFunc is an adapter to allow the use of ordinary functions as
// spend checkers.
type SpendCheckerFunc func(wire.OutPoint, SpendRestriction, *UtxoEntry) error

// CheckSpend calls f(outpoint, restriction, entry).
func (f SpendCheckerFunc) CheckSpend(outpoint wire.OutPoint,
	restriction SpendRestriction, entry *UtxoEntry) error {

	return f(outpoint, restriction, entry)
}

// AllowAllSpends is a SpendChecker that accepts every spend.  It is useful
// for tests that exercise structural properties without enforcing coinbase
// maturity rules.
var AllowAllSpends SpendChecker = SpendCheckerFunc(
	func(wire.OutPoint, SpendRestriction, *UtxoEntry) error {
		return nil
	})
