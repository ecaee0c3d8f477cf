// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/zecsuite/zecd/wire"
)

// MaxMoney is the maximum amount of value a single output or shielded value
// balance may carry: the 21 million coin monetary cap in base units.
const MaxMoney int64 = 21e6 * 1e8

// ValueBalance tracks the running balance of value held in each chain value
// pool: the transparent pool and one pool per shielded protocol.  After
// processing any prefix of the chain, no pool balance may be negative.
type ValueBalance struct {
	Transparent int64
	Sapling     int64
	Orchard     int64
}

// NonNegative returns whether every pool balance is greater than or equal to
// zero.
func (v ValueBalance) NonNegative() bool {
	return v.Transparent >= 0 && v.Sapling >= 0 && v.Orchard >= 0
}

// String returns the value balance as a human-readable string.
func (v ValueBalance) String() string {
	return fmt.Sprintf("transparent: %d, sapling: %d, orchard: %d",
		v.Transparent, v.Sapling, v.Orchard)
}

// rebalanceTransaction repairs the internal value flow of the given
// transaction against the current pool balances and the map of outputs it
// spends, then returns the pool balances that result from applying it.
//
// Every amount is first forced into the monetary cap.  A positive shielded
// value balance withdraws value from that pool into the transaction and is
// clamped to the pool's current balance.  Shielded deposits (negative
// balances) and transparent output values are limited to the funds actually
// available to the transaction.  Coinbase transactions create value, so their
// deposits and outputs are not limited beyond the cap.
//
// The repair always succeeds for structurally valid input.  A negative
// resulting pool balance indicates a defect in the caller's bookkeeping and
// is returned as an error; it is fatal, not retried.
func rebalanceTransaction(tx *wire.MsgTx, pools ValueBalance,
	spentOutputs map[wire.OutPoint]*UtxoEntry) (ValueBalance, error) {

	// Normalize structurally arbitrary values before balancing.  Every
	// amount is forced into [0, MaxMoney] (value balances into
	// [-MaxMoney, MaxMoney]), coinbase included, so the sums below cannot
	// overflow and wrap past the negative-pool check.
	for _, txOut := range tx.TxOut {
		if txOut.Value < 0 {
			txOut.Value = 0
		}
		if txOut.Value > MaxMoney {
			txOut.Value = MaxMoney
		}
	}
	tx.SaplingValueBalance = clampBalance(tx.SaplingValueBalance)
	tx.OrchardValueBalance = clampBalance(tx.OrchardValueBalance)

	// Withdrawals from a shielded pool cannot exceed what the pool holds.
	if tx.SaplingValueBalance > pools.Sapling {
		tx.SaplingValueBalance = pools.Sapling
	}
	if tx.OrchardValueBalance > pools.Orchard {
		tx.OrchardValueBalance = pools.Orchard
	}

	var inputTotal int64
	for _, entry := range spentOutputs {
		inputTotal += entry.Amount()
	}

	// Coinbase transactions create value rather than conserving it, so
	// only non-coinbase transactions have their deposits and outputs
	// limited to the available funds.
	if !tx.IsCoinBase() {
		remaining := inputTotal
		if tx.SaplingValueBalance > 0 {
			remaining += tx.SaplingValueBalance
		}
		if tx.OrchardValueBalance > 0 {
			remaining += tx.OrchardValueBalance
		}

		if tx.SaplingValueBalance < 0 {
			if deposit := -tx.SaplingValueBalance; deposit > remaining {
				tx.SaplingValueBalance = -remaining
			}
			remaining += tx.SaplingValueBalance
		}
		if tx.OrchardValueBalance < 0 {
			if deposit := -tx.OrchardValueBalance; deposit > remaining {
				tx.OrchardValueBalance = -remaining
			}
			remaining += tx.OrchardValueBalance
		}

		for _, txOut := range tx.TxOut {
			if txOut.Value > remaining {
				txOut.Value = remaining
			}
			remaining -= txOut.Value
		}
	}

	var outputTotal int64
	for _, txOut := range tx.TxOut {
		outputTotal += txOut.Value
	}

	newPools := pools
	newPools.Transparent += outputTotal - inputTotal
	newPools.Sapling -= tx.SaplingValueBalance
	newPools.Orchard -= tx.OrchardValueBalance

	if !newPools.NonNegative() {
		return pools, ruleError(ErrValuePoolNegative, fmt.Sprintf(
			"value repair produced negative pool balances (%v)",
			newPools))
	}

	return newPools, nil
}

// clampBalance forces a shielded value balance into [-MaxMoney, MaxMoney].
func clampBalance(balance int64) int64 {
	if balance > MaxMoney {
		return MaxMoney
	}
	if balance < -MaxMoney {
		return -MaxMoney
	}
	return balance
}
