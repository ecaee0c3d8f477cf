// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/zecsuite/zecd/wire"
)

// testTx returns a transaction with the given output values, along with its
// hash.
func testTx(coinbase bool, values ...int64) (*wire.MsgTx, chainhash.Hash) {
	tx := wire.NewMsgTx()
	if coinbase {
		nullOut := wire.NullOutPoint()
		tx.AddTxIn(wire.NewTxIn(&nullOut, nil))
	} else {
		prev := chainhash.DoubleHashH([]byte("funding tx"))
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prev, 0), nil))
	}
	for _, value := range values {
		tx.AddTxOut(wire.NewTxOut(value, nil))
	}
	return tx, tx.TxHash()
}

// TestUtxoSetRecordRemove tests recording a transaction's outputs and
// removing them as they are spent.
func TestUtxoSetRecordRemove(t *testing.T) {
	set := NewUtxoSet()
	tx, txHash := testTx(true, 50, 25)
	set.RecordTransaction(tx, &txHash, 0, 5)

	if set.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", set.Len())
	}

	outpoint := wire.OutPoint{Hash: txHash, Index: 1}
	entry := set.Entry(outpoint)
	if entry == nil {
		t.Fatalf("Entry: missing outpoint %v", outpoint)
	}
	if entry.Amount() != 25 {
		t.Errorf("Amount: got %d, want 25", entry.Amount())
	}
	if entry.BlockHeight() != 5 {
		t.Errorf("BlockHeight: got %d, want 5", entry.BlockHeight())
	}
	if !entry.IsCoinBase() {
		t.Errorf("IsCoinBase: got false, want true")
	}

	removed, err := set.Remove(outpoint)
	if err != nil {
		t.Fatalf("Remove: unexpected error %v", err)
	}
	if removed != entry {
		t.Errorf("Remove: returned different entry")
	}
	if set.Len() != 1 {
		t.Errorf("Len after remove: got %d, want 1", set.Len())
	}
	if set.Entry(outpoint) != nil {
		t.Errorf("Entry after remove: outpoint still present")
	}
}

// TestUtxoSetRemoveAbsent ensures removing an absent outpoint is reported as
// an internal contract violation.
func TestUtxoSetRemoveAbsent(t *testing.T) {
	set := NewUtxoSet()
	outpoint := wire.OutPoint{Hash: chainhash.DoubleHashH([]byte("x"))}

	_, err := set.Remove(outpoint)
	if err == nil {
		t.Fatalf("Remove: no error for absent outpoint")
	}
	if _, ok := err.(AssertError); !ok {
		t.Errorf("Remove: error type %T, want AssertError", err)
	}
}

// TestUtxoSetIterationOrder ensures iteration happens in insertion order and
// survives removals and internal compaction.
func TestUtxoSetIterationOrder(t *testing.T) {
	set := NewUtxoSet()

	var want []wire.OutPoint
	for i := int64(0); i < 8; i++ {
		tx, txHash := testTx(false, 10+i)
		set.RecordTransaction(tx, &txHash, uint32(i), 1)
		want = append(want, wire.OutPoint{Hash: txHash, Index: 0})
	}

	collect := func() []wire.OutPoint {
		var got []wire.OutPoint
		set.forEach(func(op wire.OutPoint, _ *UtxoEntry) bool {
			got = append(got, op)
			return true
		})
		return got
	}

	got := collect()
	if len(got) != len(want) {
		t.Fatalf("forEach: got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("forEach: order mismatch at %d", i)
		}
	}

	// Remove enough entries to force compaction and ensure the relative
	// order of the survivors holds.
	for _, op := range want[:5] {
		if _, err := set.Remove(op); err != nil {
			t.Fatalf("Remove: %v", err)
		}
	}
	got = collect()
	if len(got) != 3 {
		t.Fatalf("forEach after removals: got %d entries, want 3",
			len(got))
	}
	for i, op := range want[5:] {
		if got[i] != op {
			t.Fatalf("forEach after removals: order mismatch at %d", i)
		}
	}
}
