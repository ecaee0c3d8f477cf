// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// TestOutPoint tests outpoint construction, the null outpoint, and the
// human-readable form.
func TestOutPoint(t *testing.T) {
	hash, err := chainhash.NewHashFromStr("01")
	if err != nil {
		t.Fatalf("NewHashFromStr: %v", err)
	}

	op := NewOutPoint(hash, 3)
	if op.Hash != *hash || op.Index != 3 {
		t.Errorf("NewOutPoint: wrong contents - got %v:%d", op.Hash,
			op.Index)
	}
	if op.IsNull() {
		t.Errorf("IsNull: returned true for a real outpoint")
	}

	null := NullOutPoint()
	if !null.IsNull() {
		t.Errorf("IsNull: returned false for the null outpoint")
	}

	wantStr := hash.String() + ":3"
	if s := op.String(); s != wantStr {
		t.Errorf("String: got %q, want %q", s, wantStr)
	}
}

// TestTxIsCoinBase ensures coinbase detection keys off the first input's
// previous outpoint.
func TestTxIsCoinBase(t *testing.T) {
	coinbase := NewMsgTx()
	nullOut := NullOutPoint()
	coinbase.AddTxIn(NewTxIn(&nullOut, []byte{0x01, 0x02}))
	if !coinbase.IsCoinBase() {
		t.Errorf("IsCoinBase: coinbase transaction not detected")
	}

	regular := NewMsgTx()
	hash := chainhash.DoubleHashH([]byte("prev tx"))
	regular.AddTxIn(NewTxIn(NewOutPoint(&hash, 0), nil))
	if regular.IsCoinBase() {
		t.Errorf("IsCoinBase: regular transaction detected as coinbase")
	}

	empty := NewMsgTx()
	if empty.IsCoinBase() {
		t.Errorf("IsCoinBase: empty transaction detected as coinbase")
	}
}

// TestTxHash tests that the transaction hash is deterministic, sensitive to
// effecting data, and insensitive to authorizing data.
func TestTxHash(t *testing.T) {
	tx := NewMsgTx()
	hash := chainhash.DoubleHashH([]byte("prev tx"))
	tx.AddTxIn(NewTxIn(NewOutPoint(&hash, 1), []byte{0x51}))
	tx.AddTxOut(NewTxOut(5000, []byte{0x51, 0x52}))
	tx.AddSaplingOutput(&SaplingOutput{CMU: [32]byte{0x01}})

	first := tx.TxHash()
	second := tx.TxHash()
	if first != second {
		t.Fatalf("TxHash: hash not deterministic - %v != %v", first,
			second)
	}

	// Changing authorizing data must not change the hash.
	tx.TxIn[0].SignatureScript = []byte{0x00, 0x01, 0x02}
	tx.BindingSig[0] = 0xff
	if h := tx.TxHash(); h != first {
		t.Errorf("TxHash: hash changed with authorizing data - %v != %v",
			h, first)
	}

	// Changing an output must change the hash.
	tx.TxOut[0].Value = 4999
	if h := tx.TxHash(); h == first {
		t.Errorf("TxHash: hash did not change with output value")
	}
}

// TestAuthDigest tests that the authorizing data digest covers signature data
// and is domain separated by the consensus branch ID.
func TestAuthDigest(t *testing.T) {
	tx := NewMsgTx()
	hash := chainhash.DoubleHashH([]byte("prev tx"))
	tx.AddTxIn(NewTxIn(NewOutPoint(&hash, 0), []byte{0x51}))

	d1 := tx.AuthDigest(0xf5b9230b)
	d2 := tx.AuthDigest(0xf5b9230b)
	if d1 != d2 {
		t.Fatalf("AuthDigest: digest not deterministic")
	}

	if d3 := tx.AuthDigest(0xc2d6d0b4); d3 == d1 {
		t.Errorf("AuthDigest: digest not separated by branch ID")
	}

	tx.TxIn[0].SignatureScript = []byte{0x52}
	if d4 := tx.AuthDigest(0xf5b9230b); d4 == d1 {
		t.Errorf("AuthDigest: digest did not change with signature data")
	}
}

// TestTxSerializeDeterminism ensures two structurally equal transactions
// serialize to identical bytes.
func TestTxSerializeDeterminism(t *testing.T) {
	build := func() *MsgTx {
		tx := NewMsgTx()
		hash := chainhash.DoubleHashH([]byte("a"))
		tx.AddTxIn(NewTxIn(NewOutPoint(&hash, 7), []byte{0xaa}))
		tx.AddTxOut(NewTxOut(1234, []byte{0xbb, 0xcc}))
		tx.SaplingValueBalance = -10
		tx.AddSaplingSpend(&SaplingSpend{Nullifier: [32]byte{0x0f}})
		tx.AddOrchardAction(&OrchardAction{
			Nullifier: [32]byte{0x01},
			CMX:       [32]byte{0x02},
		})
		return tx
	}

	var buf1, buf2 bytes.Buffer
	if err := build().Serialize(&buf1); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if err := build().Serialize(&buf2); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Errorf("Serialize: equal transactions produced different bytes")
	}
}

// TestNoteCommitments tests extraction of sapling and orchard note
// commitments in order.
func TestNoteCommitments(t *testing.T) {
	tx := NewMsgTx()
	tx.AddSaplingOutput(&SaplingOutput{CMU: [32]byte{0x01}})
	tx.AddSaplingOutput(&SaplingOutput{CMU: [32]byte{0x02}})
	tx.AddOrchardAction(&OrchardAction{CMX: [32]byte{0x03}})

	sapling := tx.SaplingNoteCommitments()
	if len(sapling) != 2 || sapling[0][0] != 0x01 || sapling[1][0] != 0x02 {
		t.Errorf("SaplingNoteCommitments: wrong commitments %x", sapling)
	}

	orchard := tx.OrchardNoteCommitments()
	if len(orchard) != 1 || orchard[0][0] != 0x03 {
		t.Errorf("OrchardNoteCommitments: wrong commitments %x", orchard)
	}

	if !tx.HasShieldedOutputs() {
		t.Errorf("HasShieldedOutputs: returned false")
	}
	if !tx.HasShieldedInputs() {
		t.Errorf("HasShieldedInputs: returned false with orchard actions")
	}
	if !tx.HasTransparentOrShieldedInputs() {
		t.Errorf("HasTransparentOrShieldedInputs: returned false")
	}
}
