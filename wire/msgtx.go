// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion int32 = 5

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.  It doubles as the index of the null outpoint used
	// by coinbase inputs.
	MaxPrevOutIndex uint32 = 0xffffffff

	// NoExpiryValue is the value of expiry that indicates the transaction
	// has no expiry.
	NoExpiryValue uint32 = 0

	// defaultTxInOutAlloc is the default size used for the backing array
	// for transaction inputs and outputs.  The array will dynamically grow
	// as needed, but this figure is intended to provide enough space for
	// the number of inputs and outputs in a typical transaction without
	// needing to grow the backing array multiple times.
	defaultTxInOutAlloc = 15

	// CommitmentSize is the size in bytes of a shielded note commitment
	// and of the other 256-bit digests carried by shielded bundles.
	CommitmentSize = 32

	// SignatureSize is the size in bytes of a redjubjub/redpallas
	// signature.
	SignatureSize = 64
)

// zeroHash is the zero value hash (all zeros).  It is defined as a convenience.
var zeroHash chainhash.Hash

// OutPoint defines a data type that is used to track previous transaction
// outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new transaction outpoint with the provided hash and
// index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// NullOutPoint returns the outpoint used by coinbase inputs, which reference
// no prior output.
func NullOutPoint() OutPoint {
	return OutPoint{Hash: zeroHash, Index: MaxPrevOutIndex}
}

// IsNull returns whether the outpoint is the null outpoint, meaning it does
// not reference a prior output.
func (o OutPoint) IsNull() bool {
	return o.Index == MaxPrevOutIndex && o.Hash == zeroHash
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 digits.  Although at
	// the time of writing, the number of digits can be no greater than the
	// length of the decimal representation of any uint32, allocate space
	// for 10 decimal digits, which will fit any uint32.
	buf := make([]byte, 2*chainhash.HashSize+1, 2*chainhash.HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*chainhash.HashSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// TxIn defines a transparent transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new transparent transaction input with the provided
// previous outpoint and signature script with a default sequence of
// MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a transparent transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// NewTxOut returns a new transparent transaction output with the provided
// transaction value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// SaplingSpend describes a spend of a note from the sapling shielded pool.
// The actual note being spent is hidden; only its nullifier is revealed.
type SaplingSpend struct {
	Nullifier [CommitmentSize]byte
}

// SaplingOutput describes the creation of a new note in the sapling shielded
// pool.  CMU is the u-coordinate of the note commitment, which is appended to
// the sapling note commitment tree.
type SaplingOutput struct {
	CMU [CommitmentSize]byte
}

// OrchardAction describes one action of an orchard bundle.  Every action
// simultaneously spends a note, revealing its nullifier, and creates a new
// note whose commitment CMX is appended to the orchard note commitment tree.
type OrchardAction struct {
	Nullifier    [CommitmentSize]byte
	CMX          [CommitmentSize]byte
	SpendAuthSig [SignatureSize]byte
}

// MsgTx represents a transaction and is used to deliver transaction
// information between chain components.
//
// A transaction carries a transparent bundle (inputs and outputs), an
// optional sapling bundle (spends, outputs, and a value balance), and an
// optional orchard bundle (actions and a value balance).  A positive shielded
// value balance moves value out of that shielded pool into the transparent
// part of the transaction, while a negative value balance moves transparent
// value into the pool.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
	Expiry   uint32

	SaplingValueBalance int64
	SaplingSpends       []*SaplingSpend
	SaplingOutputs      []*SaplingOutput

	OrchardValueBalance int64
	OrchardActions      []*OrchardAction

	BindingSig [SignatureSize]byte
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// AddSaplingSpend adds a sapling spend to the message.
func (msg *MsgTx) AddSaplingSpend(spend *SaplingSpend) {
	msg.SaplingSpends = append(msg.SaplingSpends, spend)
}

// AddSaplingOutput adds a sapling output to the message.
func (msg *MsgTx) AddSaplingOutput(out *SaplingOutput) {
	msg.SaplingOutputs = append(msg.SaplingOutputs, out)
}

// AddOrchardAction adds an orchard action to the message.
func (msg *MsgTx) AddOrchardAction(action *OrchardAction) {
	msg.OrchardActions = append(msg.OrchardActions, action)
}

// IsCoinBase determines whether or not a transaction is a coinbase.  A
// coinbase is a special transaction created without real inputs: its first
// transparent input references the null outpoint rather than a prior output.
func (msg *MsgTx) IsCoinBase() bool {
	return len(msg.TxIn) > 0 && msg.TxIn[0].PreviousOutPoint.IsNull()
}

// HasShieldedInputs returns whether the transaction spends any shielded
// notes, i.e. whether it has any sapling spends or orchard actions.
func (msg *MsgTx) HasShieldedInputs() bool {
	return len(msg.SaplingSpends) > 0 || len(msg.OrchardActions) > 0
}

// HasShieldedOutputs returns whether the transaction creates any shielded
// notes, i.e. whether it has any sapling outputs or orchard actions.
func (msg *MsgTx) HasShieldedOutputs() bool {
	return len(msg.SaplingOutputs) > 0 || len(msg.OrchardActions) > 0
}

// HasTransparentOrShieldedInputs returns whether the transaction has any
// transparent inputs (including coinbase inputs) or shielded inputs.  A
// transaction with neither provides no value and is subject to removal.
func (msg *MsgTx) HasTransparentOrShieldedInputs() bool {
	return len(msg.TxIn) > 0 || msg.HasShieldedInputs()
}

// SaplingNoteCommitments returns the note commitments created by the
// transaction's sapling outputs, in output order.
func (msg *MsgTx) SaplingNoteCommitments() [][CommitmentSize]byte {
	commitments := make([][CommitmentSize]byte, 0, len(msg.SaplingOutputs))
	for _, out := range msg.SaplingOutputs {
		commitments = append(commitments, out.CMU)
	}
	return commitments
}

// OrchardNoteCommitments returns the note commitments created by the
// transaction's orchard actions, in action order.
func (msg *MsgTx) OrchardNoteCommitments() [][CommitmentSize]byte {
	commitments := make([][CommitmentSize]byte, 0, len(msg.OrchardActions))
	for _, action := range msg.OrchardActions {
		commitments = append(commitments, action.CMX)
	}
	return commitments
}

// Serialize encodes the transaction to w using a format that is suitable for
// long-term storage and hashing.  All fields are written, with variable
// length collections length prefixed, so structurally equal transactions
// serialize identically.
func (msg *MsgTx) Serialize(w *bytes.Buffer) error {
	err := binarySerializer.PutUint32(w, littleEndian, uint32(msg.Version))
	if err != nil {
		return err
	}

	err = WriteVarInt(w, uint64(len(msg.TxIn)))
	if err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		_, err = w.Write(ti.PreviousOutPoint.Hash[:])
		if err != nil {
			return err
		}
		err = binarySerializer.PutUint32(w, littleEndian,
			ti.PreviousOutPoint.Index)
		if err != nil {
			return err
		}
		err = WriteVarBytes(w, ti.SignatureScript)
		if err != nil {
			return err
		}
		err = binarySerializer.PutUint32(w, littleEndian, ti.Sequence)
		if err != nil {
			return err
		}
	}

	err = WriteVarInt(w, uint64(len(msg.TxOut)))
	if err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		err = binarySerializer.PutUint64(w, littleEndian,
			uint64(to.Value))
		if err != nil {
			return err
		}
		err = WriteVarBytes(w, to.PkScript)
		if err != nil {
			return err
		}
	}

	err = binarySerializer.PutUint32(w, littleEndian, msg.LockTime)
	if err != nil {
		return err
	}
	err = binarySerializer.PutUint32(w, littleEndian, msg.Expiry)
	if err != nil {
		return err
	}

	err = binarySerializer.PutUint64(w, littleEndian,
		uint64(msg.SaplingValueBalance))
	if err != nil {
		return err
	}
	err = WriteVarInt(w, uint64(len(msg.SaplingSpends)))
	if err != nil {
		return err
	}
	for _, spend := range msg.SaplingSpends {
		_, err = w.Write(spend.Nullifier[:])
		if err != nil {
			return err
		}
	}
	err = WriteVarInt(w, uint64(len(msg.SaplingOutputs)))
	if err != nil {
		return err
	}
	for _, out := range msg.SaplingOutputs {
		_, err = w.Write(out.CMU[:])
		if err != nil {
			return err
		}
	}

	err = binarySerializer.PutUint64(w, littleEndian,
		uint64(msg.OrchardValueBalance))
	if err != nil {
		return err
	}
	err = WriteVarInt(w, uint64(len(msg.OrchardActions)))
	if err != nil {
		return err
	}
	for _, action := range msg.OrchardActions {
		_, err = w.Write(action.Nullifier[:])
		if err != nil {
			return err
		}
		_, err = w.Write(action.CMX[:])
		if err != nil {
			return err
		}
	}

	return nil
}

// shallowCopyForHashing creates a shallow copy of the transaction with the
// authorizing data stripped, so that it can be hashed without it.
func (msg *MsgTx) shallowCopyForHashing() *MsgTx {
	txCopy := &MsgTx{
		Version:             msg.Version,
		TxIn:                make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:               msg.TxOut,
		LockTime:            msg.LockTime,
		Expiry:              msg.Expiry,
		SaplingValueBalance: msg.SaplingValueBalance,
		SaplingSpends:       msg.SaplingSpends,
		SaplingOutputs:      msg.SaplingOutputs,
		OrchardValueBalance: msg.OrchardValueBalance,
		OrchardActions:      msg.OrchardActions,
	}
	for _, ti := range msg.TxIn {
		txCopy.TxIn = append(txCopy.TxIn, &TxIn{
			PreviousOutPoint: ti.PreviousOutPoint,
			Sequence:         ti.Sequence,
		})
	}
	return txCopy
}

// TxHash generates the hash for the transaction.
//
// Authorizing data (signature scripts, spend auth and binding signatures) is
// deliberately excluded, mirroring the split between transaction IDs and
// authorizing data digests.
func (msg *MsgTx) TxHash() chainhash.Hash {
	txCopy := msg.shallowCopyForHashing()

	var buf bytes.Buffer
	err := txCopy.Serialize(&buf)
	if err != nil {
		panic("MsgTx failed serializing for TxHash")
	}

	return chainhash.DoubleHashH(buf.Bytes())
}

// NewMsgTx returns a new transaction with a default version of TxVersion and
// no transaction inputs or outputs.  Also, the lock time is set to zero to
// indicate the transaction is valid immediately as opposed to some time in
// the future.
func NewMsgTx() *MsgTx {
	return &MsgTx{
		Version: TxVersion,
		TxIn:    make([]*TxIn, 0, defaultTxInOutAlloc),
		TxOut:   make([]*TxOut, 0, defaultTxInOutAlloc),
	}
}
