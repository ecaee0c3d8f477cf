// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaingen

import (
	"math/rand"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/zecsuite/zecd/chaincfg"
	"github.com/zecsuite/zecd/wire"
)

const (
	// maxTxPerBlock is the maximum number of transactions, coinbase
	// included, a generated block carries.
	maxTxPerBlock = 6

	// maxTxIn and maxTxOut bound the transparent inputs and outputs of a
	// generated non-coinbase transaction.
	maxTxIn  = 3
	maxTxOut = 3

	// maxShieldedPerBundle bounds the spends, outputs, and actions of a
	// generated shielded bundle.
	maxShieldedPerBundle = 2

	// maxOutputValue is the largest output value a generated transaction
	// pays.  Values are intentionally small so repaired chains keep their
	// pool balances far from overflow.
	maxOutputValue = 100 * 1e8
)

// Generator houses the state used to generate candidate blocks.  All
// randomness flows from a single seeded source, so two generators created
// with the same parameters and seed produce identical block sequences.
//
// A generator is not safe for concurrent access.
type Generator struct {
	params *chaincfg.Params
	rng    *rand.Rand
	tip    time.Time
}

// New returns a generator instance for the given parameters, drawing all
// randomness from the provided seed.
func New(params *chaincfg.Params, seed int64) *Generator {
	return &Generator{
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
		tip:    time.Unix(1231006505, 0),
	}
}

// randHash returns a hash drawn from the generator's randomness source.
func (g *Generator) randHash() chainhash.Hash {
	var hash chainhash.Hash
	g.rng.Read(hash[:])
	return hash
}

// randCommitment returns a 32-byte commitment drawn from the generator's
// randomness source.
func (g *Generator) randCommitment() [wire.CommitmentSize]byte {
	var cm [wire.CommitmentSize]byte
	g.rng.Read(cm[:])
	return cm
}

// randSignature returns a 64-byte signature placeholder drawn from the
// generator's randomness source.
func (g *Generator) randSignature() [wire.SignatureSize]byte {
	var sig [wire.SignatureSize]byte
	g.rng.Read(sig[:])
	return sig
}

// randScript returns a short arbitrary script.
func (g *Generator) randScript() []byte {
	script := make([]byte, 1+g.rng.Intn(24))
	g.rng.Read(script)
	return script
}

// createCoinbaseTx returns a coinbase transaction paying between one and
// maxTxOut outputs of arbitrary value.  The height is bound into the first
// output's script: transaction hashes exclude signature scripts, so putting
// it there would not keep coinbase hashes distinct across heights.
func (g *Generator) createCoinbaseTx(height int32) *wire.MsgTx {
	tx := wire.NewMsgTx()
	nullOut := wire.NullOutPoint()
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: nullOut,
		SignatureScript:  encodeHeight(height),
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(g.rng.Int63n(maxOutputValue),
		append(encodeHeight(height), g.randScript()...)))
	for i := 0; i < g.rng.Intn(maxTxOut); i++ {
		tx.AddTxOut(wire.NewTxOut(g.rng.Int63n(maxOutputValue),
			g.randScript()))
	}
	return tx
}

// encodeHeight returns the height as a little-endian script blob.
func encodeHeight(height int32) []byte {
	return []byte{
		byte(height), byte(height >> 8), byte(height >> 16),
		byte(height >> 24),
	}
}

// addShieldedBundles optionally attaches sapling and orchard bundles with
// arbitrary commitments, nullifiers, and value balances to the transaction.
func (g *Generator) addShieldedBundles(tx *wire.MsgTx) {
	if g.rng.Intn(2) == 0 {
		for i := 0; i < g.rng.Intn(maxShieldedPerBundle+1); i++ {
			tx.AddSaplingSpend(&wire.SaplingSpend{
				Nullifier: g.randCommitment(),
			})
		}
		for i := 0; i < g.rng.Intn(maxShieldedPerBundle+1); i++ {
			tx.AddSaplingOutput(&wire.SaplingOutput{
				CMU: g.randCommitment(),
			})
		}
		tx.SaplingValueBalance = g.rng.Int63n(2*maxOutputValue) -
			maxOutputValue
	}
	if g.rng.Intn(2) == 0 {
		for i := 0; i < g.rng.Intn(maxShieldedPerBundle+1); i++ {
			tx.AddOrchardAction(&wire.OrchardAction{
				Nullifier:    g.randCommitment(),
				CMX:          g.randCommitment(),
				SpendAuthSig: g.randSignature(),
			})
		}
		tx.OrchardValueBalance = g.rng.Int63n(2*maxOutputValue) -
			maxOutputValue
	}
	if tx.HasShieldedInputs() || tx.HasShieldedOutputs() {
		tx.BindingSig = g.randSignature()
	}
}

// createSpendTx returns a non-coinbase transaction whose transparent inputs
// reference arbitrary, almost certainly nonexistent, outputs.  The repair is
// expected to rebind or drop them.
func (g *Generator) createSpendTx() *wire.MsgTx {
	tx := wire.NewMsgTx()
	for i := 0; i < 1+g.rng.Intn(maxTxIn); i++ {
		prevHash := g.randHash()
		tx.AddTxIn(&wire.TxIn{
			PreviousOutPoint: *wire.NewOutPoint(&prevHash,
				uint32(g.rng.Intn(maxTxOut))),
			SignatureScript: g.randScript(),
			Sequence:        wire.MaxTxInSequenceNum,
		})
	}
	for i := 0; i < g.rng.Intn(maxTxOut+1); i++ {
		tx.AddTxOut(wire.NewTxOut(g.rng.Int63n(maxOutputValue),
			g.randScript()))
	}
	g.addShieldedBundles(tx)
	return tx
}

// NextBlock generates a candidate block at the given height: an arbitrary
// header followed by a coinbase transaction and up to maxTxPerBlock-1
// arbitrary spending transactions.
func (g *Generator) NextBlock(height int32) *wire.MsgBlock {
	g.tip = g.tip.Add(time.Duration(30+g.rng.Intn(120)) * time.Second)

	header := &wire.BlockHeader{
		Version:   4,
		PrevBlock: g.randHash(),
		Timestamp: g.tip,
		Bits:      0x207fffff,
	}
	g.rng.Read(header.Nonce[:])
	header.Solution = make([]byte, wire.SolutionSize)
	g.rng.Read(header.Solution)

	block := wire.NewMsgBlock(header)
	block.AddTransaction(g.createCoinbaseTx(height))
	for i := 0; i < g.rng.Intn(maxTxPerBlock); i++ {
		block.AddTransaction(g.createSpendTx())
	}
	return block
}

// Generate returns numBlocks candidate blocks for the consecutive heights
// beginning at startHeight.
func (g *Generator) Generate(startHeight int32, numBlocks int) []*wire.MsgBlock {
	blocks := make([]*wire.MsgBlock, 0, numBlocks)
	for i := 0; i < numBlocks; i++ {
		blocks = append(blocks, g.NextBlock(startHeight+int32(i)))
	}
	return blocks
}
