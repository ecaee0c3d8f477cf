// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/zecsuite/zecd/chaincfg"
	"github.com/zecsuite/zecd/wire"
)

// Config is a descriptor which specifies the chain builder configuration.
type Config struct {
	// ChainParams identifies which chain parameters the construction is
	// associated with.
	//
	// This field is required.
	ChainParams *chaincfg.Params

	// SpendChecker is the consensus rule deciding whether an unspent
	// output may be spent.  Use AllowAllSpends to accept every spend.
	//
	// This field is required.
	SpendChecker SpendChecker

	// SelectionProbeLimit is the maximum number of spend checker
	// invocations a single input repair performs before giving up.  A
	// value of 0 means the default of 100.
	SelectionProbeLimit int
}

// ChainBuilder repairs a sequence of candidate blocks into a linked chain.
// It owns the bookkeeping state threaded through the construction: the
// unspent output set, the chain value pools, the note commitment trees, and
// the chain history tree.
//
// A builder is single use and not safe for concurrent access: the whole
// construction is a strict sequential fold over the candidate sequence.
type ChainBuilder struct {
	params     *chaincfg.Params
	checker    SpendChecker
	probeLimit int

	utxos       *UtxoSet
	pools       ValueBalance
	saplingTree *NoteCommitmentTree
	orchardTree *NoteCommitmentTree

	// historyTree stays nil until the first block is processed.  The run
	// may start above genesis, so the tree cannot be seeded beforehand;
	// it is created from the first processed block itself.
	historyTree *HistoryTree
}

// New returns a ChainBuilder using the provided configuration.
func New(config *Config) (*ChainBuilder, error) {
	if config.ChainParams == nil {
		return nil, AssertError("blockchain.New chain parameters nil")
	}
	if config.SpendChecker == nil {
		return nil, AssertError("blockchain.New spend checker nil")
	}
	probeLimit := config.SelectionProbeLimit
	if probeLimit == 0 {
		probeLimit = defaultSelectionProbeLimit
	}

	return &ChainBuilder{
		params:      config.ChainParams,
		checker:     config.SpendChecker,
		probeLimit:  probeLimit,
		utxos:       NewUtxoSet(),
		saplingTree: NewSaplingCommitmentTree(),
		orchardTree: NewOrchardCommitmentTree(),
	}, nil
}

// ValuePools returns the current chain value pool balances.
func (b *ChainBuilder) ValuePools() ValueBalance {
	return b.pools
}

// UtxoCount returns the number of unspent outputs currently tracked.
func (b *ChainBuilder) UtxoCount() int {
	return b.utxos.Len()
}

// ConstructChain repairs the given height-ordered candidate blocks, in
// place, into a consensus-valid chain starting at startHeight and returns
// them.
//
// Blocks are folded strictly in increasing height order and transactions
// within a block strictly in their original order.  Per block the builder:
//
//  1. rewrites the previous block hash to the repaired hash of the prior
//     block (the first block keeps its candidate value),
//  2. repairs each transaction against the unspent output set, dropping the
//     ones that cannot be repaired,
//  3. folds the surviving note commitments into the note commitment trees,
//     skipping the genesis block whose outputs are untracked,
//  4. recomputes the transaction merkle root,
//  5. encodes the header commitment from the history tree root as of
//     immediately before this block,
//  6. extends the history tree and carries the block's repaired hash
//     forward.
//
// The returned error is non-nil only for fatal bookkeeping violations; all
// other repair outcomes are deterministic pruning decisions.
func (b *ChainBuilder) ConstructChain(startHeight int32,
	blocks []*wire.MsgBlock) ([]*wire.MsgBlock, error) {

	var prevHash *chainhash.Hash
	for i, block := range blocks {
		height := startHeight + int32(i)

		if prevHash != nil {
			block.Header.PrevBlock = *prevHash
		}

		// The history tree leaf for this block commits to the note
		// commitment roots as observed before the block's own
		// commitments are folded in.
		saplingRoot := b.saplingTree.Root()
		orchardRoot := b.orchardTree.Root()

		newTxns := make([]*wire.MsgTx, 0, len(block.Transactions))
		for txIndex, tx := range block.Transactions {
			fixedTx, err := b.fixTransaction(tx, txIndex, height)
			if err != nil {
				return nil, fmt.Errorf("block height %d "+
					"transaction %d: %w", height, txIndex,
					err)
			}
			if fixedTx == nil {
				log.Debugf("Dropped unrepairable transaction "+
					"%d at height %d", txIndex, height)
				continue
			}

			if height != 0 {
				err := b.appendNoteCommitments(fixedTx)
				if err != nil {
					return nil, fmt.Errorf("block height "+
						"%d transaction %d: %w",
						height, txIndex, err)
				}
			}
			newTxns = append(newTxns, fixedTx)
		}
		block.Transactions = newTxns

		block.Header.MerkleRoot = CalcMerkleRoot(block.TxHashes())

		historyRoot := b.historyRoot()
		block.Header.BlockCommitments = headerCommitment(b.params,
			height, historyRoot, block)

		// Now that all changes are made, calculate the block hash so
		// the next block can chain from it.
		blockHash := block.BlockHash()
		if b.historyTree == nil {
			b.historyTree = NewHistoryTree(blockHash, saplingRoot,
				orchardRoot)
		} else {
			b.historyTree.Push(blockHash, saplingRoot, orchardRoot)
		}
		prevHash = &blockHash

		log.Tracef("Constructed block %v (height %d, %d transactions)",
			blockHash, height, len(block.Transactions))
	}

	return blocks, nil
}

// appendNoteCommitments folds the transaction's sapling and orchard note
// commitments into their pool's accumulator, in transaction output order.
func (b *ChainBuilder) appendNoteCommitments(tx *wire.MsgTx) error {
	for _, cm := range tx.SaplingNoteCommitments() {
		if err := b.saplingTree.Append(cm); err != nil {
			return err
		}
	}
	for _, cm := range tx.OrchardNoteCommitments() {
		if err := b.orchardTree.Append(cm); err != nil {
			return err
		}
	}
	return nil
}

// historyRoot returns the history tree root as of immediately before the
// block currently being constructed, or the defined all-zeroes fallback when
// no block has been processed yet.
func (b *ChainBuilder) historyRoot() [wire.CommitmentSize]byte {
	if b.historyTree == nil {
		return [wire.CommitmentSize]byte{}
	}
	return b.historyTree.Root()
}
