// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/bits"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/zecsuite/zecd/wire"
)

// HistoryTree is an append-only accumulator over the chain's block history.
// Each leaf commits to one block's hash together with the roots of the two
// note commitment trees as observed immediately before that block, so the
// tree root summarizes both the header chain and the shielded pool state up
// to a point.
//
// Only the peaks of the completed subtrees are kept (one per set bit of the
// leaf count, as with binary counting), so pushing a block and computing the
// root are both O(log n).
//
// A history tree is created from the first block a construction run
// processes, which is not necessarily the genesis block; until then the run
// carries no tree at all.  Use NewHistoryTree for the first block and Push
// for every later one.
type HistoryTree struct {
	count uint64
	peaks []historyNode
}

// historyNode is one completed subtree root, tagged with its level so peaks
// can be merged as leaves arrive.
type historyNode struct {
	level  int
	digest [wire.CommitmentSize]byte
}

// NewHistoryTree returns a history tree containing the given block as its
// only leaf.
func NewHistoryTree(blockHash chainhash.Hash, saplingRoot,
	orchardRoot [wire.CommitmentSize]byte) *HistoryTree {

	t := &HistoryTree{}
	t.Push(blockHash, saplingRoot, orchardRoot)
	return t
}

// hashHistoryNodes merges two equal-level subtree roots into their parent.
func hashHistoryNodes(left, right [wire.CommitmentSize]byte) [wire.CommitmentSize]byte {
	return blake2b256(historyTreePersonalization, left[:], right[:])
}

// Push extends the tree with one block.  saplingRoot and orchardRoot must be
// the note commitment tree roots observed before the block's own commitments
// were folded in.
func (t *HistoryTree) Push(blockHash chainhash.Hash, saplingRoot,
	orchardRoot [wire.CommitmentSize]byte) {

	leaf := blake2b256(historyTreePersonalization, blockHash[:],
		saplingRoot[:], orchardRoot[:])

	node := historyNode{level: 0, digest: leaf}
	for len(t.peaks) > 0 && t.peaks[len(t.peaks)-1].level == node.level {
		left := t.peaks[len(t.peaks)-1]
		t.peaks = t.peaks[:len(t.peaks)-1]
		node = historyNode{
			level:  left.level + 1,
			digest: hashHistoryNodes(left.digest, node.digest),
		}
	}
	t.peaks = append(t.peaks, node)
	t.count++
}

// Count returns the number of blocks accumulated by the tree.
func (t *HistoryTree) Count() uint64 {
	return t.count
}

// Root returns the current digest of the tree.  The peaks are folded from
// the most recent to the oldest.  The root of an empty tree is all zeroes,
// the defined empty-state fallback.
func (t *HistoryTree) Root() [wire.CommitmentSize]byte {
	if len(t.peaks) == 0 {
		return [wire.CommitmentSize]byte{}
	}

	current := t.peaks[len(t.peaks)-1].digest
	for i := len(t.peaks) - 2; i >= 0; i-- {
		current = hashHistoryNodes(t.peaks[i].digest, current)
	}
	return current
}

// treeSize returns the number of peaks a tree with the given leaf count has.
// It is defined here for tests.
func treeSize(count uint64) int {
	return bits.OnesCount64(count)
}
