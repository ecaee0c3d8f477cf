// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/zecsuite/zecd/wire"
)

// noteTreeDepth is the depth of a note commitment tree.  The tree can hold
// 2^noteTreeDepth note commitments before appending fails.
const noteTreeDepth = 32

// NoteCommitmentTree is an append-only accumulator over the note commitments
// of one shielded pool.  It is an incremental merkle tree of fixed depth:
// only the "frontier" (the left siblings along the path to the next unused
// leaf position) is kept, so appending and computing the current root both
// take O(depth) work and the tree as a whole needs O(depth) storage no
// matter how many commitments have been appended.
//
// The frontier representation follows binary counting: bit i of the leaf
// count says whether a completed subtree of size 2^i is pending at level i.
type NoteCommitmentTree struct {
	personalization string
	count           uint64
	pending         [noteTreeDepth + 1][wire.CommitmentSize]byte
	emptyRoots      [noteTreeDepth + 1][wire.CommitmentSize]byte
}

// newNoteCommitmentTree returns an empty note commitment tree whose node
// hashes are domain-separated by the given personalization.
func newNoteCommitmentTree(personalization string) *NoteCommitmentTree {
	t := &NoteCommitmentTree{personalization: personalization}

	// The empty subtree root at level i+1 is the hash of two empty
	// subtree roots at level i.  The empty leaf is all zeroes.
	for level := 0; level < noteTreeDepth; level++ {
		t.emptyRoots[level+1] = t.hashNode(level,
			t.emptyRoots[level], t.emptyRoots[level])
	}
	return t
}

// NewSaplingCommitmentTree returns an empty sapling note commitment tree.
func NewSaplingCommitmentTree() *NoteCommitmentTree {
	return newNoteCommitmentTree(saplingTreePersonalization)
}

// NewOrchardCommitmentTree returns an empty orchard note commitment tree.
func NewOrchardCommitmentTree() *NoteCommitmentTree {
	return newNoteCommitmentTree(orchardTreePersonalization)
}

// hashNode computes the digest of an interior node at the given level from
// its left and right children.  The level is bound into the digest so nodes
// from different levels are distinct.
func (t *NoteCommitmentTree) hashNode(level int,
	left, right [wire.CommitmentSize]byte) [wire.CommitmentSize]byte {

	return blake2b256(t.personalization, []byte{byte(level)}, left[:],
		right[:])
}

// Count returns the number of note commitments appended to the tree.
func (t *NoteCommitmentTree) Count() uint64 {
	return t.count
}

// Append adds the given note commitment as the next leaf of the tree.  It
// errors when the tree is at capacity, which signals a defect in the
// upstream generator and must be treated as fatal.
func (t *NoteCommitmentTree) Append(cm [wire.CommitmentSize]byte) error {
	if t.count >= 1<<noteTreeDepth {
		return ruleError(ErrTreeCapacity, fmt.Sprintf(
			"note commitment tree is full (%d leaves)", t.count))
	}

	// Carry completed subtrees upward, exactly like binary addition: the
	// first clear bit of the count is where the carry comes to rest.
	carry := cm
	for level := 0; ; level++ {
		if t.count&(1<<uint(level)) == 0 {
			t.pending[level] = carry
			break
		}
		carry = t.hashNode(level, t.pending[level], carry)
	}
	t.count++

	return nil
}

// Root returns the current digest of the tree: the root of the fixed-depth
// merkle tree whose first leaves are the appended commitments and whose
// remaining leaves are empty.
func (t *NoteCommitmentTree) Root() [wire.CommitmentSize]byte {
	// A full tree left its final carry at the top level.
	if t.count == 1<<noteTreeDepth {
		return t.pending[noteTreeDepth]
	}

	current := t.emptyRoots[0]
	for level := 0; level < noteTreeDepth; level++ {
		if t.count&(1<<uint(level)) != 0 {
			current = t.hashNode(level, t.pending[level], current)
		} else {
			current = t.hashNode(level, current,
				t.emptyRoots[level])
		}
	}
	return current
}
