// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"
)

// naiveTreeRoot computes the fixed-depth merkle root over the given leaves
// the slow way, to cross-check the frontier implementation.
func naiveTreeRoot(t *NoteCommitmentTree, leaves [][32]byte) [32]byte {
	level := make([][32]byte, len(leaves))
	copy(level, leaves)

	empty := [32]byte{}
	for depth := 0; depth < noteTreeDepth; depth++ {
		if len(level)%2 != 0 {
			level = append(level, empty)
		}
		next := make([][32]byte, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, t.hashNode(depth, level[i],
				level[i+1]))
		}
		if len(next) == 0 {
			next = append(next, t.hashNode(depth, empty, empty))
		}
		level = next
		empty = t.hashNode(depth, empty, empty)
	}
	return level[0]
}

// TestNoteTreeFrontier cross-checks the incremental root against a naive
// recomputation for a range of leaf counts.
func TestNoteTreeFrontier(t *testing.T) {
	tree := NewSaplingCommitmentTree()

	var leaves [][32]byte
	for i := 0; i < 9; i++ {
		// Empty prefix included: i leaves appended so far.
		want := naiveTreeRoot(tree, leaves)
		if got := tree.Root(); got != want {
			t.Fatalf("Root with %d leaves: got %x, want %x", i,
				got, want)
		}

		leaf := [32]byte{byte(i + 1)}
		if err := tree.Append(leaf); err != nil {
			t.Fatalf("Append: %v", err)
		}
		leaves = append(leaves, leaf)

		if tree.Count() != uint64(i+1) {
			t.Fatalf("Count: got %d, want %d", tree.Count(), i+1)
		}
	}
}

// TestNoteTreeDomainSeparation ensures the sapling and orchard trees never
// agree on the digest of the same contents.
func TestNoteTreeDomainSeparation(t *testing.T) {
	sapling := NewSaplingCommitmentTree()
	orchard := NewOrchardCommitmentTree()

	leaf := [32]byte{0x01}
	if err := sapling.Append(leaf); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := orchard.Append(leaf); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if sapling.Root() == orchard.Root() {
		t.Errorf("sapling and orchard roots collide")
	}
}

// TestNoteTreeDeterminism ensures identical append sequences produce
// identical roots.
func TestNoteTreeDeterminism(t *testing.T) {
	build := func() [32]byte {
		tree := NewOrchardCommitmentTree()
		for i := 0; i < 5; i++ {
			if err := tree.Append([32]byte{byte(i)}); err != nil {
				t.Fatalf("Append: %v", err)
			}
		}
		return tree.Root()
	}

	if build() != build() {
		t.Errorf("identical append sequences produced different roots")
	}
}

// TestNoteTreeCapacity ensures appending to a full tree reports the
// capacity rule error.
func TestNoteTreeCapacity(t *testing.T) {
	tree := NewSaplingCommitmentTree()
	tree.count = 1 << noteTreeDepth

	err := tree.Append([32]byte{0x01})
	if err == nil {
		t.Fatalf("Append: no error for full tree")
	}
	rerr, ok := err.(RuleError)
	if !ok {
		t.Fatalf("error type %T, want RuleError", err)
	}
	if rerr.ErrorCode != ErrTreeCapacity {
		t.Errorf("error code %v, want ErrTreeCapacity", rerr.ErrorCode)
	}
}
