// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// hashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation.  This is a helper
// function used to aid in the generation of a merkle tree.
func hashMerkleBranches(left, right *chainhash.Hash) chainhash.Hash {
	// Concatenate the left and right nodes.
	var hash [chainhash.HashSize * 2]byte
	copy(hash[:chainhash.HashSize], left[:])
	copy(hash[chainhash.HashSize:], right[:])

	return chainhash.DoubleHashH(hash[:])
}

// CalcMerkleRoot computes the merkle root over the given transaction hashes.
//
// The merkle tree is a tree in which every non-leaf node is the hash of its
// children.  A diagram depicting how this works for transactions where h(x)
// is a double sha256 follows:
//
//	         root = h1234 = h(h12 + h34)
//	        /                          \
//	  h12 = h(h1 + h2)            h34 = h(h3 + h4)
//	   /            \              /            \
//	h1 = h(tx1)  h2 = h(tx2)  h3 = h(tx3)  h4 = h(tx4)
//
// A level with an odd number of nodes is closed by pairing its final node
// with itself.  The root of an empty tree is the zero hash.
func CalcMerkleRoot(txHashes []chainhash.Hash) chainhash.Hash {
	if len(txHashes) == 0 {
		return chainhash.Hash{}
	}

	// Work on a copy so the caller's slice is not clobbered by the
	// duplicated final nodes.
	level := make([]chainhash.Hash, len(txHashes))
	copy(level, txHashes)

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}

		next := make([]chainhash.Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next,
				hashMerkleBranches(&level[i], &level[i+1]))
		}
		level = next
	}

	return level[0]
}
