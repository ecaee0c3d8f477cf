// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/minio/blake2b-simd"
)

// BLAKE2b personalization strings used to domain-separate the digests
// computed by this package.  A personalization is NOT a key; it is a distinct
// BLAKE2b parameter that yields an independent hash function, so a node of
// one tree can never collide with a node of another.  All personalizations
// are exactly 16 bytes.
const (
	// saplingTreePersonalization separates sapling note commitment tree
	// nodes.
	saplingTreePersonalization = "ZcashSaplingHash"

	// orchardTreePersonalization separates orchard note commitment tree
	// nodes.
	orchardTreePersonalization = "ZcashOrchardHash"

	// historyTreePersonalization separates chain history tree nodes.
	historyTreePersonalization = "ZcashHistoryHash"

	// authDataTreePersonalization separates the nodes of the per-block
	// merkle tree over transaction authorizing data digests.
	authDataTreePersonalization = "ZcashAuthDatHash"

	// blockCommitmentsPersonalization separates the header commitment
	// digest combining the chain history root with the authorizing data
	// root.
	blockCommitmentsPersonalization = "ZcashBlockCommit"
)

// blake2b256 computes a 256-bit BLAKE2b digest over the concatenation of the
// given data, personalized with the given string.
func blake2b256(personalization string, data ...[]byte) [32]byte {
	digest, err := blake2b.New(&blake2b.Config{
		Size:   32,
		Person: []byte(personalization),
	})
	if err != nil {
		panic("invalid BLAKE2b personalization: " + err.Error())
	}
	for _, d := range data {
		digest.Write(d)
	}

	var result [32]byte
	copy(result[:], digest.Sum(nil))
	return result
}
