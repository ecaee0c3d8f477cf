// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/zecsuite/zecd/chaincfg"
	"github.com/zecsuite/zecd/wire"
)

// CalcAuthDataRoot computes the authorizing data root of a block: the merkle
// fold over the authorizing data digests of its transactions, in block
// order.  The digests are personalized with the consensus branch ID active at
// the given height.
func CalcAuthDataRoot(params *chaincfg.Params, height int32,
	block *wire.MsgBlock) [wire.CommitmentSize]byte {

	var branchID uint32
	if upgrade, ok := params.CurrentUpgrade(height); ok {
		branchID = upgrade.BranchID()
	}

	leaves := make([]chainhash.Hash, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		leaves = append(leaves, tx.AuthDigest(branchID))
	}

	return foldAuthDataTree(leaves)
}

// foldAuthDataTree pairs up the given digests level by level until a single
// root remains.  An unpaired digest is carried up unchanged.  The root over
// no digests is all zeroes.
func foldAuthDataTree(leaves []chainhash.Hash) [wire.CommitmentSize]byte {
	if len(leaves) == 0 {
		return [wire.CommitmentSize]byte{}
	}

	level := leaves
	for len(level) > 1 {
		next := make([]chainhash.Hash, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			parent := blake2b256(authDataTreePersonalization,
				level[i][:], level[i+1][:])
			next = append(next, chainhash.Hash(parent))
		}
		if len(level)%2 != 0 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}

	return [wire.CommitmentSize]byte(level[0])
}

// headerCommitment computes the value of the header's block commitments
// field for a block at the given height, from the history tree root as of
// immediately before the block.
//
// The encoding depends on which network upgrades are active at the height:
//
//	height below Heartwood activation:  reserved placeholder, low-order
//	                                    byte 1, remainder zero; it is only
//	                                    structurally well-formed and never
//	                                    independently validated
//	height at Heartwood activation:     all-zero sentinel
//	above Heartwood, before NU5 (or     the prior history tree root
//	NU5 undefined on the network):
//	at or above NU5 activation:         personalized digest over the prior
//	                                    history tree root, the block's
//	                                    authorizing data root, and a
//	                                    32-byte terminator
//
// This table is the only network-upgrade-dependent branch point in the
// constructor.
func headerCommitment(params *chaincfg.Params, height int32,
	historyRoot [wire.CommitmentSize]byte,
	block *wire.MsgBlock) [wire.CommitmentsSize]byte {

	var commitment [wire.CommitmentsSize]byte

	heartwoodHeight, ok := params.ActivationHeight(chaincfg.UpgradeHeartwood)
	if !ok || height < heartwoodHeight {
		// Before Heartwood the field carries a shielded tree root that
		// is not validated here, so any well-formed value works.
		commitment[0] = 1
		return commitment
	}

	if height == heartwoodHeight {
		// The Heartwood activation block has a hardcoded all-zeroes
		// commitment, regardless of tree contents.
		return commitment
	}

	nu5Height, ok := params.ActivationHeight(chaincfg.UpgradeNU5)
	if !ok || height < nu5Height {
		return historyRoot
	}

	var terminator [wire.CommitmentSize]byte
	authDataRoot := CalcAuthDataRoot(params, height, block)
	return blake2b256(blockCommitmentsPersonalization, historyRoot[:],
		authDataRoot[:], terminator[:])
}
