// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// CommitmentsSize is the size in bytes of the header field committing
	// to the chain state.  Its interpretation depends on which network
	// upgrade is active at the block's height.
	CommitmentsSize = 32

	// NonceSize is the size in bytes of the header nonce.
	NonceSize = 32

	// SolutionSize is the size in bytes of a canonical equihash solution
	// for the production parameters.
	SolutionSize = 1344
)

// BlockHeader defines information about a block and is used in the block
// (MsgBlock) message.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// BlockCommitments commits to chain state.  Depending on the network
	// upgrade active at this block's height it carries a reserved value,
	// the chain history root, or a digest of the chain history root and
	// the authorizing data root.
	BlockCommitments [CommitmentsSize]byte

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce [NonceSize]byte

	// Solution is the equihash solution for the block.
	Solution []byte
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, 144+len(h.Solution)))
	err := h.Serialize(buf)
	if err != nil {
		panic("BlockHeader failed serializing for BlockHash")
	}

	return chainhash.DoubleHashH(buf.Bytes())
}

// Serialize encodes a block header to w using a format that is suitable for
// long-term storage and hashing.
func (h *BlockHeader) Serialize(w *bytes.Buffer) error {
	err := binarySerializer.PutUint32(w, littleEndian, uint32(h.Version))
	if err != nil {
		return err
	}
	_, err = w.Write(h.PrevBlock[:])
	if err != nil {
		return err
	}
	_, err = w.Write(h.MerkleRoot[:])
	if err != nil {
		return err
	}
	_, err = w.Write(h.BlockCommitments[:])
	if err != nil {
		return err
	}
	err = binarySerializer.PutUint32(w, littleEndian,
		uint32(h.Timestamp.Unix()))
	if err != nil {
		return err
	}
	err = binarySerializer.PutUint32(w, littleEndian, h.Bits)
	if err != nil {
		return err
	}
	_, err = w.Write(h.Nonce[:])
	if err != nil {
		return err
	}
	return WriteVarBytes(w, h.Solution)
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root hash, difficulty bits, and nonce used to
// generate the block with defaults for the remaining fields.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32, nonce [NonceSize]byte) *BlockHeader {

	// Limit the timestamp to one second precision since the protocol
	// doesn't support better.
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}
