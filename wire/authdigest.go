// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/minio/blake2b-simd"
)

// authDigestPersonalizationPrefix is the 12-byte prefix of the BLAKE2b
// personalization used for transaction authorizing data digests.  The
// remaining 4 bytes are the little-endian consensus branch ID of the network
// upgrade the transaction commits to.
const authDigestPersonalizationPrefix = "ZTxAuthHash_"

// blake2b256 computes a 256-bit personalized BLAKE2b digest over data.  The
// personalization is NOT a key; it is a distinct BLAKE2b parameter that
// domain-separates the hash function.
func blake2b256(personalization []byte, data []byte) [32]byte {
	digest, err := blake2b.New(&blake2b.Config{
		Size:   32,
		Person: personalization,
	})
	if err != nil {
		panic("invalid BLAKE2b personalization: " + err.Error())
	}
	digest.Write(data)

	var result [32]byte
	copy(result[:], digest.Sum(nil))
	return result
}

// AuthDigest computes the digest of the transaction's authorizing data: the
// signature scripts of its transparent inputs, the spend auth signatures of
// its orchard actions, and the binding signature.  The digest is personalized
// with the consensus branch ID so authorizing data does not validate across
// network upgrade boundaries.
func (msg *MsgTx) AuthDigest(branchID uint32) chainhash.Hash {
	personalization := make([]byte, 0, 16)
	personalization = append(personalization,
		authDigestPersonalizationPrefix...)
	personalization = binary.LittleEndian.AppendUint32(personalization,
		branchID)

	// Writes to a bytes.Buffer cannot fail, so serialization errors are
	// treated as hard internal errors here.
	var buf bytes.Buffer
	if err := WriteVarInt(&buf, uint64(len(msg.TxIn))); err != nil {
		panic("MsgTx failed serializing for AuthDigest")
	}
	for _, ti := range msg.TxIn {
		if err := WriteVarBytes(&buf, ti.SignatureScript); err != nil {
			panic("MsgTx failed serializing for AuthDigest")
		}
	}
	if err := WriteVarInt(&buf, uint64(len(msg.OrchardActions))); err != nil {
		panic("MsgTx failed serializing for AuthDigest")
	}
	for _, action := range msg.OrchardActions {
		buf.Write(action.SpendAuthSig[:])
	}
	buf.Write(msg.BindingSig[:])

	return chainhash.Hash(blake2b256(personalization, buf.Bytes()))
}
