// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaingen provides facilities for generating candidate blocks for use
with the chain constructor.

The generated blocks are deliberately not valid on their own: transparent
inputs reference outputs that do not exist, headers carry arbitrary previous
block hashes and commitments, and shielded value balances are unconstrained.
They are raw material for blockchain.ChainBuilder, which repairs such a
sequence into a consensus-valid chain.

Generation is fully deterministic from the seed, so a test or tool run can be
reproduced exactly by reusing it.
*/
package chaingen
