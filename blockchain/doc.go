// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blockchain implements a consensus-valid synthetic chain constructor.

Given a height-ordered sequence of independently generated candidate blocks,
the chain builder deterministically repairs them into a linked chain that
satisfies the subset of consensus invariants needed to exercise validation and
storage logic under test: transparent inputs are rebound to real unspent
outputs, transactions that cannot be repaired are pruned, chain value pools
are kept non-negative, note commitment and chain history accumulators are
maintained, the upgrade-dependent header commitment is populated, and every
block's previous block hash is rewritten to the repaired hash of its
predecessor.

The builder performs no script or signature execution and no proof
verification.  The consensus rule deciding whether a particular unspent
output may be spent is injected by the caller via the SpendChecker interface,
so the same constructor works with a permissive rule for structural tests and
with a production rule set.

The whole construction is a strict sequential fold: given the same candidate
input, the same spend checker behavior, and the same parameters, the output
chain is byte-identical across runs.  Randomized test shrinking depends on
this property.
*/
package blockchain
