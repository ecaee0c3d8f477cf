// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the chain data types shared by the rest of the
module: outpoints, transparent and shielded transaction components, block
headers, and blocks.

Unlike a full peer-to-peer implementation, this package only serializes data
in order to compute hashes and digests.  The encoding is nevertheless fully
deterministic: variable length fields are length prefixed with the canonical
variable length integer format, so two structurally equal values always hash
identically.
*/
package wire
