// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/zecsuite/zecd/chaincfg"
	"github.com/zecsuite/zecd/wire"
)

// nu5TestParams returns simnet-like parameters with NU5 defined, for
// exercising the combined commitment region.
func nu5TestParams() *chaincfg.Params {
	params := chaincfg.SimNetParams
	params.UpgradeHeights = map[chaincfg.NetworkUpgrade]int32{
		chaincfg.UpgradeOverwinter: 1,
		chaincfg.UpgradeSapling:    2,
		chaincfg.UpgradeBlossom:    3,
		chaincfg.UpgradeHeartwood:  10,
		chaincfg.UpgradeCanopy:     20,
		chaincfg.UpgradeNU5:        30,
	}
	return &params
}

// testCommitmentBlock returns a minimal block with one coinbase transaction.
func testCommitmentBlock() *wire.MsgBlock {
	tx := wire.NewMsgTx()
	nullOut := wire.NullOutPoint()
	tx.AddTxIn(wire.NewTxIn(&nullOut, nil))
	tx.AddTxOut(wire.NewTxOut(50, nil))

	block := wire.NewMsgBlock(&wire.BlockHeader{Version: 4})
	block.AddTransaction(tx)
	return block
}

// TestHeaderCommitmentRegions reproduces the full height-region table of the
// commitment encoding.
func TestHeaderCommitmentRegions(t *testing.T) {
	params := nu5TestParams()
	block := testCommitmentBlock()

	historyRoot := [32]byte{0xab, 0xcd}

	var reserved [32]byte
	reserved[0] = 1

	var zero [32]byte

	tests := []struct {
		name   string
		height int32
		want   [32]byte
	}{
		{"below heartwood", 9, reserved},
		{"well below heartwood", 1, reserved},
		{"at heartwood", 10, zero},
		{"just above heartwood", 11, historyRoot},
		{"below nu5", 29, historyRoot},
	}

	for _, test := range tests {
		got := headerCommitment(params, test.height, historyRoot, block)
		if got != test.want {
			t.Errorf("%s: got %x, want %x", test.name, got,
				test.want)
		}
	}

	// From NU5 activation the commitment is the keyed digest over the
	// history root, the authorizing data root, and the terminator.
	authRoot := CalcAuthDataRoot(params, 30, block)
	var terminator [32]byte
	want := blake2b256(blockCommitmentsPersonalization, historyRoot[:],
		authRoot[:], terminator[:])
	if got := headerCommitment(params, 30, historyRoot, block); got != want {
		t.Errorf("at nu5: got %x, want %x", got, want)
	}
	if got := headerCommitment(params, 31, historyRoot, block); got != want {
		t.Errorf("above nu5: got %x, want %x", got, want)
	}

	// With NU5 undefined the history root region extends indefinitely.
	if got := headerCommitment(&chaincfg.SimNetParams, 1<<20, historyRoot,
		block); got != historyRoot {
		t.Errorf("nu5 undefined: got %x, want history root", got)
	}
}

// TestHeaderCommitmentHeartwoodUndefined ensures networks without a defined
// Heartwood activation always use the reserved placeholder.
func TestHeaderCommitmentHeartwoodUndefined(t *testing.T) {
	params := nu5TestParams()
	params.UpgradeHeights = map[chaincfg.NetworkUpgrade]int32{
		chaincfg.UpgradeOverwinter: 1,
	}

	var reserved [32]byte
	reserved[0] = 1

	got := headerCommitment(params, 1<<20, [32]byte{0xff},
		testCommitmentBlock())
	if got != reserved {
		t.Errorf("heartwood undefined: got %x, want placeholder", got)
	}
}

// TestCalcAuthDataRoot tests the authorizing data root fold.
func TestCalcAuthDataRoot(t *testing.T) {
	params := nu5TestParams()

	empty := wire.NewMsgBlock(&wire.BlockHeader{Version: 4})
	if got := CalcAuthDataRoot(params, 30, empty); got != ([32]byte{}) {
		t.Errorf("empty block: got %x, want all zeroes", got)
	}

	// An authorizing data change must change the root.
	block := testCommitmentBlock()
	before := CalcAuthDataRoot(params, 30, block)
	block.Transactions[0].TxIn[0].SignatureScript = []byte{0x51}
	after := CalcAuthDataRoot(params, 30, block)
	if before == after {
		t.Errorf("root insensitive to authorizing data")
	}

	// The root must depend on the active consensus branch.
	heartwoodEra := CalcAuthDataRoot(params, 15, block)
	nu5Era := CalcAuthDataRoot(params, 30, block)
	if heartwoodEra == nu5Era {
		t.Errorf("root insensitive to consensus branch")
	}
}
