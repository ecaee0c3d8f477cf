// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// NetworkUpgrade identifies a named protocol-rule epoch.  Each upgrade
// activates at a network-specific height and stays active until the next
// upgrade activates.
type NetworkUpgrade uint32

// Constants that identify each supported network upgrade, in activation
// order.
const (
	// UpgradeOverwinter is the first network upgrade.
	UpgradeOverwinter NetworkUpgrade = iota

	// UpgradeSapling introduced the sapling shielded pool.
	UpgradeSapling

	// UpgradeBlossom shortened the target block spacing.
	UpgradeBlossom

	// UpgradeHeartwood introduced the chain history tree and the history
	// root header commitment.
	UpgradeHeartwood

	// UpgradeCanopy is the first upgrade after Heartwood.
	UpgradeCanopy

	// UpgradeNU5 introduced the orchard shielded pool and the combined
	// chain history and authorizing data header commitment.
	UpgradeNU5
)

// Map of NetworkUpgrade values back to their constant names for pretty
// printing.
var upgradeStrings = map[NetworkUpgrade]string{
	UpgradeOverwinter: "Overwinter",
	UpgradeSapling:    "Sapling",
	UpgradeBlossom:    "Blossom",
	UpgradeHeartwood:  "Heartwood",
	UpgradeCanopy:     "Canopy",
	UpgradeNU5:        "NU5",
}

// String returns the NetworkUpgrade as a human-readable name.
func (nu NetworkUpgrade) String() string {
	if s, ok := upgradeStrings[nu]; ok {
		return s
	}
	return fmt.Sprintf("Unknown NetworkUpgrade (%d)", uint32(nu))
}

// Consensus branch IDs associated with each network upgrade.  The branch ID
// personalizes transaction authorizing-data digests so signatures do not
// validate across upgrade boundaries.
var upgradeBranchIDs = map[NetworkUpgrade]uint32{
	UpgradeOverwinter: 0x5ba81b19,
	UpgradeSapling:    0x76b809bb,
	UpgradeBlossom:    0x2bb40e60,
	UpgradeHeartwood:  0xf5b9230b,
	UpgradeCanopy:     0xe9ff75a6,
	UpgradeNU5:        0xc2d6d0b4,
}

// BranchID returns the consensus branch ID for the network upgrade.
func (nu NetworkUpgrade) BranchID() uint32 {
	return upgradeBranchIDs[nu]
}

// CurrencyNet represents which network a block or transaction belongs to.
type CurrencyNet uint32

// Constants used to indicate the network.
const (
	// MainNet represents the main network.
	MainNet CurrencyNet = 0x24e92764

	// TestNet represents the public test network.
	TestNet CurrencyNet = 0xfa1af9bf

	// SimNet represents the simulation test network.
	SimNet CurrencyNet = 0x12141c16
)

// Params defines a network by its parameters.  These parameters may be used
// by applications to differentiate networks as well as addresses and keys for
// one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net CurrencyNet

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins can be spent outside a fully shielding transaction.
	CoinbaseMaturity uint16

	// UpgradeHeights maps each network upgrade to its activation height.
	// An upgrade absent from the map is not defined for the network and
	// never activates.
	UpgradeHeights map[NetworkUpgrade]int32
}

// ActivationHeight returns the height at which the given network upgrade
// activates on this network.  The second return value is false when the
// upgrade is not defined for the network.
func (p *Params) ActivationHeight(nu NetworkUpgrade) (int32, bool) {
	height, ok := p.UpgradeHeights[nu]
	return height, ok
}

// IsUpgradeActive returns whether the given network upgrade is active at the
// given height.
func (p *Params) IsUpgradeActive(nu NetworkUpgrade, height int32) bool {
	activation, ok := p.ActivationHeight(nu)
	return ok && height >= activation
}

// CurrentUpgrade returns the most recent network upgrade that is active at
// the given height, along with whether any upgrade is active at all.
func (p *Params) CurrentUpgrade(height int32) (NetworkUpgrade, bool) {
	var (
		current NetworkUpgrade
		found   bool
	)
	for nu := UpgradeOverwinter; nu <= UpgradeNU5; nu++ {
		activation, ok := p.ActivationHeight(nu)
		if !ok || height < activation {
			continue
		}
		if !found || activation >= p.UpgradeHeights[current] {
			current = nu
			found = true
		}
	}
	return current, found
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:             "mainnet",
	Net:              MainNet,
	CoinbaseMaturity: 100,
	UpgradeHeights: map[NetworkUpgrade]int32{
		UpgradeOverwinter: 347500,
		UpgradeSapling:    419200,
		UpgradeBlossom:    653600,
		UpgradeHeartwood:  903000,
		UpgradeCanopy:     1046400,
		UpgradeNU5:        1687104,
	},
}

// TestNetParams defines the network parameters for the public test network.
var TestNetParams = Params{
	Name:             "testnet",
	Net:              TestNet,
	CoinbaseMaturity: 100,
	UpgradeHeights: map[NetworkUpgrade]int32{
		UpgradeOverwinter: 207500,
		UpgradeSapling:    280000,
		UpgradeBlossom:    584000,
		UpgradeHeartwood:  903800,
		UpgradeCanopy:     1028500,
		UpgradeNU5:        1842420,
	},
}

// SimNetParams defines the network parameters for the simulation test
// network.  Activation heights are compressed so short synthetic chains can
// cross upgrade boundaries, and NU5 is deliberately left undefined in order
// to exercise the history-root header commitment rules.
var SimNetParams = Params{
	Name:             "simnet",
	Net:              SimNet,
	CoinbaseMaturity: 16,
	UpgradeHeights: map[NetworkUpgrade]int32{
		UpgradeOverwinter: 1,
		UpgradeSapling:    2,
		UpgradeBlossom:    3,
		UpgradeHeartwood:  10,
		UpgradeCanopy:     20,
	},
}
