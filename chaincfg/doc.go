// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines chain configuration parameters.

In addition to the main network, which is intended for the transfer of
monetary value, there also exists the following standard networks:
  - testnet
  - simnet

These networks are incompatible with each other (each sharing a different
history of upgrade activations) and software should handle errors where input
intended for one network is used on an application instance running on a
different network.

Rather than have each application define its own chain parameters, this
package provides a single, canonical definition per network that all packages
in the module key off of, most notably the activation heights and consensus
branch IDs of the named network upgrades.
*/
package chaincfg
