// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/zecsuite/zecd/chaincfg"
)

const (
	defaultSeed        = 1
	defaultNumBlocks   = 10
	defaultStartHeight = 1
	defaultDebugLevel  = "info"
)

var activeNetParams = &chaincfg.MainNetParams

// config defines the configuration options for genchain.
//
// See loadConfig for details on the configuration load process.
type config struct {
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	DumpBlocks  bool   `long:"dump" description:"Dump each constructed block at the debug level"`
	LogFile     string `long:"logfile" description:"Also write logs to this file, rotated at 10 MB"`
	NumBlocks   int    `short:"n" long:"numblocks" description:"Number of candidate blocks to generate and repair"`
	ProbeLimit  int    `long:"probelimit" description:"Maximum spend checker probes per repaired input -- Use 0 for the default of 100"`
	Seed        int64  `short:"s" long:"seed" description:"Seed for the deterministic candidate generator"`
	SimNet      bool   `long:"simnet" description:"Use the simulation test network"`
	StartHeight int32  `long:"startheight" description:"Height of the first constructed block"`
	TestNet     bool   `long:"testnet" description:"Use the test network"`
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		DebugLevel:  defaultDebugLevel,
		NumBlocks:   defaultNumBlocks,
		Seed:        defaultSeed,
		StartHeight: defaultStartHeight,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Multiple networks can't be selected simultaneously.
	funcName := "loadConfig"
	numNets := 0
	if cfg.TestNet {
		numNets++
		activeNetParams = &chaincfg.TestNetParams
	}
	if cfg.SimNet {
		numNets++
		activeNetParams = &chaincfg.SimNetParams
	}
	if numNets > 1 {
		str := "%s: The testnet and simnet params can't be used " +
			"together -- choose one of the two"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if cfg.NumBlocks < 1 {
		str := "%s: The number of blocks must be at least 1 -- parsed [%v]"
		err := fmt.Errorf(str, funcName, cfg.NumBlocks)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if cfg.StartHeight < 0 {
		str := "%s: The start height must not be negative -- parsed [%v]"
		err := fmt.Errorf(str, funcName, cfg.StartHeight)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if cfg.ProbeLimit < 0 {
		str := "%s: The probe limit must not be negative -- parsed [%v]"
		err := fmt.Errorf(str, funcName, cfg.ProbeLimit)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
