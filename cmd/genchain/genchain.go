// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/btcsuite/btclog"
	"github.com/davecgh/go-spew/spew"
	"github.com/jrick/logrotate/rotator"

	"github.com/zecsuite/zecd/blockchain"
	"github.com/zecsuite/zecd/blockchain/chaingen"
)

var (
	cfg *config
	log btclog.Logger

	// logRotator is the optional file output of the logging backend.  It
	// stays nil unless a log file is configured and should be closed on
	// shutdown when set.
	logRotator *rotator.Rotator
)

// logWriter implements an io.Writer that outputs to standard output and, when
// a rotator has been initialized, to its write-end pipe as well.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	tcfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	// Setup logging.
	if cfg.LogFile != "" {
		logRotator, err = rotator.New(cfg.LogFile, 10*1024, false, 3)
		if err != nil {
			return err
		}
		defer logRotator.Close()
	}
	backendLog := btclog.NewBackend(logWriter{})
	defer os.Stdout.Sync()
	log = backendLog.Logger("MAIN")
	chainLog := backendLog.Logger("CHAN")
	blockchain.UseLogger(chainLog)

	level, _ := btclog.LevelFromString(cfg.DebugLevel)
	log.SetLevel(level)
	chainLog.SetLevel(level)

	// Generate the candidate blocks.
	log.Infof("Generating %d candidate blocks on %s from seed %d",
		cfg.NumBlocks, activeNetParams.Name, cfg.Seed)
	generator := chaingen.New(activeNetParams, cfg.Seed)
	candidates := generator.Generate(cfg.StartHeight, cfg.NumBlocks)

	// Repair them into a linked consensus-valid chain.
	builder, err := blockchain.New(&blockchain.Config{
		ChainParams:         activeNetParams,
		SpendChecker:        blockchain.AllowAllSpends,
		SelectionProbeLimit: cfg.ProbeLimit,
	})
	if err != nil {
		log.Errorf("Failed to create chain builder: %v", err)
		return err
	}
	blocks, err := builder.ConstructChain(cfg.StartHeight, candidates)
	if err != nil {
		log.Errorf("Failed to construct chain: %v", err)
		return err
	}

	for i, block := range blocks {
		height := cfg.StartHeight + int32(i)
		log.Infof("Block %v (height %d, %d transactions)",
			block.BlockHash(), height, len(block.Transactions))
		if cfg.DumpBlocks {
			log.Debugf("Block %d contents: %v", height,
				spew.Sdump(block))
		}
	}

	pools := builder.ValuePools()
	log.Infof("Constructed %d blocks: %d unspent outputs, value pools %v",
		len(blocks), builder.UtxoCount(), pools)
	log.Infof("Chain tip %v at height %d", blocks[len(blocks)-1].BlockHash(),
		cfg.StartHeight+int32(len(blocks))-1)
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
