// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package logging centralizes this wallet's use of ipfs/go-log under a
// single subsystem name so every package's log lines share one level.
package logging

import (
	logging "github.com/ipfs/go-log"
)

// Subsystem is the single ipfs/go-log subsystem name every package in
// this wallet logs under, letting one SetLevel call tune the whole CLI.
const Subsystem = "solana-tss"

// Logger returns the shared *ZapEventLogger registered under Subsystem.
// name identifies the calling package at the call site only; every
// caller gets the same logger, so SetLevel reaches all of them.
func Logger(name string) *logging.ZapEventLogger {
	return logging.Logger(Subsystem)
}

// SetLevel configures the verbosity of every logger under Subsystem;
// level is one of debug/info/warn/error, as accepted by
// ipfs/go-log's own SetLogLevel.
func SetLevel(level string) error {
	return logging.SetLogLevel(Subsystem, level)
}
