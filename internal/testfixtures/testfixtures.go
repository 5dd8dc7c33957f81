// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package testfixtures hands out deterministic key material for tests
// across this module: fixed seeds so a failing test is reproducible
// instead of flaking on whichever random bytes crypto/rand happened to
// produce that run.
package testfixtures

import "github.com/zengo-x/solana-tss/internal/curve"

// KeyPair returns a deterministic key pair derived from index i, stable
// across test runs and platforms.
func KeyPair(i byte) curve.KeyPair {
	var seed [32]byte
	for j := range seed {
		seed[j] = byte(int(i)*31 + j)
	}
	return curve.KeyPairFromSeed(seed)
}

// KeyPairs returns n deterministic, pairwise-distinct key pairs.
func KeyPairs(n int) []curve.KeyPair {
	out := make([]curve.KeyPair, n)
	for i := range out {
		out[i] = KeyPair(byte(i + 1))
	}
	return out
}

// PublicKeys extracts the public keys from kps, preserving order.
func PublicKeys(kps []curve.KeyPair) []curve.Point {
	out := make([]curve.Point, len(kps))
	for i, kp := range kps {
		out[i] = kp.PublicKey()
	}
	return out
}
