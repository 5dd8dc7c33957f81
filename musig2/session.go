// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package musig2 implements the two-round aggregate signing protocol:
// each signer independently runs Round1 to produce a
// pair of fresh nonces, exchanges AggMessage1 with its co-signers
// out of band, then runs Round2 once it holds every co-signer's
// AggMessage1 to produce its partial signature. Aggregate combines the
// partial signatures of every signer into one valid Ed25519 signature
// over the aggregate public key computed by internal/keyagg.
//
// This package is pure and stateless between calls — exactly as
// stateless as the CLI process invoking it — so the caller is
// responsible for carrying the SecretAggStepOne blob Round1 returns
// forward into the matching Round2 call.
package musig2

import (
	"github.com/zengo-x/solana-tss/errs"
	"github.com/zengo-x/solana-tss/internal/curve"
	"github.com/zengo-x/solana-tss/internal/keyagg"
)

// Session bundles the data every step of a MuSig2 run needs: which
// key pair this party is signing with, the full list of co-signer
// public keys (including its own), and the message being signed. The
// wallet's only caller, the send-aggregate CLI commands, populates
// Message from a constructed Solana transaction's signing bytes.
type Session struct {
	KeyPair curve.KeyPair
	Keys    []curve.Point
	Message []byte
}

// aggregateKey re-derives this session's MuSig2 aggregate key and this
// signer's position within it. Every step recomputes it rather than
// threading it through the wire, so a session resumed across separate
// CLI invocations from just (keypair, keys, message) always agrees
// with its peers on the aggregate key without any extra exchange.
func (s Session) aggregateKey() (*keyagg.AggregateKey, error) {
	pub := s.KeyPair.PublicKey()
	return keyagg.Aggregate(s.Keys, &pub)
}

func sumPoints(points []curve.Point) curve.Point {
	sum := points[0]
	for _, p := range points[1:] {
		sum = sum.Add(p)
	}
	return sum
}

// nonceCoefficient computes the round-2 binding factor
// b = H("musig2-b" ‖ L ‖ m ‖ Rs0 ‖ Rs1), where Rs0/Rs1 are the summed
// first and second nonce commitments across all signers. Binding b to
// the message and the aggregated commitments is what defeats
// Wagner's-attack-style forgeries against naive two-nonce schemes.
func nonceCoefficient(l, message []byte, rs0, rs1 curve.Point) curve.Scalar {
	rs0b, rs1b := rs0.Compressed(), rs1.Compressed()
	return curve.HashToScalar([]byte("musig2-b"), l, message, rs0b[:], rs1b[:])
}

func keysL(keys []curve.Point) []byte {
	out := make([]byte, 0, len(keys)*32)
	for _, k := range keys {
		b := k.Compressed()
		out = append(out, b[:]...)
	}
	return out
}

// errMismatchMessages wraps the errs.MismatchMessages constructor with
// a fixed reason string for the one check every step here repeats.
func errMismatchMessages(reason string) error {
	return errs.MismatchMessages(reason)
}
