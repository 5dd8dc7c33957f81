// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package musig2

import (
	"github.com/zengo-x/solana-tss/internal/curve"
	"github.com/zengo-x/solana-tss/internal/wire"
)

// Round2 consumes every signer's AggMessage1 (including this signer's
// own, as produced by the matching Round1 call) and this signer's
// SecretAggStepOne, and produces this signer's partial signature
// in order:
//
//  1. recompute the aggregate key and this signer's coefficient c_i
//  2. sum the first and second round-1 nonce commitments across all
//     signers into Rs0, Rs1
//  3. derive the binding factor b = H(L ‖ m ‖ Rs0 ‖ Rs1)
//  4. form the session nonce R = Rs0 + b·Rs1
//  5. compute the Ed25519 challenge e = H(R ‖ P ‖ m)
//  6. compute the partial signature s_i = k0 + b·k1 + e·c_i·a_i
func Round2(s Session, secret wire.SecretAggStepOne, messages1 []wire.AggMessage1) (wire.PartialSignature, error) {
	if len(messages1) != len(s.Keys) {
		return wire.PartialSignature{}, errMismatchMessages("expected one round-1 message per signer")
	}

	agg, err := s.aggregateKey()
	if err != nil {
		return wire.PartialSignature{}, err
	}

	seen := make(map[[32]byte]bool, len(messages1))
	var rs0, rs1 []curve.Point
	var ownMsg *wire.AggMessage1
	for i := range messages1 {
		m := messages1[i]
		if !keyInList(m.Sender, s.Keys) {
			return wire.PartialSignature{}, errMismatchMessages("round-1 message from a pubkey outside this session")
		}
		key := m.Sender.Compressed()
		if seen[key] {
			return wire.PartialSignature{}, errMismatchMessages("duplicate round-1 message for the same pubkey")
		}
		seen[key] = true
		rs0 = append(rs0, m.R0)
		rs1 = append(rs1, m.R1)
		if m.Sender.Equal(s.KeyPair.PublicKey()) {
			ownMsg = &messages1[i]
		}
	}
	if ownMsg == nil {
		return wire.PartialSignature{}, errMismatchMessages("no round-1 message found for this signer's own key")
	}
	if !curve.BasePointMul(secret.K0).Equal(ownMsg.R0) || !curve.BasePointMul(secret.K1).Equal(ownMsg.R1) {
		return wire.PartialSignature{}, errMismatchMessages("secret nonces do not match this signer's own round-1 message")
	}

	l := keysL(agg.Keys)
	Rs0, Rs1 := sumPoints(rs0), sumPoints(rs1)
	b := nonceCoefficient(l, s.Message, Rs0, Rs1)

	R := Rs0.Add(Rs1.ScalarMul(b))
	e := curve.Challenge(R, agg.AggPubKey, s.Message)

	expanded := s.KeyPair.Expanded()
	ci := agg.MyCoefficient()

	partial := secret.K0.
		Add(b.Mul(secret.K1)).
		Add(e.Mul(ci).Mul(expanded.A))

	return wire.PartialSignature{R: R, S: partial}, nil
}

func keyInList(k curve.Point, keys []curve.Point) bool {
	for _, c := range keys {
		if c.Equal(k) {
			return true
		}
	}
	return false
}
