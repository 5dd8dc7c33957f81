// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package aggsig

import (
	"github.com/zengo-x/solana-tss/errs"
	"github.com/zengo-x/solana-tss/internal/curve"
	"github.com/zengo-x/solana-tss/internal/wire"
)

// StepThree checks every signer's revealed nonce against the
// commitment carried forward from round one, then computes this
// signer's partial signature over the summed nonces:
// s_i = r_i + e·c_i·a_i, where e = H(ΣR_j ‖ P ‖ m).
func StepThree(s Session, secret wire.SecretAggStepTwo, reveals []wire.AggMessage2) (wire.PartialSignature, error) {
	if len(reveals) != len(s.Keys) || len(secret.Peers) != len(s.Keys) {
		return wire.PartialSignature{}, errs.MismatchMessages("expected one reveal and one stored commitment per signer")
	}

	commitBySender := make(map[[32]byte][64]byte, len(secret.Peers))
	for _, c := range secret.Peers {
		if !keyInList(c.Sender, s.Keys) {
			return wire.PartialSignature{}, errs.MismatchMessages("commitment from a pubkey outside this session")
		}
		commitBySender[c.Sender.Compressed()] = c.Digest
	}

	var rSum curve.Point
	first := true
	foundOwn := false
	for _, rv := range reveals {
		if !keyInList(rv.Sender, s.Keys) {
			return wire.PartialSignature{}, errs.MismatchMessages("reveal from a pubkey outside this session")
		}
		want, ok := commitBySender[rv.Sender.Compressed()]
		if !ok {
			return wire.PartialSignature{}, errs.MismatchMessages("reveal with no matching commitment")
		}
		if commitmentDigest(rv.R, rv.Blind) != want {
			return wire.PartialSignature{}, errs.MismatchMessages("revealed nonce does not match its commitment")
		}
		if rv.Sender.Equal(s.KeyPair.PublicKey()) {
			if !rv.R.Equal(secret.NoncePoint) {
				return wire.PartialSignature{}, errs.MismatchMessages("own reveal does not match own secret nonce")
			}
			foundOwn = true
		}
		if first {
			rSum = rv.R
			first = false
		} else {
			rSum = rSum.Add(rv.R)
		}
	}
	if !foundOwn {
		return wire.PartialSignature{}, errs.MismatchMessages("no reveal found for this signer's own key")
	}

	agg, err := aggregateKeyOf(s)
	if err != nil {
		return wire.PartialSignature{}, err
	}

	e := curve.Challenge(rSum, agg.AggPubKey, s.Message)
	expanded := s.KeyPair.Expanded()
	ci := agg.MyCoefficient()

	partial := secret.Nonce.Add(e.Mul(ci).Mul(expanded.A))

	return wire.PartialSignature{R: rSum, S: partial}, nil
}

func keyInList(k curve.Point, keys []curve.Point) bool {
	for _, c := range keys {
		if c.Equal(k) {
			return true
		}
	}
	return false
}
