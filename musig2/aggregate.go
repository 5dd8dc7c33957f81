// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package musig2

import (
	"github.com/agl/ed25519/edwards25519"

	"github.com/zengo-x/solana-tss/errs"
	"github.com/zengo-x/solana-tss/internal/curve"
	"github.com/zengo-x/solana-tss/internal/wire"
)

// Aggregate combines every signer's PartialSignature into one standard
// Ed25519 (R, s) signature valid under the aggregate public key. Every
// partial must carry the same session nonce R; any disagreement means
// a signer used a different round-1 transcript and the session must
// restart. PartialSignature carries no sender field, so there is
// nothing left to deduplicate by identity here — only the count and
// the R agreement are checked, matching what the final per-signer
// output looks like under both the MuSig2 and legacy AggSig
// protocols. Final summation of the partial scalars uses
// edwards25519.ScMulAdd accumulation rather than repeated Scalar.Add
// calls.
func Aggregate(keys []curve.Point, partials []wire.PartialSignature) (R curve.Point, s curve.Scalar, err error) {
	if len(partials) == 0 {
		return curve.Point{}, curve.Scalar{}, errMismatchMessages("no partial signatures supplied")
	}
	if len(partials) != len(keys) {
		return curve.Point{}, curve.Scalar{}, errMismatchMessages("expected one partial signature per signer")
	}

	R = partials[0].R
	for _, p := range partials[1:] {
		if !p.R.Equal(R) {
			return curve.Point{}, curve.Scalar{}, errMismatchMessages("partial signatures disagree on the session nonce")
		}
	}

	var acc [32]byte // accumulator in ScMulAdd's little-endian wire form
	one := curve.OneScalar().Bytes()
	for i, p := range partials {
		term := p.S.Bytes()
		if i == 0 {
			acc = term
			continue
		}
		var out [32]byte
		edwards25519.ScMulAdd(&out, &acc, &one, &term)
		acc = out
	}

	s, err = curve.ScalarFromCanonicalBytes(acc)
	if err != nil {
		return curve.Point{}, curve.Scalar{}, errs.InvalidScalar(err)
	}
	return R, s, nil
}

// Verify checks the aggregated (R, s) signature against the aggregate
// public key and message, delegating to the same equation used for a
// lone Ed25519 signature: s·B == R + e·P.
func Verify(aggPubKey curve.Point, r curve.Point, s curve.Scalar, message []byte) bool {
	return curve.Verify(r, s, aggPubKey, message)
}
