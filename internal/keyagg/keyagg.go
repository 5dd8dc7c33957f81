// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package keyagg computes the MuSig2-style aggregate public key that
// every signing session is keyed on: a deterministic combination of the
// participants' individual public keys that no single signer (or
// coalition short of all of them) can forge a signature for, derived
// from a hash-derived coefficient per key rather than Lagrange
// interpolation, since this is an n-of-n aggregate key rather than a
// t-of-n threshold share.
package keyagg

import (
	"sort"

	"github.com/zengo-x/solana-tss/errs"
	"github.com/zengo-x/solana-tss/internal/curve"
)

// AggregateKey is the result of combining a sorted list of public keys
// into a single MuSig2 aggregate key, plus the data a signer holding
// one of the input keys needs to compute its own contribution.
type AggregateKey struct {
	// Keys is the input key list, sorted bytewise ascending by
	// compressed encoding.
	Keys []curve.Point
	// Coefficients[i] is c_i = H("keyagg" ‖ L ‖ Keys[i]) mod ℓ, in the
	// same order as Keys.
	Coefficients []curve.Scalar
	// AggPubKey is P = Σ c_i · Keys[i].
	AggPubKey curve.Point
	// MyIndex is the position of the caller's own key within Keys, or
	// -1 if the caller supplied no key of its own (spectator mode).
	MyIndex int
}

// MyCoefficient returns this signer's own aggregation coefficient c_i.
// It panics if Aggregate was called without a `mine` key; callers that
// only aggregate public keys for inspection should not call it.
func (a *AggregateKey) MyCoefficient() curve.Scalar {
	if a.MyIndex < 0 {
		panic("keyagg: MyCoefficient called without an own key pair")
	}
	return a.Coefficients[a.MyIndex]
}

// Aggregate computes the aggregate key over keys. If mine is non-nil it
// must equal one of keys (by value); its index is recorded so signing
// code can fetch MyCoefficient without a second linear search. Returns
// errs.KeyPairIsNotInKeys if mine is supplied but absent from keys,
// before any coefficient is computed.
//
// Duplicate keys are permitted: n-of-n rogue-key resistance does not
// require distinct keys here, and the coefficient
// hash already depends on the full sorted list L, so a repeated key
// simply contributes its coefficient twice.
func Aggregate(keys []curve.Point, mine *curve.Point) (*AggregateKey, error) {
	sorted := make([]curve.Point, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return curve.Less(sorted[i], sorted[j])
	})

	myIndex := -1
	if mine != nil {
		for i, k := range sorted {
			if k.Equal(*mine) {
				myIndex = i
				break
			}
		}
		if myIndex < 0 {
			return nil, errs.KeyPairIsNotInKeys()
		}
	}

	l := concatCompressed(sorted)

	coeffs := make([]curve.Scalar, len(sorted))
	agg := curve.Point{}
	first := true
	for i, k := range sorted {
		kb := k.Compressed()
		c := curve.HashToScalar([]byte("keyagg"), l, kb[:])
		coeffs[i] = c
		term := k.ScalarMul(c)
		if first {
			agg = term
			first = false
		} else {
			agg = agg.Add(term)
		}
	}

	return &AggregateKey{
		Keys:         sorted,
		Coefficients: coeffs,
		AggPubKey:    agg,
		MyIndex:      myIndex,
	}, nil
}

func concatCompressed(keys []curve.Point) []byte {
	out := make([]byte, 0, len(keys)*32)
	for _, k := range keys {
		b := k.Compressed()
		out = append(out, b[:]...)
	}
	return out
}
