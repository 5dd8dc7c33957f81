// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package aggsig

import (
	"github.com/zengo-x/solana-tss/internal/curve"
	"github.com/zengo-x/solana-tss/internal/wire"
	"github.com/zengo-x/solana-tss/musig2"
)

// Aggregate combines every signer's StepThree output into a final
// standard Ed25519 signature. The legacy protocol's PartialSignature
// is the same (R, s) shape MuSig2 produces, and the combination rule
// — check every R agrees, sum the s values — doesn't depend on how R
// was agreed on, so this delegates to musig2.Aggregate rather than
// duplicating it.
func Aggregate(keys []curve.Point, partials []wire.PartialSignature) (R curve.Point, s curve.Scalar, err error) {
	return musig2.Aggregate(keys, partials)
}

// Verify checks the aggregated (R, s) signature against the aggregate
// public key and message.
func Verify(aggPubKey curve.Point, r curve.Point, s curve.Scalar, message []byte) bool {
	return musig2.Verify(aggPubKey, r, s, message)
}
