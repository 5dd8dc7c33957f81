// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package musig2

import (
	"io"

	"github.com/zengo-x/solana-tss/internal/curve"
	"github.com/zengo-x/solana-tss/internal/wire"
)

// Round1Result is what Round1 hands back to the caller: the public
// AggMessage1 to send to every co-signer, and the SecretAggStepOne
// blob the caller must keep and feed into its own Round2 call. Losing
// the secret means the session must restart from Round1 with fresh
// nonces; reusing it across two different Round2 calls breaks the
// signature's unforgeability and is the caller's
// responsibility to avoid, since a stateless CLI process cannot enforce
// single use across its own separate invocations.
type Round1Result struct {
	Public wire.AggMessage1
	Secret wire.SecretAggStepOne
}

// Round1 draws two fresh random nonce scalars k0, k1, derives their
// commitments R0 = k0·B, R1 = k1·B, and packages them together with
// this signer's own public key.
func Round1(rand io.Reader, kp curve.KeyPair) (Round1Result, error) {
	k0, err := curve.RandomScalar(rand)
	if err != nil {
		return Round1Result{}, err
	}
	k1, err := curve.RandomScalar(rand)
	if err != nil {
		return Round1Result{}, err
	}
	R0, R1 := curve.BasePointMul(k0), curve.BasePointMul(k1)

	return Round1Result{
		Public: wire.AggMessage1{
			R0:     R0,
			R1:     R1,
			Sender: kp.PublicKey(),
		},
		Secret: wire.SecretAggStepOne{K0: k0, K1: k1, R0: R0, R1: R1},
	}, nil
}
