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

// StepTwoResult is the nonce reveal broadcast to every co-signer, and
// the secret carry StepThree needs to finish the signature.
type StepTwoResult struct {
	Reveal wire.AggMessage2
	Secret wire.SecretAggStepTwo
}

// StepTwo reveals the nonce and blind committed to in StepOne.
// commitments must hold every co-signer's StepOne commitment,
// including this signer's own, collected out of band during round
// one; they are carried forward so StepThree can verify each round-2
// reveal against the commitment it matches.
func StepTwo(kp curve.KeyPair, secret StepOneSecret, commitments []wire.PeerCommitment) (StepTwoResult, error) {
	found := false
	for _, c := range commitments {
		if c.Sender.Equal(kp.PublicKey()) {
			found = true
			break
		}
	}
	if !found {
		return StepTwoResult{}, errs.MismatchMessages("no commitment found for this signer's own key")
	}

	return StepTwoResult{
		Reveal: wire.AggMessage2{R: secret.Point, Blind: secret.Blind, Sender: kp.PublicKey()},
		Secret: wire.SecretAggStepTwo{
			Nonce:      secret.Nonce,
			NoncePoint: secret.Point,
			Peers:      commitments,
		},
	}, nil
}
