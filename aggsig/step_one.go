// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package aggsig

import (
	"crypto/sha512"
	"io"

	"github.com/zengo-x/solana-tss/internal/curve"
	"github.com/zengo-x/solana-tss/internal/wire"
)

// StepOneSecret is the private continuation StepOne hands back to the
// same signer for StepTwo: the nonce it committed to, and the blind
// mixed into the commitment.
type StepOneSecret struct {
	Nonce curve.Scalar
	Point curve.Point
	Blind [64]byte
}

// StepOneResult carries a commitment to a fresh nonce, and the secret
// nonce itself for the caller to carry into StepTwo.
type StepOneResult struct {
	// Commitment is published to every co-signer before any nonce is
	// revealed, so no signer can choose its own nonce as a function of
	// the others' (the rogue-nonce attack musig2's binding factor
	// defends against a different way).
	Commitment wire.PeerCommitment
	Secret     StepOneSecret
}

// commitmentDigest computes the 64-byte SHA-512 digest of R ‖ blind
// that the legacy protocol publishes instead of R itself.
func commitmentDigest(r curve.Point, blind [64]byte) [64]byte {
	rb := r.Compressed()
	h := sha512.New()
	h.Write(rb[:])
	h.Write(blind[:])
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// StepOne draws a fresh nonce r, computes R = r·B, and commits to
// (R, blind) rather than broadcasting R directly.
func StepOne(rand io.Reader, kp curve.KeyPair) (StepOneResult, error) {
	r, err := curve.RandomScalar(rand)
	if err != nil {
		return StepOneResult{}, err
	}
	R := curve.BasePointMul(r)

	var blind [64]byte
	if _, err := io.ReadFull(rand, blind[:]); err != nil {
		return StepOneResult{}, err
	}

	return StepOneResult{
		Commitment: wire.PeerCommitment{Digest: commitmentDigest(R, blind), Sender: kp.PublicKey()},
		Secret:     StepOneSecret{Nonce: r, Point: R, Blind: blind},
	}, nil
}
