// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package curve

// Challenge computes the standard Ed25519 challenge
// e = SHA-512(R ‖ P ‖ m) mod ℓ, the same construction used both by a
// lone signer and by every MuSig2 session.
func Challenge(r, pub Point, message []byte) Scalar {
	rb, pb := r.Compressed(), pub.Compressed()
	return HashToScalar(rb[:], pb[:], message)
}

// Sign produces a standard deterministic single-signer Ed25519
// signature, used by the send-single command path:
// nonce r = H(prefix ‖ m), R = r·B, e = H(R ‖ A ‖ m), s = r + e·a.
func Sign(kp ExpandedKeyPair, message []byte) (r Point, s Scalar) {
	nonce := HashToScalar(kp.Prefix[:], message)
	r = BasePointMul(nonce)
	e := Challenge(r, kp.Pub, message)
	s = nonce.Add(e.Mul(kp.A))
	return r, s
}

// Verify checks a standard Ed25519 signature (R, s) against public key
// pub and message bytes m: s·B == R + e·pub.
func Verify(r Point, s Scalar, pub Point, message []byte) bool {
	e := Challenge(r, pub, message)
	lhs := BasePointMul(s)
	rhs := r.Add(pub.ScalarMul(e))
	return lhs.Equal(rhs)
}
