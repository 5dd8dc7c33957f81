// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package curve

import (
	"crypto/sha512"
	"io"
)

// KeyPair holds a 32-byte secret seed and the public key derived from
// it. The only serialized form this wallet uses is the bare 32-byte
// seed (see Seed); no 64-byte seed-plus-public-key encoding is
// produced or accepted.
type KeyPair struct {
	seed [32]byte
	pub  Point
}

// GenerateKeyPair draws a fresh seed from rand and derives its public key.
func GenerateKeyPair(rand io.Reader) (KeyPair, error) {
	var seed [32]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return KeyPair{}, err
	}
	return KeyPairFromSeed(seed), nil
}

// KeyPairFromSeed derives the public key deterministically from seed.
func KeyPairFromSeed(seed [32]byte) KeyPair {
	expanded := ExpandSeed(seed)
	return KeyPair{seed: seed, pub: expanded.Pub}
}

// Seed returns the 32-byte secret seed.
func (k KeyPair) Seed() [32]byte { return k.seed }

// PublicKey returns the 32-byte compressed public key.
func (k KeyPair) PublicKey() Point { return k.pub }

// Expanded re-derives this key pair's scalar and nonce prefix.
func (k KeyPair) Expanded() ExpandedKeyPair { return ExpandSeed(k.seed) }

// ExpandedKeyPair is the working form of a KeyPair: the clamped secret
// scalar `a` used in every scalar-mult, the nonce-derivation `prefix`
// used by single-signer deterministic signing, and the public point.
type ExpandedKeyPair struct {
	A      Scalar
	Prefix [32]byte
	Pub    Point
}

func clamp(b *[32]byte) {
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
}

// ExpandSeed applies SHA-512(seed) and standard Ed25519 clamping to
// split a 32-byte seed into its secret scalar and nonce prefix.
func ExpandSeed(seed [32]byte) ExpandedKeyPair {
	h := sha512.Sum512(seed[:])

	var aBytes [32]byte
	copy(aBytes[:], h[:32])
	clamp(&aBytes)

	var prefix [32]byte
	copy(prefix[:], h[32:])

	a := scalarFromClampedBytes(aBytes)
	return ExpandedKeyPair{
		A:      a,
		Prefix: prefix,
		Pub:    BasePointMul(a),
	}
}
