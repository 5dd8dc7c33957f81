// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package curve wraps the Ed25519 scalar/point arithmetic this wallet
// needs: a mod-ℓ Scalar type, a compressed-point Point type, and the
// hash-to-scalar helper shared by key aggregation and MuSig2. All curve
// operations are delegated to decred's TwistedEdwardsCurve.
package curve

import (
	"crypto/sha512"
	"errors"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/edwards/v2"
)

// ec is the Ed25519 curve instance. decred's TwistedEdwardsCurve
// implements the stdlib crypto/elliptic.Curve interface, giving us
// Add/ScalarMult/ScalarBaseMult/IsOnCurve for free.
var ec = edwards.Edwards()

// ErrScalarNotCanonical is returned when a decoded 32-byte scalar is >= ℓ.
var ErrScalarNotCanonical = errors.New("scalar is not reduced modulo the group order")

// Order returns ℓ, the order of the Ed25519 base-point subgroup.
func Order() *big.Int {
	return ec.Params().N
}

// reverse returns a new slice with b's bytes in the opposite order;
// used to flip between Ed25519's little-endian wire format and
// big.Int's big-endian internal representation.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// Scalar is an integer modulo ℓ, the Ed25519 group order.
type Scalar struct {
	v *big.Int
}

func scalarFromBigInt(v *big.Int) Scalar {
	return Scalar{v: new(big.Int).Mod(v, Order())}
}

// ZeroScalar returns the additive identity.
func ZeroScalar() Scalar {
	return Scalar{v: big.NewInt(0)}
}

// OneScalar returns the multiplicative identity.
func OneScalar() Scalar {
	return Scalar{v: big.NewInt(1)}
}

// RandomScalar draws a uniform element of Z/ℓZ from rand, which must
// be cryptographically strong (spec requires fresh entropy per round1
// call). 64 bytes are read and reduced so the mod-ℓ bias is negligible.
func RandomScalar(rand io.Reader) (Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return Scalar{}, err
	}
	v := new(big.Int).SetBytes(reverse(buf[:]))
	return scalarFromBigInt(v), nil
}

// ScalarFromCanonicalBytes decodes a little-endian 32-byte scalar,
// rejecting any encoding >= ℓ as the wire-format invariant demands.
func ScalarFromCanonicalBytes(b [32]byte) (Scalar, error) {
	v := new(big.Int).SetBytes(reverse(b[:]))
	if v.Cmp(Order()) >= 0 {
		return Scalar{}, ErrScalarNotCanonical
	}
	return Scalar{v: v}, nil
}

// scalarFromClampedBytes reduces a clamped Ed25519 secret scalar modulo
// ℓ without range-checking it first; clamped scalars are deliberately
// not canonical (they sit in [2^254, 2^255)), but a·B == (a mod ℓ)·B
// because the base point has order exactly ℓ, so reducing here changes
// no public key this wallet will ever derive.
func scalarFromClampedBytes(b [32]byte) Scalar {
	return scalarFromBigInt(new(big.Int).SetBytes(reverse(b[:])))
}

// HashToScalar computes SHA-512 over the concatenation of parts and
// reduces the digest modulo ℓ, the H(...) construction used throughout
// this package: key aggregation coefficients, the MuSig2 nonce
// coefficient b, and the standard Ed25519 challenge e.
func HashToScalar(parts ...[]byte) Scalar {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	sum := h.Sum(nil)
	v := new(big.Int).SetBytes(reverse(sum))
	return scalarFromBigInt(v)
}

// Bytes encodes the scalar as 32 little-endian bytes.
func (s Scalar) Bytes() [32]byte {
	be := s.v.FillBytes(make([]byte, 32))
	var out [32]byte
	for i := 0; i < 32; i++ {
		out[i] = be[31-i]
	}
	return out
}

// BigInt exposes the underlying value for callers that need to combine
// it with math/big directly.
func (s Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.v)
}

// beBytes is the big-endian encoding decred's elliptic.Curve methods expect.
func (s Scalar) beBytes() []byte {
	return s.v.Bytes()
}

// Add returns s+o mod ℓ.
func (s Scalar) Add(o Scalar) Scalar {
	return scalarFromBigInt(new(big.Int).Add(s.v, o.v))
}

// Mul returns s*o mod ℓ.
func (s Scalar) Mul(o Scalar) Scalar {
	return scalarFromBigInt(new(big.Int).Mul(s.v, o.v))
}

// MulAdd returns s*b+c mod ℓ.
func (s Scalar) MulAdd(b, c Scalar) Scalar {
	return scalarFromBigInt(new(big.Int).Add(new(big.Int).Mul(s.v, b.v), c.v))
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// Equal reports whether s and o represent the same residue mod ℓ.
func (s Scalar) Equal(o Scalar) bool {
	return s.v.Cmp(o.v) == 0
}

// Point is a point on the Ed25519 curve, held in affine coordinates.
type Point struct {
	pub *edwards.PublicKey
}

func pointFromXY(x, y *big.Int) Point {
	return Point{pub: &edwards.PublicKey{Curve: ec, X: x, Y: y}}
}

// BasePointMul returns s·B, where B is the Ed25519 base point.
func BasePointMul(s Scalar) Point {
	x, y := ec.ScalarBaseMult(s.beBytes())
	return pointFromXY(x, y)
}

// PointFromCompressed decodes a 32-byte compressed Ed25519 point,
// rejecting non-canonical or off-curve encodings.
func PointFromCompressed(b [32]byte) (Point, error) {
	pub, err := edwards.ParsePubKey(b[:])
	if err != nil {
		return Point{}, err
	}
	return Point{pub: pub}, nil
}

// Compressed encodes p in the standard 32-byte Ed25519 form.
func (p Point) Compressed() [32]byte {
	var out [32]byte
	copy(out[:], p.pub.Serialize())
	return out
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	x, y := ec.Add(p.pub.X, p.pub.Y, q.pub.X, q.pub.Y)
	return pointFromXY(x, y)
}

// ScalarMul returns s·p.
func (p Point) ScalarMul(s Scalar) Point {
	x, y := ec.ScalarMult(p.pub.X, p.pub.Y, s.beBytes())
	return pointFromXY(x, y)
}

// Equal reports whether p and q are the same curve point.
func (p Point) Equal(q Point) bool {
	if p.pub == nil || q.pub == nil {
		return p.pub == q.pub
	}
	return p.pub.X.Cmp(q.pub.X) == 0 && p.pub.Y.Cmp(q.pub.Y) == 0
}

// Less orders points by their compressed encoding, bytewise ascending —
// the sort order key aggregation requires.
func Less(a, b Point) bool {
	ab, bb := a.Compressed(), b.Compressed()
	for i := range ab {
		if ab[i] != bb[i] {
			return ab[i] < bb[i]
		}
	}
	return false
}
