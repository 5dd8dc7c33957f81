// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package wire

import (
	"encoding/binary"

	"github.com/zengo-x/solana-tss/internal/curve"
)

// AggMessage1 is the round-1 broadcast of the two-round MuSig2 session:
// a signer's two fresh nonce commitments R0, R1 and its own public key.
// Every other signer must receive one of these before any
// PartialSignature can be produced.
type AggMessage1 struct {
	R0     curve.Point
	R1     curve.Point
	Sender curve.Point
}

func (AggMessage1) Tag() Tag { return TagAggMessage1 }

func (m AggMessage1) MarshalBinary() []byte {
	out := make([]byte, 0, 1+32*3)
	out = append(out, byte(TagAggMessage1))
	r0, r1, sender := m.R0.Compressed(), m.R1.Compressed(), m.Sender.Compressed()
	out = append(out, r0[:]...)
	out = append(out, r1[:]...)
	out = append(out, sender[:]...)
	return out
}

func unmarshalAggMessage1(b []byte) (AggMessage1, error) {
	if len(b) != 32*3 {
		return AggMessage1{}, newLengthError(32*3, len(b))
	}
	r0, err := decodePoint(b[0:32], "r0")
	if err != nil {
		return AggMessage1{}, err
	}
	r1, err := decodePoint(b[32:64], "r1")
	if err != nil {
		return AggMessage1{}, err
	}
	sender, err := decodePoint(b[64:96], "sender")
	if err != nil {
		return AggMessage1{}, err
	}
	return AggMessage1{R0: r0, R1: r1, Sender: sender}, nil
}

// AggMessage2 is the legacy three-round AggSig variant's round-2
// broadcast: a signer reveals the nonce point and blind it committed
// to in round one, so every other signer can check the reveal against
// that commitment before trusting it. MuSig2 has no use for this: its
// nonces are public from round one, so it has no reveal round.
type AggMessage2 struct {
	R      curve.Point
	Blind  [64]byte
	Sender curve.Point
}

func (AggMessage2) Tag() Tag { return TagAggMessage2 }

func (m AggMessage2) MarshalBinary() []byte {
	out := make([]byte, 0, 1+32+64+32)
	out = append(out, byte(TagAggMessage2))
	r := m.R.Compressed()
	out = append(out, r[:]...)
	out = append(out, m.Blind[:]...)
	sender := m.Sender.Compressed()
	out = append(out, sender[:]...)
	return out
}

func unmarshalAggMessage2(b []byte) (AggMessage2, error) {
	if len(b) != 32+64+32 {
		return AggMessage2{}, newLengthError(32+64+32, len(b))
	}
	r, err := decodePoint(b[0:32], "r")
	if err != nil {
		return AggMessage2{}, err
	}
	var blind [64]byte
	copy(blind[:], b[32:96])
	sender, err := decodePoint(b[96:128], "sender")
	if err != nil {
		return AggMessage2{}, err
	}
	return AggMessage2{R: r, Blind: blind, Sender: sender}, nil
}

// PartialSignature is the bare (R, s) pair the final step of both
// protocols produces: MuSig2's round 2, and the legacy AggSig
// variant's round 3. It carries no sender field, matching the wire
// format both designs settled on — the aggregator only needs every
// partial to agree on R, and sums the s values blindly.
type PartialSignature struct {
	R curve.Point
	S curve.Scalar
}

func (PartialSignature) Tag() Tag { return TagPartialSignature }

func (m PartialSignature) MarshalBinary() []byte {
	out := make([]byte, 0, 1+32*2)
	out = append(out, byte(TagPartialSignature))
	r, s := m.R.Compressed(), m.S.Bytes()
	out = append(out, r[:]...)
	out = append(out, s[:]...)
	return out
}

func unmarshalPartialSignature(b []byte) (PartialSignature, error) {
	if len(b) != 32*2 {
		return PartialSignature{}, newLengthError(32*2, len(b))
	}
	r, err := decodePoint(b[0:32], "r")
	if err != nil {
		return PartialSignature{}, err
	}
	s, err := decodeScalar(b[32:64], "s")
	if err != nil {
		return PartialSignature{}, err
	}
	return PartialSignature{R: r, S: s}, nil
}

// SecretAggStepOne is the private state a MuSig2 signer must keep
// between its Round1 and Round2 calls: the two nonce scalars k0, k1
// and the public nonces R0, R1 they commit to, carried along so Round2
// can check its own round-1 broadcast wasn't tampered with in transit.
// It never leaves the signer's own machine; printing it as base58 is
// only a convenience for resuming the session from a second command.
type SecretAggStepOne struct {
	K0 curve.Scalar
	K1 curve.Scalar
	R0 curve.Point
	R1 curve.Point
}

func (SecretAggStepOne) Tag() Tag { return TagSecretAggStepOne }

func (m SecretAggStepOne) MarshalBinary() []byte {
	out := make([]byte, 0, 1+32*4)
	out = append(out, byte(TagSecretAggStepOne))
	k0, k1 := m.K0.Bytes(), m.K1.Bytes()
	r0, r1 := m.R0.Compressed(), m.R1.Compressed()
	out = append(out, k0[:]...)
	out = append(out, k1[:]...)
	out = append(out, r0[:]...)
	out = append(out, r1[:]...)
	return out
}

func unmarshalSecretAggStepOne(b []byte) (SecretAggStepOne, error) {
	if len(b) != 32*4 {
		return SecretAggStepOne{}, newLengthError(32*4, len(b))
	}
	k0, err := decodeScalar(b[0:32], "k0")
	if err != nil {
		return SecretAggStepOne{}, err
	}
	k1, err := decodeScalar(b[32:64], "k1")
	if err != nil {
		return SecretAggStepOne{}, err
	}
	r0, err := decodePoint(b[64:96], "r0")
	if err != nil {
		return SecretAggStepOne{}, err
	}
	r1, err := decodePoint(b[96:128], "r1")
	if err != nil {
		return SecretAggStepOne{}, err
	}
	return SecretAggStepOne{K0: k0, K1: k1, R0: r0, R1: r1}, nil
}

// PeerCommitment is one entry of the round-1 commitment list the
// legacy AggSig variant carries forward into round 3: the 64-byte
// SHA-512 digest a signer committed to in round one, together with
// the sender that published it. It is not itself tag-framed; it only
// ever travels embedded inside a SecretAggStepTwo.
type PeerCommitment struct {
	Digest [64]byte
	Sender curve.Point
}

func (p PeerCommitment) marshal() []byte {
	out := make([]byte, 0, 64+32)
	out = append(out, p.Digest[:]...)
	sender := p.Sender.Compressed()
	out = append(out, sender[:]...)
	return out
}

func unmarshalPeerCommitment(b []byte) (PeerCommitment, error) {
	if len(b) != 64+32 {
		return PeerCommitment{}, newLengthError(64+32, len(b))
	}
	var digest [64]byte
	copy(digest[:], b[0:64])
	sender, err := decodePoint(b[64:96], "sender")
	if err != nil {
		return PeerCommitment{}, err
	}
	return PeerCommitment{Digest: digest, Sender: sender}, nil
}

// SecretAggStepTwo is the legacy AggSig variant's round-2 private
// carry: this signer's own secret nonce r and its point R, plus every
// peer's round-1 commitment (this signer's own included), so round 3
// can verify each round-2 reveal against the commitment it matches.
// MuSig2 never produces this message; it signs in two rounds with no
// reveal step.
type SecretAggStepTwo struct {
	Nonce      curve.Scalar
	NoncePoint curve.Point
	Peers      []PeerCommitment
}

func (SecretAggStepTwo) Tag() Tag { return TagSecretAggStepTwo }

func (m SecretAggStepTwo) MarshalBinary() []byte {
	out := make([]byte, 0, 1+32+32+8+len(m.Peers)*96)
	out = append(out, byte(TagSecretAggStepTwo))
	r, R := m.Nonce.Bytes(), m.NoncePoint.Compressed()
	out = append(out, r[:]...)
	out = append(out, R[:]...)
	var count [8]byte
	binary.LittleEndian.PutUint64(count[:], uint64(len(m.Peers)))
	out = append(out, count[:]...)
	for _, p := range m.Peers {
		out = append(out, p.marshal()...)
	}
	return out
}

func unmarshalSecretAggStepTwo(b []byte) (SecretAggStepTwo, error) {
	const head = 32 + 32 + 8
	if len(b) < head {
		return SecretAggStepTwo{}, newLengthError(head, len(b))
	}
	r, err := decodeScalar(b[0:32], "r")
	if err != nil {
		return SecretAggStepTwo{}, err
	}
	R, err := decodePoint(b[32:64], "R")
	if err != nil {
		return SecretAggStepTwo{}, err
	}
	count := binary.LittleEndian.Uint64(b[64:72])
	rest := b[72:]
	want := int(count) * 96
	if len(rest) != want {
		return SecretAggStepTwo{}, newLengthError(head+want, len(b))
	}
	peers := make([]PeerCommitment, count)
	for i := range peers {
		p, err := unmarshalPeerCommitment(rest[i*96 : (i+1)*96])
		if err != nil {
			return SecretAggStepTwo{}, err
		}
		peers[i] = p
	}
	return SecretAggStepTwo{Nonce: r, NoncePoint: R, Peers: peers}, nil
}

func decodePoint(b []byte, field string) (curve.Point, error) {
	var arr [32]byte
	copy(arr[:], b)
	p, err := curve.PointFromCompressed(arr)
	if err != nil {
		return curve.Point{}, &DeserializationError{Field: field, Cause: err}
	}
	return p, nil
}

func decodeScalar(b []byte, field string) (curve.Scalar, error) {
	var arr [32]byte
	copy(arr[:], b)
	s, err := curve.ScalarFromCanonicalBytes(arr)
	if err != nil {
		return curve.Scalar{}, &DeserializationError{Field: field, Cause: err}
	}
	return s, nil
}
