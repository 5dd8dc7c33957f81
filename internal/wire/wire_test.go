// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package wire

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zengo-x/solana-tss/internal/curve"
)

func randPoint(t *testing.T) curve.Point {
	t.Helper()
	s, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return curve.BasePointMul(s)
}

func randScalar(t *testing.T) curve.Scalar {
	t.Helper()
	s, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return s
}

func randBlind(t *testing.T) [64]byte {
	t.Helper()
	var b [64]byte
	_, err := rand.Read(b[:])
	require.NoError(t, err)
	return b
}

func TestAggMessage1RoundTrip(t *testing.T) {
	for i := 0; i < 255; i++ {
		want := AggMessage1{R0: randPoint(t), R1: randPoint(t), Sender: randPoint(t)}
		got, err := DecodeTagged[AggMessage1](want.MarshalBinary())
		require.NoError(t, err)
		assert.True(t, want.R0.Equal(got.R0))
		assert.True(t, want.R1.Equal(got.R1))
		assert.True(t, want.Sender.Equal(got.Sender))
	}
}

func TestAggMessage2RoundTrip(t *testing.T) {
	for i := 0; i < 255; i++ {
		want := AggMessage2{R: randPoint(t), Blind: randBlind(t), Sender: randPoint(t)}
		got, err := DecodeTagged[AggMessage2](want.MarshalBinary())
		require.NoError(t, err)
		assert.True(t, want.R.Equal(got.R))
		assert.Equal(t, want.Blind, got.Blind)
		assert.True(t, want.Sender.Equal(got.Sender))
	}
}

func TestPartialSignatureRoundTrip(t *testing.T) {
	for i := 0; i < 255; i++ {
		want := PartialSignature{R: randPoint(t), S: randScalar(t)}
		got, err := DecodeTagged[PartialSignature](want.MarshalBinary())
		require.NoError(t, err)
		assert.True(t, want.R.Equal(got.R))
		assert.True(t, want.S.Equal(got.S))
	}
}

func TestSecretAggStepOneRoundTrip(t *testing.T) {
	for i := 0; i < 255; i++ {
		want := SecretAggStepOne{K0: randScalar(t), K1: randScalar(t), R0: randPoint(t), R1: randPoint(t)}
		got, err := DecodeTagged[SecretAggStepOne](want.MarshalBinary())
		require.NoError(t, err)
		assert.True(t, want.K0.Equal(got.K0))
		assert.True(t, want.K1.Equal(got.K1))
		assert.True(t, want.R0.Equal(got.R0))
		assert.True(t, want.R1.Equal(got.R1))
	}
}

func TestSecretAggStepTwoRoundTrip(t *testing.T) {
	for i := 0; i < 255; i++ {
		peers := make([]PeerCommitment, i%4)
		for j := range peers {
			peers[j] = PeerCommitment{Digest: randBlind(t), Sender: randPoint(t)}
		}
		want := SecretAggStepTwo{Nonce: randScalar(t), NoncePoint: randPoint(t), Peers: peers}
		got, err := DecodeTagged[SecretAggStepTwo](want.MarshalBinary())
		require.NoError(t, err)
		assert.True(t, want.Nonce.Equal(got.Nonce))
		assert.True(t, want.NoncePoint.Equal(got.NoncePoint))
		require.Len(t, got.Peers, len(want.Peers))
		for j := range want.Peers {
			assert.Equal(t, want.Peers[j].Digest, got.Peers[j].Digest)
			assert.True(t, want.Peers[j].Sender.Equal(got.Peers[j].Sender))
		}
	}
}

func TestSecretAggStepTwoRejectsTruncatedPeerList(t *testing.T) {
	want := SecretAggStepTwo{
		Nonce:      randScalar(t),
		NoncePoint: randPoint(t),
		Peers:      []PeerCommitment{{Digest: randBlind(t), Sender: randPoint(t)}},
	}
	full := want.MarshalBinary()
	_, err := DecodeTagged[SecretAggStepTwo](full[:len(full)-1])
	require.Error(t, err)
}

func TestDecodeTaggedWrongTag(t *testing.T) {
	m := AggMessage1{R0: randPoint(t), R1: randPoint(t), Sender: randPoint(t)}
	_, err := DecodeTagged[AggMessage2](m.MarshalBinary())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected to find message")
}

func TestDecodeTaggedInputTooShort(t *testing.T) {
	_, err := DecodeTagged[AggMessage1](nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input too short")
}

func TestDecodeTaggedTruncatedBody(t *testing.T) {
	m := AggMessage1{R0: randPoint(t), R1: randPoint(t), Sender: randPoint(t)}
	full := m.MarshalBinary()
	_, err := DecodeTagged[AggMessage1](full[:len(full)-1])
	require.Error(t, err)
}

func TestEncodeDecodeBlobRoundTrip(t *testing.T) {
	m := PartialSignature{R: randPoint(t), S: randScalar(t)}
	blob := EncodeBlob(m)
	raw, err := DecodeBlob(blob)
	require.NoError(t, err)
	got, err := DecodeTagged[PartialSignature](raw)
	require.NoError(t, err)
	assert.True(t, m.R.Equal(got.R))
	assert.True(t, m.S.Equal(got.S))
}

func TestDecodeBlobRejectsBadCharacters(t *testing.T) {
	_, err := DecodeBlob("not-valid-base58-0OIl")
	require.Error(t, err)
}
