// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package curve

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	for i := 0; i < 255; i++ {
		s, err := RandomScalar(rand.Reader)
		require.NoError(t, err)

		b := s.Bytes()
		got, err := ScalarFromCanonicalBytes(b)
		require.NoError(t, err)
		assert.True(t, s.Equal(got))
	}
}

func TestScalarFromCanonicalBytesRejectsOutOfRange(t *testing.T) {
	var b [32]byte
	for i := range b {
		b[i] = 0xff
	}
	_, err := ScalarFromCanonicalBytes(b)
	assert.ErrorIs(t, err, ErrScalarNotCanonical)
}

func TestPointCompressedRoundTrip(t *testing.T) {
	for i := 0; i < 255; i++ {
		s, err := RandomScalar(rand.Reader)
		require.NoError(t, err)
		p := BasePointMul(s)

		b := p.Compressed()
		got, err := PointFromCompressed(b)
		require.NoError(t, err)
		assert.True(t, p.Equal(got))
	}
}

func TestPointFromCompressedRejectsGarbage(t *testing.T) {
	var b [32]byte
	for i := range b {
		b[i] = 0x02
	}
	_, err := PointFromCompressed(b)
	assert.Error(t, err)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	expanded := kp.Expanded()

	message := []byte("transfer 1 SOL to bob")
	r, s := Sign(expanded, message)

	assert.True(t, Verify(r, s, expanded.Pub, message))
	assert.False(t, Verify(r, s, expanded.Pub, []byte("transfer 2 SOL to bob")))
}

func TestLessIsAntisymmetricTotalOrder(t *testing.T) {
	a, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	b, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	pa, pb := a.PublicKey(), b.PublicKey()
	if Less(pa, pb) {
		assert.False(t, Less(pb, pa))
	} else {
		assert.True(t, pa.Equal(pb) || Less(pb, pa))
	}
}
