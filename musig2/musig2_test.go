// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package musig2

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zengo-x/solana-tss/internal/curve"
	"github.com/zengo-x/solana-tss/internal/keyagg"
	"github.com/zengo-x/solana-tss/internal/wire"
)

func genKeyPair(t *testing.T) curve.KeyPair {
	t.Helper()
	kp, err := curve.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	return kp
}

func runFullSession(t *testing.T, n int) {
	t.Helper()
	message := []byte("transfer 3 SOL to alice")

	kps := make([]curve.KeyPair, n)
	keys := make([]curve.Point, n)
	for i := range kps {
		kps[i] = genKeyPair(t)
		keys[i] = kps[i].PublicKey()
	}

	round1s := make([]Round1Result, n)
	for i, kp := range kps {
		r1, err := Round1(rand.Reader, kp)
		require.NoError(t, err)
		round1s[i] = r1
	}

	messages1 := make([]wire.AggMessage1, n)
	for i, r1 := range round1s {
		messages1[i] = r1.Public
	}

	agg, err := keyagg.Aggregate(keys, nil)
	require.NoError(t, err)

	partials := make([]wire.PartialSignature, len(agg.Keys))
	for i, kp := range kps {
		sess := Session{KeyPair: kp, Keys: keys, Message: message}
		p, err := Round2(sess, round1s[i].Secret, messages1)
		require.NoError(t, err)
		idx := indexOf(t, agg.Keys, kp.PublicKey())
		partials[idx] = p
	}

	R, s, err := Aggregate(agg.Keys, partials)
	require.NoError(t, err)

	assert.True(t, Verify(agg.AggPubKey, R, s, message))
	assert.False(t, Verify(agg.AggPubKey, R, s, []byte("transfer 4 SOL to alice")))
}

// indexOf returns key's position within keys, mirroring how the CLI
// layer would line up a collected partial signature with the sorted
// aggregate key list before calling Aggregate.
func indexOf(t *testing.T, keys []curve.Point, key curve.Point) int {
	t.Helper()
	for i, k := range keys {
		if k.Equal(key) {
			return i
		}
	}
	t.Fatalf("key not found in aggregate key list")
	return -1
}

func TestFullSessionTwoSigners(t *testing.T) {
	runFullSession(t, 2)
}

func TestFullSessionThreeSigners(t *testing.T) {
	runFullSession(t, 3)
}

func TestRound2RejectsMismatchedSecret(t *testing.T) {
	message := []byte("hello")
	kp1, kp2 := genKeyPair(t), genKeyPair(t)
	keys := []curve.Point{kp1.PublicKey(), kp2.PublicKey()}

	r1a, err := Round1(rand.Reader, kp1)
	require.NoError(t, err)
	r1b, err := Round1(rand.Reader, kp2)
	require.NoError(t, err)

	other, err := Round1(rand.Reader, kp1)
	require.NoError(t, err)

	sess := Session{KeyPair: kp1, Keys: keys, Message: message}
	_, err = Round2(sess, other.Secret, []wire.AggMessage1{r1a.Public, r1b.Public})
	assert.Error(t, err)
}

func TestRound2RejectsWrongMessageCount(t *testing.T) {
	message := []byte("hello")
	kp1, kp2 := genKeyPair(t), genKeyPair(t)
	keys := []curve.Point{kp1.PublicKey(), kp2.PublicKey()}

	r1a, err := Round1(rand.Reader, kp1)
	require.NoError(t, err)

	sess := Session{KeyPair: kp1, Keys: keys, Message: message}
	_, err = Round2(sess, r1a.Secret, []wire.AggMessage1{r1a.Public})
	assert.Error(t, err)
}

func TestAggregateRejectsDisagreeingNonce(t *testing.T) {
	message := []byte("hello")
	kp1, kp2 := genKeyPair(t), genKeyPair(t)
	keys := []curve.Point{kp1.PublicKey(), kp2.PublicKey()}

	r1a, err := Round1(rand.Reader, kp1)
	require.NoError(t, err)
	r1b, err := Round1(rand.Reader, kp2)
	require.NoError(t, err)
	messages1 := []wire.AggMessage1{r1a.Public, r1b.Public}

	sess1 := Session{KeyPair: kp1, Keys: keys, Message: message}
	p1, err := Round2(sess1, r1a.Secret, messages1)
	require.NoError(t, err)

	sess2 := Session{KeyPair: kp2, Keys: keys, Message: message}
	p2, err := Round2(sess2, r1b.Secret, messages1)
	require.NoError(t, err)
	p2.R = p1.R.Add(p1.R) // corrupt

	_, _, err = Aggregate(keys, []wire.PartialSignature{p1, p2})
	assert.Error(t, err)
}
