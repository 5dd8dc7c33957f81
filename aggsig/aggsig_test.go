// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package aggsig

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

func TestFullThreeRoundSession(t *testing.T) {
	message := []byte("transfer 7 SOL to carol")
	kp1, kp2, kp3 := genKeyPair(t), genKeyPair(t), genKeyPair(t)
	kps := []curve.KeyPair{kp1, kp2, kp3}
	keys := []curve.Point{kp1.PublicKey(), kp2.PublicKey(), kp3.PublicKey()}

	ones := make([]StepOneResult, len(kps))
	for i, kp := range kps {
		r, err := StepOne(rand.Reader, kp)
		require.NoError(t, err)
		ones[i] = r
	}
	commitments := make([]wire.PeerCommitment, len(kps))
	for i, o := range ones {
		commitments[i] = o.Commitment
	}

	twos := make([]StepTwoResult, len(kps))
	for i, kp := range kps {
		tw, err := StepTwo(kp, ones[i].Secret, commitments)
		require.NoError(t, err)
		twos[i] = tw
	}
	reveals := make([]wire.AggMessage2, len(kps))
	for i, tw := range twos {
		reveals[i] = tw.Reveal
	}

	agg, err := keyagg.Aggregate(keys, nil)
	require.NoError(t, err)

	partials := make([]wire.PartialSignature, len(agg.Keys))
	for i, kp := range kps {
		sess := Session{KeyPair: kp, Keys: keys, Message: message}
		p, err := StepThree(sess, twos[i].Secret, reveals)
		require.NoError(t, err)
		idx := indexOf(t, agg.Keys, kp.PublicKey())
		partials[idx] = p
	}

	R, s, err := Aggregate(agg.Keys, partials)
	require.NoError(t, err)

	assert.True(t, Verify(agg.AggPubKey, R, s, message))
	assert.False(t, Verify(agg.AggPubKey, R, s, []byte("transfer 8 SOL to carol")))
}

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

func TestStepThreeRejectsTamperedReveal(t *testing.T) {
	message := []byte("hello")
	kp1, kp2 := genKeyPair(t), genKeyPair(t)
	keys := []curve.Point{kp1.PublicKey(), kp2.PublicKey()}

	o1, err := StepOne(rand.Reader, kp1)
	require.NoError(t, err)
	o2, err := StepOne(rand.Reader, kp2)
	require.NoError(t, err)
	commitments := []wire.PeerCommitment{o1.Commitment, o2.Commitment}

	t1, err := StepTwo(kp1, o1.Secret, commitments)
	require.NoError(t, err)
	t2, err := StepTwo(kp2, o2.Secret, commitments)
	require.NoError(t, err)

	other, err := StepOne(rand.Reader, kp2)
	require.NoError(t, err)
	tampered, err := StepTwo(kp2, other.Secret, commitments)
	require.NoError(t, err)

	sess := Session{KeyPair: kp1, Keys: keys, Message: message}
	_, err = StepThree(sess, t1.Secret, []wire.AggMessage2{t1.Reveal, tampered.Reveal})
	assert.Error(t, err)

	_ = t2
}

func TestStepTwoRejectsMissingOwnCommitment(t *testing.T) {
	kp1, kp2 := genKeyPair(t), genKeyPair(t)

	o2, err := StepOne(rand.Reader, kp2)
	require.NoError(t, err)

	o1, err := StepOne(rand.Reader, kp1)
	require.NoError(t, err)
	_ = o1

	_, err = StepTwo(kp1, o1.Secret, []wire.PeerCommitment{o2.Commitment})
	assert.Error(t, err)
}
