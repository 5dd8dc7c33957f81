// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package txbuild

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zengo-x/solana-tss/internal/curve"
)

func TestTransferWithoutMemoHasTwoAccountsAndOneInstruction(t *testing.T) {
	var feePayer, to, blockhash [32]byte
	feePayer[0], to[0], blockhash[0] = 1, 2, 3

	tx := Transfer(feePayer, to, 1_000_000, "", blockhash)
	assert.Len(t, tx.Message.AccountKeys, 3) // feePayer, to, system program
	assert.Len(t, tx.Message.Instructions, 1)
	assert.Equal(t, byte(1), tx.Message.NumRequiredSignatures)
}

func TestTransferWithMemoAddsMemoInstruction(t *testing.T) {
	var feePayer, to, blockhash [32]byte
	feePayer[0], to[0], blockhash[0] = 1, 2, 3

	tx := Transfer(feePayer, to, 1_000_000, "hello solana", blockhash)
	assert.Len(t, tx.Message.AccountKeys, 4) // feePayer, to, system program, memo program
	assert.Len(t, tx.Message.Instructions, 2)
	assert.Equal(t, []byte("hello solana"), tx.Message.Instructions[1].Data)
}

func TestSigningMessageIsDeterministic(t *testing.T) {
	var feePayer, to, blockhash [32]byte
	feePayer[0], to[0], blockhash[0] = 1, 2, 3

	tx1 := Transfer(feePayer, to, 5_000, "memo", blockhash)
	tx2 := Transfer(feePayer, to, 5_000, "memo", blockhash)
	assert.Equal(t, tx1.SigningMessage(), tx2.SigningMessage())
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	kp, err := curve.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	expanded := kp.Expanded()

	var to, blockhash [32]byte
	to[0], blockhash[0] = 2, 3

	tx := Transfer(kp.PublicKey().Compressed(), to, 42, "", blockhash)
	r, s := curve.Sign(expanded, tx.SigningMessage())

	var sig [64]byte
	rb, sb := r.Compressed(), s.Bytes()
	copy(sig[:32], rb[:])
	copy(sig[32:], sb[:])
	tx.SetSignature(sig)

	require.NoError(t, tx.Verify(kp.PublicKey()))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	kp, err := curve.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	expanded := kp.Expanded()

	var to, other, blockhash [32]byte
	to[0], other[0], blockhash[0] = 2, 9, 3

	tx := Transfer(kp.PublicKey().Compressed(), to, 42, "", blockhash)
	r, s := curve.Sign(expanded, tx.SigningMessage())
	var sig [64]byte
	rb, sb := r.Compressed(), s.Bytes()
	copy(sig[:32], rb[:])
	copy(sig[32:], sb[:])

	tampered := Transfer(kp.PublicKey().Compressed(), other, 42, "", blockhash)
	tampered.SetSignature(sig)

	assert.Error(t, tampered.Verify(kp.PublicKey()))
}
