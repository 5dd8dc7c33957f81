// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btcsuite/btcutil/base58"

	"github.com/zengo-x/solana-tss/internal/testfixtures"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestGenerateCommandPrintsAKeyPair(t *testing.T) {
	out := runCLI(t, "generate")
	assert.Contains(t, out, "secret key:")
	assert.Contains(t, out, "public key:")
}

func TestAggregateKeysCommandIsOrderIndependent(t *testing.T) {
	kps := testfixtures.KeyPairs(3)
	pubs := testfixtures.PublicKeys(kps)
	args := make([]string, len(pubs))
	for i, p := range pubs {
		b := p.Compressed()
		args[i] = base58.Encode(b[:])
	}

	out1 := runCLI(t, append([]string{"aggregate-keys"}, args...)...)
	reversed := []string{args[2], args[0], args[1]}
	out2 := runCLI(t, append([]string{"aggregate-keys"}, reversed...)...)

	assert.Equal(t, strings.TrimSpace(out1), strings.TrimSpace(out2))
}

func TestAggSendStepOnePrintsTwoBlobs(t *testing.T) {
	kp := testfixtures.KeyPair(1)
	seed := kp.Seed()
	out := runCLI(t, "agg-send-step-one", base58.Encode(seed[:]))
	assert.Contains(t, out, "Share this with every co-signer")
	assert.Contains(t, out, "Keep this secret")
}
