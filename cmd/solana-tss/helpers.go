// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcutil/base58"

	"github.com/zengo-x/solana-tss/errs"
	"github.com/zengo-x/solana-tss/internal/curve"
	"github.com/zengo-x/solana-tss/internal/solanarpc"
	"github.com/zengo-x/solana-tss/internal/wire"
)

func parsePubKey(s string) (curve.Point, error) {
	b := base58.Decode(s)
	if len(b) != 32 {
		return curve.Point{}, errs.DeserializationFailed("pubkey", fmt.Errorf("expected 32 bytes, found %d", len(b)))
	}
	var arr [32]byte
	copy(arr[:], b)
	p, err := curve.PointFromCompressed(arr)
	if err != nil {
		return curve.Point{}, errs.InvalidPoint(err)
	}
	return p, nil
}

func parsePubKeys(ss []string) ([]curve.Point, error) {
	out := make([]curve.Point, len(ss))
	for i, s := range ss {
		p, err := parsePubKey(s)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func parseKeyPair(s string) (curve.KeyPair, error) {
	b := base58.Decode(s)
	if len(b) != 32 {
		return curve.KeyPair{}, errs.WrongKeyPair(fmt.Errorf("expected a 32-byte seed, found %d bytes", len(b)))
	}
	var seed [32]byte
	copy(seed[:], b)
	return curve.KeyPairFromSeed(seed), nil
}

func parseBlockhash(s string) ([32]byte, error) {
	b := base58.Decode(s)
	if len(b) != 32 {
		return [32]byte{}, errs.DeserializationFailed("recent_blockhash", fmt.Errorf("expected 32 bytes, found %d", len(b)))
	}
	var arr [32]byte
	copy(arr[:], b)
	return arr, nil
}

func decodeBlob[T wire.Message](s string) (T, error) {
	var zero T
	raw, err := wire.DecodeBlob(s)
	if err != nil {
		return zero, err
	}
	return wire.DecodeTagged[T](raw)
}

const lamportsPerSOL = 1_000_000_000

func solToLamports(sol float64) uint64 {
	return uint64(sol * lamportsPerSOL)
}

func lamportsToSOL(lamports uint64) float64 {
	return float64(lamports) / lamportsPerSOL
}

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

func rpcClient() *solanarpc.Client {
	return solanarpc.New(net.clusterURL())
}
