// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zengo-x/solana-tss/errs"
	"github.com/zengo-x/solana-tss/internal/keyagg"
	"github.com/zengo-x/solana-tss/internal/txbuild"
	"github.com/zengo-x/solana-tss/internal/wire"
	"github.com/zengo-x/solana-tss/musig2"
)

func init() {
	cmd := &cobra.Command{
		Use:   "aggregate-signatures-and-broadcast <amount> <to> <recent-block-hash>",
		Short: "Combine every signer's partial signature into a full signature and broadcast the transaction.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			to, err := parsePubKey(args[1])
			if err != nil {
				return err
			}
			recentHash, err := parseBlockhash(args[2])
			if err != nil {
				return err
			}
			memo, _ := cmd.Flags().GetString("memo")

			keyStrs, _ := cmd.Flags().GetStringArray("key")
			keys, err := parsePubKeys(keyStrs)
			if err != nil {
				return err
			}

			msg2Strs, _ := cmd.Flags().GetStringArray("msg2")
			partials := make([]wire.PartialSignature, len(msg2Strs))
			for i, s := range msg2Strs {
				m, err := decodeBlob[wire.PartialSignature](s)
				if err != nil {
					return err
				}
				partials[i] = m
			}

			agg, err := keyagg.Aggregate(keys, nil)
			if err != nil {
				return err
			}

			R, s, err := musig2.Aggregate(agg.Keys, partials)
			if err != nil {
				return err
			}
			if !musig2.Verify(agg.AggPubKey, R, s, buildSigningMessage(agg.AggPubKey.Compressed(), to.Compressed(), amount, memo, recentHash)) {
				return errs.InvalidSignature()
			}

			aggPub := agg.AggPubKey.Compressed()
			tx := txbuild.Transfer(aggPub, to.Compressed(), solToLamports(amount), memo, recentHash)
			var sig [64]byte
			rb, sb := R.Compressed(), s.Bytes()
			copy(sig[:32], rb[:])
			copy(sig[32:], sb[:])
			tx.SetSignature(sig)

			if err := tx.Verify(agg.AggPubKey); err != nil {
				return err
			}

			ctx, cancel := withTimeout()
			defer cancel()
			client := rpcClient()

			txSig, err := client.SendTransaction(ctx, tx.MarshalBinary())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction ID: %s\n", txSig)
			return client.ConfirmTransaction(ctx, txSig)
		},
	}
	cmd.Flags().String("memo", "", "add a memo to the transaction")
	cmd.Flags().StringArray("key", nil, "a co-signer's pubkey; repeat once per signer")
	cmd.Flags().StringArray("msg2", nil, "a round-2 partial-signature blob; repeat once per signer")
	rootCmd.AddCommand(cmd)
}

func buildSigningMessage(feePayer, to [32]byte, amountSOL float64, memo string, recentBlockhash [32]byte) []byte {
	return txbuild.Transfer(feePayer, to, solToLamports(amountSOL), memo, recentBlockhash).SigningMessage()
}
