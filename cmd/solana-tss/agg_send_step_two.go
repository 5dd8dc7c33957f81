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

	"github.com/zengo-x/solana-tss/internal/keyagg"
	"github.com/zengo-x/solana-tss/internal/txbuild"
	"github.com/zengo-x/solana-tss/internal/wire"
	"github.com/zengo-x/solana-tss/musig2"
)

func init() {
	cmd := &cobra.Command{
		Use:   "agg-send-step-two <secret> <amount> <to> <recent-block-hash>",
		Short: "Round 2 of an aggregate send: combine every signer's round-1 nonces and produce this signer's partial signature.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := parseKeyPair(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			to, err := parsePubKey(args[2])
			if err != nil {
				return err
			}
			recentHash, err := parseBlockhash(args[3])
			if err != nil {
				return err
			}
			memo, _ := cmd.Flags().GetString("memo")

			secretBlob, _ := cmd.Flags().GetString("secret-step-one")
			if secretBlob == "" {
				return fmt.Errorf("--secret-step-one is required")
			}
			secret, err := decodeBlob[wire.SecretAggStepOne](secretBlob)
			if err != nil {
				return err
			}

			keyStrs, _ := cmd.Flags().GetStringArray("key")
			keys, err := parsePubKeys(keyStrs)
			if err != nil {
				return err
			}

			msg1Strs, _ := cmd.Flags().GetStringArray("msg1")
			messages1 := make([]wire.AggMessage1, len(msg1Strs))
			for i, s := range msg1Strs {
				m, err := decodeBlob[wire.AggMessage1](s)
				if err != nil {
					return err
				}
				messages1[i] = m
			}

			agg, err := keyagg.Aggregate(keys, nil)
			if err != nil {
				return err
			}
			aggPub := agg.AggPubKey.Compressed()
			tx := txbuild.Transfer(aggPub, to.Compressed(), solToLamports(amount), memo, recentHash)

			session := musig2.Session{KeyPair: kp, Keys: keys, Message: tx.SigningMessage()}
			partial, err := musig2.Round2(session, secret, messages1)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Share this with every co-signer and whoever will broadcast the transaction:")
			fmt.Fprintln(out, wire.EncodeBlob(partial))
			return nil
		},
	}
	cmd.Flags().String("memo", "", "add a memo to the transaction")
	cmd.Flags().String("secret-step-one", "", "the secret blob printed by this signer's own agg-send-step-one")
	cmd.Flags().StringArray("key", nil, "a co-signer's pubkey; repeat once per signer, this signer included")
	cmd.Flags().StringArray("msg1", nil, "a round-1 message blob; repeat once per signer, this signer included")
	rootCmd.AddCommand(cmd)
}
