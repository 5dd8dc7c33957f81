// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zengo-x/solana-tss/internal/wire"
	"github.com/zengo-x/solana-tss/musig2"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "agg-send-step-one <secret>",
		Short: "Round 1 of an aggregate send: generate and commit to this signer's nonces.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := parseKeyPair(args[0])
			if err != nil {
				return err
			}

			result, err := musig2.Round1(rand.Reader, kp)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Share this with every co-signer:")
			fmt.Fprintln(out, wire.EncodeBlob(result.Public))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Keep this secret, and pass it to agg-send-step-two:")
			fmt.Fprintln(out, wire.EncodeBlob(result.Secret))
			return nil
		},
	})
}
