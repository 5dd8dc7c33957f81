// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/spf13/cobra"

	"github.com/zengo-x/solana-tss/internal/curve"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Generate a pair of keys.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := curve.GenerateKeyPair(rand.Reader)
			if err != nil {
				return err
			}
			seed := kp.Seed()
			pub := kp.PublicKey().Compressed()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "secret key: %s\n", base58.Encode(seed[:]))
			fmt.Fprintf(out, "public key: %s\n", base58.Encode(pub[:]))
			return nil
		},
	})
}
