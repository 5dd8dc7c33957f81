// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/spf13/cobra"

	"github.com/zengo-x/solana-tss/internal/keyagg"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "aggregate-keys <pubkey>...",
		Short: "Compute the MuSig2 aggregate public key for a set of pubkeys, without signing anything.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parsePubKeys(args)
			if err != nil {
				return err
			}
			seen := make(map[[32]byte]bool, len(keys))
			for _, k := range keys {
				kb := k.Compressed()
				if seen[kb] {
					fmt.Fprintln(cmd.ErrOrStderr(), "warning: the key list contains a duplicate pubkey")
					break
				}
				seen[kb] = true
			}
			agg, err := keyagg.Aggregate(keys, nil)
			if err != nil {
				return err
			}
			pub := agg.AggPubKey.Compressed()
			fmt.Fprintln(cmd.OutOrStdout(), base58.Encode(pub[:]))
			return nil
		},
	})
}
