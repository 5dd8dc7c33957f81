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
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "airdrop <to> <amount>",
		Short: "Request an airdrop from a faucet.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parsePubKey(args[0]); err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			ctx, cancel := withTimeout()
			defer cancel()
			client := rpcClient()

			sig, err := client.RequestAirdrop(ctx, args[0], solToLamports(amount))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Airdrop transaction ID: %s\n", sig)

			recentHash, err := client.GetLatestBlockhash(ctx)
			if err != nil {
				return err
			}
			if err := client.ConfirmTransaction(ctx, sig); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Airdrop confirmed against blockhash %s\n", recentHash)
			return nil
		},
	})
}
