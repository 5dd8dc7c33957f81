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

	"github.com/zengo-x/solana-tss/internal/curve"
	"github.com/zengo-x/solana-tss/internal/txbuild"
)

func init() {
	cmd := &cobra.Command{
		Use:   "send-single <secret> <amount> <to>",
		Short: "Send a transaction using a single private key.",
		Args:  cobra.ExactArgs(3),
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
			memo, _ := cmd.Flags().GetString("memo")

			ctx, cancel := withTimeout()
			defer cancel()
			client := rpcClient()

			recentHashStr, err := client.GetLatestBlockhash(ctx)
			if err != nil {
				return err
			}
			recentHash, err := parseBlockhash(recentHashStr)
			if err != nil {
				return err
			}

			tx := txbuild.Transfer(kp.PublicKey().Compressed(), to.Compressed(), solToLamports(amount), memo, recentHash)

			expanded := kp.Expanded()
			r, s := curve.Sign(expanded, tx.SigningMessage())
			var sig [64]byte
			rb, sb := r.Compressed(), s.Bytes()
			copy(sig[:32], rb[:])
			copy(sig[32:], sb[:])
			tx.SetSignature(sig)

			txSig, err := client.SendTransaction(ctx, tx.MarshalBinary())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction ID: %s\n", txSig)
			return client.ConfirmTransaction(ctx, txSig)
		},
	}
	cmd.Flags().String("memo", "", "add a memo to the transaction")
	rootCmd.AddCommand(cmd)
}
