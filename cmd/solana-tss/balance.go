// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "balance <address>",
		Short: "Check the balance of an address.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parsePubKey(args[0]); err != nil {
				return err
			}

			ctx, cancel := withTimeout()
			defer cancel()

			balance, err := rpcClient().GetBalance(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The balance of %s is: %d lamports (%g SOL)\n", args[0], balance, lamportsToSOL(balance))
			return nil
		},
	})
}
