// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Command solana-tss is a proof-of-concept CLI for managing a Solana
// wallet controlled by an aggregate of Ed25519 keys instead of a
// single one, using the two-round MuSig2-style protocol implemented
// in the musig2 package. The legacy three-round protocol in aggsig is
// not exposed by any subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zengo-x/solana-tss/internal/logging"
)

var net = newNetValue("testnet")

var rootCmd = &cobra.Command{
	Use:   "solana-tss",
	Short: "A PoC for managing a Solana TSS wallet.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Var(net, "net", "network to use: mainnet, testnet or devnet")
	rootCmd.PersistentFlags().String("log-level", "", "ipfs/go-log level for the solana-tss subsystem (debug, info, warn, error)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			return nil
		}
		return logging.SetLevel(level)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
