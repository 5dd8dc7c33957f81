// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"fmt"

	"github.com/zengo-x/solana-tss/internal/solanarpc"
)

// netValue implements pflag.Value so --net gets the same validate-on-parse
// behavior cobra gives any other flag type, instead of a free-form string
// only checked deep inside a command's RunE.
type netValue struct {
	value string
}

func newNetValue(def string) *netValue {
	return &netValue{value: def}
}

func (n *netValue) String() string { return n.value }

func (n *netValue) Set(s string) error {
	if _, err := solanarpc.ClusterURL(s); err != nil {
		return err
	}
	n.value = s
	return nil
}

func (n *netValue) Type() string { return "network" }

func (n *netValue) clusterURL() string {
	url, err := solanarpc.ClusterURL(n.value)
	if err != nil {
		// newNetValue's default must always be a valid network name.
		panic(fmt.Sprintf("solana-tss: invalid default network %q: %s", n.value, err))
	}
	return url
}
