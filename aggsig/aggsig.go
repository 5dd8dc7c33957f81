// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package aggsig implements the legacy three-round commit-reveal-sign
// aggregate signing variant this wallet keeps around for wire-tag
// compatibility with older co-signers. Unlike musig2's two-round
// protocol, each signer here commits to its nonce before revealing it,
// trading one extra round trip for not needing musig2's second nonce
// and binding-factor machinery. New integrations should prefer the
// musig2 package; this one exists only so a signer holding an old
// session transcript can still finish it.
package aggsig

import (
	"github.com/zengo-x/solana-tss/internal/keyagg"
	"github.com/zengo-x/solana-tss/musig2"
)

// Session is the same (key pair, co-signer keys, message) bundle
// musig2 sessions use; the legacy protocol keys on the same aggregate
// key construction, just with a different round structure.
type Session = musig2.Session

func aggregateKeyOf(s Session) (*keyagg.AggregateKey, error) {
	pub := s.KeyPair.PublicKey()
	return keyagg.Aggregate(s.Keys, &pub)
}
