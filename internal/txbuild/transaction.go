// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package txbuild

import (
	"github.com/btcsuite/btcutil/base58"

	"github.com/zengo-x/solana-tss/errs"
	"github.com/zengo-x/solana-tss/internal/curve"
)

func decodeBase58Fixed(s string) []byte {
	return base58.Decode(s)
}

// Transaction is a single-signer Solana transaction: one ed25519
// signature slot and the message it signs over. Every transaction this
// wallet builds, whether signed by a lone keypair or by a MuSig2/AggSig
// aggregate, has exactly one required signer: the transfer's fee payer.
type Transaction struct {
	Signature [64]byte
	Message   Message
}

// Transfer builds an unsigned transaction moving lamports SOL from
// feePayer to `to`, with an optional memo instruction appended.
// feePayer is also the sole account expected to sign: for an
// aggregate session this is the MuSig2/AggSig aggregate public key.
func Transfer(feePayer, to [32]byte, lamports uint64, memo string, recentBlockhash [32]byte) *Transaction {
	var memoBytes []byte
	if memo != "" {
		memoBytes = []byte(memo)
	}
	return &Transaction{Message: buildMessage(feePayer, to, lamports, memoBytes, recentBlockhash)}
}

// SigningMessage returns the exact bytes every signer must produce an
// Ed25519 signature over: the serialized Message, with no signature
// prefix.
func (t *Transaction) SigningMessage() []byte {
	return t.Message.MarshalBinary()
}

// SetSignature installs sig as the transaction's sole signature.
func (t *Transaction) SetSignature(sig [64]byte) {
	t.Signature = sig
}

// Verify checks the installed signature against feePayer and the
// transaction's signing message, returning errs.InvalidSignature on
// mismatch so the CLI layer can surface a consistent diagnostic.
func (t *Transaction) Verify(feePayer curve.Point) error {
	var rBytes, sBytes [32]byte
	copy(rBytes[:], t.Signature[:32])
	copy(sBytes[:], t.Signature[32:])

	r, err := curve.PointFromCompressed(rBytes)
	if err != nil {
		return errs.InvalidSignature()
	}
	s, err := curve.ScalarFromCanonicalBytes(sBytes)
	if err != nil {
		return errs.InvalidSignature()
	}
	if !curve.Verify(r, s, feePayer, t.SigningMessage()) {
		return errs.InvalidSignature()
	}
	return nil
}

// MarshalBinary encodes the full wire transaction: a shortvec-prefixed
// signature list followed by the message bytes, exactly the format a
// Solana RPC node's sendTransaction expects (base64-encoded).
func (t *Transaction) MarshalBinary() []byte {
	out := appendShortVecLen(nil, 1)
	out = append(out, t.Signature[:]...)
	out = append(out, t.Message.MarshalBinary()...)
	return out
}
