// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package wire implements the tagged binary framing used for every
// message exchanged between co-signers out of band
// (over the CLI, copy-pasted as base58 text) starts with a one-byte
// tag identifying its shape, so a party who pastes the wrong blob into
// the wrong command gets a clear WrongTag error instead of a panic.
package wire

import "fmt"

// Tag identifies the shape of the bytes that follow it on the wire.
type Tag byte

const (
	// TagAggMessage1 frames the round-1 broadcast of a MuSig2 session:
	// a signer's two public nonce commitments and its own key.
	TagAggMessage1 Tag = 0
	// TagAggMessage2 frames the legacy three-round AggSig variant's
	// round-2 nonce reveal (R, blind, sender). MuSig2 has no reveal
	// round and never produces this; the tag number stays reserved for
	// implementations that do carry the legacy variant.
	TagAggMessage2 Tag = 1
	// TagPartialSignature frames a bare (R, s) partial signature, the
	// final per-signer output of both the MuSig2 and the legacy AggSig
	// protocol.
	TagPartialSignature Tag = 2
	// TagSecretAggStepOne frames MuSig2's round-1 private continuation:
	// the two nonce scalars and the public nonces they commit to.
	TagSecretAggStepOne Tag = 3
	// TagSecretAggStepTwo frames the legacy AggSig variant's round-2
	// private carry: this signer's own secret nonce, plus every peer's
	// round-1 commitment received so far, so round 3 can verify each
	// reveal against it. MuSig2 never produces this; the tag number
	// stays reserved for the same reason as tag 1.
	TagSecretAggStepTwo Tag = 4
)

func (t Tag) String() string {
	switch t {
	case TagAggMessage1:
		return "AggMessage1"
	case TagAggMessage2:
		return "AggMessage2"
	case TagPartialSignature:
		return "PartialSignature"
	case TagSecretAggStepOne:
		return "SecretAggStepOne"
	case TagSecretAggStepTwo:
		return "SecretAggStepTwo"
	default:
		return fmt.Sprintf("Tag(%d)", byte(t))
	}
}

// Message is implemented by every wire type; Tag identifies it and
// MarshalBinary produces the tagged byte encoding (tag byte first).
type Message interface {
	Tag() Tag
	MarshalBinary() []byte
}
