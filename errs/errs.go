// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package errs implements this wallet's error taxonomy: a small
// closed set of failure kinds, each carrying enough context (a field
// name, an expected/found pair, an underlying cause) for the CLI to
// print one diagnostic line. No error in this package is meant to be
// recovered from; every constructor produces a value the command layer
// simply prints and exits non-zero on.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind names one of this package's taxonomy entries.
type Kind string

const (
	KindWrongNetwork               Kind = "wrong_network"
	KindBadBase58                  Kind = "bad_base58"
	KindInputTooShort              Kind = "input_too_short"
	KindWrongTag                   Kind = "wrong_tag"
	KindInvalidPoint               Kind = "invalid_point"
	KindInvalidScalar              Kind = "invalid_scalar"
	KindDeserializationFailed      Kind = "deserialization_failed"
	KindMismatchMessages           Kind = "mismatch_messages"
	KindKeyPairIsNotInKeys         Kind = "keypair_is_not_in_keys"
	KindInvalidSignature           Kind = "invalid_signature"
	KindAirdropFailed              Kind = "airdrop_failed"
	KindRecentHashFailed           Kind = "recent_hash_failed"
	KindConfirmingTransactionFailed Kind = "confirming_transaction_failed"
	KindBalanceFailed              Kind = "balance_failed"
	KindSendTransactionFailed      Kind = "send_transaction_failed"
	KindWrongKeyPair               Kind = "wrong_keypair"
)

// Error is the single error type every package in this module returns.
type Error struct {
	Kind     Kind
	Field    string // set only for DeserializationFailed
	Expected string // set only for InputTooShort/WrongTag
	Found    string // set only for InputTooShort/WrongTag
	cause    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindWrongNetwork:
		return fmt.Sprintf("unrecognized network: %s, please select mainnet/testnet/devnet", e.cause)
	case KindBadBase58:
		return fmt.Sprintf("invalid base58: %s", e.cause)
	case KindInputTooShort:
		return fmt.Sprintf("input too short, expected: %s, found: %s", e.Expected, e.Found)
	case KindWrongTag:
		return fmt.Sprintf("expected to find message: %s, instead found: %s", e.Expected, e.Found)
	case KindInvalidPoint:
		return fmt.Sprintf("invalid Ed25519 point: %s", e.cause)
	case KindInvalidScalar:
		return fmt.Sprintf("invalid Ed25519 scalar: %s", e.cause)
	case KindDeserializationFailed:
		return fmt.Sprintf("failed deserializing %s: %s", e.Field, e.cause)
	case KindMismatchMessages:
		return fmt.Sprintf("there is a mismatch between the messages supplied for this session: %s", e.cause)
	case KindKeyPairIsNotInKeys:
		return "the provided keypair is not in the list of pubkeys"
	case KindInvalidSignature:
		return "the resulting signature doesn't match the transaction"
	case KindAirdropFailed:
		return fmt.Sprintf("failed asking for an airdrop: %s", e.cause)
	case KindRecentHashFailed:
		return fmt.Sprintf("failed receiving the latest blockhash: %s", e.cause)
	case KindConfirmingTransactionFailed:
		return fmt.Sprintf("failed confirming transaction: %s", e.cause)
	case KindBalanceFailed:
		return fmt.Sprintf("failed checking balance: %s", e.cause)
	case KindSendTransactionFailed:
		return fmt.Sprintf("failed sending transaction: %s", e.cause)
	case KindWrongKeyPair:
		return fmt.Sprintf("failed deserializing keypair: %s", e.cause)
	default:
		return fmt.Sprintf("unknown error kind %q: %s", e.Kind, e.cause)
	}
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// Cause exposes the wrapped cause via github.com/pkg/errors' convention.
func (e *Error) Cause() error { return e.cause }

func WrongNetwork(net string) *Error {
	return &Error{Kind: KindWrongNetwork, cause: errors.New(net)}
}

func BadBase58(err error) *Error {
	return &Error{Kind: KindBadBase58, cause: errors.WithStack(err)}
}

func InputTooShort(expected, found int) *Error {
	return &Error{Kind: KindInputTooShort, Expected: fmt.Sprint(expected), Found: fmt.Sprint(found)}
}

// Stringer is satisfied by internal/wire.Tag, kept abstract here so
// errs never needs to import the wire package.
type Stringer interface {
	String() string
}

func WrongTag(expected, found Stringer) *Error {
	return &Error{Kind: KindWrongTag, Expected: expected.String(), Found: found.String()}
}

func InvalidPoint(err error) *Error {
	return &Error{Kind: KindInvalidPoint, cause: errors.WithStack(err)}
}

func InvalidScalar(err error) *Error {
	return &Error{Kind: KindInvalidScalar, cause: errors.WithStack(err)}
}

func DeserializationFailed(field string, err error) *Error {
	return &Error{Kind: KindDeserializationFailed, Field: field, cause: err}
}

func MismatchMessages(reason string) *Error {
	return &Error{Kind: KindMismatchMessages, cause: errors.New(reason)}
}

func KeyPairIsNotInKeys() *Error {
	return &Error{Kind: KindKeyPairIsNotInKeys}
}

func InvalidSignature() *Error {
	return &Error{Kind: KindInvalidSignature}
}

func AirdropFailed(err error) *Error {
	return &Error{Kind: KindAirdropFailed, cause: errors.WithStack(err)}
}

func RecentHashFailed(err error) *Error {
	return &Error{Kind: KindRecentHashFailed, cause: errors.WithStack(err)}
}

func ConfirmingTransactionFailed(err error) *Error {
	return &Error{Kind: KindConfirmingTransactionFailed, cause: errors.WithStack(err)}
}

func BalanceFailed(err error) *Error {
	return &Error{Kind: KindBalanceFailed, cause: errors.WithStack(err)}
}

func SendTransactionFailed(err error) *Error {
	return &Error{Kind: KindSendTransactionFailed, cause: errors.WithStack(err)}
}

func WrongKeyPair(err error) *Error {
	return &Error{Kind: KindWrongKeyPair, cause: errors.WithStack(err)}
}
