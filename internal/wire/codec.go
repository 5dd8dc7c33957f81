// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package wire

import (
	"errors"

	"github.com/btcsuite/btcutil/base58"

	"github.com/zengo-x/solana-tss/errs"
	"github.com/zengo-x/solana-tss/internal/curve"
)

// EncodeBlob tags and base58-encodes m, producing the copy-pasteable
// string every CLI subcommand prints for the next party/step to consume.
func EncodeBlob(m Message) string {
	return base58.Encode(m.MarshalBinary())
}

var errInvalidBase58 = errors.New("input contains characters outside the base58 alphabet")

// DecodeBlob reverses EncodeBlob's base58 framing without interpreting
// the tag; callers then pass the tagged bytes to DecodeTagged.
func DecodeBlob(s string) ([]byte, error) {
	b := base58.Decode(s)
	if len(b) == 0 && s != "" {
		return nil, errs.BadBase58(errInvalidBase58)
	}
	return b, nil
}

// DecodeTagged decodes tagged bytes b (as produced by Message.MarshalBinary)
// into the concrete message type T, verifying the leading tag byte matches
// the tag T's own zero value reports before attempting to parse the body.
// Any length or field-level deserialization failure is wrapped in the errs
// taxonomy.
func DecodeTagged[T Message](b []byte) (T, error) {
	var zero T
	want := zero.Tag()

	if len(b) < 1 {
		return zero, errs.InputTooShort(1, len(b))
	}
	found := Tag(b[0])
	if found != want {
		return zero, errs.WrongTag(want, found)
	}
	body := b[1:]

	switch want {
	case TagAggMessage1:
		m, err := unmarshalAggMessage1(body)
		if err != nil {
			return zero, wrapDeserialize(err)
		}
		return any(m).(T), nil
	case TagAggMessage2:
		m, err := unmarshalAggMessage2(body)
		if err != nil {
			return zero, wrapDeserialize(err)
		}
		return any(m).(T), nil
	case TagPartialSignature:
		m, err := unmarshalPartialSignature(body)
		if err != nil {
			return zero, wrapDeserialize(err)
		}
		return any(m).(T), nil
	case TagSecretAggStepOne:
		m, err := unmarshalSecretAggStepOne(body)
		if err != nil {
			return zero, wrapDeserialize(err)
		}
		return any(m).(T), nil
	case TagSecretAggStepTwo:
		m, err := unmarshalSecretAggStepTwo(body)
		if err != nil {
			return zero, wrapDeserialize(err)
		}
		return any(m).(T), nil
	default:
		return zero, errs.WrongTag(want, found)
	}
}

func wrapDeserialize(err error) error {
	var le *LengthError
	if errors.As(err, &le) {
		return errs.InputTooShort(le.Expected, le.Found)
	}
	var de *DeserializationError
	if errors.As(err, &de) {
		if errors.Is(de.Cause, curve.ErrScalarNotCanonical) {
			return errs.InvalidScalar(de)
		}
		return errs.InvalidPoint(de)
	}
	return errs.DeserializationFailed("unknown", err)
}
