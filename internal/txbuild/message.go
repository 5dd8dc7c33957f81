// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package txbuild constructs the single-fee-payer Solana transfer
// transaction this wallet signs, the standalone-signer path and the
// aggregate-signer path alike: a System Program transfer instruction,
// an optional SPL Memo instruction, wrapped in the legacy (pre-versioned)
// Solana message wire format. No Solana SDK exists anywhere in the
// reference pack, so this package hand-rolls the minimal slice of the
// wire format a one-fee-payer, at-most-two-instruction transaction
// needs; see DESIGN.md for why that is a deliberate stdlib fallback
// rather than a dependency gap.
package txbuild

// SystemProgramID is the all-zero public key Solana reserves for the
// native System Program.
var SystemProgramID = [32]byte{}

// MemoProgramID is the well-known SPL Memo v2 program address.
var MemoProgramID = mustBase58Pubkey("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

func mustBase58Pubkey(s string) [32]byte {
	b := decodeBase58Fixed(s)
	var out [32]byte
	copy(out[:], b)
	return out
}

// compiledInstruction is one instruction within a Message, with its
// program and account references already resolved to indices into the
// message's account_keys list.
type compiledInstruction struct {
	ProgramIDIndex byte
	AccountIndexes []byte
	Data           []byte
}

func (ci compiledInstruction) marshal() []byte {
	out := []byte{ci.ProgramIDIndex}
	out = appendShortVecLen(out, len(ci.AccountIndexes))
	out = append(out, ci.AccountIndexes...)
	out = appendShortVecLen(out, len(ci.Data))
	out = append(out, ci.Data...)
	return out
}

// Message is the legacy Solana message format: a header describing how
// many of the leading account_keys are signers/writable, the resolved
// account list, a recent blockhash, and the compiled instructions.
type Message struct {
	NumRequiredSignatures      byte
	NumReadonlySignedAccounts  byte
	NumReadonlyUnsignedAccounts byte
	AccountKeys                [][32]byte
	RecentBlockhash             [32]byte
	Instructions                []compiledInstruction
}

// MarshalBinary encodes the message in Solana's wire format, which
// doubles as the exact byte string every signer signs.
func (m Message) MarshalBinary() []byte {
	out := []byte{m.NumRequiredSignatures, m.NumReadonlySignedAccounts, m.NumReadonlyUnsignedAccounts}
	out = appendShortVecLen(out, len(m.AccountKeys))
	for _, k := range m.AccountKeys {
		out = append(out, k[:]...)
	}
	out = append(out, m.RecentBlockhash[:]...)
	out = appendShortVecLen(out, len(m.Instructions))
	for _, ix := range m.Instructions {
		out = append(out, ix.marshal()...)
	}
	return out
}

// accountIndex finds key's position within keys, appending it if absent.
func accountIndex(keys *[][32]byte, key [32]byte) byte {
	for i, k := range *keys {
		if k == key {
			return byte(i)
		}
	}
	*keys = append(*keys, key)
	return byte(len(*keys) - 1)
}

// buildMessage lays out accounts in Solana's required order: the fee
// payer first (signer, writable), then every other writable account
// touched by an instruction, then every readonly account (programs
// last), matching solana_sdk::message::Message::new's behavior for the
// simple single-signer case this wallet only ever needs.
func buildMessage(feePayer [32]byte, to [32]byte, lamports uint64, memo []byte, recentBlockhash [32]byte) Message {
	keys := [][32]byte{feePayer, to}
	transferIx := compiledInstruction{
		ProgramIDIndex: accountIndex(&keys, SystemProgramID),
		AccountIndexes: []byte{0, 1},
		Data:           systemTransferData(lamports),
	}
	instructions := []compiledInstruction{transferIx}

	numReadonlyUnsigned := byte(1) // system program
	if memo != nil {
		memoIx := compiledInstruction{
			ProgramIDIndex: accountIndex(&keys, MemoProgramID),
			AccountIndexes: nil,
			Data:           memo,
		}
		instructions = append(instructions, memoIx)
		numReadonlyUnsigned++
	}

	return Message{
		NumRequiredSignatures:       1,
		NumReadonlySignedAccounts:   0,
		NumReadonlyUnsignedAccounts: numReadonlyUnsigned,
		AccountKeys:                 keys,
		RecentBlockhash:             recentBlockhash,
		Instructions:                instructions,
	}
}

// systemTransferData encodes the System Program's Transfer instruction:
// a 4-byte little-endian variant tag (2 = Transfer) followed by an
// 8-byte little-endian lamport amount.
func systemTransferData(lamports uint64) []byte {
	data := make([]byte, 12)
	data[0] = 2
	for i := 0; i < 8; i++ {
		data[4+i] = byte(lamports >> (8 * i))
	}
	return data
}
