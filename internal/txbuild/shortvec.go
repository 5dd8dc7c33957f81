// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package txbuild

// appendShortVecLen appends n encoded as a Solana "compact-u16"
// (shortvec): 7 bits per byte, continuation bit set on every byte but
// the last. Every instruction and account list in a Solana message is
// prefixed with one of these instead of a fixed-width length.
func appendShortVecLen(out []byte, n int) []byte {
	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			out = append(out, b|0x80)
		} else {
			out = append(out, b)
			return out
		}
	}
}

// readShortVecLen decodes a compact-u16 from the front of b, returning
// the value and the number of bytes consumed.
func readShortVecLen(b []byte) (n int, consumed int, ok bool) {
	shift := uint(0)
	for i := 0; i < len(b); i++ {
		n |= int(b[i]&0x7f) << shift
		if b[i]&0x80 == 0 {
			return n, i + 1, true
		}
		shift += 7
		if i == 2 {
			// compact-u16 never needs more than 3 bytes.
			return 0, 0, false
		}
	}
	return 0, 0, false
}
