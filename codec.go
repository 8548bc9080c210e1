// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package statetree

import (
	"encoding/binary"
	"unicode/utf8"
)

// leb128SizeEstimate is the assumed byte size of a LEB128-encoded u64
// when pre-sizing buffers. 3 bytes fits values up to 2**(3*7) = 2_097_152
// (exclusive); larger values just cost a reallocation, not a bug.
const leb128SizeEstimate = 3

// The package-private read helpers (readUvarint, readKey, readHash,
// readString, decodeChildRef, decodeTags) take a *[]byte and advance
// it past whatever they consumed, mirroring the `&mut &[u8]` idiom a
// borrowed cursor uses in languages with slice views. The exported
// Decode* functions take a plain []byte instead.

// reserve grows *dst's capacity to fit at least additional more bytes
// without reallocating again, the way a caller-supplied growable
// buffer is pre-sized before a burst of appends. It never truncates
// or otherwise changes *dst's contents or length.
func reserve(dst *[]byte, additional int) {
	if cap(*dst)-len(*dst) >= additional {
		return
	}
	grown := make([]byte, len(*dst), len(*dst)+additional)
	copy(grown, *dst)
	*dst = grown
}

// putUvarint appends v to dst in unsigned LEB128 form. Writing to a
// growable buffer never fails.
func putUvarint(dst *[]byte, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	*dst = append(*dst, tmp[:n]...)
}

// readUvarint consumes an unsigned LEB128 integer from the front of
// *buf. It fails with InvalidLEB128 if the cursor overflows a u64, or
// UnexpectedEOF if it runs out of bytes before a terminating byte.
func readUvarint(buf *[]byte, ctx ErrorContext) (uint64, error) {
	v, n := binary.Uvarint(*buf)
	if n == 0 {
		return 0, errUnexpectedEOF(ctx)
	}
	if n < 0 {
		return 0, errLEB128(ctx, errOverflow)
	}
	*buf = (*buf)[n:]
	return v, nil
}

var errOverflow = overflowError{}

type overflowError struct{}

func (overflowError) Error() string { return "varint overflows 64 bits" }

// writeKey appends the big-endian, zero-padded KeySize-byte encoding
// of k to dst.
func writeKey(dst *[]byte, k Key) {
	b := k.inner.Bytes32()
	*dst = append(*dst, b[:]...)
}

// readKey consumes exactly KeySize bytes from the front of *buf.
func readKey(buf *[]byte) (Key, error) {
	if len(*buf) < KeySize {
		return Key{}, errUnexpectedEOF("")
	}
	var k Key
	k.inner.SetBytes((*buf)[:KeySize])
	*buf = (*buf)[KeySize:]
	return k, nil
}

// writeHash appends the HashSize-byte encoding of h to dst.
func writeHash(dst *[]byte, h ValueHash) {
	*dst = append(*dst, h[:]...)
}

// readHash consumes exactly HashSize bytes from the front of *buf.
func readHash(buf *[]byte, ctx ErrorContext) (ValueHash, error) {
	if len(*buf) < HashSize {
		return ValueHash{}, errUnexpectedEOF(ctx)
	}
	var h ValueHash
	copy(h[:], (*buf)[:HashSize])
	*buf = (*buf)[HashSize:]
	return h, nil
}

// writeString appends s as a LEB128 length prefix followed by its
// UTF-8 bytes.
func writeString(dst *[]byte, s string) {
	putUvarint(dst, uint64(len(s)))
	*dst = append(*dst, s...)
}

// readString consumes a length-prefixed UTF-8 string from the front
// of *buf.
func readString(buf *[]byte, ctx ErrorContext) (string, error) {
	n, err := readUvarint(buf, ctx)
	if err != nil {
		return "", err
	}
	length := int(n)
	if uint64(length) != n || length < 0 {
		return "", errUnexpectedEOF(ctx)
	}
	if len(*buf) < length {
		return "", errUnexpectedEOF(ctx)
	}
	raw := (*buf)[:length]
	if !utf8.Valid(raw) {
		return "", errUTF8(ctx, errInvalidUTF8Bytes)
	}
	*buf = (*buf)[length:]
	return string(raw), nil
}

var errInvalidUTF8Bytes = utf8Error{}

type utf8Error struct{}

func (utf8Error) Error() string { return "invalid UTF-8 sequence" }
