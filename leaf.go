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

// EncodeLeaf appends the wire encoding of leaf to dst:
// [full_key: KeySize bytes BE][value_hash: HashSize bytes][leaf_index: LEB128].
// Encoding is total; it cannot fail.
func EncodeLeaf(leaf LeafNode, dst *[]byte) {
	reserve(dst, KeySize+HashSize+leb128SizeEstimate)
	writeKey(dst, leaf.FullKey)
	writeHash(dst, leaf.ValueHash)
	putUvarint(dst, leaf.LeafIndex)
}

// DecodeLeaf decodes a LeafNode from the front of b. Trailing bytes
// after leaf_index are permitted and ignored: callers only guarantee
// that b starts with a valid leaf, not that it contains nothing else.
func DecodeLeaf(b []byte) (LeafNode, error) {
	if len(b) < KeySize+HashSize {
		return LeafNode{}, errUnexpectedEOF("")
	}
	fullKey := KeyFromBigEndian(b[:KeySize])
	var valueHash ValueHash
	copy(valueHash[:], b[KeySize:KeySize+HashSize])

	rest := b[KeySize+HashSize:]
	leafIndex, err := readUvarint(&rest, ContextLeafIndex)
	if err != nil {
		return LeafNode{}, err
	}
	return LeafNode{FullKey: fullKey, ValueHash: valueHash, LeafIndex: leafIndex}, nil
}
