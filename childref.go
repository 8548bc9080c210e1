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

// estimatedChildRefCapacity is the assumed encoded size of a single
// ChildRef, used to pre-size an InternalNode's output buffer.
const estimatedChildRefCapacity = HashSize + leb128SizeEstimate

// encodeChildRef appends [hash: HashSize bytes][version: LEB128] to
// dst. is_leaf is deliberately not serialized here: InternalNode's
// bitmap carries it externally.
func encodeChildRef(ref ChildRef, dst *[]byte) {
	writeHash(dst, ref.Hash)
	putUvarint(dst, ref.Version)
}

// decodeChildRef decodes a ChildRef from the front of *buf. isLeaf is
// supplied by the caller (the internal-node bitmap already told it
// which kind this slot holds) and stored on the returned ref as-is.
func decodeChildRef(buf *[]byte, isLeaf bool) (ChildRef, error) {
	hash, err := readHash(buf, ContextChildRefHash)
	if err != nil {
		return ChildRef{}, err
	}
	version, err := readUvarint(buf, ContextVersion)
	if err != nil {
		return ChildRef{}, err
	}
	return ChildRef{Hash: hash, Version: version, IsLeaf: isLeaf}, nil
}
