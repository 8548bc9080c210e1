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

import "encoding/binary"

// bitmapSize is the width, in bytes, of an InternalNode's children
// bitmap: 16 slots * 2 bits/slot = 32 bits.
const bitmapSize = 4

// EncodeInternalNode appends the wire encoding of n to dst: a 4-byte
// little-endian bitmap (2 bits per slot, giving each of the 16 slots
// its ChildKind), followed by each occupied child's ChildRef body in
// ascending slot order. Encoding is total; it cannot fail.
func EncodeInternalNode(n *InternalNode, dst *[]byte) {
	var bitmap uint32
	childCount := 0
	n.Children(func(slot int, ref ChildRef) {
		bitmap |= uint32(ref.kind()) << uint(2*slot)
		childCount++
	})

	reserve(dst, bitmapSize+estimatedChildRefCapacity*childCount)
	var bitmapBytes [bitmapSize]byte
	binary.LittleEndian.PutUint32(bitmapBytes[:], bitmap)
	*dst = append(*dst, bitmapBytes[:]...)

	n.Children(func(_ int, ref ChildRef) {
		encodeChildRef(ref, dst)
	})
}

// DecodeInternalNode decodes an InternalNode from the front of b.
// Trailing bytes after the last child's body are permitted and
// ignored, the same way DecodeLeaf tolerates trailing bytes.
func DecodeInternalNode(b []byte) (*InternalNode, error) {
	if len(b) < bitmapSize {
		return nil, errUnexpectedEOF(ContextChildrenMask)
	}
	bitmap := binary.LittleEndian.Uint32(b[:bitmapSize])
	if bitmap == 0 {
		return nil, errEmptyInternalNode()
	}

	rest := b[bitmapSize:]
	node := NewInternalNode()
	for i := 0; i < childCount; i++ {
		kind, err := childKindFromBits(bitmap & childKindMask)
		if err != nil {
			return nil, err
		}
		switch kind {
		case ChildNone:
			// slot empty, nothing to consume
		case ChildInternal:
			ref, err := decodeChildRef(&rest, false)
			if err != nil {
				return nil, err
			}
			node.InsertChildRef(i, ref)
		case ChildLeaf:
			ref, err := decodeChildRef(&rest, true)
			if err != nil {
				return nil, err
			}
			node.InsertChildRef(i, ref)
		}
		bitmap >>= 2
	}
	return node, nil
}
