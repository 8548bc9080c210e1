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

// EncodeRoot appends the wire encoding of root to dst. An Empty root
// is a single LEB128 zero. A Filled root is the LEB128 leaf count
// (>= 1) followed by either a LeafNode body or an InternalNode body,
// with no extra discriminator byte: the choice between the two is
// made by the tree logic that built root, not by this codec.
func EncodeRoot(root Root, dst *[]byte) {
	if !root.Filled {
		putUvarint(dst, 0)
		return
	}
	putUvarint(dst, root.LeafCount)
	if root.Node.Leaf != nil {
		EncodeLeaf(*root.Node.Leaf, dst)
	} else {
		EncodeInternalNode(root.Node.Internal, dst)
	}
}

// DecodeRoot decodes a Root from the front of b.
//
// leaf_count == 0 decodes to Empty, ignoring any remaining bytes.
// leaf_count == 1 is ambiguous: a degenerate tree with a single leaf
// is sometimes persisted as an internal node with exactly one child.
// Since an internal node with one child is always a strictly shorter
// encoding than a leaf, trying leaf first minimizes (without fully
// eliminating) the chance of misreading a truncated internal node as
// a valid leaf; if leaf decoding fails, internal-node decoding is
// tried next, and its error (if any) is the one returned.
// leaf_count >= 2 always decodes as an InternalNode.
func DecodeRoot(b []byte) (Root, error) {
	rest := b
	leafCount, err := readUvarint(&rest, ContextLeafCount)
	if err != nil {
		return Root{}, err
	}
	if leafCount == 0 {
		return EmptyRoot(), nil
	}

	var node Node
	if leafCount == 1 {
		if leaf, leafErr := DecodeLeaf(rest); leafErr == nil {
			node = NodeFromLeaf(leaf)
		} else {
			internal, internalErr := DecodeInternalNode(rest)
			if internalErr != nil {
				return Root{}, internalErr
			}
			node = NodeFromInternal(internal)
		}
	} else {
		internal, internalErr := DecodeInternalNode(rest)
		if internalErr != nil {
			return Root{}, internalErr
		}
		node = NodeFromInternal(internal)
	}
	return NewRoot(leafCount, node), nil
}
