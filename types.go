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

// Package statetree implements the binary node codec of a versioned,
// radix-16 Merkle tree used as the state-commitment store of a
// rollup. It only translates the four on-disk entity shapes (tree
// manifest, root, internal node, leaf) to and from compact byte
// strings; tree traversal, updates, hashing and storage are the
// caller's responsibility.
package statetree

import (
	"github.com/holiman/uint256"
)

// KeySize is the fixed width, in bytes, of a Key's big-endian wire
// encoding.
const KeySize = 32

// HashSize is the fixed width, in bytes, of a ValueHash.
const HashSize = 32

// Key is a fixed-width unsigned integer used as a leaf's full key.
// Its wire form is always exactly KeySize big-endian bytes, zero
// padded on the left.
type Key struct {
	inner uint256.Int
}

// NewKeyFromUint64 builds a Key from a small integer. Mainly useful
// in tests and fixtures.
func NewKeyFromUint64(v uint64) Key {
	var k Key
	k.inner.SetUint64(v)
	return k
}

// KeyFromBigEndian interprets exactly KeySize bytes of b as a
// big-endian Key. It panics if len(b) != KeySize; use readKey to
// decode a prefix of an untrusted buffer instead.
func KeyFromBigEndian(b []byte) Key {
	if len(b) != KeySize {
		panic("statetree: KeyFromBigEndian requires exactly KeySize bytes")
	}
	var k Key
	k.inner.SetBytes(b)
	return k
}

// Bytes returns the KeySize-byte big-endian encoding of k.
func (k Key) Bytes() [KeySize]byte {
	return k.inner.Bytes32()
}

// Uint64 returns the low 64 bits of k, for keys known to fit.
func (k Key) Uint64() uint64 {
	return k.inner.Uint64()
}

func (k Key) String() string {
	return k.inner.Hex()
}

// ValueHash is a fixed HashSize-byte digest referenced by a leaf or
// by a child reference. Its wire form carries no framing.
type ValueHash [HashSize]byte

func (h ValueHash) String() string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 2*HashSize)
	for i, b := range h {
		out[2*i] = hexDigits[b>>4]
		out[2*i+1] = hexDigits[b&0xf]
	}
	return string(out)
}

// LeafNode is a populated leaf of the tree: a full key, the hash of
// its stored value, and the leaf's insertion ordinal.
type LeafNode struct {
	FullKey   Key
	ValueHash ValueHash
	LeafIndex uint64
}

// NewLeafNode constructs a LeafNode. leafIndex should be >= 1 for any
// leaf that has actually been inserted into a tree; the codec itself
// does not enforce this, it is a tree-level invariant.
func NewLeafNode(fullKey Key, valueHash ValueHash, leafIndex uint64) LeafNode {
	return LeafNode{FullKey: fullKey, ValueHash: valueHash, LeafIndex: leafIndex}
}

// ChildKind distinguishes what a populated internal-node slot points
// to. It is never itself persisted as a separate byte: it lives in
// the 2 bits a slot occupies in an InternalNode's children bitmap.
type ChildKind uint32

const (
	ChildNone ChildKind = iota
	ChildInternal
	ChildLeaf
)

// childKindMask isolates the 2 bits of a bitmap slot.
const childKindMask uint32 = 0b11

func childKindFromBits(bits uint32) (ChildKind, error) {
	switch bits {
	case uint32(ChildNone):
		return ChildNone, nil
	case uint32(ChildInternal):
		return ChildInternal, nil
	case uint32(ChildLeaf):
		return ChildLeaf, nil
	default:
		return 0, errInvalidChildKind()
	}
}

// ChildRef is a pointer-by-content from an internal node to one of
// its children, stored elsewhere (by hash and version). is_leaf is
// never part of the wire form of a ChildRef on its own; the parent
// InternalNode's bitmap carries it externally.
type ChildRef struct {
	Hash    ValueHash
	Version uint64
	IsLeaf  bool
}

// NewInternalChildRef builds a ChildRef pointing at an internal-node
// child at the given version. The hash is left zero; callers fill it
// in once it is known (mirroring the pattern of building a ChildRef
// before its target has been hashed).
func NewInternalChildRef(version uint64) ChildRef {
	return ChildRef{Version: version, IsLeaf: false}
}

// NewLeafChildRef builds a ChildRef pointing at a leaf child at the
// given version.
func NewLeafChildRef(version uint64) ChildRef {
	return ChildRef{Version: version, IsLeaf: true}
}

func (r ChildRef) kind() ChildKind {
	if r.IsLeaf {
		return ChildLeaf
	}
	return ChildInternal
}

// childCount is the number of slots an InternalNode can address: a
// radix-16 digit selects one of 16 children.
const childCount = 16

// InternalNode is a sparse mapping from slot index in [0,16) to
// ChildRef. An internal node with no children at all cannot exist on
// disk (EmptyInternalNode is a decode error), and must be built with
// at least one child before being encoded.
type InternalNode struct {
	children [childCount]*ChildRef
}

// NewInternalNode returns an InternalNode with no children. Callers
// must insert at least one child before encoding it.
func NewInternalNode() *InternalNode {
	return &InternalNode{}
}

// InsertChildRef sets the child at slot i, overwriting any previous
// occupant. It panics if i is outside [0, 16).
func (n *InternalNode) InsertChildRef(i int, ref ChildRef) {
	n.children[i] = &ref
}

// ChildRefAt returns the child at slot i, or nil if the slot is
// empty.
func (n *InternalNode) ChildRefAt(i int) *ChildRef {
	return n.children[i]
}

// ChildCount returns the number of occupied slots.
func (n *InternalNode) ChildCount() int {
	count := 0
	for _, c := range n.children {
		if c != nil {
			count++
		}
	}
	return count
}

// Children iterates occupied slots in ascending index order, calling
// fn with the slot index and its reference.
func (n *InternalNode) Children(fn func(slot int, ref ChildRef)) {
	for i, c := range n.children {
		if c != nil {
			fn(i, *c)
		}
	}
}

// Node is a tagged union of the two node shapes a tree position can
// hold. Its on-disk discriminator is external: a leaf count of 1 in
// the enclosing Root, or a bitmap slot kind in the enclosing
// InternalNode — never a dedicated tag byte.
type Node struct {
	Leaf     *LeafNode
	Internal *InternalNode
}

// NodeFromLeaf wraps a LeafNode as a Node.
func NodeFromLeaf(l LeafNode) Node {
	return Node{Leaf: &l}
}

// NodeFromInternal wraps an InternalNode as a Node.
func NodeFromInternal(n *InternalNode) Node {
	return Node{Internal: n}
}

// Root is the tagged root of one tree version: either Empty, or
// Filled with the number of leaves in the tree and the root node
// itself.
type Root struct {
	// Filled is false for the Empty variant.
	Filled    bool
	LeafCount uint64
	Node      Node
}

// EmptyRoot returns the root of a tree with no leaves.
func EmptyRoot() Root {
	return Root{}
}

// NewRoot returns a Filled root. leafCount must be >= 1.
func NewRoot(leafCount uint64, node Node) Root {
	return Root{Filled: true, LeafCount: leafCount, Node: node}
}

// TreeTags is the manifest's optional, open-ended metadata block: a
// fixed required set (architecture, hasher, depth), a validated
// optional field (is_recovering), and an open set of custom.-prefixed
// entries.
type TreeTags struct {
	Architecture string
	Hasher       string
	Depth        uint64
	IsRecovering bool
	Custom       map[string]string
}

// Manifest is the tree's top-level descriptor: how many versions it
// has accumulated, and optionally the tags block.
type Manifest struct {
	VersionCount uint64
	Tags         *TreeTags
}
