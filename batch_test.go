package statetree

import (
	"context"
	"testing"

	"lukechampine.com/blake3"
)

func fixtureValueHash(seed string) ValueHash {
	return blake3.Sum256([]byte(seed))
}

func TestDecodeLeavesConcurrently(t *testing.T) {
	const n = 64
	blobs := make([][]byte, n)
	want := make([]LeafNode, n)
	for i := 0; i < n; i++ {
		leaf := NewLeafNode(NewKeyFromUint64(uint64(i)), fixtureValueHash("leaf"), uint64(i+1))
		want[i] = leaf
		var buf []byte
		EncodeLeaf(leaf, &buf)
		blobs[i] = buf
	}

	got, err := DecodeLeavesConcurrently(context.Background(), blobs)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != n {
		t.Fatalf("expected %d leaves, got %d", n, len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("leaf %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecodeLeavesConcurrentlyPropagatesError(t *testing.T) {
	good := func() []byte {
		var buf []byte
		EncodeLeaf(NewLeafNode(NewKeyFromUint64(1), fixtureValueHash("ok"), 1), &buf)
		return buf
	}()
	bad := []byte{0x01, 0x02} // far too short to be a leaf

	_, err := DecodeLeavesConcurrently(context.Background(), [][]byte{good, bad})
	if err == nil {
		t.Fatal("expected an error from the malformed blob")
	}
}
