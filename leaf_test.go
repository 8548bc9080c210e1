package statetree

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestEncodeLeaf(t *testing.T) {
	var valueHash ValueHash
	for i := range valueHash {
		valueHash[i] = 4
	}
	leaf := NewLeafNode(NewKeyFromUint64(513), valueHash, 42)

	var buf []byte
	EncodeLeaf(leaf, &buf)

	if len(buf) != 65 {
		t.Fatalf("unexpected length: got %d, spew: %s", len(buf), spew.Sdump(buf))
	}
	for i := 0; i < 30; i++ {
		if buf[i] != 0 {
			t.Fatalf("expected zero padding at byte %d, got %d", i, buf[i])
		}
	}
	if buf[30] != 0x02 || buf[31] != 0x01 {
		t.Fatalf("unexpected key bytes: %x", buf[30:32])
	}
	for i := 32; i < 64; i++ {
		if buf[i] != 4 {
			t.Fatalf("unexpected value hash byte %d: %d", i, buf[i])
		}
	}
	if buf[64] != 42 {
		t.Fatalf("unexpected leaf index byte: %d", buf[64])
	}

	decoded, err := DecodeLeaf(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != leaf {
		t.Fatalf("round trip mismatch:\n%s\nvs\n%s", spew.Sdump(decoded), spew.Sdump(leaf))
	}
}

func TestDecodeLeafTrailingBytesPermitted(t *testing.T) {
	var valueHash ValueHash
	leaf := NewLeafNode(NewKeyFromUint64(7), valueHash, 3)
	var buf []byte
	EncodeLeaf(leaf, &buf)
	buf = append(buf, 0xff, 0xff, 0xff)

	decoded, err := DecodeLeaf(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != leaf {
		t.Fatalf("trailing bytes should not affect decode: %s", spew.Sdump(decoded))
	}
}

func TestDecodeLeafTruncationRejected(t *testing.T) {
	var valueHash ValueHash
	leaf := NewLeafNode(NewKeyFromUint64(9), valueHash, 123456)
	var buf []byte
	EncodeLeaf(leaf, &buf)

	for n := 0; n < len(buf); n++ {
		if _, err := DecodeLeaf(buf[:n]); err == nil {
			t.Fatalf("expected error decoding truncated prefix of length %d", n)
		}
	}
}

func TestDecodeLeafEmptyInput(t *testing.T) {
	if _, err := DecodeLeaf(nil); err == nil {
		t.Fatal("expected error decoding empty input")
	}
}
