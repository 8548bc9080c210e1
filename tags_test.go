package statetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsRoundTrip(t *testing.T) {
	cases := []*TreeTags{
		{Architecture: "AR16MT", Hasher: "blake2s256", Depth: 256, Custom: map[string]string{}},
		{Architecture: "AR16MT", Hasher: "blake2s256", Depth: 256, IsRecovering: true, Custom: map[string]string{}},
		{
			Architecture: "AR16MT",
			Hasher:       "blake2s256",
			Depth:        64,
			IsRecovering: true,
			Custom:       map[string]string{"shard": "7", "region": "eu"},
		},
	}

	for _, tags := range cases {
		var buf []byte
		encodeTags(tags, &buf)

		rest := buf
		decoded, err := decodeTags(&rest)
		require.NoError(t, err)
		assert.Empty(t, rest, "decodeTags should consume the whole block")
		assert.Equal(t, tags, decoded)
	}
}

func TestTagsMissingRequiredFields(t *testing.T) {
	for _, name := range []string{"architecture", "hasher", "depth"} {
		tags := &TreeTags{Architecture: "AR16MT", Hasher: "blake2s256", Depth: 1, Custom: map[string]string{}}
		var buf []byte
		encodeTags(tags, &buf)

		dropped := dropTagFromBuffer(t, buf, name)
		rest := dropped
		_, err := decodeTags(&rest)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required tag `"+name+"`")
	}
}

// dropTagFromBuffer re-encodes a tag block with one reserved entry
// removed and the entry count decremented, to exercise the
// missing-tag path without hand-building bytes for every case.
func dropTagFromBuffer(t *testing.T, buf []byte, name string) []byte {
	t.Helper()
	rest := buf
	entryCount, err := readUvarint(&rest, "")
	require.NoError(t, err)

	var out []byte
	kept := uint64(0)
	for i := uint64(0); i < entryCount; i++ {
		keyStart := len(buf) - len(rest)
		key, err := readString(&rest, ContextTagKey)
		require.NoError(t, err)
		value, err := readString(&rest, ContextTagValue)
		require.NoError(t, err)
		valueEnd := len(buf) - len(rest)
		if key == name {
			continue
		}
		out = append(out, buf[keyStart:valueEnd]...)
		kept++
	}
	var final []byte
	putUvarint(&final, kept)
	final = append(final, out...)
	return final
}

func TestTagsMalformedDepthRejected(t *testing.T) {
	tags := &TreeTags{Architecture: "AR16MT", Hasher: "blake2s256", Depth: 1, Custom: map[string]string{}}
	var buf []byte
	encodeTags(tags, &buf)
	mangled := replaceTagValue(t, buf, "depth", "not-a-number")

	rest := mangled
	_, err := decodeTags(&rest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed tag `depth`")
}

func TestTagsMalformedIsRecoveringRejected(t *testing.T) {
	tags := &TreeTags{Architecture: "AR16MT", Hasher: "blake2s256", Depth: 1, IsRecovering: true, Custom: map[string]string{}}
	var buf []byte
	encodeTags(tags, &buf)
	mangled := replaceTagValue(t, buf, "is_recovering", "sorta")

	rest := mangled
	_, err := decodeTags(&rest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed tag `is_recovering`")
}

func replaceTagValue(t *testing.T, buf []byte, name, newValue string) []byte {
	t.Helper()
	rest := buf
	entryCount, err := readUvarint(&rest, "")
	require.NoError(t, err)

	entries := make([][2]string, 0, entryCount)
	for i := uint64(0); i < entryCount; i++ {
		key, err := readString(&rest, ContextTagKey)
		require.NoError(t, err)
		value, err := readString(&rest, ContextTagValue)
		require.NoError(t, err)
		if key == name {
			value = newValue
		}
		entries = append(entries, [2]string{key, value})
	}

	var out []byte
	putUvarint(&out, entryCount)
	for _, kv := range entries {
		writeString(&out, kv[0])
		writeString(&out, kv[1])
	}
	return out
}

func TestTagsCustomKeyCollisionIsNotPossible(t *testing.T) {
	// A custom.-prefixed wire key never equals a reserved key, so a
	// key like "custom.architecture" is stored under custom, not
	// confused with the required "architecture" tag.
	tags := &TreeTags{
		Architecture: "AR16MT",
		Hasher:       "blake2s256",
		Depth:        1,
		Custom:       map[string]string{"architecture": "shadowed"},
	}
	var buf []byte
	encodeTags(tags, &buf)

	rest := buf
	decoded, err := decodeTags(&rest)
	require.NoError(t, err)
	assert.Equal(t, "AR16MT", decoded.Architecture)
	assert.Equal(t, "shadowed", decoded.Custom["architecture"])
}
