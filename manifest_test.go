package statetree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManifestWithRecoveryFlagMatchesFixtureBytes(t *testing.T) {
	manifest := Manifest{
		VersionCount: 42,
		Tags: &TreeTags{
			Architecture: "AR16MT",
			Hasher:       "no_op256",
			Depth:        256,
			IsRecovering: true,
			Custom:       map[string]string{},
		},
	}

	var buf []byte
	EncodeManifest(manifest, &buf)

	want := append([]byte{0x2A, 0x04}, "\x0Carchitecture\x06AR16MT\x05depth\x03256\x06hasher\x08no_op256\x0Dis_recovering\x04true"...)
	require.Equal(t, want, buf)

	decoded, err := DecodeManifest(buf)
	require.NoError(t, err)
	require.Equal(t, manifest.VersionCount, decoded.VersionCount)
	require.Equal(t, *manifest.Tags, *decoded.Tags)
}

func TestManifestWithCustomTagMatchesFixtureBytes(t *testing.T) {
	manifest := Manifest{
		VersionCount: 42,
		Tags: &TreeTags{
			Architecture: "AR16MT",
			Hasher:       "no_op256",
			Depth:        256,
			IsRecovering: false,
			Custom:       map[string]string{"test": "1"},
		},
	}

	var buf []byte
	EncodeManifest(manifest, &buf)

	require.Equal(t, byte(42), buf[0])
	require.Equal(t, byte(4), buf[1]) // 3 standard + 1 custom

	suffix := "\x0Bcustom.test\x011"
	require.Equal(t, suffix, string(buf[len(buf)-len(suffix):]))

	decoded, err := DecodeManifest(buf)
	require.NoError(t, err)
	require.Equal(t, *manifest.Tags, *decoded.Tags)
}

func TestManifestWithMultipleCustomTagsRoundTrips(t *testing.T) {
	manifest := Manifest{
		VersionCount: 42,
		Tags: &TreeTags{
			Architecture: "AR16MT",
			Hasher:       "no_op256",
			Depth:        256,
			IsRecovering: true,
			Custom: map[string]string{
				"test":           "1",
				"other.long.tag": "123456!!!",
				"zz":             "last",
			},
		},
	}

	var buf []byte
	EncodeManifest(manifest, &buf)
	require.Equal(t, byte(42), buf[0])
	require.Equal(t, byte(7), buf[1]) // 4 standard + 3 custom

	decoded, err := DecodeManifest(buf)
	require.NoError(t, err)
	require.Equal(t, *manifest.Tags, *decoded.Tags)
}

func TestManifestWithoutTagsRoundTrips(t *testing.T) {
	manifest := Manifest{VersionCount: 7}
	var buf []byte
	EncodeManifest(manifest, &buf)
	require.Equal(t, []byte{7}, buf)

	decoded, err := DecodeManifest(buf)
	require.NoError(t, err)
	require.Nil(t, decoded.Tags)
	require.Equal(t, uint64(7), decoded.VersionCount)
}

func TestManifestUnknownTagRejected(t *testing.T) {
	manifest := Manifest{
		VersionCount: 42,
		Tags: &TreeTags{
			Architecture: "AR16MT",
			Hasher:       "no_op256",
			Depth:        256,
			Custom:       map[string]string{},
		},
	}
	var buf []byte
	EncodeManifest(manifest, &buf)

	mangled := append([]byte(nil), buf...)
	require.Equal(t, byte('a'), mangled[3])
	mangled[3] = 'A'

	_, err := DecodeManifest(mangled)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown tag `Architecture`")
}

func TestManifestTruncationRejected(t *testing.T) {
	manifest := Manifest{
		VersionCount: 42,
		Tags: &TreeTags{
			Architecture: "AR16MT",
			Hasher:       "no_op256",
			Depth:        256,
			Custom:       map[string]string{},
		},
	}
	var buf []byte
	EncodeManifest(manifest, &buf)

	mangled := append([]byte(nil), buf...)
	mangled = mangled[:len(mangled)-1]
	_, err := DecodeManifest(mangled)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected end of input")
}

func TestManifestMissingRequiredTagRejected(t *testing.T) {
	manifest := Manifest{
		VersionCount: 42,
		Tags: &TreeTags{
			Architecture: "AR16MT",
			Hasher:       "no_op256",
			Depth:        256,
			Custom:       map[string]string{},
		},
	}
	var buf []byte
	EncodeManifest(manifest, &buf)

	mangled := append([]byte(nil), buf...)
	mangled[1] = 2 // decrease entry count, dropping the hasher tag
	_, err := DecodeManifest(mangled)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing required tag `hasher`")
}
