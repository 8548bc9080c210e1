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

// EncodeManifest appends [version_count: LEB128] to dst, followed by
// the tag block if m.Tags is present. Encoding is total.
func EncodeManifest(m Manifest, dst *[]byte) {
	putUvarint(dst, m.VersionCount)
	if m.Tags != nil {
		encodeTags(m.Tags, dst)
	}
}

// DecodeManifest decodes a Manifest from the front of b. If no bytes
// remain after version_count, Tags is nil; otherwise a tag block is
// decoded and must consume the rest of the declared entries exactly
// (the block's own entry_count terminates it, so trailing bytes after
// a well-formed tag block would belong to a different record, not to
// this manifest).
func DecodeManifest(b []byte) (Manifest, error) {
	rest := b
	versionCount, err := readUvarint(&rest, "")
	if err != nil {
		return Manifest{}, err
	}
	if len(rest) == 0 {
		return Manifest{VersionCount: versionCount}, nil
	}
	tags, err := decodeTags(&rest)
	if err != nil {
		return Manifest{}, err
	}
	return Manifest{VersionCount: versionCount, Tags: tags}, nil
}
