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

import (
	"strconv"
	"strings"
)

const customTagPrefix = "custom."

// parseStrictBool accepts only the exact literals "true" and "false",
// matching the boolean literal grammar the is_recovering tag value is
// documented to use (stricter than strconv.ParseBool's "1"/"t"/"T"/...
// aliases).
func parseStrictBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, strconv.ErrSyntax
	}
}

// encodeTags appends tags as [entry_count: LEB128] followed by
// entry_count (key, value) pairs, each a length-prefixed UTF-8
// string. Reserved keys are always emitted in the fixed order
// architecture, depth, hasher, then is_recovering (only if true);
// custom entries follow in the map's native iteration order, which
// is not itself meaningful but must round-trip.
func encodeTags(tags *TreeTags, dst *[]byte) {
	entryCount := uint64(3) + uint64(len(tags.Custom))
	if tags.IsRecovering {
		entryCount++
	}
	putUvarint(dst, entryCount)

	writeString(dst, "architecture")
	writeString(dst, tags.Architecture)
	writeString(dst, "depth")
	writeString(dst, strconv.FormatUint(tags.Depth, 10))
	writeString(dst, "hasher")
	writeString(dst, tags.Hasher)
	if tags.IsRecovering {
		writeString(dst, "is_recovering")
		writeString(dst, "true")
	}

	for key, value := range tags.Custom {
		writeString(dst, customTagPrefix+key)
		writeString(dst, value)
	}
}

// decodeTags decodes a TreeTags block from the front of *buf.
func decodeTags(buf *[]byte) (*TreeTags, error) {
	entryCount, err := readUvarint(buf, "")
	if err != nil {
		return nil, err
	}

	var architecture, hasher *string
	var depth *uint64
	isRecovering := false
	custom := make(map[string]string)

	for i := uint64(0); i < entryCount; i++ {
		key, err := readString(buf, ContextTagKey)
		if err != nil {
			return nil, err
		}
		value, err := readString(buf, ContextTagValue)
		if err != nil {
			return nil, err
		}

		switch {
		case key == "architecture":
			architecture = &value
		case key == "hasher":
			hasher = &value
		case key == "depth":
			parsed, parseErr := strconv.ParseUint(value, 10, 64)
			if parseErr != nil {
				return nil, errMalformedTag("depth", parseErr)
			}
			depth = &parsed
		case key == "is_recovering":
			parsed, parseErr := parseStrictBool(value)
			if parseErr != nil {
				return nil, errMalformedTag("is_recovering", parseErr)
			}
			isRecovering = parsed
		case strings.HasPrefix(key, customTagPrefix):
			custom[strings.TrimPrefix(key, customTagPrefix)] = value
		default:
			return nil, errUnknownTag(key)
		}
	}

	if architecture == nil {
		return nil, errMissingTag("architecture")
	}
	if hasher == nil {
		return nil, errMissingTag("hasher")
	}
	if depth == nil {
		return nil, errMissingTag("depth")
	}

	return &TreeTags{
		Architecture: *architecture,
		Hasher:       *hasher,
		Depth:        *depth,
		IsRecovering: isRecovering,
		Custom:       custom,
	}, nil
}
