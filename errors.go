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

import "fmt"

// ErrorContext names the field being decoded when a DeserializeError
// is raised. Not every error carries one.
type ErrorContext string

const (
	ContextLeafIndex    ErrorContext = "leaf index"
	ContextChildRefHash ErrorContext = "child ref hash"
	ContextVersion      ErrorContext = "version"
	ContextChildrenMask ErrorContext = "children mask"
	ContextLeafCount    ErrorContext = "leaf count"
	ContextTagKey       ErrorContext = "tag key"
	ContextTagValue     ErrorContext = "tag value"
)

// ErrorKind is the closed set of ways decoding a node can fail.
type ErrorKind int

const (
	UnexpectedEOF ErrorKind = iota
	InvalidLEB128
	InvalidUTF8
	InvalidChildKind
	EmptyInternalNode
	MalformedTag
	MissingTag
	UnknownTag
)

// DeserializeError is the single error type returned by every decode
// function in this package. It never carries a partially-built node;
// on error, callers must discard whatever they were accumulating.
type DeserializeError struct {
	Kind ErrorKind
	// Context names the field being parsed, if any.
	Context ErrorContext
	// Name carries the tag name for MalformedTag, MissingTag and
	// UnknownTag.
	Name string
	// Err wraps the underlying cause (a LEB128 or UTF-8 decode
	// failure, or a parse error for a tag value), if any.
	Err error
}

func (e *DeserializeError) Error() string {
	detail := e.kindDetail()
	if e.Context != "" {
		return fmt.Sprintf("failed deserializing %s: %s", e.Context, detail)
	}
	return detail
}

func (e *DeserializeError) Unwrap() error {
	return e.Err
}

func (e *DeserializeError) kindDetail() string {
	switch e.Kind {
	case UnexpectedEOF:
		return "unexpected end of input"
	case InvalidLEB128:
		return fmt.Sprintf("malformed LEB128 integer: %v", e.Err)
	case InvalidUTF8:
		return fmt.Sprintf("invalid UTF-8: %v", e.Err)
	case InvalidChildKind:
		return "invalid child kind (0b11 is reserved)"
	case EmptyInternalNode:
		return "internal node has an empty children bitmap"
	case MalformedTag:
		return fmt.Sprintf("malformed tag `%s`: %v", e.Name, e.Err)
	case MissingTag:
		return fmt.Sprintf("missing required tag `%s` in tree manifest", e.Name)
	case UnknownTag:
		return fmt.Sprintf("unknown tag `%s` in tree manifest", e.Name)
	default:
		return "unknown deserialize error"
	}
}

func errUnexpectedEOF(ctx ErrorContext) error {
	return &DeserializeError{Kind: UnexpectedEOF, Context: ctx}
}

func errLEB128(ctx ErrorContext, err error) error {
	return &DeserializeError{Kind: InvalidLEB128, Context: ctx, Err: err}
}

func errUTF8(ctx ErrorContext, err error) error {
	return &DeserializeError{Kind: InvalidUTF8, Context: ctx, Err: err}
}

func errInvalidChildKind() error {
	return &DeserializeError{Kind: InvalidChildKind}
}

func errEmptyInternalNode() error {
	return &DeserializeError{Kind: EmptyInternalNode}
}

func errMalformedTag(name string, err error) error {
	return &DeserializeError{Kind: MalformedTag, Name: name, Err: err}
}

func errMissingTag(name string) error {
	return &DeserializeError{Kind: MissingTag, Name: name}
}

func errUnknownTag(name string) error {
	return &DeserializeError{Kind: UnknownTag, Name: name}
}
