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
	"context"

	"golang.org/x/sync/errgroup"
)

// DecodeLeavesConcurrently decodes every blob in blobs in parallel and
// returns the results in the same order. It exists because decoders
// are pure and reentrant on disjoint inputs (see the package's
// concurrency model): a storage layer fetching many leaves off disk at
// once doesn't need to decode them one at a time.
//
// If any blob fails to decode, the first error encountered is
// returned and the other results are unspecified.
func DecodeLeavesConcurrently(ctx context.Context, blobs [][]byte) ([]LeafNode, error) {
	leaves := make([]LeafNode, len(blobs))
	g, _ := errgroup.WithContext(ctx)
	for i, blob := range blobs {
		i, blob := i, blob
		g.Go(func() error {
			leaf, err := DecodeLeaf(blob)
			if err != nil {
				return err
			}
			leaves[i] = leaf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return leaves, nil
}
