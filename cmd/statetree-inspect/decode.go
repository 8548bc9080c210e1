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

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/flowmint/statetree"
)

// readHexInput reads hex-encoded bytes from path, or from stdin if
// path is "-".
func readHexInput(path string) ([]byte, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(raw))
	return hex.DecodeString(trimmed)
}

func newDecodeLeafCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-leaf <hex-file|->",
		Short: "Decode a leaf node blob and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := readHexInput(args[0])
			if err != nil {
				return err
			}
			leaf, err := statetree.DecodeLeaf(blob)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), spew.Sdump(leaf))
			return nil
		},
	}
}

func newDecodeInternalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-internal <hex-file|->",
		Short: "Decode an internal node blob and print its children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := readHexInput(args[0])
			if err != nil {
				return err
			}
			node, err := statetree.DecodeInternalNode(blob)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "children: %d\n", node.ChildCount())
			node.Children(func(slot int, ref statetree.ChildRef) {
				fmt.Fprintf(out, "  slot %2x: leaf=%-5v version=%-4d hash=%s\n", slot, ref.IsLeaf, ref.Version, ref.Hash)
			})
			return nil
		},
	}
}

func newDecodeRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-root <hex-file|->",
		Short: "Decode a root blob and print its variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := readHexInput(args[0])
			if err != nil {
				return err
			}
			root, err := statetree.DecodeRoot(blob)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !root.Filled {
				fmt.Fprintln(out, "Empty")
				return nil
			}
			fmt.Fprintf(out, "Filled: leaf_count=%d\n", root.LeafCount)
			if root.Node.Leaf != nil {
				fmt.Fprintln(out, spew.Sdump(*root.Node.Leaf))
			} else {
				fmt.Fprintf(out, "internal node with %d children\n", root.Node.Internal.ChildCount())
			}
			return nil
		},
	}
}

func newDecodeManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-manifest <hex-file|->",
		Short: "Decode a manifest blob and print its version count and tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := readHexInput(args[0])
			if err != nil {
				return err
			}
			manifest, err := statetree.DecodeManifest(blob)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), spew.Sdump(manifest))
			return nil
		},
	}
}
