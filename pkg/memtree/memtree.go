// Package memtree provides a high-level API over the in-memory
// filesystem model: construction helpers, manifest-driven tree
// building and rendering.
package memtree

import (
	"github.com/arthur-debert/memtree/pkg/memtree/tree"
)

// This file forwards the model types and constructors from the `tree`
// package so most callers only need to import memtree.

// --- Item Types ---

// Item forwards to tree.Item.
type Item = tree.Item

// Directory forwards to tree.Directory.
type Directory = tree.Directory

// File forwards to tree.File.
type File = tree.File

// --- Errors ---

type (
	NotWritableError      = tree.NotWritableError
	InvalidArgumentError  = tree.InvalidArgumentError
	IndexOutOfBoundsError = tree.IndexOutOfBoundsError
)

var (
	ErrNotWritable      = tree.ErrNotWritable
	ErrInvalidArgument  = tree.ErrInvalidArgument
	ErrIndexOutOfBounds = tree.ErrIndexOutOfBounds
)

// --- Functions ---

// NewRoot creates a writable root directory.
func NewRoot(name string) *tree.Directory {
	d, _ := tree.NewDirectory(nil, name, true)
	return d
}

// NewDirectory forwards to tree.NewDirectory.
func NewDirectory(parent *tree.Directory, name string, writable bool) (*tree.Directory, error) {
	return tree.NewDirectory(parent, name, writable)
}

// NewFile forwards to tree.NewFile.
func NewFile(parent *tree.Directory, name string, size int, writable bool, fileType string) (*tree.File, error) {
	return tree.NewFile(parent, name, size, writable, fileType)
}
