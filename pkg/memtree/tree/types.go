// Package tree implements an in-memory hierarchy of directories and files.
//
// Directories keep their children sorted by case-insensitive name and
// refuse structural changes that would break name uniqueness or nest a
// directory inside itself. Every item carries a writable flag gating
// mutation and a creation/modification timestamp pair.
package tree

import "math"

// Kind constants identify the concrete type behind an Item.
const (
	// KindDirectory is the kind reported by directories.
	KindDirectory = "directory"
	// KindFile is the kind reported by files.
	KindFile = "file"
)

// Names substituted at construction when the given name is invalid.
const (
	DefaultDirectoryName = "new_directory"
	DefaultFileName      = "new-file"
)

// File types.
const (
	TypeText = "txt"
	TypePDF  = "pdf"
	TypeJava = "java"

	// DefaultFileType replaces any unknown type at construction.
	DefaultFileType = TypeText
)

// MaxFileSize is the largest size a file may have, in bytes.
const MaxFileSize = math.MaxInt32

var allowedTypes = []string{TypeText, TypePDF, TypeJava}
