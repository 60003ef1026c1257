package tree

import (
	"fmt"
	"slices"
)

// File is a leaf item with a size in bytes and a type tag.
type File struct {
	item
	size     int
	fileType string
}

// NewFile creates a file inside parent, or a root file when parent is
// nil. An invalid name becomes DefaultFileName and an unknown type
// becomes DefaultFileType. The size must satisfy IsValidSize.
func NewFile(parent *Directory, name string, size int, writable bool, fileType string) (*File, error) {
	if !IsValidSize(size) {
		return nil, &InvalidArgumentError{
			Reason: fmt.Sprintf("file size %d not in [0, %d]", size, MaxFileSize),
		}
	}
	f := &File{size: size, fileType: DefaultFileType}
	if IsValidType(fileType) {
		f.fileType = fileType
	}
	f.init(f, name, writable, DefaultFileName)
	if parent != nil {
		if err := parent.AddItem(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// IsValidSize reports whether size is between 0 and MaxFileSize.
func IsValidSize(size int) bool {
	return size >= 0 && size <= MaxFileSize
}

// IsValidType reports whether t is one of the supported file types.
func IsValidType(t string) bool {
	return slices.Contains(allowedTypes, t)
}

// Kind returns KindFile.
func (f *File) Kind() string {
	return KindFile
}

// Size returns the size in bytes.
func (f *File) Size() int {
	return f.size
}

// Type returns the file type.
func (f *File) Type() string {
	return f.fileType
}

// Enlarge grows the file by delta bytes.
func (f *File) Enlarge(delta int) error {
	if delta <= 0 {
		return &InvalidArgumentError{Item: f, Reason: fmt.Sprintf("delta %d is not positive", delta)}
	}
	if delta > MaxFileSize-f.size {
		return &InvalidArgumentError{Item: f, Reason: fmt.Sprintf("enlarging by %d exceeds the maximum size", delta)}
	}
	return f.changeSize(delta)
}

// Shorten shrinks the file by delta bytes.
func (f *File) Shorten(delta int) error {
	if delta <= 0 {
		return &InvalidArgumentError{Item: f, Reason: fmt.Sprintf("delta %d is not positive", delta)}
	}
	if delta > f.size {
		return &InvalidArgumentError{Item: f, Reason: fmt.Sprintf("shortening by %d makes the size negative", delta)}
	}
	return f.changeSize(-delta)
}

func (f *File) changeSize(delta int) error {
	if !f.writable {
		logger.Trace().
			Str("file", f.name).
			Int("delta", delta).
			Msg("resize refused: not writable")
		return &NotWritableError{Item: f}
	}
	f.size += delta
	f.touch()

	logger.Debug().
		Str("file", f.name).
		Int("size", f.size).
		Msg("file resized")
	return nil
}
