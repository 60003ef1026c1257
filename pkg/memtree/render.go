package memtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/memtree/pkg/memtree/tree"
)

// Render writes an indented listing of it and everything below it.
// Directories end in "/", files show their size and type, and read-only
// items are marked [ro].
func Render(w io.Writer, it tree.Item) error {
	return tree.Walk(it, func(it tree.Item, depth int) error {
		_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), label(it))
		return err
	})
}

// RenderForest renders every root of f, in manifest order.
func RenderForest(w io.Writer, f *Forest) error {
	for _, root := range f.Roots() {
		if err := Render(w, root); err != nil {
			return err
		}
	}
	return nil
}

func label(it tree.Item) string {
	var b strings.Builder
	b.WriteString(it.Name())
	switch v := it.(type) {
	case *tree.Directory:
		b.WriteString("/")
	case *tree.File:
		fmt.Fprintf(&b, " (%d bytes, %s)", v.Size(), v.Type())
	}
	if !it.IsWritable() {
		b.WriteString(" [ro]")
	}
	return b.String()
}

// Summary counts what a tree holds.
type Summary struct {
	Directories int
	Files       int
	Bytes       int64
	ReadOnly    int
}

// Summarize walks every root of f and counts its items.
func Summarize(f *Forest) Summary {
	var s Summary
	for _, root := range f.Roots() {
		_ = tree.Walk(root, func(it tree.Item, _ int) error {
			switch v := it.(type) {
			case *tree.Directory:
				s.Directories++
			case *tree.File:
				s.Files++
				s.Bytes += int64(v.Size())
			}
			if !it.IsWritable() {
				s.ReadOnly++
			}
			return nil
		})
	}
	return s
}
