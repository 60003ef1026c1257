package tree

import (
	"fmt"
	"slices"
	"strings"
)

// Directory is an item holding other items. Children are kept sorted by
// lowercased name and no two children share a lowercased name.
type Directory struct {
	item
	children []Item
}

// NewDirectory creates a directory inside parent, or a root when parent
// is nil. An invalid name is replaced by DefaultDirectoryName. Attaching
// to parent follows the rules of AddItem and fails the same way.
func NewDirectory(parent *Directory, name string, writable bool) (*Directory, error) {
	d := &Directory{}
	d.init(d, name, writable, DefaultDirectoryName)
	if parent != nil {
		if err := parent.AddItem(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Kind returns KindDirectory.
func (d *Directory) Kind() string {
	return KindDirectory
}

func compareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// search returns the position of name among the children and whether
// a child with that name exists.
func (d *Directory) search(name string) (int, bool) {
	return slices.BinarySearchFunc(d.children, name, func(child Item, target string) int {
		return compareNames(child.Name(), target)
	})
}

func (d *Directory) insert(it Item) {
	pos, _ := d.search(it.Name())
	d.children = slices.Insert(d.children, pos, it)
}

func (d *Directory) unlink(it Item) {
	if pos, ok := d.search(it.Name()); ok && d.children[pos] == it {
		d.children = slices.Delete(d.children, pos, pos+1)
	}
}

// CanAdd reports whether it may become a child of d: no child may share
// its name case-insensitively, and a directory may not be d itself or
// one of d's ancestors.
func (d *Directory) CanAdd(it Item) bool {
	return d.rejection(it) == ""
}

func (d *Directory) rejection(it Item) string {
	if it == nil {
		return "nil item"
	}
	if d.Exists(it.Name()) {
		return fmt.Sprintf("name %q is already used in directory %q", it.Name(), d.name)
	}
	if sub, ok := it.(*Directory); ok {
		if sub == d {
			return "a directory cannot contain itself"
		}
		if d.IsDirectOrIndirectSubdirectoryOf(sub) {
			return fmt.Sprintf("directory %q is an ancestor of %q", sub.name, d.name)
		}
	}
	return ""
}

// AddItem inserts it at its sorted position and makes d its directory.
// The item must not belong to another directory; use MakeRoot first.
func (d *Directory) AddItem(it Item) error {
	if reason := d.rejection(it); reason != "" {
		logger.Trace().
			Str("directory", d.name).
			Str("reason", reason).
			Msg("add refused")
		return &InvalidArgumentError{Item: it, Reason: reason}
	}
	if owner := it.Directory(); owner != nil {
		return &InvalidArgumentError{
			Item:   it,
			Reason: fmt.Sprintf("already an item of directory %q", owner.name),
		}
	}
	if !d.writable {
		logger.Trace().
			Str("directory", d.name).
			Str("item", it.Name()).
			Msg("add refused: directory not writable")
		return &NotWritableError{Item: d}
	}

	d.insert(it)
	it.base().parent = d
	d.touch()

	logger.Debug().
		Str("directory", d.name).
		Str("item", it.Name()).
		Str("kind", it.Kind()).
		Int("items", len(d.children)).
		Msg("item added")
	return nil
}

// RemoveItem takes it out of d and clears its directory.
//
// When d is not a root, d is afterwards detached from its own directory
// as MakeRoot would do. An error from that step is returned after the
// child has already been removed.
func (d *Directory) RemoveItem(it Item) error {
	if !d.HasAsItem(it) {
		return &InvalidArgumentError{
			Item:   it,
			Reason: fmt.Sprintf("not an item of directory %q", d.name),
		}
	}
	if !d.writable {
		logger.Trace().
			Str("directory", d.name).
			Str("item", it.Name()).
			Msg("remove refused: directory not writable")
		return &NotWritableError{Item: d}
	}

	d.unlink(it)
	it.base().parent = nil
	d.touch()

	logger.Debug().
		Str("directory", d.name).
		Str("item", it.Name()).
		Int("items", len(d.children)).
		Msg("item removed")

	if !d.IsRoot() {
		return d.MakeRoot()
	}
	return nil
}

// Exists reports whether d has a child called name, ignoring case.
func (d *Directory) Exists(name string) bool {
	_, ok := d.search(name)
	return ok
}

// Item returns the child called name, ignoring case.
func (d *Directory) Item(name string) (Item, error) {
	pos, ok := d.search(name)
	if !ok {
		return nil, &InvalidArgumentError{
			Item:   d,
			Reason: fmt.Sprintf("no item named %q", name),
		}
	}
	return d.children[pos], nil
}

// ItemAt returns the child at the 1-based position index.
func (d *Directory) ItemAt(index int) (Item, error) {
	if index < 1 || index > len(d.children) {
		return nil, &IndexOutOfBoundsError{Item: d, Index: index, Len: len(d.children)}
	}
	return d.children[index-1], nil
}

// Len returns the number of children.
func (d *Directory) Len() int {
	return len(d.children)
}

// Items returns the children in order. The slice is a copy.
func (d *Directory) Items() []Item {
	return slices.Clone(d.children)
}

// HasAsItem reports whether it is a direct child of d.
func (d *Directory) HasAsItem(it Item) bool {
	if it == nil {
		return false
	}
	pos, ok := d.search(it.Name())
	return ok && d.children[pos] == it
}

// IndexOf returns the 1-based position of it, matching ItemAt.
func (d *Directory) IndexOf(it Item) (int, error) {
	if !d.HasAsItem(it) {
		return 0, &InvalidArgumentError{
			Item:   it,
			Reason: fmt.Sprintf("not an item of directory %q", d.name),
		}
	}
	pos, _ := d.search(it.Name())
	return pos + 1, nil
}

// IsDirectOrIndirectSubdirectoryOf reports whether candidate is one of
// the directories above d.
func (d *Directory) IsDirectOrIndirectSubdirectoryOf(candidate *Directory) bool {
	for p := d.parent; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}
