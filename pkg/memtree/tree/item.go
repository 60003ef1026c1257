package tree

import (
	"fmt"
	"regexp"
	"time"
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// now is the clock used for every timestamp. Tests replace it.
var now = time.Now

// Item is any node of the tree, a *Directory or a *File.
type Item interface {
	// Name returns the item's name.
	Name() string

	// Kind returns KindDirectory or KindFile.
	Kind() string

	IsWritable() bool
	SetWritable(writable bool)

	// CreationTime is fixed when the item is constructed.
	CreationTime() time.Time

	// ModificationTime returns the time of the last successful mutation.
	// The boolean is false while the item has never been modified.
	ModificationTime() (time.Time, bool)

	// Directory returns the containing directory, nil for a root.
	Directory() *Directory
	IsRoot() bool

	// Root returns the topmost directory above this item. It fails on
	// an item that is itself a root.
	Root() (*Directory, error)

	ChangeName(name string) error
	MakeRoot() error
	HasOverlappingUsePeriod(other Item) bool

	base() *item
}

// IsValidName reports whether name is non-empty and made only of ASCII
// letters, digits, dots, hyphens and underscores.
func IsValidName(name string) bool {
	return validName.MatchString(name)
}

// IsValidCreationTime reports whether t is set and not in the future.
func IsValidCreationTime(t time.Time) bool {
	return !t.IsZero() && !t.After(now())
}

// CanHaveAsModificationTime reports whether t is acceptable as the
// modification time of it: either unset, or between its creation time
// and now.
func CanHaveAsModificationTime(it Item, t time.Time) bool {
	if t.IsZero() {
		return true
	}
	return !t.Before(it.CreationTime()) && !t.After(now())
}

// item holds the state shared by directories and files. self points
// back at the embedding value so the base can hand it to its parent.
type item struct {
	self     Item
	name     string
	writable bool
	created  time.Time
	modified time.Time
	parent   *Directory
}

func (it *item) init(self Item, name string, writable bool, fallback string) {
	it.self = self
	it.name = fallback
	if IsValidName(name) {
		it.name = name
	}
	it.writable = writable
	it.created = now()
}

func (it *item) base() *item {
	return it
}

func (it *item) Name() string {
	return it.name
}

func (it *item) IsWritable() bool {
	return it.writable
}

// SetWritable changes the writable flag. It never touches timestamps.
func (it *item) SetWritable(writable bool) {
	it.writable = writable
}

func (it *item) CreationTime() time.Time {
	return it.created
}

func (it *item) ModificationTime() (time.Time, bool) {
	return it.modified, !it.modified.IsZero()
}

func (it *item) touch() {
	it.modified = now()
}

func (it *item) Directory() *Directory {
	return it.parent
}

func (it *item) IsRoot() bool {
	return it.parent == nil
}

func (it *item) Root() (*Directory, error) {
	if it.parent == nil {
		return nil, &InvalidArgumentError{Item: it.self, Reason: "item is already a root"}
	}
	d := it.parent
	for d.parent != nil {
		d = d.parent
	}
	return d, nil
}

// ChangeName renames the item. An invalid name is ignored without error.
// Inside a directory the new name must not clash with a sibling, and the
// item moves to its new sorted position.
func (it *item) ChangeName(name string) error {
	if !it.writable {
		logger.Trace().
			Str("item", it.name).
			Str("new_name", name).
			Msg("rename refused: not writable")
		return &NotWritableError{Item: it.self}
	}
	if !IsValidName(name) {
		logger.Trace().
			Str("item", it.name).
			Str("new_name", name).
			Msg("rename ignored: invalid name")
		return nil
	}

	old := it.name
	if dir := it.parent; dir != nil {
		if other, err := dir.Item(name); err == nil && other != it.self {
			return &InvalidArgumentError{
				Item:   it.self,
				Reason: fmt.Sprintf("name %q is already used in directory %q", name, dir.name),
			}
		}
		dir.unlink(it.self)
		it.name = name
		dir.insert(it.self)
	} else {
		it.name = name
	}
	it.touch()

	logger.Debug().
		Str("old_name", old).
		Str("new_name", name).
		Msg("item renamed")
	return nil
}

// MakeRoot detaches the item from its directory. The directory must be
// writable. It is a no-op for a root.
func (it *item) MakeRoot() error {
	dir := it.parent
	if dir == nil {
		return nil
	}
	if !dir.writable {
		logger.Trace().
			Str("item", it.name).
			Str("directory", dir.name).
			Msg("detach refused: directory not writable")
		return &NotWritableError{Item: dir}
	}
	dir.unlink(it.self)
	dir.touch()
	it.parent = nil

	logger.Debug().
		Str("item", it.name).
		Str("directory", dir.name).
		Msg("item detached")
	return nil
}

// HasOverlappingUsePeriod reports whether the use periods of the two
// items, from creation to last modification, overlap. Items that were
// never modified have no use period.
func (it *item) HasOverlappingUsePeriod(other Item) bool {
	if other == nil {
		return false
	}
	o := other.base()
	if it.modified.IsZero() || o.modified.IsZero() {
		return false
	}
	return !(it.created.Before(o.created) && it.modified.Before(o.created)) &&
		!(o.created.Before(it.created) && o.modified.Before(it.created))
}
