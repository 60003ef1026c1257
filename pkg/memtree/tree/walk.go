package tree

import "errors"

// SkipDir can be returned by a WalkFunc to skip the children of the
// directory it was called with.
var SkipDir = errors.New("skip this directory")

// WalkFunc is called for every item reached by Walk. depth is 0 for
// the starting item.
type WalkFunc func(it Item, depth int) error

// Walk visits it and everything below it in pre-order, children in
// their sorted order. The first error other than SkipDir stops the
// walk and is returned.
func Walk(it Item, fn WalkFunc) error {
	err := walk(it, 0, fn)
	if err == SkipDir {
		return nil
	}
	return err
}

func walk(it Item, depth int, fn WalkFunc) error {
	if err := fn(it, depth); err != nil {
		return err
	}
	d, ok := it.(*Directory)
	if !ok {
		return nil
	}
	for _, child := range d.Items() {
		if err := walk(child, depth+1, fn); err != nil {
			if err == SkipDir {
				continue
			}
			return err
		}
	}
	return nil
}
