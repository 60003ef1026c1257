package memtree

import (
	"fmt"

	"github.com/gammazero/toposort"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/memtree/pkg/memtree/tree"
)

// Forest is the result of building a manifest: one or more trees plus
// an index from entry id to item.
type Forest struct {
	roots []tree.Item
	byID  map[string]tree.Item
	order []string
}

// Roots returns the root items in manifest order.
func (f *Forest) Roots() []tree.Item {
	roots := make([]tree.Item, len(f.roots))
	copy(roots, f.roots)
	return roots
}

// Lookup returns the item built for the entry with the given id.
func (f *Forest) Lookup(id string) (tree.Item, bool) {
	it, ok := f.byID[id]
	return it, ok
}

// Len returns the number of items built.
func (f *Forest) Len() int {
	return len(f.byID)
}

// Order returns entry ids in the order they were constructed.
func (f *Forest) Order() []string {
	order := make([]string, len(f.order))
	copy(order, f.order)
	return order
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used while building.
func WithLogger(logger zerolog.Logger) BuildOption {
	return func(c *buildConfig) {
		c.logger = logger
	}
}

// Build constructs the trees described by m. Parents are created before
// their children; items are created writable and receive their final
// writable flag once everything is in place, so read-only directories
// can still be populated.
func Build(m *Manifest, opts ...BuildOption) (*Forest, error) {
	cfg := buildConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	order, err := buildOrder(m)
	if err != nil {
		return nil, err
	}

	forest := &Forest{
		byID:  make(map[string]tree.Item, len(m.Items)),
		order: make([]string, 0, len(m.Items)),
	}

	for _, idx := range order {
		e := m.Items[idx]
		var parent *tree.Directory
		if e.Parent != "" {
			// Validate guarantees the parent is a directory.
			parent = forest.byID[e.Parent].(*tree.Directory)
		}

		it, err := buildEntry(parent, e)
		if err != nil {
			return nil, &ManifestError{Index: idx, ID: e.ID, Message: "cannot create " + e.Kind, Err: err}
		}
		forest.byID[e.ID] = it
		forest.order = append(forest.order, e.ID)

		cfg.logger.Debug().
			Str("id", e.ID).
			Str("kind", e.Kind).
			Str("name", it.Name()).
			Str("parent", e.Parent).
			Msg("item built")
	}

	for _, e := range m.Items {
		forest.byID[e.ID].SetWritable(e.IsWritable())
		if e.Parent == "" {
			forest.roots = append(forest.roots, forest.byID[e.ID])
		}
	}

	cfg.logger.Info().
		Int("items", forest.Len()).
		Int("roots", len(forest.roots)).
		Msg("manifest built")
	return forest, nil
}

func buildEntry(parent *tree.Directory, e Entry) (tree.Item, error) {
	if e.Kind == tree.KindDirectory {
		d, err := tree.NewDirectory(parent, e.Name, true)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	f, err := tree.NewFile(parent, e.Name, e.Size, true, e.Type)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// buildOrder returns entry indexes sorted so that every parent comes
// before its children.
func buildOrder(m *Manifest) ([]int, error) {
	index := make(map[string]int, len(m.Items))
	for i, e := range m.Items {
		index[e.ID] = i
	}

	// Edge is [2]interface{} where element 0 comes before element 1
	edges := make([]toposort.Edge, 0, len(m.Items))
	for _, e := range m.Items {
		if e.Parent != "" {
			edges = append(edges, toposort.Edge{e.Parent, e.ID})
		}
	}

	sorted, err := toposort.Toposort(edges)
	if err != nil {
		return nil, fmt.Errorf("loop in parent references: %w", err)
	}

	order := make([]int, 0, len(m.Items))
	seen := make(map[int]bool, len(m.Items))
	for _, v := range sorted {
		id, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected type in topological sort result: %T", v)
		}
		i := index[id]
		order = append(order, i)
		seen[i] = true
	}

	// entries with neither parent nor children
	for i := range m.Items {
		if !seen[i] {
			order = append(order, i)
		}
	}
	return order, nil
}
