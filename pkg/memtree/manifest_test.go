package memtree_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/memtree/pkg/memtree"
)

const scenarioYAML = `
description: scenario
items:
  - id: root
    kind: directory
    name: root
  - id: b
    kind: file
    parent: root
    name: b.txt
    size: 10
    type: txt
  - id: a
    kind: file
    parent: root
    name: a.txt
    size: 5
    type: txt
`

func TestParseManifest(t *testing.T) {
	m, err := memtree.ParseManifest([]byte(scenarioYAML))
	require.NoError(t, err)

	assert.Equal(t, "scenario", m.Description)
	require.Len(t, m.Items, 3)
	assert.Equal(t, "b.txt", m.Items[1].Name)
	assert.Equal(t, "root", m.Items[1].Parent)
	assert.Equal(t, 10, m.Items[1].Size)
	assert.True(t, m.Items[1].IsWritable())
}

func TestParseManifestAssignsIDs(t *testing.T) {
	m, err := memtree.ParseManifest([]byte(`
items:
  - kind: directory
    name: loose
`))
	require.NoError(t, err)
	_, err = uuid.Parse(m.Items[0].ID)
	assert.NoError(t, err, "generated id should be a uuid")
}

func TestParseManifestErrors(t *testing.T) {
	testCases := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name: "unknown kind",
			yaml: `
items:
  - id: x
    kind: symlink
    name: x
`,
			field: "kind",
		},
		{
			name: "duplicate id",
			yaml: `
items:
  - id: x
    kind: directory
    name: x
  - id: x
    kind: directory
    name: y
`,
			field: "id",
		},
		{
			name: "missing parent",
			yaml: `
items:
  - id: f
    kind: file
    name: f.txt
    parent: nowhere
`,
			field: "parent",
		},
		{
			name: "file parent",
			yaml: `
items:
  - id: f
    kind: file
    name: f.txt
  - id: g
    kind: file
    name: g.txt
    parent: f
`,
			field: "parent",
		},
		{
			name: "own parent",
			yaml: `
items:
  - id: d
    kind: directory
    name: d
    parent: d
`,
			field: "parent",
		},
		{
			name: "negative size",
			yaml: `
items:
  - id: f
    kind: file
    name: f.txt
    size: -4
`,
			field: "size",
		},
		{
			name: "directory with size",
			yaml: `
items:
  - id: d
    kind: directory
    name: d
    size: 3
`,
			field: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := memtree.ParseManifest([]byte(tc.yaml))
			require.Error(t, err)

			var me *memtree.ManifestError
			require.True(t, errors.As(err, &me), "expected ManifestError, got %T: %v", err, err)
			assert.Equal(t, tc.field, me.Field)
		})
	}
}

func TestParseManifestInvalidYAML(t *testing.T) {
	_, err := memtree.ParseManifest([]byte("items: [unclosed"))
	assert.Error(t, err)

	_, err = memtree.ParseManifest([]byte("items: []\nbogus: 1\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = memtree.ParseManifest(nil)
	assert.Error(t, err)
}

func TestManifestRoundTrip(t *testing.T) {
	sample := memtree.SampleManifest("sample")
	data, err := memtree.MarshalManifest(sample)
	require.NoError(t, err)

	parsed, err := memtree.ParseManifest(data)
	require.NoError(t, err)
	assert.Equal(t, sample, parsed)
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0644))

	m, err := memtree.LoadManifest(path)
	require.NoError(t, err)
	assert.Len(t, m.Items, 3)

	_, err = memtree.LoadManifest(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
