package memtree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/memtree/pkg/memtree/tree"
)

// Manifest describes a set of trees to construct.
type Manifest struct {
	Description string  `yaml:"description,omitempty"`
	Items       []Entry `yaml:"items"`
}

// Entry describes one directory or file. Parent names the id of the
// containing directory; an empty Parent makes the entry a root.
type Entry struct {
	ID       string `yaml:"id,omitempty"`
	Kind     string `yaml:"kind"`
	Name     string `yaml:"name"`
	Parent   string `yaml:"parent,omitempty"`
	Writable *bool  `yaml:"writable,omitempty"`
	Size     int    `yaml:"size,omitempty"`
	Type     string `yaml:"type,omitempty"`
}

// IsWritable returns the entry's writable flag, true when omitted.
func (e Entry) IsWritable() bool {
	return e.Writable == nil || *e.Writable
}

// ManifestError reports a problem with a single manifest entry.
type ManifestError struct {
	Index   int    // position of the entry in Items
	ID      string // entry id, possibly generated
	Field   string // offending field, empty when the entry as a whole is at fault
	Message string
	Err     error // underlying tree error, if any
}

func (e *ManifestError) Error() string {
	msg := fmt.Sprintf("manifest entry %d (id %q)", e.Index, e.ID)
	if e.Field != "" {
		msg += fmt.Sprintf(" [field: %s]", e.Field)
	}
	msg += ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// ParseManifest decodes and validates a YAML manifest. Entries without
// an id receive a random one.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest is empty")
		}
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	m.assignIDs()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// MarshalManifest encodes a manifest as YAML.
func MarshalManifest(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return buf.Bytes(), nil
}

func (m *Manifest) assignIDs() {
	for i := range m.Items {
		if m.Items[i].ID == "" {
			m.Items[i].ID = uuid.NewString()
		}
	}
}

// Validate checks the manifest's structure: known kinds, unique ids,
// parents that exist and are directories, and file-only fields on
// files. It does not detect loops in parent references; Build does.
func (m *Manifest) Validate() error {
	kinds := make(map[string]string, len(m.Items))
	for i, e := range m.Items {
		if e.ID == "" {
			return &ManifestError{Index: i, Field: "id", Message: "id is required"}
		}
		if _, dup := kinds[e.ID]; dup {
			return &ManifestError{Index: i, ID: e.ID, Field: "id", Message: "duplicate id"}
		}
		switch e.Kind {
		case tree.KindDirectory:
			if e.Size != 0 || e.Type != "" {
				return &ManifestError{Index: i, ID: e.ID, Message: "size and type only apply to files"}
			}
		case tree.KindFile:
			if !tree.IsValidSize(e.Size) {
				return &ManifestError{Index: i, ID: e.ID, Field: "size", Message: fmt.Sprintf("size %d is out of range", e.Size)}
			}
		default:
			return &ManifestError{Index: i, ID: e.ID, Field: "kind", Message: fmt.Sprintf("unknown kind %q", e.Kind)}
		}
		kinds[e.ID] = e.Kind
	}

	for i, e := range m.Items {
		if e.Parent == "" {
			continue
		}
		if e.Parent == e.ID {
			return &ManifestError{Index: i, ID: e.ID, Field: "parent", Message: "entry is its own parent"}
		}
		kind, ok := kinds[e.Parent]
		if !ok {
			return &ManifestError{Index: i, ID: e.ID, Field: "parent", Message: fmt.Sprintf("unknown parent %q", e.Parent)}
		}
		if kind != tree.KindDirectory {
			return &ManifestError{Index: i, ID: e.ID, Field: "parent", Message: fmt.Sprintf("parent %q is not a directory", e.Parent)}
		}
	}
	return nil
}

// SampleManifest returns a small manifest showing every field.
func SampleManifest(description string) *Manifest {
	readOnly := false
	return &Manifest{
		Description: description,
		Items: []Entry{
			{ID: "root", Kind: tree.KindDirectory, Name: "root"},
			{ID: "src", Kind: tree.KindDirectory, Name: "src", Parent: "root"},
			{ID: "main", Kind: tree.KindFile, Name: "Main.java", Parent: "src", Size: 120, Type: tree.TypeJava},
			{ID: "readme", Kind: tree.KindFile, Name: "README.txt", Parent: "root", Size: 64, Type: tree.TypeText},
			{ID: "manual", Kind: tree.KindFile, Name: "manual.pdf", Parent: "root", Size: 2048, Type: tree.TypePDF, Writable: &readOnly},
		},
	}
}
