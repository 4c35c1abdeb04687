package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/reoring/valueschema"
)

var (
	ErrUnsupportedFormat = errors.New("catalog: unsupported document format")
	ErrDuplicateSchema   = errors.New("catalog: schema defined more than once")
	ErrDuplicateList     = errors.New("catalog: list defined more than once")
)

// Document is the serialized form of a set of named schemas and the option
// lists that go with them.
type Document struct {
	Schemas map[string]valueschema.Schema `json:"schemas" yaml:"schemas"`
	Lists   map[string]ListSource         `json:"lists,omitempty" yaml:"lists,omitempty"`
}

// ParseOpt controls document decoding.
type ParseOpt struct {
	// AllowUnknownFields accepts keys the document format does not define.
	// Unknown keys are rejected by default so that typos such as "minLenght"
	// do not silently drop a constraint.
	AllowUnknownFields bool
}

// ParseJSON decodes a JSON document. A key repeated within one object is
// reported as *DuplicateKeyError.
func ParseJSON(data []byte, opt ParseOpt) (*Document, error) {
	if err := checkJSONDuplicateKeys(data); err != nil {
		return nil, fmt.Errorf("catalog: decode json: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if !opt.AllowUnknownFields {
		dec.DisallowUnknownFields()
	}
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode json: %w", err)
	}
	return &doc, nil
}

// ParseYAML decodes a YAML stream. Multiple documents ("---") are merged; a
// schema or list name may appear in only one of them. Duplicate keys within
// a mapping are reported as *DuplicateKeyError.
func ParseYAML(data []byte, opt ParseOpt) (*Document, error) {
	r := NewStrictYAMLReader(data, opt)
	out := &Document{}
	for {
		doc, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		if doc == nil {
			continue
		}
		if err := out.merge(doc); err != nil {
			return nil, err
		}
	}
}

// Load reads a document from path, choosing the decoder by extension
// (.json, .yaml, .yml).
func Load(path string, opt ParseOpt) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data, opt)
	case ".yaml", ".yml":
		return ParseYAML(data, opt)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func (d *Document) merge(other *Document) error {
	for name, s := range other.Schemas {
		if _, dup := d.Schemas[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateSchema, name)
		}
		if d.Schemas == nil {
			d.Schemas = map[string]valueschema.Schema{}
		}
		d.Schemas[name] = s
	}
	for name, l := range other.Lists {
		if _, dup := d.Lists[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateList, name)
		}
		if d.Lists == nil {
			d.Lists = map[string]ListSource{}
		}
		d.Lists[name] = l
	}
	return nil
}
