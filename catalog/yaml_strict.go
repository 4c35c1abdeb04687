package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a key repeated within one YAML mapping or JSON
// object, with both the first and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("catalog: duplicate key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// StrictYAMLReader decodes a multi-document YAML stream into Documents. Each
// document is first read as a yaml.Node to locate duplicate keys, then
// decoded into a Document.
type StrictYAMLReader struct {
	nodes *yaml.Decoder
	docs  *yaml.Decoder
}

// NewStrictYAMLReader constructs a StrictYAMLReader over data.
func NewStrictYAMLReader(data []byte, opt ParseOpt) *StrictYAMLReader {
	docs := yaml.NewDecoder(bytes.NewReader(data))
	docs.KnownFields(!opt.AllowUnknownFields)
	return &StrictYAMLReader{nodes: yaml.NewDecoder(bytes.NewReader(data)), docs: docs}
}

// Next returns the next document. It returns (nil, io.EOF) when the stream
// is exhausted and (nil, nil) for an empty document.
func (s *StrictYAMLReader) Next() (*Document, error) {
	var root yaml.Node
	if err := s.nodes.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	if err := checkDuplicateKeys(&root); err != nil {
		return nil, err
	}
	var doc Document
	if err := s.docs.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	return &doc, nil
}

// ReadAll reads all documents from the YAML stream, skipping empty ones.
func (s *StrictYAMLReader) ReadAll() ([]*Document, error) {
	var out []*Document
	for {
		d, err := s.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		if d != nil {
			out = append(out, d)
		}
	}
}

func checkDuplicateKeys(n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			if err := checkDuplicateKeys(c); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if pos, dup := first[k.Value]; dup {
				return &DuplicateKeyError{Key: k.Value, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[k.Value] = [2]int{k.Line, k.Column}
			if err := checkDuplicateKeys(n.Content[i+1]); err != nil {
				return err
			}
		}
	}
	return nil
}
