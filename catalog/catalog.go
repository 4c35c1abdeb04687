// Package catalog decodes documents of named value schemas (JSON or YAML)
// and compiles them into a lookup of validation functions.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/reoring/valueschema"
)

// ErrUnknownSchema is returned when a name is not in the catalog.
var ErrUnknownSchema = errors.New("catalog: unknown schema")

// Catalog holds one compiled ValidationFn per schema of a Document. It is
// read-only after Compile and safe for concurrent use.
type Catalog struct {
	schemas map[string]valueschema.Schema
	fns     map[string]valueschema.ValidationFn
	lists   map[string]ListSource
	names   []string
}

// Compile compiles every schema of doc once. All failing schemas are
// reported together, each prefixed with its name.
func Compile(doc *Document, opts ...valueschema.Option) (*Catalog, error) {
	c := &Catalog{
		schemas: make(map[string]valueschema.Schema, len(doc.Schemas)),
		fns:     make(map[string]valueschema.ValidationFn, len(doc.Schemas)),
		lists:   make(map[string]ListSource, len(doc.Lists)),
	}
	for name := range doc.Schemas {
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)

	var errs []error
	for _, name := range c.names {
		s := doc.Schemas[name]
		fn, err := valueschema.Compile(s, opts...)
		if err != nil {
			errs = append(errs, fmt.Errorf("catalog: schema %q: %w", name, err))
			continue
		}
		c.schemas[name] = s
		c.fns[name] = fn
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	for name, l := range doc.Lists {
		c.lists[name] = l
	}
	return c, nil
}

// Validate runs the named schema against v.
func (c *Catalog) Validate(name string, v any) (valueschema.Result, error) {
	fn, ok := c.fns[name]
	if !ok {
		return valueschema.Result{}, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	return fn(v), nil
}

// Func returns the compiled function of the named schema.
func (c *Catalog) Func(name string) (valueschema.ValidationFn, bool) {
	fn, ok := c.fns[name]
	return fn, ok
}

// Schema returns the named schema as decoded.
func (c *Catalog) Schema(name string) (valueschema.Schema, bool) {
	s, ok := c.schemas[name]
	return s, ok
}

// Names returns the schema names in sorted order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// List returns the named option list.
func (c *Catalog) List(name string) (ListSource, bool) {
	l, ok := c.lists[name]
	return l, ok
}

// KeyedLists returns the entries of every keyed list, by list name.
func (c *Catalog) KeyedLists() KeyedLists {
	out := KeyedLists{}
	for name, l := range c.lists {
		if l.IsKeyed || l.ListType == ListKeyed {
			out[name] = l.KeyedLists
		}
	}
	return out
}

// Options returns the entries of a list. For a keyed list, key selects the
// entries; it is ignored otherwise.
func (c *Catalog) Options(list, key string) (SimpleList, bool) {
	l, ok := c.lists[list]
	if !ok {
		return nil, false
	}
	if l.IsKeyed || l.ListType == ListKeyed {
		entries, ok := l.KeyedLists[key]
		return entries, ok
	}
	return l.List, true
}
