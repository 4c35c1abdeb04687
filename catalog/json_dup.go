package catalog

import (
	"bytes"
	stdjson "encoding/json"
)

type frameKind int

const (
	frameObject frameKind = iota
	frameArray
)

type dupFrame struct {
	kind         frameKind
	keys         map[string]int64 // key -> offset just past it
	expectingKey bool
}

// checkJSONDuplicateKeys walks the token stream of data and returns a
// *DuplicateKeyError for the first key repeated within one object. Positions
// point just past the closing quote of each key. Syntax errors are left to
// the decoder that runs afterwards.
func checkJSONDuplicateKeys(data []byte) error {
	dec := stdjson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var stack []dupFrame

	// a completed value inside an object means the next string is a key
	valueDone := func() {
		if n := len(stack); n > 0 && stack[n-1].kind == frameObject {
			stack[n-1].expectingKey = true
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			// io.EOF or a syntax error
			return nil
		}
		switch v := tok.(type) {
		case stdjson.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{kind: frameObject, keys: map[string]int64{}, expectingKey: true})
			case '[':
				stack = append(stack, dupFrame{kind: frameArray})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			n := len(stack)
			if n > 0 && stack[n-1].kind == frameObject && stack[n-1].expectingKey {
				top := &stack[n-1]
				off := dec.InputOffset()
				if first, dup := top.keys[v]; dup {
					fl, fc := lineCol(data, first)
					l, c := lineCol(data, off)
					return &DuplicateKeyError{Key: v, FirstLine: fl, FirstCol: fc, Line: l, Col: c}
				}
				top.keys[v] = off
				top.expectingKey = false
				continue
			}
			valueDone()
		default:
			valueDone()
		}
	}
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(data []byte, off int64) (int, int) {
	if off > int64(len(data)) {
		off = int64(len(data))
	}
	head := data[:off]
	line := bytes.Count(head, []byte{'\n'}) + 1
	col := int(off) - (bytes.LastIndexByte(head, '\n') + 1)
	return line, col
}
