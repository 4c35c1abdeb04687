package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/reoring/valueschema"
	"github.com/reoring/valueschema/catalog"
	"github.com/reoring/valueschema/codec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	case "schemas":
		schemasCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "valueschema CLI\n\nUsage:\n  valueschema check -f catalog.yaml -schema NAME [-now yyyy-mm-dd] [-json] [-v] [value...]\n  valueschema schemas -f catalog.yaml\n\nNotes:\n  - check reads one value per line from stdin when no values are given.\n  - Exit status is 1 when a value is rejected, 2 on usage or catalog errors.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var file, schema, now string
	var asJSON, lenient, verbose bool
	fs.StringVar(&file, "f", "", "catalog file (.json, .yaml, .yml)")
	fs.StringVar(&schema, "schema", "", "schema name")
	fs.StringVar(&now, "now", "", "date used as today (yyyy-mm-dd), defaults to the current date")
	fs.BoolVar(&asJSON, "json", false, "decode each value as a JSON literal")
	fs.BoolVar(&lenient, "lenient", false, "accept unknown keys in the catalog")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	if file == "" || schema == "" {
		fs.Usage()
		os.Exit(2)
	}

	logf := func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}

	var opts []valueschema.Option
	if now != "" {
		today, err := codec.Date(now, time.UTC)
		if err != nil {
			fatalf("invalid -now %q: %v", now, err)
		}
		opts = append(opts, valueschema.WithClock(func() time.Time { return today }))
		logf("check: today=%s", codec.FormatDate(today))
	}

	c := loadCatalog(file, lenient, opts...)
	fn, ok := c.Func(schema)
	if !ok {
		fatalf("%v: %q (known: %s)", catalog.ErrUnknownSchema, schema, strings.Join(c.Names(), ", "))
	}
	if s, ok := c.Schema(schema); ok {
		logf("check: schema=%s valueType=%s", schema, s.ValueType)
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		logf("check: reading values from stdin")
		var err error
		if inputs, err = readLines(os.Stdin); err != nil {
			fatalf("reading stdin: %v", err)
		}
	}

	rejected, err := check(os.Stdout, fn, inputs, asJSON)
	if err != nil {
		fatalf("check: %v", err)
	}
	logf("check: %d values, %d rejected", len(inputs), rejected)
	if rejected > 0 {
		os.Exit(1)
	}
}

func schemasCmd(args []string) {
	fs := flag.NewFlagSet("schemas", flag.ExitOnError)
	var file string
	var lenient bool
	fs.StringVar(&file, "f", "", "catalog file (.json, .yaml, .yml)")
	fs.BoolVar(&lenient, "lenient", false, "accept unknown keys in the catalog")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	c := loadCatalog(file, lenient)
	for _, name := range c.Names() {
		s, _ := c.Schema(name)
		fmt.Printf("%s\t%s\n", name, s.ValueType)
	}
}

func loadCatalog(file string, lenient bool, opts ...valueschema.Option) *catalog.Catalog {
	doc, err := catalog.Load(file, catalog.ParseOpt{AllowUnknownFields: lenient})
	if err != nil {
		fatalf("%v", err)
	}
	c, err := catalog.Compile(doc, opts...)
	if err != nil {
		fatalf("%v", err)
	}
	return c
}

// outcome is one line of check output.
type outcome struct {
	Input string             `json:"input"`
	Value *valueschema.Value `json:"value,omitempty"`
	Error *valueschema.Error `json:"error,omitempty"`
}

// check validates every input with fn, writes one JSON line per input to w
// and returns the number of rejected inputs.
func check(w io.Writer, fn valueschema.ValidationFn, inputs []string, asJSON bool) (int, error) {
	enc := json.NewEncoder(w)
	rejected := 0
	for _, in := range inputs {
		var v any = in
		if asJSON {
			var lit valueschema.Value
			if err := json.Unmarshal([]byte(in), &lit); err != nil {
				return rejected, fmt.Errorf("value %q is not JSON: %w", in, err)
			}
			v = lit
		}
		r := fn(v)
		out := outcome{Input: in}
		if r.OK() {
			out.Value = &r.Value
		} else {
			out.Error = r.Err
			rejected++
		}
		if err := enc.Encode(out); err != nil {
			return rejected, err
		}
	}
	return rejected, nil
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}
