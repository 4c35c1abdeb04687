// Package valueschema compiles declarative descriptions of primitive values
// into reusable validation functions.
//
// A Schema names the expected ValueType (text, integer, decimal, boolean,
// date, timestamp) and optional constraints. Compile resolves every default
// once and returns a ValidationFn; the function accepts a loosely-typed input
// and returns a Result holding either the canonical value (trimmed text,
// rounded float64, bool, or the date string) or an *Error with a stable code
// and the parameters a message would interpolate.
//
// Design policy:
//   - Compilation resolves defaults and picks the validator; validation never
//     branches on ValueType.
//   - Validation is pure and never panics or logs. Errors are values.
//   - Error messages are not rendered here. Codes and params are handed to the
//     caller.
//   - Relative date bounds are resolved against an injectable clock.
//
// Typical usage:
//
//	age := valueschema.MustCompile(valueschema.Schema{
//		ValueType: valueschema.Integer,
//		MinValue:  valueschema.Ptr(18.0),
//		MaxValue:  valueschema.Ptr(150.0),
//	})
//	r := age("17")
//	// r.Err.Code == valueschema.CodeMinValue, r.Err.Params == []string{"18"}
//
// Schemas can also be decoded from JSON or YAML documents with the catalog
// package, and the cmd/valueschema command checks values from the shell.
package valueschema
