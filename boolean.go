package valueschema

import "regexp"

var booleanPattern = regexp.MustCompile(`^(?:true|false|1|0)$`)

// booleanValidator treats absent input as false; it is the only validator
// that does so.
type booleanValidator struct{ text textParams }

func (b booleanValidator) validate(v Value) Result {
	if v.IsAbsent() {
		return accept(Bool(false))
	}
	s, err := b.text.check(v)
	if err != nil {
		return Result{Err: err}
	}
	return accept(Bool(s == "true" || s == "1"))
}
