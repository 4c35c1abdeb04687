package valueschema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// textParams is the resolved string stage shared by every validator.
type textParams struct {
	invalid ErrorCode
	minLen  int
	maxLen  int
	pattern *regexp.Regexp // nil: any text
	// emptyInvalid reports empty text with the invalid code rather than as a
	// length violation.
	emptyInvalid bool
	// lengthAsFormat reports length violations with the invalid code; the
	// bounds belong to a fixed format, not to the schema author.
	lengthAsFormat bool
}

// check stringifies and trims v, then applies length and pattern checks in
// that order. Text that is not valid UTF-8 has the invalid code. The trimmed
// text is returned on success.
func (p textParams) check(v Value) (string, *Error) {
	if v.IsAbsent() {
		return "", &Error{Code: p.invalid}
	}
	s := strings.TrimSpace(v.String())
	if !utf8.ValidString(s) {
		return "", &Error{Code: p.invalid}
	}
	if s == "" && p.emptyInvalid {
		return "", &Error{Code: p.invalid}
	}
	n := charCount(s)
	if n < p.minLen {
		if p.lengthAsFormat {
			return "", &Error{Code: p.invalid}
		}
		return "", &Error{Code: CodeMinLength, Params: []string{strconv.Itoa(p.minLen)}}
	}
	if n > p.maxLen {
		if p.lengthAsFormat {
			return "", &Error{Code: p.invalid}
		}
		return "", &Error{Code: CodeMaxLength, Params: []string{strconv.Itoa(p.maxLen)}}
	}
	if p.pattern != nil && !p.pattern.MatchString(s) {
		return "", &Error{Code: p.invalid}
	}
	return s, nil
}

// charCount counts characters as code points of the NFC form, so a
// precomposed and a decomposed accent measure the same.
func charCount(s string) int {
	if norm.NFC.IsNormalString(s) {
		return utf8.RuneCountInString(s)
	}
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// compilePattern anchors src so that it must match the whole text.
func compilePattern(src string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + src + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, src, err)
	}
	return re, nil
}

type textValidator struct{ p textParams }

func (t textValidator) validate(v Value) Result {
	s, err := t.p.check(v)
	if err != nil {
		return Result{Err: err}
	}
	return accept(String(s))
}

// fallbackValidator accepts any present value as is.
type fallbackValidator struct {
	invalid ErrorCode
	maxLen  int
}

func (f fallbackValidator) validate(v Value) Result {
	if v.IsAbsent() {
		return fail(f.invalid)
	}
	if charCount(v.String()) > f.maxLen {
		return fail(CodeMaxLength, strconv.Itoa(f.maxLen))
	}
	return accept(v)
}
