package valueschema

import (
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-json"
)

// Result is the outcome of one validation: the canonical Value when Err is
// nil, otherwise the rejection. Exactly one of the two is meaningful.
type Result struct {
	Value Value
	Err   *Error
}

// OK reports whether the value was accepted.
func (r Result) OK() bool { return r.Err == nil }

// MarshalJSON encodes {"value": ...} or {"error": {...}}.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(struct {
			Error *Error `json:"error"`
		}{r.Err})
	}
	return json.Marshal(struct {
		Value Value `json:"value"`
	}{r.Value})
}

func accept(v Value) Result { return Result{Value: v} }

// ValidationFn validates one raw input against a compiled Schema. It is
// immutable and safe for concurrent use.
type ValidationFn func(v any) Result

// Parse runs fn and returns the canonical value, or the *Error as an error.
func (fn ValidationFn) Parse(v any) (Value, error) {
	r := fn(v)
	if r.Err != nil {
		return Value{}, r.Err
	}
	return r.Value, nil
}

// validator is implemented by one type per ValueType; Compile picks the
// implementation once and the returned closure calls it directly.
type validator interface {
	validate(v Value) Result
}

// Option configures Compile.
type Option func(*config)

type config struct {
	clock func() time.Time
	loc   *time.Location
}

// WithClock sets the source of "now" used to resolve relative date bounds.
// Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.clock = now
		}
	}
}

// WithLocation sets the zone in which "today" starts. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// Compile resolves the defaults of s once and returns the function that
// validates values against it. It fails only for an unknown ValueType or a
// Regex that does not compile.
func Compile(s Schema, opts ...Option) (ValidationFn, error) {
	cfg := config{clock: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(&cfg)
	}
	vd, err := newValidator(s, cfg)
	if err != nil {
		return nil, err
	}
	return func(v any) Result { return vd.validate(Of(v)) }, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(s Schema, opts ...Option) ValidationFn {
	fn, err := Compile(s, opts...)
	if err != nil {
		panic(err)
	}
	return fn
}

func newValidator(s Schema, cfg config) (validator, error) {
	switch s.ValueType {
	case Text:
		p := textParams{
			invalid: invalidCode(s, CodeInvalidText),
			minLen:  intOr(s.MinLength, defaultTextMinChars),
			maxLen:  intOr(s.MaxLength, DefaultMaxChars),
		}
		if s.Regex != "" {
			re, err := compilePattern(s.Regex)
			if err != nil {
				return nil, err
			}
			p.pattern = re
		}
		return textValidator{p}, nil

	case Integer, Decimal:
		places := 0
		if s.ValueType == Decimal {
			places = DefaultNbrDecimals
			if s.NbrDecimalPlaces != nil && *s.NbrDecimalPlaces >= 0 {
				places = min(*s.NbrDecimalPlaces, maxNbrDecimals)
			}
		}
		factor := math.Pow10(places)
		return numberValidator{
			text: textParams{
				invalid:      invalidCode(s, CodeInvalidNumber),
				minLen:       intOr(s.MinLength, defaultNumMinChars),
				maxLen:       intOr(s.MaxLength, DefaultMaxChars),
				pattern:      numberPattern,
				emptyInvalid: true,
			},
			factor:   factor,
			minValue: roundTo(floatOr(s.MinValue, 0), factor),
			maxValue: roundTo(floatOr(s.MaxValue, DefaultMaxNumber), factor),
		}, nil

	case Boolean:
		return booleanValidator{textParams{
			invalid:        invalidCode(s, CodeInvalidBoolean),
			minLen:         1,
			maxLen:         booleanMaxChars,
			pattern:        booleanPattern,
			emptyInvalid:   true,
			lengthAsFormat: true,
		}}, nil

	case Date:
		return dateValidator{
			text: textParams{
				invalid:        invalidCode(s, CodeInvalidDate),
				minLen:         1,
				maxLen:         dateMaxChars,
				pattern:        datePattern,
				emptyInvalid:   true,
				lengthAsFormat: true,
			},
			window: newDateWindow(s, cfg),
		}, nil

	case Timestamp:
		return timestampValidator{
			text: textParams{
				invalid:        invalidCode(s, CodeInvalidTimestamp),
				minLen:         1,
				maxLen:         timestampMaxChars,
				pattern:        timestampPattern,
				emptyInvalid:   true,
				lengthAsFormat: true,
			},
			window: newDateWindow(s, cfg),
		}, nil

	case Ds, Array:
		return fallbackValidator{
			invalid: invalidCode(s, CodeInvalidText),
			maxLen:  fallbackMaxChars,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownValueType, s.ValueType)
	}
}

func invalidCode(s Schema, def ErrorCode) ErrorCode {
	if s.ErrorID != "" {
		return s.ErrorID
	}
	return def
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil || math.IsNaN(*p) {
		return def
	}
	return *p
}
