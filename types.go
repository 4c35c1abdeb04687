package valueschema

// ValueType selects the validator and the defaults a Schema compiles to.
type ValueType string

const (
	Text      ValueType = "text"
	Integer   ValueType = "integer"
	Decimal   ValueType = "decimal"
	Boolean   ValueType = "boolean"
	Date      ValueType = "date"      // yyyy-mm-dd
	Timestamp ValueType = "timestamp" // yyyy-mm-ddThh:mm:ss.fffZ
	// Ds and Array are accepted without inspection beyond presence and size.
	Ds    ValueType = "ds"
	Array ValueType = "array"
)

// Valid reports whether t is one of the known value types.
func (t ValueType) Valid() bool {
	switch t {
	case Text, Integer, Decimal, Boolean, Date, Timestamp, Ds, Array:
		return true
	default:
		return false
	}
}

// Schema describes an expected primitive value. Which fields are consulted
// depends on ValueType; the others are ignored.
type Schema struct {
	ValueType ValueType `json:"valueType" yaml:"valueType"`
	// MinLength defaults to 0 for text and 1 for numbers.
	MinLength *int `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	// MaxLength defaults to 1000.
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	// Regex must match the whole trimmed text (RE2 syntax). Text only.
	Regex string `json:"regex,omitempty" yaml:"regex,omitempty"`
	// MinValue is a numeric bound for numbers, and a day offset relative to
	// today for dates and timestamps (-10 allows dates up to 10 days ago).
	MinValue *float64 `json:"minValue,omitempty" yaml:"minValue,omitempty"`
	// MaxValue mirrors MinValue for the upper bound.
	MaxValue *float64 `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`
	// NbrDecimalPlaces is the rounding precision of decimals (default 2).
	NbrDecimalPlaces *int `json:"nbrDecimalPlaces,omitempty" yaml:"nbrDecimalPlaces,omitempty"`
	// ErrorID replaces the type's invalid-value code.
	ErrorID ErrorCode `json:"errorId,omitempty" yaml:"errorId,omitempty"`
}

// Ptr returns a pointer to v. It keeps optional Schema fields readable:
//
//	valueschema.Schema{ValueType: valueschema.Integer, MinValue: valueschema.Ptr(18.0)}
func Ptr[T any](v T) *T { return &v }

// Defaults.
const (
	DefaultMaxChars     = 1000
	DefaultDaysRange    = 365000
	DefaultMaxNumber    = 1<<53 - 1
	DefaultNbrDecimals  = 2
	maxNbrDecimals      = 15
	fallbackMaxChars    = 10000
	booleanMaxChars     = 5
	dateMaxChars        = 10
	timestampMaxChars   = 25
	defaultTextMinChars = 0
	defaultNumMinChars  = 1
)
