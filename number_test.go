package valueschema_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/reoring/valueschema"
)

const maxNumberParam = "9007199254740991"

func TestInteger_Tables(t *testing.T) {
	runCases(t, []schemaCase{
		{
			name:   "default integer: min 0, max 2^53-1",
			schema: valueschema.Schema{ValueType: valueschema.Integer},
			ok: []okCase{
				{in: 0},
				{in: 0.01, want: 0},
				{in: "8.9", want: 9},
				{in: " 42 ", want: 42},
				{in: "5.", want: 5},
				{in: ".5", want: 1},
			},
			bad: []errCase{
				{in: nil, code: valueschema.CodeInvalidNumber},
				{in: math.NaN(), code: valueschema.CodeInvalidNumber},
				{in: "", code: valueschema.CodeInvalidNumber},
				{in: "   ", code: valueschema.CodeInvalidNumber},
				{in: "a12", code: valueschema.CodeInvalidNumber},
				{in: ".1.", code: valueschema.CodeInvalidNumber},
				{in: "1..2", code: valueschema.CodeInvalidNumber},
				{in: "-", code: valueschema.CodeInvalidNumber},
				{in: ".", code: valueschema.CodeInvalidNumber},
				{in: "1e5", code: valueschema.CodeInvalidNumber},
				{in: true, code: valueschema.CodeInvalidNumber},
				{in: math.Inf(1), code: valueschema.CodeInvalidNumber},
				{in: -1, code: valueschema.CodeMinValue, params: []string{"0"}},
				{in: -99999999999, code: valueschema.CodeMinValue, params: []string{"0"}},
				{in: "9999999999999999999999999999999999999999999999999", code: valueschema.CodeMaxValue, params: []string{maxNumberParam}},
			},
		},
		{
			name: "min 18 and max 150",
			schema: valueschema.Schema{
				ValueType: valueschema.Integer,
				MinValue:  valueschema.Ptr(18.0),
				MaxValue:  valueschema.Ptr(150.0),
			},
			ok: []okCase{
				{in: 18},
				{in: 150},
				{in: "000150.01", want: 150},
				{in: 17.612, want: 18},
				{in: 150.455, want: 150},
			},
			bad: []errCase{
				{in: 17, code: valueschema.CodeMinValue, params: []string{"18"}},
				{in: 151, code: valueschema.CodeMaxValue, params: []string{"150"}},
			},
		},
		{
			name: "negative min and positive max are rounded to whole numbers",
			schema: valueschema.Schema{
				ValueType: valueschema.Integer,
				MinValue:  valueschema.Ptr(-10.192),
				MaxValue:  valueschema.Ptr(9.611),
			},
			ok: []okCase{
				{in: "-10.3", want: -10},
				{in: -9},
				{in: 10.4454, want: 10},
				{in: 9},
				{in: 0},
			},
			bad: []errCase{
				{in: -10.6, code: valueschema.CodeMinValue, params: []string{"-10"}},
				{in: -11, code: valueschema.CodeMinValue, params: []string{"-10"}},
				{in: -12, code: valueschema.CodeMinValue, params: []string{"-10"}},
				{in: -99999999999999, code: valueschema.CodeMinValue, params: []string{"-10"}},
				{in: 10.6, code: valueschema.CodeMaxValue, params: []string{"10"}},
				{in: 12, code: valueschema.CodeMaxValue, params: []string{"10"}},
				{in: 8888888888888, code: valueschema.CodeMaxValue, params: []string{"10"}},
			},
		},
		{
			name: "negative range; decimal places ignored for integers",
			schema: valueschema.Schema{
				ValueType:        valueschema.Integer,
				MinValue:         valueschema.Ptr(-100.0),
				MaxValue:         valueschema.Ptr(-10.0),
				NbrDecimalPlaces: valueschema.Ptr(10),
			},
			ok: []okCase{
				{in: "-100", want: -100},
				{in: -99},
				{in: -10},
				{in: -11},
				{in: -10.4, want: -10},
			},
			bad: []errCase{
				{in: -101, code: valueschema.CodeMinValue, params: []string{"-100"}},
				{in: -102, code: valueschema.CodeMinValue, params: []string{"-100"}},
				{in: -99999999999999, code: valueschema.CodeMinValue, params: []string{"-100"}},
				{in: -9, code: valueschema.CodeMaxValue, params: []string{"-10"}},
				{in: -8, code: valueschema.CodeMaxValue, params: []string{"-10"}},
				{in: 0, code: valueschema.CodeMaxValue, params: []string{"-10"}},
			},
		},
		{
			name: "min above max: no valid numbers",
			schema: valueschema.Schema{
				ValueType: valueschema.Integer,
				MinValue:  valueschema.Ptr(10.0),
				MaxValue:  valueschema.Ptr(1.0),
			},
			bad: []errCase{
				{in: -11, code: valueschema.CodeMinValue, params: []string{"10"}},
				{in: 0, code: valueschema.CodeMinValue, params: []string{"10"}},
				{in: 9, code: valueschema.CodeMinValue, params: []string{"10"}},
				{in: 11, code: valueschema.CodeMaxValue, params: []string{"1"}},
				{in: 12, code: valueschema.CodeMaxValue, params: []string{"1"}},
				{in: 8888888888888, code: valueschema.CodeMaxValue, params: []string{"1"}},
			},
		},
		{
			name: "schema length bounds apply to the text form",
			schema: valueschema.Schema{
				ValueType: valueschema.Integer,
				MinLength: valueschema.Ptr(2),
				MaxLength: valueschema.Ptr(4),
				MaxValue:  valueschema.Ptr(100000.0),
			},
			ok: []okCase{
				{in: "10", want: 10},
				{in: 9999},
			},
			bad: []errCase{
				{in: 7, code: valueschema.CodeMinLength, params: []string{"2"}},
				{in: "12345", code: valueschema.CodeMaxLength, params: []string{"4"}},
			},
		},
	})
}

func TestDecimal_Tables(t *testing.T) {
	runCases(t, []schemaCase{
		{
			name:   "default decimal: two places",
			schema: valueschema.Schema{ValueType: valueschema.Decimal},
			ok: []okCase{
				{in: 0},
				{in: "0", want: 0},
				{in: 0.01},
				{in: "8.98", want: 8.98},
				{in: "8.9785432", want: 8.98},
				{in: 0.001, want: 0},
				{in: "01.011", want: 1.01},
				{in: "-0.001", want: 0},
			},
			bad: []errCase{
				{in: nil, code: valueschema.CodeInvalidNumber},
				{in: math.NaN(), code: valueschema.CodeInvalidNumber},
				{in: "", code: valueschema.CodeInvalidNumber},
				{in: "a12", code: valueschema.CodeInvalidNumber},
				{in: ".1.", code: valueschema.CodeInvalidNumber},
				{in: -1, code: valueschema.CodeMinValue, params: []string{"0"}},
				{in: -99999999999, code: valueschema.CodeMinValue, params: []string{"0"}},
				{in: "9999999999999999999999999999999999999999999999999", code: valueschema.CodeMaxValue, params: []string{maxNumberParam}},
			},
		},
		{
			name: "four places with positive bounds",
			schema: valueschema.Schema{
				ValueType:        valueschema.Decimal,
				NbrDecimalPlaces: valueschema.Ptr(4),
				MinValue:         valueschema.Ptr(18.0),
				MaxValue:         valueschema.Ptr(150.0),
			},
			ok: []okCase{
				{in: 17.99999, want: 18},
				{in: 18.000111, want: 18.0001},
				{in: 150.00000999, want: 150},
				{in: "000140.001009099", want: 140.001},
			},
			bad: []errCase{
				{in: "150.0009123", code: valueschema.CodeMaxValue, params: []string{"150"}},
				{in: 151, code: valueschema.CodeMaxValue, params: []string{"150"}},
				{in: 11111111111111.1111, code: valueschema.CodeMaxValue, params: []string{"150"}},
				{in: 17.9999012, code: valueschema.CodeMinValue, params: []string{"18"}},
				{in: 0, code: valueschema.CodeMinValue, params: []string{"18"}},
				{in: -1111, code: valueschema.CodeMinValue, params: []string{"18"}},
			},
		},
		{
			name: "negative places reset to two; bounds rounded",
			schema: valueschema.Schema{
				ValueType:        valueschema.Decimal,
				NbrDecimalPlaces: valueschema.Ptr(-10),
				MinValue:         valueschema.Ptr(-10.229),
				MaxValue:         valueschema.Ptr(10.35198),
			},
			ok: []okCase{
				{in: "-10.2345", want: -10.23},
				{in: -9.9901234, want: -9.99},
				{in: 10.35456, want: 10.35},
				{in: 9.99900999, want: 10},
				{in: 0},
			},
			bad: []errCase{
				{in: -10.239, code: valueschema.CodeMinValue, params: []string{"-10.23"}},
				{in: -12, code: valueschema.CodeMinValue, params: []string{"-10.23"}},
				{in: -99999999999999, code: valueschema.CodeMinValue, params: []string{"-10.23"}},
				{in: 10.35645, code: valueschema.CodeMaxValue, params: []string{"10.35"}},
				{in: 12, code: valueschema.CodeMaxValue, params: []string{"10.35"}},
				{in: 8888888888888, code: valueschema.CodeMaxValue, params: []string{"10.35"}},
			},
		},
		{
			name: "both bounds negative",
			schema: valueschema.Schema{
				ValueType: valueschema.Decimal,
				MinValue:  valueschema.Ptr(-100.11119),
				MaxValue:  valueschema.Ptr(-10.0),
			},
			ok: []okCase{
				{in: "-100.1112122", want: -100.11},
				{in: -99.7632, want: -99.76},
				{in: -10.0000456, want: -10},
				{in: -11.123456, want: -11.12},
			},
			bad: []errCase{
				{in: -100.119266, code: valueschema.CodeMinValue, params: []string{"-100.11"}},
				{in: -102, code: valueschema.CodeMinValue, params: []string{"-100.11"}},
				{in: -99999999999999, code: valueschema.CodeMinValue, params: []string{"-100.11"}},
				{in: -9.990912, code: valueschema.CodeMaxValue, params: []string{"-10"}},
				{in: -8, code: valueschema.CodeMaxValue, params: []string{"-10"}},
				{in: 0, code: valueschema.CodeMaxValue, params: []string{"-10"}},
			},
		},
		{
			name: "zero places behaves like an integer",
			schema: valueschema.Schema{
				ValueType:        valueschema.Decimal,
				NbrDecimalPlaces: valueschema.Ptr(0),
			},
			ok: []okCase{
				{in: "2.5", want: 3},
				{in: 2.49, want: 2},
			},
		},
	})
}

func TestNumber_RoundsHalfAwayFromZero(t *testing.T) {
	fn := valueschema.MustCompile(valueschema.Schema{
		ValueType: valueschema.Integer,
		MinValue:  valueschema.Ptr(-100.0),
	})
	cases := map[string]float64{
		"2.5":  3,
		"-2.5": -3,
		"0.5":  1,
		"-0.5": -1,
		"-0.4": 0,
	}
	for in, want := range cases {
		r := fn(in)
		if !r.OK() {
			t.Fatalf("%s: unexpected error %v", in, r.Err)
		}
		got := r.Value.Float()
		if got != want {
			t.Fatalf("%s: expected %v, got %v", in, want, got)
		}
		if got == 0 && math.Signbit(got) {
			t.Fatalf("%s: expected +0, got -0", in)
		}
	}
}

// Every accepted value lies within the resolved bounds; everything else is a
// bound error.
func TestNumber_ResultAlwaysWithinBounds(t *testing.T) {
	const places = 3
	minV, maxV := -12.3456, 78.9012
	fn := valueschema.MustCompile(valueschema.Schema{
		ValueType:        valueschema.Decimal,
		NbrDecimalPlaces: valueschema.Ptr(places),
		MinValue:         valueschema.Ptr(minV),
		MaxValue:         valueschema.Ptr(maxV),
	})
	lo, hi := -12.346, 78.901
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		f := rng.Float64()*200 - 100
		r := fn(f)
		if r.OK() {
			got := r.Value.Float()
			if got < lo || got > hi {
				t.Fatalf("%v: accepted %v outside [%v, %v]", f, got, lo, hi)
			}
			if again := fn(r.Value); !again.OK() || again.Value.Float() != got {
				t.Fatalf("%v: revalidating %v gave %+v", f, got, again)
			}
			continue
		}
		switch r.Err.Code {
		case valueschema.CodeMinValue:
			if r.Err.Params[0] != strconv.FormatFloat(lo, 'f', -1, 64) {
				t.Fatalf("unexpected min param %q", r.Err.Params[0])
			}
		case valueschema.CodeMaxValue:
			if r.Err.Params[0] != strconv.FormatFloat(hi, 'f', -1, 64) {
				t.Fatalf("unexpected max param %q", r.Err.Params[0])
			}
		default:
			t.Fatalf("%v: unexpected code %s", f, r.Err.Code)
		}
	}
}

func TestNumber_ErrorIDOverride(t *testing.T) {
	fn := valueschema.MustCompile(valueschema.Schema{
		ValueType: valueschema.Integer,
		ErrorID:   "_invalidAge",
	})
	if r := fn("abc"); r.OK() || r.Err.Code != "_invalidAge" {
		t.Fatalf("expected _invalidAge, got %+v", r)
	}
	if r := fn(-1); r.OK() || r.Err.Code != valueschema.CodeMinValue {
		t.Fatalf("bound errors keep their code, got %+v", r)
	}
}
