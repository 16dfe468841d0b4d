package jsonwire

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

// ============================================================
// Scalar Encoding
// ============================================================

func TestMarshal_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, "null"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int8", int8(-128), "-128"},
		{"int64", int64(9007199254740993), "9007199254740993"},
		{"uint", uint(0), "0"},
		{"uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"float", 3.25, "3.25"},
		{"float32", float32(0.5), "0.5"},
		{"negative zero float", math.Copysign(0, -1), "-0"},
		{"unicode string", "héllo ☃", `"héllo ☃"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.input, 0)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("Marshal(%v) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMarshal_StringEscapes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak", `"line\nbreak"`},
		{"tab\there", `"tab\there"`},
		{"cr\rhere", `"cr\rhere"`},
		{"esc\x1bkey", `"esc\u001bkey"`},
		{"ctrl\x01byte", `"ctrl\u0001byte"`},
		{"nul\x00byte", `"nul\u0000byte"`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got, err := Marshal(tt.input, 0)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("Marshal(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMarshal_NonFiniteFloats(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got, err := Marshal(f, 0)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", f, err)
		}
		if string(got) != "null" {
			t.Errorf("Marshal(%v) = %s, want null", f, got)
		}
	}
}

// ============================================================
// Containers
// ============================================================

func TestMarshal_Containers(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		opts     Options
		expected string
	}{
		{"empty array", []any{}, 0, "[]"},
		{"mixed array", []any{1, "two", true, nil}, 0, `[1,"two",true,null]`},
		{"string slice", []string{"a", "b"}, 0, `["a","b"]`},
		{"nested array", []any{[]any{1, 2}, []any{}}, 0, "[[1,2],[]]"},
		{"empty object", map[string]any{}, 0, "{}"},
		{"single key", map[string]any{"k": 1}, 0, `{"k":1}`},
		{
			"sorted keys",
			map[string]any{"zeta": 1, "alpha": 2, "mid": 3},
			OptSortKeys,
			`{"alpha":2,"mid":3,"zeta":1}`,
		},
		{
			"nested object sorted",
			map[string]any{"outer": map[string]any{"b": 2, "a": 1}},
			OptSortKeys,
			`{"outer":{"a":1,"b":2}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.input, tt.opts)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("Marshal = %s, want %s", got, tt.expected)
			}
		})
	}
}

// ============================================================
// Option Flags
// ============================================================

func TestMarshal_AppendNewline(t *testing.T) {
	got, err := Marshal([]any{1}, OptAppendNewline)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(got) != "[1]\n" {
		t.Errorf("Marshal = %q, want %q", got, "[1]\n")
	}
}

func TestMarshal_StrictInteger(t *testing.T) {
	tests := []struct {
		name  string
		input any
		ok    bool
	}{
		{"at positive bound", int64(1)<<53 - 1, true},
		{"2^53 rejected", int64(1) << 53, false},
		{"at negative bound", -(int64(1)<<53 - 1), true},
		{"negative 2^53 rejected", -(int64(1) << 53), false},
		{"uint at bound", uint64(1)<<53 - 1, true},
		{"uint 2^53 rejected", uint64(1) << 53, false},
		{"small int", 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Marshal(tt.input, OptStrictInteger)
			if tt.ok && err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrIntegerRange) {
				t.Fatalf("expected ErrIntegerRange, got %v", err)
			}
		})
	}
}

func TestMarshal_TimeFlags(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	stamp := time.Date(2024, 3, 1, 10, 30, 0, 123456000, loc)

	tests := []struct {
		name     string
		opts     Options
		expected string
	}{
		{"plain", 0, `"2024-03-01T10:30:00.123456+02:00"`},
		{"utc", OptUTC, `"2024-03-01T08:30:00.123456Z"`},
		{"omit micros", OptOmitMicroseconds, `"2024-03-01T10:30:00+02:00"`},
		{"utc omit micros", OptUTC | OptOmitMicroseconds, `"2024-03-01T08:30:00Z"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(stamp, tt.opts)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("Marshal = %s, want %s", got, tt.expected)
			}
		})
	}
}

// ============================================================
// Unsupported Types
// ============================================================

type wrapperString string

func TestMarshal_UnsupportedTypes(t *testing.T) {
	type record struct{ A int }

	inputs := []any{
		record{A: 1},
		&record{A: 1},
		wrapperString("not a string case"),
		[]int{1, 2, 3},
		map[int]any{1: "x"},
		make(chan int),
		complex(1, 2),
	}

	for _, input := range inputs {
		_, err := Marshal(input, OptSerializeUUID|OptSortKeys)
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Marshal(%T) error = %v, want ErrUnsupportedType", input, err)
		}
	}
}

func TestMarshal_UnsupportedInsideContainer(t *testing.T) {
	_, err := Marshal(map[string]any{"ok": 1, "bad": make(chan int)}, OptSortKeys)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}

	var typeErr *UnsupportedTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected *UnsupportedTypeError, got %T", err)
	}
}

// ============================================================
// Buffer Discipline
// ============================================================

func TestAppendMarshal_PreservesPrefix(t *testing.T) {
	prefix := []byte("prefix:")
	got, err := AppendMarshal(prefix, 42, 0)
	if err != nil {
		t.Fatalf("AppendMarshal failed: %v", err)
	}
	if string(got) != "prefix:42" {
		t.Errorf("AppendMarshal = %s, want prefix:42", got)
	}
}

func TestAppendMarshal_NoPartialOutputOnError(t *testing.T) {
	dst := []byte("keep")
	// The array encodes two elements before the failure point; none of
	// that partial text may remain visible.
	got, err := AppendMarshal(dst, []any{1, 2, uuid.New()}, 0)
	if err == nil {
		t.Fatal("expected encode error")
	}
	if !bytes.Equal(got, []byte("keep")) {
		t.Errorf("buffer after failed encode = %q, want %q", got, "keep")
	}
}

func TestMarshal_Idempotent(t *testing.T) {
	doc := map[string]any{
		"id":    uuid.MustParse("7202d115-7ff3-4c81-a7c1-2a1f067b1ece"),
		"count": 3,
		"tags":  []any{"a", "b"},
	}
	opts := OptSerializeUUID | OptSortKeys

	first, err := Marshal(doc, opts)
	if err != nil {
		t.Fatalf("first Marshal failed: %v", err)
	}
	second, err := Marshal(doc, opts)
	if err != nil {
		t.Fatalf("second Marshal failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("non-deterministic output\n  first:  %s\n  second: %s", first, second)
	}
}
