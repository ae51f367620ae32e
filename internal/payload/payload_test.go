package payload

import (
	"math"
	"reflect"
	"testing"
)

func mustDecode(t *testing.T, raw string) Payload {
	t.Helper()
	p, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return p
}

func TestOptStringDefaultsAndCoercion(t *testing.T) {
	p := mustDecode(t, `{"name":"USD","price":"9.99","amount":10.5,"flag":true,"obj":{"a":1},"nothing":null}`)

	if got := p.OptString("name"); got != "USD" {
		t.Fatalf("expected USD, got %q", got)
	}
	if got := p.OptString("amount"); got != "10.5" {
		t.Fatalf("expected numeric rendering, got %q", got)
	}
	if got := p.OptString("flag"); got != "true" {
		t.Fatalf("expected boolean rendering, got %q", got)
	}
	if got := p.OptString("obj"); got != "" {
		t.Fatalf("expected objects to yield default, got %q", got)
	}
	if got := p.OptString("nothing", "fallback"); got != "fallback" {
		t.Fatalf("expected null to yield default, got %q", got)
	}
	if got := p.OptString("missing"); got != "" {
		t.Fatalf("expected empty default, got %q", got)
	}
}

func TestOptBoolean(t *testing.T) {
	p := mustDecode(t, `{"yes":true,"no":false,"str":"TRUE","junk":"maybe","num":1}`)

	cases := []struct {
		key  string
		def  []bool
		want bool
	}{
		{"yes", nil, true},
		{"no", []bool{true}, false},
		{"str", nil, true},
		{"junk", []bool{true}, true},
		{"num", nil, false},
		{"missing", nil, false},
		{"missing", []bool{true}, true},
	}
	for _, tc := range cases {
		if got := p.OptBoolean(tc.key, tc.def...); got != tc.want {
			t.Fatalf("OptBoolean(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestOptDoubleReturnsNaNSentinel(t *testing.T) {
	p := mustDecode(t, `{"lat":10.0,"long":"11.25","bad":"abc","obj":{}}`)

	if got := p.OptDouble("lat"); got != 10.0 {
		t.Fatalf("expected 10.0, got %v", got)
	}
	if got := p.OptDouble("long"); got != 11.25 {
		t.Fatalf("expected numeric string to parse, got %v", got)
	}
	for _, key := range []string{"bad", "obj", "missing"} {
		if got := p.OptDouble(key); !math.IsNaN(got) {
			t.Fatalf("expected NaN for %q, got %v", key, got)
		}
	}

	inf := Payload{"s": "Inf", "neg": "-Infinity", "f": math.Inf(1)}
	for _, key := range []string{"s", "neg", "f"} {
		if got := inf.OptDouble(key); !math.IsNaN(got) {
			t.Fatalf("expected NaN for infinite %q, got %v", key, got)
		}
	}

	var nilPayload Payload
	if !math.IsNaN(nilPayload.OptDouble("lat")) {
		t.Fatalf("expected NaN from nil payload")
	}
}

func TestOptInt(t *testing.T) {
	p := mustDecode(t, `{"n":30,"f":7.9,"s":"12","bad":"x"}`)

	if got := p.OptInt("n", 5); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
	if got := p.OptInt("f", 5); got != 7 {
		t.Fatalf("expected truncation to 7, got %d", got)
	}
	if got := p.OptInt("s", 5); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	if got := p.OptInt("bad", 5); got != 5 {
		t.Fatalf("expected default, got %d", got)
	}
	if got := p.OptInt("missing", 5); got != 5 {
		t.Fatalf("expected default, got %d", got)
	}
}

func TestOptStringArray(t *testing.T) {
	p := mustDecode(t, `{"emails":["a@x.com","b@x.com"],"mixed":["a",1,{"x":1}],"single":"a"}`)

	if got := p.OptStringArray("emails"); !reflect.DeepEqual(got, []string{"a@x.com", "b@x.com"}) {
		t.Fatalf("unexpected emails: %v", got)
	}
	if got := p.OptStringArray("mixed"); !reflect.DeepEqual(got, []string{"a", "1"}) {
		t.Fatalf("expected scalars kept and objects skipped, got %v", got)
	}
	if got := p.OptStringArray("single"); got != nil {
		t.Fatalf("expected nil for non-array, got %v", got)
	}
	if got := p.OptStringArray("missing"); got != nil {
		t.Fatalf("expected nil for missing key, got %v", got)
	}
}

func TestOptObject(t *testing.T) {
	p := mustDecode(t, `{"settings":{"debug":true},"str":"x"}`)

	obj := p.OptObject("settings")
	if obj == nil || !obj.OptBoolean("debug") {
		t.Fatalf("expected nested settings object, got %v", obj)
	}
	if p.OptObject("str") != nil || p.OptObject("missing") != nil {
		t.Fatalf("expected nil for non-object values")
	}
}

func TestToMapKeepsScalarLeaves(t *testing.T) {
	obj := mustDecode(t, `{"s":"v","b":true,"n":5,"list":["a","b"],"nested":{"x":1},"null":null,"deep":[["a"]]}`)

	got := ToMap(obj)
	want := map[string]any{
		"s":    "v",
		"b":    true,
		"n":    float64(5),
		"list": []any{"a", "b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected flattened map:\n got %v\nwant %v", got, want)
	}

	// Legacy conversion kept only string leaves; booleans and numbers are now
	// preserved, so a strings-only caller sees two extra keys.
	if _, ok := got["b"]; !ok {
		t.Fatalf("expected boolean leaf to survive flattening")
	}

	if m := ToMap(nil); m == nil || len(m) != 0 {
		t.Fatalf("expected empty map for nil object, got %v", m)
	}
}

func TestToStringMap(t *testing.T) {
	obj := mustDecode(t, `{"country":"US","slot":2,"vip":false,"nested":{}}`)

	got := ToStringMap(obj)
	want := map[string]string{"country": "US", "slot": "2", "vip": "false"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected string map: %v", got)
	}
}

func TestWithoutDoesNotMutate(t *testing.T) {
	p := Payload{"a": 1, "b": 2, "c": 3}
	got := p.Without("a", "c", "missing")

	if !reflect.DeepEqual(got, map[string]any{"b": 2}) {
		t.Fatalf("unexpected result: %v", got)
	}
	if len(p) != 3 {
		t.Fatalf("expected source payload untouched, got %v", p)
	}
}

func TestDecodeRejectsNonObjects(t *testing.T) {
	if _, err := Decode([]byte(`[1,2]`)); err == nil {
		t.Fatalf("expected error for array payload")
	}
	p, err := Decode([]byte(`null`))
	if err != nil || p == nil {
		t.Fatalf("expected empty payload for null, got %v, %v", p, err)
	}
}
