package tree

import (
	"testing"
)

func TestDecode(t *testing.T) {
	data := []byte(`{"a": {"b": 1, "c": "two", "d": true, "e": null}}`)

	n, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := Object{
		"a": Object{
			"b": Leaf{Value: Number(1)},
			"c": Leaf{Value: String("two")},
			"d": Leaf{Value: Boolean(true)},
			"e": Leaf{Value: Null},
		},
	}
	if !Equal(n, want) {
		t.Errorf("Decode produced %#v, expected %#v", n, want)
	}
}

func TestDecodeArrayRoot(t *testing.T) {
	n, err := Decode([]byte(`[{"x": 1}, {"x": 2}]`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	arr, ok := n.(Array)
	if !ok {
		t.Fatalf("expected Array root, got %T", n)
	}
	if len(arr) != 2 {
		t.Errorf("expected 2 elements, got %d", len(arr))
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode([]byte(`{"a":`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	trees := []Node{
		Leaf{Value: Number(42)},
		Object{"a": Object{"b": Leaf{Value: Number(1)}, "c": Leaf{Value: Number(2)}}},
		Array{Leaf{Value: String("x")}, Leaf{Value: String("y")}},
		Object{"items": Array{
			Object{"x": Leaf{Value: Number(1)}},
			Object{"x": Leaf{Value: Number(2)}},
		}},
	}

	for _, orig := range trees {
		data, err := Encode(orig)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		back, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !Equal(orig, back) {
			t.Errorf("round trip changed %#v into %#v", orig, back)
		}
	}
}

func TestFromInterfaceUnsupported(t *testing.T) {
	if _, err := FromInterface(make(chan int)); err == nil {
		t.Error("expected error for unsupported value type")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Node
		expected bool
	}{
		{"equal leaves", Leaf{Value: Number(1)}, Leaf{Value: Number(1)}, true},
		{"different leaves", Leaf{Value: Number(1)}, Leaf{Value: Number(2)}, false},
		{"leaf vs object", Leaf{Value: Number(1)}, Object{}, false},
		{"array order matters", Array{Leaf{Value: Number(1)}, Leaf{Value: Number(2)}},
			Array{Leaf{Value: Number(2)}, Leaf{Value: Number(1)}}, false},
		{"object key order irrelevant", Object{"a": Leaf{Value: Number(1)}, "b": Leaf{Value: Number(2)}},
			Object{"b": Leaf{Value: Number(2)}, "a": Leaf{Value: Number(1)}}, true},
		{"missing key", Object{"a": Leaf{Value: Number(1)}}, Object{"b": Leaf{Value: Number(1)}}, false},
	}

	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.expected {
			t.Errorf("%s: Equal = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
