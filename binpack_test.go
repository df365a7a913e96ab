package binpack

import (
	"reflect"
	"testing"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	buf, err := Pack([]any{1, 2, "hello"}, "n2A8")
	if err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}

	vals, err := Unpack(buf, "n2A8")
	if err != nil {
		t.Fatalf("Unpack returned error: %v", err)
	}

	want := []any{int64(1), int64(2), "hello"}
	if !reflect.DeepEqual(vals, want) {
		t.Errorf("round trip = %v, want %v", vals, want)
	}
}

func TestUnpackFirstValue(t *testing.T) {
	v, err := UnpackFirst([]byte{0, 7, 0, 9}, "n*")
	if err != nil {
		t.Fatalf("UnpackFirst returned error: %v", err)
	}
	if v != int64(7) {
		t.Errorf("UnpackFirst = %v, want 7", v)
	}
}

func TestNoValueOnShortData(t *testing.T) {
	vals, err := Unpack([]byte{0x01}, "S")
	if err != nil {
		t.Fatalf("Unpack returned error: %v", err)
	}
	if len(vals) != 1 || !IsNoValue(vals[0]) {
		t.Errorf("Unpack = %v, want a single no-value marker", vals)
	}
	if IsNoValue(int64(0)) {
		t.Error("IsNoValue(0) = true")
	}
}
