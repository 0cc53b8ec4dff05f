package testing

import (
	"testing"
)

func TestMapping(t *testing.T) {
	m := Mapping()
	if len(m) != 3 {
		t.Errorf("Mapping() has %d entries, want 3", len(m))
	}
	if m["a"] != 1 {
		t.Errorf("Mapping()[\"a\"] = %d, want 1", m["a"])
	}
}

func TestCharset_OffsetApplied(t *testing.T) {
	cs := Charset()
	if code, ok := cs.Code("a"); !ok || code != 101 {
		t.Errorf("Code(\"a\") = %d, %v, want 101, true", code, ok)
	}
}

func TestRawCharset_NoOffset(t *testing.T) {
	cs := RawCharset(map[string]int{"a": 1})
	if code, ok := cs.Code("a"); !ok || code != 1 {
		t.Errorf("Code(\"a\") = %d, %v, want 1, true", code, ok)
	}
}

func TestCodec_Lock(t *testing.T) {
	if got := Codec(3).Lock(); got != 3 {
		t.Errorf("Codec(3).Lock() = %d, want 3", got)
	}
}
