package quote

import "testing"

func TestSchemeValid(t *testing.T) {
	for _, s := range Schemes {
		if !s.Valid() {
			t.Fatalf("canonical scheme %s reported invalid", s)
		}
	}

	for _, s := range []Scheme{"", "scheme-2", "scheme-6", "SCHEME-1", "1"} {
		if s.Valid() {
			t.Fatalf("scheme %q reported valid", s)
		}
	}
}

func TestDefaultInput(t *testing.T) {
	in := DefaultInput()

	if !in.Scheme.Valid() {
		t.Fatalf("default scheme %q is not canonical", in.Scheme)
	}
	if in.Floors != 10 || !in.HasMachineRoom {
		t.Fatalf("unexpected defaults: %+v", in)
	}
	if in.LoadKg != 1000 || in.SpeedMS != 1.0 {
		t.Fatalf("unexpected elevator defaults: %+v", in)
	}
}
