package csstoken

import "testing"

func TestLookupDimensionUnitRecognized(t *testing.T) {
	cases := map[string]DimensionUnit{
		"px":   UnitPx,
		"em":   UnitEm,
		"rem":  UnitRem,
		"vh":   UnitVh,
		"vw":   UnitVw,
		"deg":  UnitDeg,
		"ms":   UnitMs,
		"s":    UnitS,
		"dpi":  UnitDpi,
		"fr":   UnitFr,
		"q":    UnitQ,
		"x":    UnitX,
	}
	for name, want := range cases {
		if got := LookupDimensionUnit(name); got != want {
			t.Errorf("LookupDimensionUnit(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLookupDimensionUnitUnknown(t *testing.T) {
	for _, name := range []string{"foo", "zz", "", "PX"} {
		if got := LookupDimensionUnit(name); got != UnitUnknown {
			t.Errorf("LookupDimensionUnit(%q) = %v, want UnitUnknown (caller must lowercase first)", name, got)
		}
	}
}
