package csstoken

// DimensionUnit enumerates the unit suffixes this toolkit recognizes on
// Dimension tokens (plus Percent for the "%" suffix on Percentage tokens).
// Anything not in the table below lexes fine but carries UnitUnknown, so
// downstream property grammars can still special-case vendor or future
// units without the lexer needing to know about them.
type DimensionUnit uint16

const (
	UnitUnknown DimensionUnit = iota
	UnitPercent
	// Absolute and relative length units.
	UnitEm
	UnitRem
	UnitEx
	UnitRex
	UnitCap
	UnitRcap
	UnitCh
	UnitRch
	UnitIc
	UnitRic
	UnitLh
	UnitRlh
	UnitVw
	UnitSvw
	UnitLvw
	UnitDvw
	UnitVh
	UnitSvh
	UnitLvh
	UnitDvh
	UnitVi
	UnitSvi
	UnitLvi
	UnitDvi
	UnitVb
	UnitSvb
	UnitLvb
	UnitDvb
	UnitVmin
	UnitSvmin
	UnitLvmin
	UnitDvmin
	UnitVmax
	UnitSvmax
	UnitLvmax
	UnitDvmax
	UnitCm
	UnitMm
	UnitQ
	UnitIn
	UnitPt
	UnitPc
	UnitPx
	// Angle units.
	UnitDeg
	UnitGrad
	UnitRad
	UnitTurn
	// Time units.
	UnitS
	UnitMs
	// Frequency units.
	UnitHz
	UnitKHz
	// Resolution units.
	UnitDpi
	UnitDpcm
	UnitDppx
	UnitX
	// Flex unit.
	UnitFr
)

var dimensionUnitsByName = map[string]DimensionUnit{
	"em": UnitEm, "rem": UnitRem, "ex": UnitEx, "rex": UnitRex,
	"cap": UnitCap, "rcap": UnitRcap, "ch": UnitCh, "rch": UnitRch,
	"ic": UnitIc, "ric": UnitRic, "lh": UnitLh, "rlh": UnitRlh,
	"vw": UnitVw, "svw": UnitSvw, "lvw": UnitLvw, "dvw": UnitDvw,
	"vh": UnitVh, "svh": UnitSvh, "lvh": UnitLvh, "dvh": UnitDvh,
	"vi": UnitVi, "svi": UnitSvi, "lvi": UnitLvi, "dvi": UnitDvi,
	"vb": UnitVb, "svb": UnitSvb, "lvb": UnitLvb, "dvb": UnitDvb,
	"vmin": UnitVmin, "svmin": UnitSvmin, "lvmin": UnitLvmin, "dvmin": UnitDvmin,
	"vmax": UnitVmax, "svmax": UnitSvmax, "lvmax": UnitLvmax, "dvmax": UnitDvmax,
	"cm": UnitCm, "mm": UnitMm, "q": UnitQ, "in": UnitIn,
	"pt": UnitPt, "pc": UnitPc, "px": UnitPx,
	"deg": UnitDeg, "grad": UnitGrad, "rad": UnitRad, "turn": UnitTurn,
	"s": UnitS, "ms": UnitMs,
	"hz": UnitHz, "khz": UnitKHz,
	"dpi": UnitDpi, "dpcm": UnitDpcm, "dppx": UnitDppx, "x": UnitX,
	"fr": UnitFr,
}

// LookupDimensionUnit maps a lowercased unit atom (the text after the
// number in a Dimension token) to its enumerated id, falling back to
// UnitUnknown for anything not recognized (custom or future units).
func LookupDimensionUnit(lowerAtom string) DimensionUnit {
	if u, ok := dimensionUnitsByName[lowerAtom]; ok {
		return u
	}
	return UnitUnknown
}
