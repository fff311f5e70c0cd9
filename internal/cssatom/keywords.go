package cssatom

// wellKnownKeywords seeds the static half of the atom table: every
// at-keyword, structural keyword, and common property/value name the core
// itself needs O(1) comparisons against. This does not attempt to be the
// full property-grammar keyword set (that lives in the out-of-scope
// property/value layer spec.md §1 excludes) — it covers the literals this
// module's own productions (at-rule dispatch, !important, media/container
// feature keywords) match against, per spec.md §6.5's contract ("the table
// covers at least every literal passed to keyword_set / matchers in the
// property layer").
var wellKnownKeywords = []string{
	// At-rules.
	"charset", "import", "namespace", "media", "supports", "document",
	"page", "font-face", "keyframes", "-webkit-keyframes", "-moz-keyframes",
	"-o-keyframes", "viewport", "counter-style", "font-feature-values",
	"property", "layer", "container", "scope", "starting-style",
	"font-palette-values", "nest",

	// Declaration modifiers.
	"important",

	// Media/container feature keywords.
	"and", "or", "not", "only", "screen", "all", "print", "speech",
	"portrait", "landscape", "coarse", "fine", "none", "hover", "interlace",
	"progressive", "scan", "inline-size", "block-size", "width", "height",
	"aspect-ratio", "resolution", "orientation", "pointer", "color",
	"color-index", "monochrome", "grid", "update", "overflow-block",
	"overflow-inline", "display-mode", "forced-colors", "inverted-colors",
	"prefers-color-scheme", "prefers-contrast", "prefers-reduced-motion",
	"prefers-reduced-data", "prefers-reduced-transparency", "scripting",
	"dynamic-range", "video-dynamic-range", "environment-blending",

	// min-/max- legacy range prefixes are produced dynamically (see
	// cssparser's ranged_feature helper), not seeded here.

	// Pseudo-class / selector-adjacent keywords frequently matched.
	"root", "before", "after", "first-child", "last-child", "nth-child",
	"is", "where", "has",
}
