package zones

import "github.com/snapzone/snapzone/pkg/geom"

// DefaultGap is the fallback spacing in pixels, used whenever no layer of
// the cascade supplies a value.
const DefaultGap = 8.0

// Settings holds the global spacing defaults supplied by the settings
// collaborator. Negative values and nil mean "unset", as in Layout.
type Settings struct {
	Padding   float64
	OuterGap  float64
	OuterGaps *geom.Gaps
}

// DefaultSettings returns settings with every cascade layer unset, so
// resolution falls through to DefaultGap.
func DefaultSettings() Settings {
	return Settings{Padding: Unset, OuterGap: Unset}
}

// ResolvePadding resolves the effective inner gap for a layout:
// layout override, then global setting, then DefaultGap.
func ResolvePadding(l Layout, s Settings) float64 {
	if l.Padding >= 0 {
		return l.Padding
	}
	if s.Padding >= 0 {
		return s.Padding
	}
	return DefaultGap
}

// ResolveOuterGaps resolves the effective outer gaps for a layout:
// layout per-side, layout uniform, global per-side, global uniform,
// then DefaultGap on every side. Per-side overrides that are set but
// all-zero fall through to the next layer.
func ResolveOuterGaps(l Layout, s Settings) geom.Gaps {
	if l.OuterGaps != nil && !l.OuterGaps.IsZero() {
		return *l.OuterGaps
	}
	if l.OuterGap >= 0 {
		return geom.Uniform(l.OuterGap)
	}
	if s.OuterGaps != nil && !s.OuterGaps.IsZero() {
		return *s.OuterGaps
	}
	if s.OuterGap >= 0 {
		return geom.Uniform(s.OuterGap)
	}
	return geom.Uniform(DefaultGap)
}
