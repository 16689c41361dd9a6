package key

import "strings"

// Modifier is the toolkit's modifier key set.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << (iota - 1)

	// ModShift indicates the Shift key.
	ModShift

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModSuper indicates the platform super key: Control on Windows,
	// Command or the logo key elsewhere.
	ModSuper
)

// ModifiersFrom folds engine qualifiers and the platform super state
// into a toolkit modifier set.
func ModifiersFrom(q Qualifier, superDown bool) Modifier {
	m := ModNone
	if q.Has(QualAlt) {
		m |= ModAlt
	}
	if q.Has(QualCtrl) {
		m |= ModCtrl
	}
	if q.Has(QualShift) {
		m |= ModShift
	}
	if superDown {
		m |= ModSuper
	}
	return m
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String returns a human-readable representation like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}
