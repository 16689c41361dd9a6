// Package key defines the keyboard vocabulary shared by the input router.
//
// Three families of values live here:
//
//   - Code: engine key codes as delivered by the input subsystem. Printable
//     keys use their (lower case) ASCII value; the remaining keys carry the
//     scancode mask, mirroring the SDL layout most engines inherit.
//   - Qualifier: the engine's live qualifier bitset (Shift, Ctrl, Alt).
//   - Modifier and Special: the widget toolkit's modifier flags and its
//     symbolic names for non-printable keys.
//
// # Mapping
//
// SpecialFor converts an engine code to the toolkit's special key, and
// ModifiersFrom folds engine qualifiers plus the platform super state into
// toolkit modifiers.
package key
