// Package mouse provides pointer button identities and multi-click counting.
//
// The click counter is shared by every pointer press routed through a
// router instance, touch taps included: two presses closer together than
// the configured interval extend the current sequence regardless of which
// button or finger produced them.
package mouse
