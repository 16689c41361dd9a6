// Package shortcut maps key presses to application commands.
//
// A Table is an ordered, immutable list of bindings for one platform
// family. Lookup returns the command of the first binding that matches;
// bindings fire on key-down only, and only while the platform shortcut
// modifier is held unless the binding is marked Bare.
//
// Shift participates in matching per binding: it can be ignored, required
// or forbidden, which is how reversible pairs such as undo/redo and
// findnext/findprev share a key.
package shortcut
