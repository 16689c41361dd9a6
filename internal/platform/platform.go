// Package platform captures the keyboard conventions that differ between
// operating system families.
package platform

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/dshills/uirouter/internal/input/key"
)

// Family is an operating system family.
type Family uint8

const (
	// Other covers Linux, the BSDs and everything not listed below.
	Other Family = iota
	// Windows is Microsoft Windows.
	Windows
	// Darwin is macOS and iOS.
	Darwin
)

// Current returns the family of the running process.
func Current() Family {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin", "ios":
		return Darwin
	default:
		return Other
	}
}

// Parse converts a family name. The empty string and "auto" select Current.
func Parse(s string) (Family, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Current(), nil
	case "windows":
		return Windows, nil
	case "darwin", "macos", "osx":
		return Darwin, nil
	case "other", "linux", "unix":
		return Other, nil
	default:
		return Other, fmt.Errorf("unknown platform %q", s)
	}
}

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Windows:
		return "windows"
	case Darwin:
		return "darwin"
	default:
		return "other"
	}
}

// IsSuperKey reports whether code is one of the keys that act as the
// super modifier: Control on Windows, the GUI keys everywhere else.
func (f Family) IsSuperKey(code key.Code) bool {
	if f == Windows {
		return code.IsCtrl()
	}
	return code.IsGUI()
}

// SuperDown reports whether a super key is held according to keyDown.
func (f Family) SuperDown(keyDown func(key.Code) bool) bool {
	if f == Windows {
		return keyDown(key.CodeLCtrl) || keyDown(key.CodeRCtrl)
	}
	return keyDown(key.CodeLGUI) || keyDown(key.CodeRGUI)
}

// ShortcutModifier returns the modifier that triggers application
// shortcuts: Super (Command) on Darwin, Ctrl elsewhere.
func (f Family) ShortcutModifier() key.Modifier {
	if f == Darwin {
		return key.ModSuper
	}
	return key.ModCtrl
}
