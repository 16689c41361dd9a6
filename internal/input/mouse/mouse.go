package mouse

// Button identifies a mouse button as reported by the engine.
type Button uint8

const (
	// ButtonLeft is the primary button.
	ButtonLeft Button = 1 << iota
	// ButtonMiddle is the wheel button.
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonX1 is the first extra button.
	ButtonX1
	// ButtonX2 is the second extra button.
	ButtonX2
)

// IsSecondary reports whether the toolkit's right-pointer entry points
// handle the button.
func (b Button) IsSecondary() bool {
	return b == ButtonRight
}

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	default:
		return "none"
	}
}
