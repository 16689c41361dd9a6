package script

import "errors"

// ErrClosed is returned when using a host after Close.
var ErrClosed = errors.New("script host is closed")
