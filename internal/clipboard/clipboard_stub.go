//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import "errors"

var errUnsupported = errors.New("clipboard operations are not supported on this platform")

// WritePNG is unsupported on this platform.
func WritePNG([]byte) error { return errUnsupported }

// WriteText is unsupported on this platform.
func WriteText(string) error { return errUnsupported }
