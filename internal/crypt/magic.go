package crypt

import "bytes"

// Magic is the fixed marker prepended to every lockstr-encrypted payload:
// a short ASCII tag carrying the format version, NUL-terminated.
const Magic = "LOCKSTR1\x00"

// MagicLen is the marker length in bytes, shared by Stamp and Strip.
const MagicLen = len(Magic)

// HasMagic reports whether payload begins with the lockstr marker.
func HasMagic(payload []byte) bool {
	return bytes.HasPrefix(payload, []byte(Magic))
}

// Stamp prepends the marker to payload.
func Stamp(payload []byte) []byte {
	out := make([]byte, 0, MagicLen+len(payload))
	out = append(out, Magic...)

	return append(out, payload...)
}

// Strip returns payload with the marker removed, or ErrMissingMagic if the
// payload does not start with it.
func Strip(payload []byte) ([]byte, error) {
	if !HasMagic(payload) {
		return nil, ErrMissingMagic
	}

	return payload[MagicLen:], nil
}
