package crypt

import "errors"

var (
	// ErrAuthentication is returned when decryption fails due to a wrong key
	// or corrupted/tampered ciphertext.
	ErrAuthentication = errors.New("authentication failed: wrong key or corrupted data")
	// ErrMissingMagic is returned when a payload does not begin with the
	// lockstr marker.
	ErrMissingMagic = errors.New("missing lockstr marker")
	// ErrKeyFormat is returned when key material does not match the expected
	// format.
	ErrKeyFormat = errors.New("invalid key format")
)
