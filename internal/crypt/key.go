package crypt

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// KeySize is the raw key length in bytes.
const KeySize = 32

// EncodedKeySize is the length of the human-readable key form:
// URL-safe base64 of KeySize bytes, including padding.
const EncodedKeySize = 44

// Key is a raw symmetric key. It exists for the duration of one batch run
// and is never persisted, logged, or echoed to a display surface.
type Key []byte

// GenerateKey returns a fresh random key.
func GenerateKey() (Key, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	return Key(key), nil
}

// ParseKey decodes the human-readable key form. Anything that is not
// URL-safe base64 of exactly KeySize bytes yields ErrKeyFormat.
func ParseKey(s string) (Key, error) {
	if len(s) != EncodedKeySize {
		return nil, fmt.Errorf("%w: expected %d characters, got %d", ErrKeyFormat, EncodedKeySize, len(s))
	}

	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
	}

	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: key must decode to %d bytes", ErrKeyFormat, KeySize)
	}

	return Key(raw), nil
}

// Encode returns the human-readable key form.
func (k Key) Encode() string {
	return base64.URLEncoding.EncodeToString(k)
}

// Zero overwrites the raw key bytes. The key is unusable afterwards.
func (k Key) Zero() {
	for i := range k {
		k[i] = 0
	}
}
