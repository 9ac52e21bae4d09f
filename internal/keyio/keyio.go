// Package keyio implements the key transport boundaries: a freshly
// generated key travels out through the system clipboard on encryption,
// and comes back in through the terminal, unechoed, on decryption. Keys
// are never printed, logged, or written to disk.
package keyio

import (
	"context"

	"github.com/URDev4ever/lockstr/internal/crypt"
)

// Source produces a key from outside the process.
type Source interface {
	Key(ctx context.Context) (crypt.Key, error)
}

// Sink delivers a key to outside the process.
type Sink interface {
	Deliver(key crypt.Key) error
}
