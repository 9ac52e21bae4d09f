package keyio

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/URDev4ever/lockstr/internal/crypt"
)

// ClipboardSink delivers a key to the system clipboard so it never
// appears on screen.
type ClipboardSink struct{}

// Deliver copies the encoded key to the clipboard.
func (ClipboardSink) Deliver(key crypt.Key) error {
	if err := clipboard.WriteAll(key.Encode()); err != nil {
		return fmt.Errorf("copying key to clipboard: %w", err)
	}

	return nil
}
