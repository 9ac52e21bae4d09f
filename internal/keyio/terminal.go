package keyio

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/URDev4ever/lockstr/internal/crypt"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// TerminalSource solicits a key from an interactive terminal without
// echoing it.
type TerminalSource struct {
	// Out receives prompts and retry notices, never the key itself.
	Out io.Writer
}

// Key prompts until a well-formed key is entered. Input is read without
// echo; malformed input re-prompts instead of failing, so a typo in a
// 44-character key is never fatal. Cancelling the context ends the loop.
func (s *TerminalSource) Key(ctx context.Context) (crypt.Key, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprint(s.Out, "Enter key: ")

		raw, err := readPassword(int(os.Stdin.Fd()))

		fmt.Fprintln(s.Out)

		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}

		input := strings.TrimSpace(string(raw))
		wipe(raw)

		if input == "" {
			fmt.Fprintln(s.Out, "Key cannot be empty")

			continue
		}

		key, err := crypt.ParseKey(input)
		if err != nil {
			fmt.Fprintf(s.Out, "Invalid key: %v\n", err)
			fmt.Fprintln(s.Out, "Try again, or press Ctrl+C to cancel")

			continue
		}

		return key, nil
	}
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
