// Package transform applies the cipher to individual files with
// crash-safe, in-place replacement semantics.
package transform

// Mode selects the direction of a file transform.
type Mode int

const (
	// Encrypt turns plaintext into a marked, authenticated payload.
	Encrypt Mode = iota

	// Decrypt reverses Encrypt, restoring the original bytes.
	Decrypt
)

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// Past returns the past-participle form used in summaries.
func (m Mode) Past() string {
	switch m {
	case Encrypt:
		return "encrypted"
	case Decrypt:
		return "decrypted"
	default:
		return "processed"
	}
}
