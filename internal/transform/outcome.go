package transform

import "fmt"

// Status classifies the result of one file operation.
type Status int

const (
	// Success means the file was transformed and atomically replaced.
	Success Status = iota

	// SkippedAlreadyEncrypted means encryption was requested but the file
	// already carries the marker. The file was not touched.
	SkippedAlreadyEncrypted

	// SkippedNotEncrypted means decryption was requested but the file
	// carries no marker. The file was not touched.
	SkippedNotEncrypted

	// AuthFailure means the key is wrong or the payload was corrupted.
	AuthFailure

	// AccessDenied means the file could not be read or replaced due to
	// permissions.
	AccessDenied

	// ResourceExhausted means the file exceeds the single-file size
	// ceiling.
	ResourceExhausted

	// UnexpectedFailure covers any other I/O or environment failure.
	UnexpectedFailure
)

func (s Status) String() string {
	switch s {
	case Success:
		return "ok"
	case SkippedAlreadyEncrypted:
		return "skipped (already encrypted)"
	case SkippedNotEncrypted:
		return "skipped (not encrypted)"
	case AuthFailure:
		return "authentication failed"
	case AccessDenied:
		return "access denied"
	case ResourceExhausted:
		return "file too large"
	case UnexpectedFailure:
		return "unexpected failure"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// IsSkip reports whether the status is one of the no-op guards. Skips are
// expected during re-runs and never count as failures.
func (s Status) IsSkip() bool {
	return s == SkippedAlreadyEncrypted || s == SkippedNotEncrypted
}

// IsFailure reports whether the status represents a failed operation.
func (s Status) IsFailure() bool {
	return !s.IsSkip() && s != Success
}

// Outcome is the result of transforming a single file. It is created once
// per file and never mutated.
type Outcome struct {
	// Path of the file the outcome describes.
	Path string

	// Status classification.
	Status Status

	// Err carries failure detail; nil for Success and skips.
	Err error

	// BytesWritten is the output size for successful transforms.
	BytesWritten int64
}

// Message renders the outcome for progress lines and failure summaries.
func (o Outcome) Message() string {
	if o.Err != nil {
		return fmt.Sprintf("%s: %v", o.Status, o.Err)
	}

	return o.Status.String()
}
