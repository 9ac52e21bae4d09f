package transform

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/URDev4ever/lockstr/internal/crypt"
	"github.com/URDev4ever/lockstr/internal/fileutil"
	"github.com/URDev4ever/lockstr/internal/logging"
)

// DefaultMaxFileSize bounds how much of a single file is buffered in
// memory: 1 GiB.
const DefaultMaxFileSize = 1 << 30

// Transformer encrypts or decrypts single files in place.
type Transformer struct {
	// cipher performs the authenticated encryption.
	cipher *crypt.Cipher

	// maxSize is the single-file size ceiling in bytes.
	maxSize int64

	// log receives per-file diagnostics.
	log logging.Logger
}

// NewTransformer creates a Transformer. A non-positive maxSize selects
// DefaultMaxFileSize.
func NewTransformer(cipher *crypt.Cipher, maxSize int64, log logging.Logger) *Transformer {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	return &Transformer{
		cipher:  cipher,
		maxSize: maxSize,
		log:     log,
	}
}

// Transform applies mode to the file at path and reports the outcome.
//
// The target is replaced through a temporary file in its own directory, so
// at every moment the path holds either the complete old content or the
// complete new content. Guard skips leave the file untouched, as do all
// failures.
func (t *Transformer) Transform(ctx context.Context, path string, mode Mode) Outcome {
	info, err := os.Stat(path)
	if err != nil {
		return t.failure(path, fmt.Errorf("stat: %w", err))
	}

	if info.Size() > t.maxSize {
		return Outcome{
			Path:   path,
			Status: ResourceExhausted,
			Err: fmt.Errorf("%s exceeds the %s ceiling",
				humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(t.maxSize))),
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return t.failure(path, fmt.Errorf("reading: %w", err))
	}

	var output []byte

	switch mode {
	case Encrypt:
		if crypt.HasMagic(content) {
			t.log.Debug(ctx, "already encrypted, skipping", "path", path)

			return Outcome{Path: path, Status: SkippedAlreadyEncrypted}
		}

		ciphertext, err := t.cipher.Encrypt(content)
		if err != nil {
			return Outcome{Path: path, Status: UnexpectedFailure, Err: err}
		}

		output = crypt.Stamp(ciphertext)
	case Decrypt:
		inner, err := crypt.Strip(content)
		if errors.Is(err, crypt.ErrMissingMagic) {
			t.log.Debug(ctx, "not encrypted, skipping", "path", path)

			return Outcome{Path: path, Status: SkippedNotEncrypted}
		}

		output, err = t.cipher.Decrypt(inner)
		if err != nil {
			return Outcome{Path: path, Status: AuthFailure, Err: err}
		}
	default:
		return Outcome{Path: path, Status: UnexpectedFailure, Err: fmt.Errorf("unknown mode %d", mode)}
	}

	if err := t.replace(path, output); err != nil {
		return t.failure(path, err)
	}

	t.log.Debug(ctx, "file replaced", "path", path, "mode", mode.String(), "bytes", len(output))

	return Outcome{Path: path, Status: Success, BytesWritten: int64(len(output))}
}

// replace writes output beside the target and renames it over the target.
func (t *Transformer) replace(path string, output []byte) (err error) {
	rc, err := fileutil.NewReplaceContext(path)
	if err != nil {
		return err
	}
	defer rc.CleanupOnError(&err)

	if err = rc.Write(output); err != nil {
		return err
	}

	return rc.Commit()
}

// failure classifies an I/O error as AccessDenied or UnexpectedFailure.
func (t *Transformer) failure(path string, err error) Outcome {
	status := UnexpectedFailure
	if errors.Is(err, fs.ErrPermission) {
		status = AccessDenied
	}

	return Outcome{Path: path, Status: status, Err: err}
}
