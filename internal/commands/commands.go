package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/URDev4ever/lockstr/internal/batch"
	"github.com/URDev4ever/lockstr/internal/config"
	"github.com/URDev4ever/lockstr/internal/crypt"
	"github.com/URDev4ever/lockstr/internal/keyio"
	"github.com/URDev4ever/lockstr/internal/logging"
	"github.com/URDev4ever/lockstr/internal/transform"
)

// Test seams for the key transports, which touch the clipboard and the
// terminal in production.
var (
	newKeySink = func() keyio.Sink {
		return keyio.ClipboardSink{}
	}

	newKeySource = func(out io.Writer) keyio.Source {
		return &keyio.TerminalSource{Out: out}
	}
)

// ExitError signals an exit code without an additional error message,
// for outcomes the run has already reported on its own streams.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// loadConfig unmarshals flags and LOCKSTR_* environment variables into a
// validated configuration.
func loadConfig(cmd *cobra.Command, args []string, decrypt bool) (*config.Config, error) {
	vpr := viper.New()
	vpr.SetEnvPrefix("LOCKSTR")
	vpr.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vpr.AutomaticEnv()

	if err := vpr.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	var cfg config.Config
	if err := vpr.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Path = args[0]
	cfg.Decrypt = decrypt

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// run executes one batch and maps its report to an exit code.
func run(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	orchestrator := batch.New(cfg, batch.Deps{
		Key:    newKeyFunc(out),
		Log:    logging.New(errOut, cfg.Verbose),
		In:     cmd.InOrStdin(),
		Out:    out,
		ErrOut: errOut,
	})

	report, err := orchestrator.Run(cmd.Context())
	if err != nil {
		return err
	}

	if report.Interrupted {
		return &ExitError{Code: 130}
	}

	if !report.Ok() {
		return &ExitError{Code: 1}
	}

	return nil
}

// newKeyFunc wires key acquisition for the requested mode.
func newKeyFunc(out io.Writer) batch.KeyFunc {
	return func(ctx context.Context, mode transform.Mode) (*crypt.Cipher, error) {
		if mode == transform.Decrypt {
			return decryptionCipher(ctx, out)
		}

		return encryptionCipher(out)
	}
}

// encryptionCipher generates a fresh key, delivers it, and builds the
// cipher. The raw key is zeroed before returning.
func encryptionCipher(out io.Writer) (*crypt.Cipher, error) {
	key, err := crypt.GenerateKey()
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	cipher, err := crypt.NewCipher(key)
	if err != nil {
		return nil, err
	}

	// The clipboard holds the only copy of the key; if delivery fails,
	// nothing may be encrypted.
	if err := newKeySink().Deliver(key); err != nil {
		return nil, err
	}

	fmt.Fprintln(out, "New key generated and copied to the clipboard.")
	fmt.Fprintln(out, "Save it in a secure location: without it, the files are permanently inaccessible.")
	fmt.Fprintln(out, "The key is only in your clipboard, never shown on screen.")

	return cipher, nil
}

// decryptionCipher reads the key from the terminal and builds the cipher.
// The raw key is zeroed before returning.
func decryptionCipher(ctx context.Context, out io.Writer) (*crypt.Cipher, error) {
	key, err := newKeySource(out).Key(ctx)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	cipher, err := crypt.NewCipher(key)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out, "Key accepted.")

	return cipher, nil
}
