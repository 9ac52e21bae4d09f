package commands

import (
	"context"

	"github.com/spf13/cobra"
)

const banner = `   __            __        __
  / /  ___  ____/ /__ ___ / /_____
 / /__/ _ \/ __/  '_/(_-</ __/ __/
/____/\___/\__/_/\_\/___/\__/_/
    By URDev`

// NewRootCommand creates the root command with the shared flag set.
// All flags can also be set through LOCKSTR_* environment variables.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "lockstr [flags] command [flags] <path>",
		Short: "Encrypt or decrypt files in place",
		Long: banner + `

lockstr encrypts or decrypts a file or a directory tree in place using
authenticated symmetric encryption. Encrypted files carry a fixed marker,
so re-running a command skips files that are already in the target state.

The key is never shown: on encryption a fresh key is copied to the
clipboard, on decryption the key is read from the terminal without echo.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()

	flags.Bool("include-hidden", false, "Include hidden files (names starting with '.')")
	flags.StringSlice("exclude", nil, "Glob pattern of files to skip (repeatable)")
	flags.String("exclude-from", "", "JSONC file with glob patterns of files to skip")
	flags.Bool("continue-on-error", false, "Keep processing remaining files after a failure")
	flags.Bool("dry-run", false, "Show what would be processed without changing anything")
	flags.Bool("confirm", false, "Ask for confirmation before processing")
	flags.String("max-file-size", "", "Largest file to process (e.g. 512MiB, defaults to 1GiB)")
	flags.BoolP("quiet", "q", false, "Suppress per-file progress output")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.Bool("stats", false, "Print processing statistics")

	root.AddCommand(NewEncryptCommand(), NewDecryptCommand(), NewCheckCommand())

	return root
}

// Execute runs the application and returns the first error encountered.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}
