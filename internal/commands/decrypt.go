package commands

import (
	"github.com/spf13/cobra"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] <path>",
		Aliases: []string{"dec", "unlock"},
		Short:   "Decrypt a file or directory tree in place",
		Long: `Decrypt a file or directory tree in place.

The key is read from the terminal without echoing it. Files that do not
carry the encryption marker are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args, true)
			if err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}
}
