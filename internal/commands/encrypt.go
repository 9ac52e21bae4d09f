package commands

import (
	"github.com/spf13/cobra"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] <path>",
		Aliases: []string{"enc", "lock"},
		Short:   "Encrypt a file or directory tree in place",
		Long: `Encrypt a file or directory tree in place.

A fresh key is generated for each run and copied to the clipboard.
Files that are already encrypted are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args, false)
			if err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}
}
