package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/URDev4ever/lockstr/internal/config"
	"github.com/URDev4ever/lockstr/internal/scan"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [flags] <path>",
		Short: "Verify that every exclude pattern matches at least one file",
		Long: `Verify that every exclude pattern matches at least one file.

A pattern that matches nothing is usually a typo, and a typo in an
exclude pattern means files get encrypted that should not be. check
scans the tree without applying the patterns and reports how many files
each one would drop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args, false)
			if err != nil {
				return err
			}

			return runCheck(cmd, cfg)
		},
	}
}

// runCheck tests each exclude pattern individually against the full tree.
func runCheck(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	patterns := append([]string{}, cfg.Exclude...)

	if cfg.ExcludeFrom != "" {
		loaded, err := scan.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return fmt.Errorf("loading exclude patterns: %w", err)
		}

		patterns = append(patterns, loaded...)
	}

	if len(patterns) == 0 {
		return errors.New("no exclude patterns to check")
	}

	candidates, err := scan.Scan(cfg.Path, scan.Options{IncludeHidden: cfg.IncludeHidden})
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}

	reports, err := scan.CheckPatterns(candidates, patterns)
	if err != nil {
		return err
	}

	var failures int

	for _, r := range reports {
		if r.Matches == 0 {
			failures++

			fmt.Fprintf(errOut, "exclude %q matches no files\n", r.Pattern)

			continue
		}

		if !cfg.Quiet {
			fmt.Fprintf(out, "exclude %q matches %d file(s)\n", r.Pattern, r.Matches)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d pattern(s) matched no files", failures)
	}

	return nil
}
