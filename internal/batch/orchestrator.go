package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/URDev4ever/lockstr/internal/config"
	"github.com/URDev4ever/lockstr/internal/crypt"
	"github.com/URDev4ever/lockstr/internal/logging"
	"github.com/URDev4ever/lockstr/internal/scan"
	"github.com/URDev4ever/lockstr/internal/transform"
)

// KeyFunc supplies the cipher immediately before processing starts. It is
// called at most once per run, and never for dry runs, declined batches,
// or empty scans.
type KeyFunc func(ctx context.Context, mode transform.Mode) (*crypt.Cipher, error)

// Deps are the orchestrator's collaborators.
type Deps struct {
	// Key acquires the cipher. Required.
	Key KeyFunc

	// Log receives diagnostics. Defaults to a quiet stderr logger.
	Log logging.Logger

	// In answers the confirmation prompt. Defaults to stdin.
	In io.Reader

	// Out receives progress and summaries. Defaults to stdout.
	Out io.Writer

	// ErrOut receives failure detail. Defaults to stderr.
	ErrOut io.Writer
}

// Orchestrator runs one batch from scan to report.
type Orchestrator struct {
	cfg    *config.Config
	keyFn  KeyFunc
	log    logging.Logger
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	phase  Phase
}

// New creates an orchestrator for a single run of cfg.
func New(cfg *config.Config, deps Deps) *Orchestrator {
	if deps.In == nil {
		deps.In = os.Stdin
	}

	if deps.Out == nil {
		deps.Out = os.Stdout
	}

	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}

	if deps.Log == nil {
		deps.Log = logging.New(deps.ErrOut, cfg.Verbose)
	}

	return &Orchestrator{
		cfg:    cfg,
		keyFn:  deps.Key,
		log:    deps.Log,
		in:     bufio.NewReader(deps.In),
		out:    deps.Out,
		errOut: deps.ErrOut,
	}
}

// Phase returns the lifecycle stage the orchestrator last entered.
func (o *Orchestrator) Phase() Phase { return o.phase }

// Run executes the batch and returns its report. The error return is
// reserved for setup problems (bad patterns, unreadable roots, key
// acquisition); per-file failures are reported, not returned.
func (o *Orchestrator) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	mode := o.mode()
	report := &Report{Mode: mode}

	defer func() {
		report.Duration = time.Since(start)
	}()

	o.enter(ctx, PhaseScanning)

	excludes, err := o.excludes()
	if err != nil {
		return nil, err
	}

	candidates, err := scan.Scan(o.cfg.Path, scan.Options{
		IncludeHidden: o.cfg.IncludeHidden,
		Excludes:      excludes,
	})
	if err != nil {
		return nil, fmt.Errorf("scanning: %w", err)
	}

	report.Candidates = len(candidates)
	o.log.Debug(ctx, "scan finished", "candidates", len(candidates))

	if len(candidates) == 0 {
		o.enter(ctx, PhaseReporting)
		fmt.Fprintf(o.out, "No files found in %q\n", o.cfg.Path)

		if !o.cfg.IncludeHidden {
			fmt.Fprintln(o.out, "Hidden files are skipped by default; use --include-hidden to select them.")
		}

		return report, nil
	}

	o.enter(ctx, PhaseValidating)

	if ok, problems := scan.Validate(candidates); !ok {
		fmt.Fprintln(o.errOut, "Access problems found:")

		for _, p := range problems {
			fmt.Fprintf(o.errOut, "  %s\n", p)
		}

		if !o.cfg.ContinueOnError {
			report.ValidationProblems = problems

			o.enter(ctx, PhaseReporting)
			fmt.Fprintln(o.errOut, "Aborting before touching any file; use --continue-on-error to proceed anyway.")

			return report, nil
		}
	}

	if o.cfg.DryRun {
		o.enter(ctx, PhaseDryRun)
		report.DryRun = true

		fmt.Fprintln(o.out, scan.RenderTree(candidates))
		fmt.Fprintf(o.out, "\n%d file(s) would be %s\n", len(candidates), mode.Past())
		fmt.Fprintln(o.out, "Dry run: no changes were made.")

		return report, nil
	}

	if o.cfg.Confirm {
		o.enter(ctx, PhaseConfirming)

		confirmed, err := o.confirm(candidates)
		if err != nil {
			return nil, fmt.Errorf("reading confirmation: %w", err)
		}

		if !confirmed {
			report.Cancelled = true

			o.enter(ctx, PhaseReporting)
			fmt.Fprintln(o.out, "Operation cancelled.")

			return report, nil
		}
	}

	cipher, err := o.keyFn(ctx, mode)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			report.Interrupted = true
			fmt.Fprintln(o.errOut, "\nOperation interrupted.")

			return report, nil
		}

		return nil, fmt.Errorf("acquiring key: %w", err)
	}

	o.enter(ctx, PhaseProcessing)
	o.process(ctx, cipher, candidates, report)

	o.enter(ctx, PhaseReporting)
	report.Duration = time.Since(start)
	o.summarize(report)

	return report, nil
}

// process walks the candidate list in order, honoring the failure policy.
func (o *Orchestrator) process(ctx context.Context, cipher *crypt.Cipher, candidates []scan.Candidate, report *Report) {
	maxSize, _ := o.cfg.MaxFileSizeBytes()
	tr := transform.NewTransformer(cipher, maxSize, o.log)

	if !o.cfg.Quiet {
		fmt.Fprintf(o.out, "Processing %d file(s)...\n", len(candidates))
	}

	for i, cand := range candidates {
		if ctx.Err() != nil {
			// Files already replaced stay replaced; the rest are untouched.
			report.Interrupted = true
			report.Halted = true

			fmt.Fprintf(o.errOut, "\nInterrupted after %d of %d file(s)\n", i, len(candidates))

			return
		}

		outcome := tr.Transform(ctx, cand.Path, report.Mode)

		switch {
		case outcome.Status == transform.Success:
			report.Succeeded++
			report.BytesWritten += outcome.BytesWritten
		case outcome.Status.IsSkip():
			report.Skipped++
		default:
			report.Failed++
			report.Failures = append(report.Failures, outcome)
		}

		o.progress(i+1, len(candidates), cand, outcome)

		if outcome.Status.IsFailure() && !o.cfg.ContinueOnError {
			report.Halted = true

			fmt.Fprintln(o.errOut, "\nStopping at the first failure; use --continue-on-error to keep going.")

			return
		}
	}
}

// progress prints one per-file line. Failures go to the error stream even
// in quiet mode.
func (o *Orchestrator) progress(i, n int, c scan.Candidate, outcome transform.Outcome) {
	if outcome.Status.IsFailure() {
		fmt.Fprintf(o.errOut, "[%d/%d] %s ... %s\n", i, n, c.Path, outcome.Message())

		return
	}

	if o.cfg.Quiet {
		return
	}

	fmt.Fprintf(o.out, "[%d/%d] %s ... %s\n", i, n, c.Path, outcome.Message())
}

// confirm renders the candidate tree and blocks for an explicit
// affirmative answer. Anything but "y" or "yes" declines; end of input
// declines as well.
func (o *Orchestrator) confirm(candidates []scan.Candidate) (bool, error) {
	fmt.Fprintln(o.out, scan.RenderTree(candidates))
	fmt.Fprintf(o.out, "\nYou are about to %s %d file(s).\n", o.mode(), len(candidates))

	if o.mode() == transform.Encrypt {
		fmt.Fprintln(o.out, "Files cannot be recovered without the key.")
	}

	fmt.Fprint(o.out, "Continue? [y/N]: ")

	line, err := o.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes", nil
}

// summarize prints the closing summary and, when enabled, the stats block.
func (o *Orchestrator) summarize(report *Report) {
	fmt.Fprintf(o.out, "\n%s\n", strings.Repeat("=", 40))

	if report.Halted {
		fmt.Fprintln(o.out, "Partial operation completed:")
	} else {
		fmt.Fprintf(o.out, "%s complete:\n", title(report.Mode))
	}

	fmt.Fprintf(o.out, "  Processed: %d\n", report.Succeeded)
	fmt.Fprintf(o.out, "  Skipped:   %d\n", report.Skipped)
	fmt.Fprintf(o.out, "  Failed:    %d\n", report.Failed)

	if len(report.Failures) > 0 {
		fmt.Fprintln(o.errOut, "\nFailures:")

		shown := report.Failures
		if len(shown) > FailurePreviewLimit {
			shown = shown[:FailurePreviewLimit]
		}

		for _, f := range shown {
			fmt.Fprintf(o.errOut, "  %s: %s\n", f.Path, f.Message())
		}

		if rest := len(report.Failures) - FailurePreviewLimit; rest > 0 {
			fmt.Fprintf(o.errOut, "  ... and %d more\n", rest)
		}
	}

	if report.Mode == transform.Encrypt && report.Halted && report.Succeeded > 0 {
		fmt.Fprintln(o.errOut, "\nWarning: some files are now encrypted while others are not.")
		fmt.Fprintln(o.errOut, "Re-run with the same key to finish, or decrypt to roll back.")
	}

	if o.cfg.Stats {
		o.printStats(report)
	}
}

// printStats writes the stats block to the error stream so it never mixes
// with redirected output.
func (o *Orchestrator) printStats(report *Report) {
	fmt.Fprintf(o.errOut, "\nStats\n")
	fmt.Fprintf(o.errOut, "  Files:     %d\n", report.Candidates)
	fmt.Fprintf(o.errOut, "  Processed: %d\n", report.Succeeded)
	fmt.Fprintf(o.errOut, "  Skipped:   %d\n", report.Skipped)
	fmt.Fprintf(o.errOut, "  Errors:    %d\n", report.Failed)
	//nolint:gosec // BytesWritten is a sum of file sizes, never negative
	fmt.Fprintf(o.errOut, "  Written:   %s\n", humanize.IBytes(uint64(max(0, report.BytesWritten))))
	fmt.Fprintf(o.errOut, "  Duration:  %s\n", report.Duration.Round(time.Millisecond))
}

// excludes merges the --exclude flags with patterns loaded from the
// --exclude-from file.
func (o *Orchestrator) excludes() ([]string, error) {
	patterns := append([]string{}, o.cfg.Exclude...)

	if o.cfg.ExcludeFrom != "" {
		loaded, err := scan.LoadPatterns(o.cfg.ExcludeFrom)
		if err != nil {
			return nil, fmt.Errorf("loading exclude patterns: %w", err)
		}

		patterns = append(patterns, loaded...)
	}

	return patterns, nil
}

func (o *Orchestrator) mode() transform.Mode {
	if o.cfg.Decrypt {
		return transform.Decrypt
	}

	return transform.Encrypt
}

// enter advances the lifecycle phase.
func (o *Orchestrator) enter(ctx context.Context, p Phase) {
	o.phase = p
	o.log.Debug(ctx, "entering phase", "phase", string(p))
}

func title(m transform.Mode) string {
	if m == transform.Decrypt {
		return "Decryption"
	}

	return "Encryption"
}
