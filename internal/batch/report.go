package batch

import (
	"time"

	"github.com/URDev4ever/lockstr/internal/transform"
)

// FailurePreviewLimit caps how many failures the summary lists in full.
const FailurePreviewLimit = 5

// Report aggregates the outcomes of one batch run.
type Report struct {
	// Mode the batch ran in.
	Mode transform.Mode

	// Candidates is the number of files selected by the scan.
	Candidates int

	// Succeeded, Skipped and Failed partition the attempted candidates.
	Succeeded int
	Skipped   int
	Failed    int

	// Failures holds the failed outcomes, in processing order.
	Failures []transform.Outcome

	// ValidationProblems front-loaded access errors. When set, no file
	// was touched.
	ValidationProblems []string

	// DryRun marks a report produced without any mutation.
	DryRun bool

	// Cancelled is set when the user declined the confirmation prompt.
	Cancelled bool

	// Interrupted is set when an interrupt signal stopped the batch.
	Interrupted bool

	// Halted is set when processing stopped before all candidates were
	// attempted.
	Halted bool

	// BytesWritten totals the output sizes of successful transforms.
	BytesWritten int64

	// Duration of the whole run.
	Duration time.Duration
}

// Ok reports whether the run completed without failures. Skips and empty
// scans are not failures; declined confirmations are not either.
func (r *Report) Ok() bool {
	return r.Failed == 0 && len(r.ValidationProblems) == 0
}
