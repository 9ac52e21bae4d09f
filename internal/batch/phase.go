package batch

// Phase is a stage in the batch lifecycle. Phases advance strictly
// forward; a run never revisits an earlier phase.
type Phase string

const (
	// PhaseScanning discovers candidate files.
	PhaseScanning Phase = "scanning"

	// PhaseValidating probes candidates for access problems.
	PhaseValidating Phase = "validating"

	// PhaseDryRun renders the preview instead of processing.
	PhaseDryRun Phase = "dry-run"

	// PhaseConfirming waits for the user to approve the batch.
	PhaseConfirming Phase = "confirming"

	// PhaseProcessing transforms candidates one at a time.
	PhaseProcessing Phase = "processing"

	// PhaseReporting summarizes the run.
	PhaseReporting Phase = "reporting"
)
