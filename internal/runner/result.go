package runner

// Result summarizes one script run for the orchestrator.
type Result struct {
	RunID    string // unique identifier for this run
	Script   string // script identifier as supplied by the caller
	ExitCode int    // process exit code; 0 when Errored
	Errored  bool   // true when the run failed before/outside normal exit
}
