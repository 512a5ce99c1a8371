package processor

import "context"

// Processor drives the coding pipeline over a transcript directory.
type Processor interface {
	// Run codes every supported transcript in the configured directory,
	// one at a time, writing one output table per file.
	Run(ctx context.Context) error

	// ProcessFile codes a single transcript file.
	ProcessFile(ctx context.Context, path string) error
}
