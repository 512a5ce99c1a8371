package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ntbanh2504/theme-coder/internal/coder"
	"github.com/ntbanh2504/theme-coder/internal/filter"
	"github.com/ntbanh2504/theme-coder/internal/transcript"
)

// Run enumerates the transcript directory, lexicographically sorted for
// a reproducible batch order, and codes each file in sequence. With
// halt_on_error unset a failed file is logged and the batch continues;
// the run still returns an error at the end so the process exits
// non-zero on partial success.
func (p *implProcessor) Run(ctx context.Context) error {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files, err := p.discoverTranscripts(p.cfg.Paths.Transcripts)
	if err != nil {
		return fmt.Errorf("discover transcripts: %w", err)
	}

	if len(files) == 0 {
		p.logger.Info(ctx, "No transcripts found in %s", p.cfg.Paths.Transcripts)
		return nil
	}

	p.logger.Info(ctx, "Found %d transcripts to code", len(files))

	successCount := 0
	failCount := 0
	var firstErr error

	for i, path := range files {
		p.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(files), filepath.Base(path))

		if err := p.ProcessFile(ctx, path); err != nil {
			if p.cfg.Processing.HaltOnError {
				return fmt.Errorf("process %s: %w", filepath.Base(path), err)
			}
			p.logger.Error(ctx, "Failed to code %s: %v", filepath.Base(path), err)
			failCount++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		successCount++
	}

	p.logger.Info(ctx, "Coding complete: %d success, %d failed", successCount, failCount)

	if failCount > 0 {
		return fmt.Errorf("%d of %d transcripts failed, first error: %w", failCount, len(files), firstErr)
	}
	return nil
}

// ProcessFile runs load -> filter -> code -> write for one transcript.
func (p *implProcessor) ProcessFile(ctx context.Context, path string) error {
	startTime := time.Now()

	raw, err := transcript.Load(path)
	if err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}

	intervieweeText := filter.ExtractInterviewee(raw.Text)
	if intervieweeText == "" {
		p.logger.Warn(ctx, "No interviewee-labeled lines in %s", filepath.Base(path))
	}

	quotes, err := p.coder.Code(ctx, intervieweeText)
	if err != nil {
		return fmt.Errorf("code transcript: %w", err)
	}

	if n := coder.UnmatchedQuotes(quotes, intervieweeText); n > 0 {
		p.logger.Warn(ctx, "%d of %d quotes not found verbatim in %s", n, len(quotes), filepath.Base(path))
	}

	outPath := p.outputPath(path)
	if err := writeTable(outPath, quotes); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	p.logger.Info(ctx, "Saved -> %s (%d quotes, %s)", outPath, len(quotes), time.Since(startTime).Round(time.Millisecond))
	return nil
}

func (p *implProcessor) outputPath(transcriptPath string) string {
	base := filepath.Base(transcriptPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(p.cfg.Paths.Output, "coded_"+stem+".csv")
}

func (p *implProcessor) discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if transcript.Supported(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
