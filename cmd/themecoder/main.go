package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ntbanh2504/theme-coder/internal/codebook"
	"github.com/ntbanh2504/theme-coder/internal/coder"
	"github.com/ntbanh2504/theme-coder/internal/config"
	"github.com/ntbanh2504/theme-coder/internal/llm"
	"github.com/ntbanh2504/theme-coder/internal/logger"
	"github.com/ntbanh2504/theme-coder/internal/processor"
	"github.com/ntbanh2504/theme-coder/internal/watcher"
)

func main() {
	var (
		configPath     = flag.String("config", "config.yaml", "path to config file")
		transcriptsDir = flag.String("transcripts", "", "transcript directory (overrides config)")
		codebookPath   = flag.String("codebook", "", "codebook file, .xlsx or .csv (overrides config)")
		outputDir      = flag.String("out", "", "output directory (overrides config)")
		watch          = flag.Bool("watch", false, "keep running and code transcripts as they appear")
	)
	flag.Parse()

	ctx := context.Background()

	// Optional .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// A missing config file is fine when paths come from flags.
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	if *transcriptsDir != "" {
		cfg.Paths.Transcripts = *transcriptsDir
	}
	if *codebookPath != "" {
		cfg.Paths.Codebook = *codebookPath
	}
	if *outputDir != "" {
		cfg.Paths.Output = *outputDir
	}
	if *watch {
		cfg.Processing.Watch = true
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Theme-Coding Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcripts: %s", cfg.Paths.Transcripts)
	log.Info(ctx, "Codebook:    %s", cfg.Paths.Codebook)
	log.Info(ctx, "Output:      %s", cfg.Paths.Output)
	log.Info(ctx, "Model:       %s (%s)", cfg.Model.Name, cfg.Model.Provider)

	// The codebook is loaded once and shared read-only across the run.
	cb, err := codebook.Load(cfg.Paths.Codebook)
	if err != nil {
		log.Error(ctx, "Failed to load codebook: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Loaded %d theme codes", len(cb.Entries))

	provider, err := llm.New(cfg.Model, geminiAPIKeys(), log)
	if err != nil {
		log.Error(ctx, "Failed to create model provider: %v", err)
		os.Exit(1)
	}

	c := coder.New(provider, cb, log)
	proc := processor.New(cfg, c, log)

	batchErr := proc.Run(ctx)
	if batchErr != nil {
		log.Error(ctx, "Batch failed: %v", batchErr)
		if exitAfterBatch(batchErr, cfg.Processing.Watch) {
			os.Exit(1)
		}
		log.Warn(ctx, "Entering watch mode despite batch failure")
	}

	if !cfg.Processing.Watch {
		return
	}

	w, err := watcher.New(cfg.Paths.Transcripts, proc.ProcessFile, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for new transcripts. Press Ctrl+C to stop", cfg.Paths.Transcripts)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
		cancel()
		os.Exit(1)
	}

	cancel()
	log.Info(ctx, "Pipeline stopped")

	if batchErr != nil {
		os.Exit(1)
	}
}

// exitAfterBatch reports whether a failed initial batch ends the
// process immediately. Watch mode keeps running and defers the
// non-zero exit to shutdown.
func exitAfterBatch(batchErr error, watch bool) bool {
	return batchErr != nil && !watch
}

// geminiAPIKeys collects Gemini keys from the environment, either a
// comma-separated GEMINI_API_KEYS list or a single GEMINI_API_KEY.
func geminiAPIKeys() []string {
	var keys []string
	for _, k := range strings.Split(os.Getenv("GEMINI_API_KEYS"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		if k := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
