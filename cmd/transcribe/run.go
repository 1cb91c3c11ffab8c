package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/krets/transcribe/internal/cache"
	"github.com/krets/transcribe/internal/config"
	"github.com/krets/transcribe/internal/export"
	"github.com/krets/transcribe/internal/logger"
	"github.com/krets/transcribe/internal/normalizer"
	"github.com/krets/transcribe/internal/processor"
	"github.com/krets/transcribe/internal/summarizer"
	"github.com/krets/transcribe/internal/transcriber"
	"github.com/krets/transcribe/pkg/executor"
)

func run(ctx context.Context, opts options, input string, stdout, stderr io.Writer) error {
	// Load and validate configuration before touching anything external
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", processor.ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", processor.ErrConfig, err)
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}

	log := logger.NewWithWriter(stderr, cfg.Logging.Level)

	if input == "" {
		input, err = findLatestMedia(".")
		if err != nil {
			return err
		}
		// Shown regardless of log level
		fmt.Fprintf(stderr, "No input file provided, using latest: %s\n", input)
	}

	// Initialize dependencies
	sum, err := summarizer.New(cfg, log)
	if err != nil {
		return fmt.Errorf("%w: %w", processor.ErrConfig, err)
	}
	proc := processor.New(
		cache.New(log),
		normalizer.New(cfg, executor.New(), log),
		transcriber.New(cfg, log),
		sum,
		log,
	)

	res, err := proc.Process(ctx, processor.Request{
		InputPath:         input,
		TranscriptionOnly: opts.transcriptionOnly,
		Force:             opts.force,
		Prompt:            opts.prompt,
	})
	if err != nil {
		return err
	}

	if opts.docxPath != "" {
		if err := writeDocx(opts, input, res); err != nil {
			return err
		}
		log.Info(ctx, "Wrote %s", opts.docxPath)
	}

	if opts.transcriptionOnly {
		fmt.Fprintf(stdout, "Transcription:\n%s\n", strings.TrimRight(res.Transcript.Text, "\n"))
		return nil
	}
	fmt.Fprintf(stdout, "Summary:\n%s\n", res.Summary)
	return nil
}

func writeDocx(opts options, input string, res processor.Result) error {
	title := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	var err error
	if opts.transcriptionOnly {
		err = export.TranscriptToDocx(title, res.Transcript.Text, opts.docxPath)
	} else {
		err = export.MarkdownToDocx(title, res.Summary, opts.docxPath)
	}
	if err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

// findLatestMedia returns the most recently modified .mp4 in dir
func findLatestMedia(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.mp4"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", processor.ErrInput, err)
	}

	var (
		latest  string
		latestT int64
	)
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if t := info.ModTime().UnixNano(); latest == "" || t > latestT {
			latest, latestT = m, t
		}
	}

	if latest == "" {
		return "", fmt.Errorf("%w: no input file given and no .mp4 files found in %s", processor.ErrInput, dir)
	}
	return latest, nil
}
