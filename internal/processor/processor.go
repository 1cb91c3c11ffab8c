package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/krets/transcribe/internal/normalizer"
	"github.com/krets/transcribe/internal/transcript"
)

// Process classifies the input, obtains a transcript and, unless
// transcription-only was requested, summarizes it.
func (p *implProcessor) Process(ctx context.Context, req Request) (Result, error) {
	startTime := time.Now()

	// Step 1: Classify
	info, err := os.Stat(req.InputPath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInput, err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s is a directory", ErrInput, req.InputPath)
	}

	kind := transcript.Classify(req.InputPath)
	p.logger.Debug(ctx, "Input %s classified as %s", req.InputPath, kind)

	// Step 2/3: Obtain transcript text
	var (
		text      string
		fromCache bool
	)
	if kind == transcript.KindMedia {
		doc, cached, err := p.mediaTranscript(ctx, req.InputPath, req.Force)
		if err != nil {
			return Result{}, err
		}
		text, fromCache = doc.Render(), cached
	} else {
		if req.Force {
			p.logger.Debug(ctx, "Input is already a transcript, --force has nothing to refresh")
		}
		tr, err := transcript.ReadFile(req.InputPath, kind)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrInput, err)
		}
		p.logger.Info(ctx, "Input file is a %s, skipping transcription", kind)
		text = tr.Text
	}

	result := Result{
		Kind: kind,
		Transcript: transcript.Transcript{
			Source: req.InputPath,
			Text:   fmt.Sprintf("Date: %s\n\n%s", p.assumedDate(req.InputPath), text),
		},
		FromCache: fromCache,
	}

	// Step 4: Transcription only
	if req.TranscriptionOnly {
		p.logger.Debug(ctx, "Transcription-only run finished in %s", time.Since(startTime))
		return result, nil
	}

	// Step 5: Summarize
	summary, err := p.summarizer.Summarize(ctx, result.Transcript.Text, req.Prompt)
	if err != nil {
		return Result{}, fmt.Errorf("%w: summarize: %w", ErrProvider, err)
	}
	result.Summary = summary

	p.logger.Debug(ctx, "Processing time: %s", time.Since(startTime))
	return result, nil
}

// mediaTranscript serves the transcript from cache unless forced, otherwise
// normalizes, transcribes and refreshes the cache entry.
func (p *implProcessor) mediaTranscript(ctx context.Context, mediaPath string, force bool) (transcript.Document, bool, error) {
	if force {
		p.logger.Info(ctx, "Ignoring cached transcription (--force)")
	} else if doc, ok := p.cache.Lookup(ctx, mediaPath); ok {
		return doc, true, nil
	}

	audioPath, err := p.normalizer.Normalize(ctx, mediaPath)
	if err != nil {
		if errors.Is(err, normalizer.ErrToolNotFound) {
			return transcript.Document{}, false, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		return transcript.Document{}, false, fmt.Errorf("%w: %w", ErrInput, err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	doc, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return transcript.Document{}, false, fmt.Errorf("%w: transcribe: %w", ErrProvider, err)
	}

	if err := p.cache.Store(ctx, mediaPath, doc); err != nil {
		return transcript.Document{}, false, fmt.Errorf("%w: %w", ErrCache, err)
	}
	p.logger.Info(ctx, "Cached transcription to: %s", p.cache.Path(mediaPath))

	return doc, false, nil
}

var reLeadingDate = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)

// assumedDate takes the recording date from a file name such as
// "2024-05-01 standup.mp4", falling back to today.
func (p *implProcessor) assumedDate(path string) string {
	if m := reLeadingDate.FindStringSubmatch(filepath.Base(path)); m != nil {
		if _, err := time.Parse("2006-01-02", m[1]); err == nil {
			return m[1]
		}
	}
	return p.now().Format("2006-01-02")
}
