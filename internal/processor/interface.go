package processor

import (
	"context"

	"github.com/krets/transcribe/internal/transcript"
)

// Processor runs the transcribe-then-summarize pipeline for one input file
type Processor interface {
	Process(ctx context.Context, req Request) (Result, error)
}

// Request describes one invocation
type Request struct {
	InputPath         string
	TranscriptionOnly bool
	Force             bool
	Prompt            string
}

// Result is what the pipeline produced. Summary is empty in transcription-only mode.
type Result struct {
	Kind       transcript.Kind
	Transcript transcript.Transcript
	Summary    string
	FromCache  bool
}
