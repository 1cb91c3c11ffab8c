package transcriber

import (
	"context"

	"github.com/krets/transcribe/internal/transcript"
)

// Transcriber converts an audio file into a verbose transcription.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (transcript.Document, error)
}
