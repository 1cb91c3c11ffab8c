package cache

import (
	"context"

	"github.com/krets/transcribe/internal/transcript"
)

// Cache stores transcriptions keyed by the media path they were produced from.
type Cache interface {
	// Lookup returns the cached document for inputPath, if one is present and
	// was produced from a file of the same name.
	Lookup(ctx context.Context, inputPath string) (transcript.Document, bool)
	// Store writes doc as the entry for inputPath, replacing any previous one.
	Store(ctx context.Context, inputPath string, doc transcript.Document) error
	// Path is the location of the entry for inputPath.
	Path(inputPath string) string
}
