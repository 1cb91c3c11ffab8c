package summarizer

import "context"

// Summarizer condenses a transcript into markdown notes.
// extraPrompt, when non-empty, is appended to the directive.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, extraPrompt string) (string, error)
}
