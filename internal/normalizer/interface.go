package normalizer

import (
	"context"
	"errors"
)

// ErrToolNotFound is returned when the ffmpeg binary cannot be resolved.
var ErrToolNotFound = errors.New("ffmpeg not found")

// Normalizer transcodes media into a compressed mono audio file for upload.
// The caller owns the returned file and removes it when done.
type Normalizer interface {
	Normalize(ctx context.Context, mediaPath string) (string, error)
}
