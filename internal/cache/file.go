package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/krets/transcribe/internal/logger"
	"github.com/krets/transcribe/internal/transcript"
)

type fileCache struct {
	logger logger.Logger
}

// New creates a Cache that keeps each entry as a hidden JSON file next to its input
func New(log logger.Logger) Cache {
	return &fileCache{logger: log}
}

// Path derives <dir>/.<name-without-ext>.json from the input path.
// meeting.mp4 and meeting.mkv share a path; the entry's source field tells them apart.
func (c *fileCache) Path(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "."+name+".json")
}

// Lookup treats an unreadable, undecodable or foreign entry as absent.
// A decodable entry with no text is a hit: the recording had no speech.
func (c *fileCache) Lookup(ctx context.Context, inputPath string) (transcript.Document, bool) {
	path := c.Path(inputPath)

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn(ctx, "Cached transcription unreadable, ignoring %s: %v", path, err)
		}
		return transcript.Document{}, false
	}
	defer f.Close()

	doc, err := transcript.DecodeDocument(f)
	if err != nil {
		c.logger.Warn(ctx, "Cached transcription corrupt, ignoring %s: %v", path, err)
		return transcript.Document{}, false
	}

	// Entries written before the source field existed are trusted as-is
	if source := filepath.Base(inputPath); doc.Source != "" && doc.Source != source {
		c.logger.Info(ctx, "Cached transcription %s belongs to %s, not %s", path, doc.Source, source)
		return transcript.Document{}, false
	}

	c.logger.Info(ctx, "Loading cached transcription from: %s", path)
	return doc, true
}

func (c *fileCache) Store(ctx context.Context, inputPath string, doc transcript.Document) error {
	path := c.Path(inputPath)
	doc.Source = filepath.Base(inputPath)

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode transcription: %w", err)
	}

	c.logger.Debug(ctx, "Caching transcription to: %s", path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write cache %s: %w", path, err)
	}
	return nil
}
