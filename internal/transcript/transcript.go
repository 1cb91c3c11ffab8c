package transcript

import (
	"fmt"
	"math"
	"strings"
)

// Transcript is the plain text of spoken content and the file it came from.
type Transcript struct {
	Source string
	Text   string
}

// Segment is one timed span of a verbose transcription.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Document is the verbose transcription as returned by the provider.
// It is also the on-disk format of cache entries and JSON inputs.
// Source is the base name of the media file a cache entry was made from.
type Document struct {
	Source   string    `json:"source,omitempty"`
	Text     string    `json:"text"`
	Language string    `json:"language,omitempty"`
	Duration float64   `json:"duration,omitempty"`
	Segments []Segment `json:"segments,omitempty"`
}

// Empty reports whether the document carries no text at all
func (d Document) Empty() bool {
	if strings.TrimSpace(d.Text) != "" {
		return false
	}
	for _, seg := range d.Segments {
		if strings.TrimSpace(seg.Text) != "" {
			return false
		}
	}
	return true
}

// Render turns a document into transcript text, one "[H:MM:SS] text" line per
// segment. Documents without segments render as their plain text.
func (d Document) Render() string {
	if len(d.Segments) == 0 {
		return strings.TrimSpace(d.Text)
	}

	var b strings.Builder
	for _, seg := range d.Segments {
		fmt.Fprintf(&b, "[%s] %s\n", FormatOffset(seg.Start), seg.Text)
	}
	return b.String()
}

// FormatOffset formats seconds as H:MM:SS, adding .ffffff when the offset
// has a fractional part.
func FormatOffset(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	micros := int64(math.Round(seconds * 1e6))

	h := micros / 3_600_000_000
	micros -= h * 3_600_000_000
	m := micros / 60_000_000
	micros -= m * 60_000_000
	s := micros / 1_000_000
	micros -= s * 1_000_000

	if micros == 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d:%02d.%06d", h, m, s, micros)
}
