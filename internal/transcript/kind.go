package transcript

import (
	"path/filepath"
	"strings"
)

// Kind is the inferred type of an input file
type Kind int

const (
	KindMedia Kind = iota
	KindJSON
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json-transcript"
	case KindText:
		return "text-transcript"
	default:
		return "media"
	}
}

var textExtensions = map[string]bool{
	".txt":      true,
	".text":     true,
	".md":       true,
	".markdown": true,
}

// Classify infers the input kind from the file extension alone.
// Anything that is not a known transcript extension is handed to ffmpeg.
func Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return KindJSON
	}
	if textExtensions[ext] {
		return KindText
	}
	return KindMedia
}
