package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrEmpty is returned when a transcript file has no usable text.
var ErrEmpty = errors.New("transcript is empty")

// DecodeDocument parses a verbose JSON transcription
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode transcript json: %w", err)
	}
	return doc, nil
}

// ReadFile loads a JSON or plain-text transcript file.
func ReadFile(path string, kind Kind) (Transcript, error) {
	switch kind {
	case KindJSON:
		return readJSON(path)
	case KindText:
		return readText(path)
	default:
		return Transcript{}, fmt.Errorf("%s is not a transcript file", path)
	}
}

func readJSON(path string) (Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return Transcript{}, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	doc, err := DecodeDocument(f)
	if err != nil {
		return Transcript{}, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Empty() {
		return Transcript{}, fmt.Errorf("%s: %w", path, ErrEmpty)
	}

	return Transcript{Source: path, Text: doc.Render()}, nil
}

func readText(path string) (Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Transcript{}, fmt.Errorf("read transcript: %w", err)
	}
	if !utf8.Valid(data) {
		return Transcript{}, fmt.Errorf("%s: not valid UTF-8 text", path)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return Transcript{}, fmt.Errorf("%s: %w", path, ErrEmpty)
	}

	return Transcript{Source: path, Text: text}, nil
}
