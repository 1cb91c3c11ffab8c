package normalizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Normalize extracts the audio track of mediaPath into a small mono file
// under the configured temp directory.
func (n *implNormalizer) Normalize(ctx context.Context, mediaPath string) (string, error) {
	binary, err := n.executor.LookPath(n.cfg.BinaryPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrToolNotFound, err)
	}

	if err := os.MkdirAll(n.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	tmp, err := os.CreateTemp(n.tempDir, base+"-*"+n.cfg.Extension)
	if err != nil {
		return "", fmt.Errorf("create temp audio file: %w", err)
	}
	audioPath := tmp.Name()
	tmp.Close()

	n.logger.Info(ctx, "Extracting audio: %s -> %s", mediaPath, audioPath)

	args := n.buildArgs(mediaPath, audioPath)
	n.logger.Debug(ctx, "FFmpeg command: %s %s", binary, strings.Join(args, " "))

	if _, err := n.executor.Execute(ctx, binary, args...); err != nil {
		os.Remove(audioPath)
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	n.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}

// buildArgs assembles the ffmpeg invocation
// -y: overwrite the placeholder temp file
// -vn: drop any video stream
// -qscale:a: VBR quality for lame (0 best, 9 smallest)
// -ac/-ar: downmix and resample to keep the upload small
func (n *implNormalizer) buildArgs(in, out string) []string {
	args := []string{
		"-y",
		"-i", in,
		"-vn",
		"-codec:a", n.cfg.AudioCodec,
	}
	if n.cfg.Quality != "" {
		args = append(args, "-qscale:a", n.cfg.Quality)
	}
	args = append(args,
		"-ac", strconv.Itoa(n.cfg.Channels),
		"-ar", strconv.Itoa(n.cfg.SampleRate),
		out,
	)
	return args
}
