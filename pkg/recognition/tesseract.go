package recognition

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"time"
)

// Tesseract recognises text in images with the tesseract CLI, passing the
// image as PNG on stdin and reading plain text from stdout.
type Tesseract struct {
	// Command defaults to "tesseract".
	Command string
	// Args are placed before tesseract's own arguments, for wrappers such as
	// "docker run -i ... tesseract".
	Args []string
	// Language is the tesseract language list, e.g. "jpn+eng".
	Language string
	// ExtraArgs are appended after the language, e.g. "--psm", "6".
	ExtraArgs []string
	Env       []string
	Timeout   time.Duration
}

// RecognizeImage returns the recognised lines, trimmed, one per line.
func (t *Tesseract) RecognizeImage(ctx context.Context, img image.Image) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	command := t.Command
	if command == "" {
		command = "tesseract"
	}
	args := append(append([]string{}, t.Args...), "stdin", "stdout")
	if t.Language != "" {
		args = append(args, "-l", t.Language)
	}
	args = append(args, t.ExtraArgs...)

	out, err := runner{command: command, env: t.Env, timeout: t.Timeout}.run(ctx, buf.Bytes(), args...)
	if err != nil {
		return "", err
	}
	return normalizeLines(string(out)), nil
}
