// Package recognition turns captured bitmaps and audio buffers into text by
// driving external OCR and speech engines. An empty string means nothing was
// recognised; it is not an error.
package recognition

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds one recognition subprocess.
const DefaultTimeout = 30 * time.Second

type runner struct {
	command string
	env     []string
	timeout time.Duration
}

// run executes the engine once with stdin as input and returns its stdout.
func (r runner) run(ctx context.Context, stdin []byte, args ...string) ([]byte, error) {
	timeout := r.timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.command, args...)
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s timed out: %w", r.command, ctx.Err())
		}
		return nil, fmt.Errorf("%s failed: %w, stderr: %s", r.command, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// normalizeLines trims every line and drops blank ones, keeping line breaks
// between recognised lines.
func normalizeLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r\f"))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// cleanTranscript removes whisper timestamps ("[00:00:00.000 --> 00:00:05.000] text")
// and non-speech markers such as "[BLANK_AUDIO]", joining segments with spaces.
func cleanTranscript(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.Contains(line, "-->") {
			if idx := strings.Index(line, "]"); idx != -1 {
				line = strings.TrimSpace(line[idx+1:])
			}
		}
		if isNonSpeech(line) {
			continue
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, " ")
}

func isNonSpeech(line string) bool {
	if len(line) < 2 {
		return false
	}
	bracketed := (line[0] == '[' && line[len(line)-1] == ']') || (line[0] == '(' && line[len(line)-1] == ')')
	if !bracketed {
		return false
	}
	inner := strings.ToUpper(line[1 : len(line)-1])
	switch inner {
	case "BLANK_AUDIO", "SILENCE", "MUSIC", "NOISE", "INAUDIBLE":
		return true
	}
	return false
}
