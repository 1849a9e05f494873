package recognition

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// WhisperCLI transcribes audio with the whisper.cpp command line tool. Each
// buffer is written to a temporary WAV file that is removed afterwards.
type WhisperCLI struct {
	// Command is the whisper.cpp binary. Empty means the first of
	// whisper-cli or whisper found on PATH.
	Command string
	// Args are placed before whisper's own arguments.
	Args       []string
	ModelPath  string
	Language   string
	SampleRate int
	Channels   int
	Env        []string
	Timeout    time.Duration
	// TempDir holds the WAV files. Empty means os.TempDir().
	TempDir string
}

func (w *WhisperCLI) command() (string, error) {
	if w.Command != "" {
		return w.Command, nil
	}
	for _, name := range []string{"whisper-cli", "whisper"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("whisper binary not found")
}

// RecognizeAudio transcribes the first n bytes of buf (16-bit PCM).
func (w *WhisperCLI) RecognizeAudio(ctx context.Context, buf []byte, n int) (string, error) {
	if n > len(buf) {
		n = len(buf)
	}
	if n <= 0 {
		return "", nil
	}
	command, err := w.command()
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp(w.TempDir, "translearn-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create WAV file: %w", err)
	}
	defer os.Remove(f.Name())

	rate := w.SampleRate
	if rate <= 0 {
		rate = 16000
	}
	if err := WriteWAV(f, buf[:n], rate, w.Channels); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write WAV file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write WAV file: %w", err)
	}

	args := append(append([]string{}, w.Args...), "-nt", "-np")
	if w.ModelPath != "" {
		args = append(args, "-m", w.ModelPath)
	}
	if w.Language != "" {
		args = append(args, "-l", w.Language)
	}
	args = append(args, "-f", f.Name())

	out, err := runner{command: command, env: w.Env, timeout: w.Timeout}.run(ctx, nil, args...)
	if err != nil {
		return "", err
	}
	return cleanTranscript(string(out)), nil
}
