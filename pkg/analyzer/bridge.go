// Package analyzer runs the external text analyzer program. Each call starts
// a fresh process, writes the text to its stdin and parses the JSON array it
// prints on stdout.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultTimeout bounds one analyzer invocation when Bridge.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// utf8Env forces the child's standard streams to UTF-8 regardless of locale.
var utf8Env = []string{
	"PYTHONIOENCODING=utf-8",
	"PYTHONUTF8=1",
	"LC_ALL=C.UTF-8",
}

// Bridge invokes the analyzer program. It holds no per-call state and is safe
// for concurrent use; every Analyze call owns its own process.
type Bridge struct {
	// Command is the executable, e.g. "python3" or "translearn-analyzer".
	Command string
	// Args are passed to Command before any input, typically the script path.
	Args []string
	// Env is appended to the parent environment and the UTF-8 settings.
	Env []string
	// Timeout bounds one invocation. Zero means DefaultTimeout.
	Timeout time.Duration
	// Logger receives warnings about stderr output and exit codes.
	// nil means slog.Default().
	Logger *slog.Logger
}

// NewBridge returns a Bridge running command with args.
func NewBridge(command string, args ...string) *Bridge {
	return &Bridge{Command: command, Args: args}
}

func (b *Bridge) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// Analyze sends text to a new analyzer process and returns the entries it
// reports. An empty stdout means no entries. Failures are *LaunchError or
// *ProtocolError.
func (b *Bridge) Analyze(ctx context.Context, text string) ([]Entry, error) {
	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, b.Command, b.Args...)
	cmd.Env = append(append(os.Environ(), utf8Env...), b.Env...)
	cmd.WaitDelay = 2 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &LaunchError{Command: b.Command, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Command: b.Command, Err: err}
	}

	// Write from a goroutine so a child that fills its stdout pipe before
	// reading all input cannot deadlock us.
	input := strings.ToValidUTF8(text, "�")
	go func() {
		_, _ = io.WriteString(stdin, input)
		stdin.Close()
	}()

	waitErr := cmd.Wait()
	if ctx.Err() != nil {
		return nil, &ProtocolError{Reason: "timed out", Stderr: trimStderr(stderr.String()), Err: ctx.Err()}
	}

	log := b.logger()
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, &ProtocolError{Reason: "wait for process", Stderr: trimStderr(stderr.String()), Err: waitErr}
		}
		log.Warn("analyzer exited with non-zero status", "exit_code", exitErr.ExitCode())
	}

	return b.parse(stdout.Bytes(), trimStderr(stderr.String()))
}

func (b *Bridge) parse(out []byte, errText string) ([]Entry, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		if errText != "" {
			return nil, &ProtocolError{Reason: "no output", Stderr: errText}
		}
		return nil, nil
	}
	if errText != "" {
		b.logger().Warn("analyzer wrote to stderr", "stderr", errText)
	}

	var entries []Entry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, &ProtocolError{Reason: "decode output", Stderr: errText, Err: err}
	}
	return entries, nil
}

func trimStderr(s string) string {
	s = strings.TrimSpace(s)
	const max = 2048
	if len(s) > max {
		cut := max
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}
