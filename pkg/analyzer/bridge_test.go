package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess is not a real test. It is re-executed by helperBridge to
// play the analyzer program.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "no mode")
		os.Exit(2)
	}
	input, _ := io.ReadAll(os.Stdin)

	switch args[1] {
	case "quick":
		fmt.Print(`[{"WordOrPhrase":"quick","Frequency":1,"Difficulty":0.4,"ContextSentence":"the quick fox"}]`)
	case "lowercase":
		fmt.Print(`[{"wordorphrase":"run","frequency":3,"difficulty":null,"contextsentence":null}]`)
	case "echo":
		fmt.Printf(`[{"WordOrPhrase":%q,"Frequency":1}]`, strings.TrimSpace(string(input)))
	case "env":
		fmt.Printf(`[{"WordOrPhrase":%q,"Frequency":1}]`, os.Getenv("PYTHONIOENCODING")+"|"+os.Getenv("TRANSLEARN_EXTRA"))
	case "warn":
		fmt.Fprint(os.Stderr, "UserWarning: model is old")
		fmt.Print(`[{"WordOrPhrase":"run","Frequency":1}]`)
	case "stderr-only":
		fmt.Fprint(os.Stderr, "Traceback: ModuleNotFoundError: spacy")
	case "empty":
	case "empty-array":
		fmt.Print("[]")
	case "garbage":
		fmt.Print("this is not json")
	case "object":
		fmt.Print(`{"WordOrPhrase":"run"}`)
	case "nonzero":
		fmt.Print(`[{"WordOrPhrase":"run","Frequency":1}]`)
		os.Exit(3)
	case "sleep":
		time.Sleep(10 * time.Second)
	}
	os.Exit(0)
}

func helperBridge(mode string) *Bridge {
	b := NewBridge(os.Args[0], "-test.run=TestHelperProcess", "--", mode)
	b.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return b
}

func TestBridgeAnalyze(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		want    []string
		wantErr bool
	}{
		{name: "valid output", mode: "quick", want: []string{"quick"}},
		{name: "case-insensitive fields", mode: "lowercase", want: []string{"run"}},
		{name: "stderr with valid stdout is parsed", mode: "warn", want: []string{"run"}},
		{name: "non-zero exit is not authoritative", mode: "nonzero", want: []string{"run"}},
		{name: "empty stdout is empty result", mode: "empty"},
		{name: "empty array", mode: "empty-array"},
		{name: "stderr with empty stdout fails", mode: "stderr-only", wantErr: true},
		{name: "malformed stdout fails", mode: "garbage", wantErr: true},
		{name: "object instead of array fails", mode: "object", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := helperBridge(tt.mode).Analyze(context.Background(), "the quick fox")
			if tt.wantErr {
				var pe *ProtocolError
				require.ErrorAs(t, err, &pe)
				assert.Empty(t, entries)
				return
			}
			require.NoError(t, err)
			var got []string
			for _, e := range entries {
				got = append(got, e.WordOrPhrase)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBridgeDecodesFields(t *testing.T) {
	entries, err := helperBridge("quick").Analyze(context.Background(), "the quick fox")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	e := entries[0]
	require.NotNil(t, e.Difficulty)
	assert.Equal(t, 0.4, *e.Difficulty)
	require.NotNil(t, e.ContextSentence)
	assert.Equal(t, "the quick fox", *e.ContextSentence)

	entries, err = helperBridge("lowercase").Analyze(context.Background(), "run")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Frequency)
	assert.Nil(t, entries[0].Difficulty)
	assert.Nil(t, entries[0].ContextSentence)
}

func TestBridgeStderrOnlyCarriesDiagnostics(t *testing.T) {
	_, err := helperBridge("stderr-only").Analyze(context.Background(), "x")
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Stderr, "ModuleNotFoundError")
}

func TestBridgeSendsTextOnStdin(t *testing.T) {
	entries, err := helperBridge("echo").Analyze(context.Background(), "猫が好きです")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "猫が好きです", entries[0].WordOrPhrase)
}

func TestBridgeInvalidUTF8IsReplaced(t *testing.T) {
	entries, err := helperBridge("echo").Analyze(context.Background(), "ok\xffok")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ok�ok", entries[0].WordOrPhrase)
}

func TestBridgeForcesUTF8Environment(t *testing.T) {
	b := helperBridge("env")
	b.Env = append(b.Env, "TRANSLEARN_EXTRA=yes")
	entries, err := b.Analyze(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "utf-8|yes", entries[0].WordOrPhrase)
}

func TestBridgeLaunchFailure(t *testing.T) {
	b := NewBridge("/nonexistent/translearn-analyzer-missing")
	_, err := b.Analyze(context.Background(), "text")
	var le *LaunchError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "/nonexistent/translearn-analyzer-missing", le.Command)
}

func TestBridgeTimeoutKillsProcess(t *testing.T) {
	b := helperBridge("sleep")
	b.Timeout = 200 * time.Millisecond

	start := time.Now()
	_, err := b.Analyze(context.Background(), "x")
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestBridgeConcurrentCalls(t *testing.T) {
	b := helperBridge("echo")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := fmt.Sprintf("text-%d", i)
			entries, err := b.Analyze(context.Background(), text)
			if assert.NoError(t, err) && assert.Len(t, entries, 1) {
				assert.Equal(t, text, entries[0].WordOrPhrase)
			}
		}(i)
	}
	wg.Wait()
}

func TestTrimStderrKeepsRunesWhole(t *testing.T) {
	prefix := strings.Repeat("a", 2047)
	got := trimStderr(prefix + "猫猫")
	assert.Equal(t, prefix+"...", got)
	assert.True(t, utf8.ValidString(got))

	assert.Equal(t, "short", trimStderr("  short\n"))
}
