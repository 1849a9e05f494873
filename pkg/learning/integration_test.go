package learning

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/translearn/pkg/analyzer"
	"github.com/japaniel/translearn/pkg/db"
	"github.com/japaniel/translearn/pkg/workerpool"
)

// TestHelperProcess plays the analyzer program for the tests below.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	mode := os.Args[len(os.Args)-1]
	switch mode {
	case "quick":
		fmt.Print(`[{"WordOrPhrase":"quick","Frequency":1,"Difficulty":0.4,"ContextSentence":"the quick fox"}]`)
	case "run-with-warning":
		fmt.Fprint(os.Stderr, "DeprecationWarning: something")
		fmt.Print(`[{"WordOrPhrase":"run","Frequency":1,"Difficulty":null,"ContextSentence":"I run."}]`)
	case "stderr-only":
		fmt.Fprint(os.Stderr, "fatal: model not installed")
	}
	os.Exit(0)
}

func helperBridge(mode string) *analyzer.Bridge {
	b := analyzer.NewBridge(os.Args[0], "-test.run=TestHelperProcess", "--", mode)
	b.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return b
}

func openStore(t *testing.T) *db.Store {
	t.Helper()
	conn, err := db.Open(db.Options{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return db.NewStore(conn)
}

func TestAnalyzeAndLearn_QuickFoxScenario(t *testing.T) {
	store := openStore(t)
	o := NewOrchestrator(helperBridge("quick"), store)
	ctx := context.Background()

	n, err := o.AnalyzeAndLearn(ctx, "the quick fox")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	e, err := store.GetVocabulary(ctx, "quick")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, 1, e.Frequency)
	assert.Equal(t, 0.4, *e.Difficulty)
	assert.Equal(t, "the quick fox", *e.ContextSentence)

	_, err = o.AnalyzeAndLearn(ctx, "the quick fox")
	require.NoError(t, err)

	e, err = store.GetVocabulary(ctx, "quick")
	require.NoError(t, err)
	assert.Equal(t, 2, e.Frequency)
	assert.Equal(t, 0.4, *e.Difficulty)
	assert.Equal(t, "the quick fox", *e.ContextSentence)
}

func TestAnalyzeAndLearn_StderrWithOutputIsApplied(t *testing.T) {
	store := openStore(t)
	o := NewOrchestrator(helperBridge("run-with-warning"), store)

	n, err := o.AnalyzeAndLearn(context.Background(), "I run.")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	e, err := store.GetVocabulary(context.Background(), "run")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Nil(t, e.Difficulty)
}

func TestAnalyzeAndLearn_StderrOnlyLeavesStoreUnchanged(t *testing.T) {
	store := openStore(t)
	o := NewOrchestrator(helperBridge("stderr-only"), store)

	n, err := o.AnalyzeAndLearn(context.Background(), "anything")
	var pe *analyzer.ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Zero(t, n)

	entries, err := store.ListVocabulary(context.Background(), db.VocabularyQuery{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAnalyzeAndLearn_ConcurrentAnalysesShareRow(t *testing.T) {
	store := openStore(t)
	o := NewOrchestrator(helperBridge("run-with-warning"), store)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := o.AnalyzeAndLearn(context.Background(), "I run.")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries, err := store.ListVocabulary(context.Background(), db.VocabularyQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "run", entries[0].Phrase)
	assert.Equal(t, 2, entries[0].Frequency)
}

type blockingAnalyzer struct {
	release chan struct{}
	mu      sync.Mutex
	seen    []string
}

func (b *blockingAnalyzer) Analyze(ctx context.Context, text string) ([]analyzer.Entry, error) {
	<-b.release
	b.mu.Lock()
	b.seen = append(b.seen, text)
	b.mu.Unlock()
	return []analyzer.Entry{{WordOrPhrase: text}}, nil
}

func TestDispatcher_DrainsOnClose(t *testing.T) {
	store := openStore(t)
	a := &blockingAnalyzer{release: make(chan struct{})}
	d := NewDispatcher(NewOrchestrator(a, store), DispatcherOptions{Workers: 1, QueueSize: 8})

	for _, text := range []string{"one", "two", "three"} {
		require.NoError(t, d.Submit(text))
	}
	require.NoError(t, d.Submit("   "))
	close(a.release)
	d.Close()

	entries, err := store.ListVocabulary(context.Background(), db.VocabularyQuery{})
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.ErrorIs(t, d.Submit("late"), workerpool.ErrPoolClosed)
}

func TestDispatcher_FullQueueRejectsWithoutBlocking(t *testing.T) {
	store := openStore(t)
	a := &blockingAnalyzer{release: make(chan struct{})}
	d := NewDispatcher(NewOrchestrator(a, store), DispatcherOptions{Workers: 1, QueueSize: 1})

	// Whichever job the worker has picked up, at most two fit: one running and
	// one queued. The rest must be rejected immediately.
	var rejected int
	for i := 0; i < 5; i++ {
		if err := d.Submit(fmt.Sprintf("t%d", i)); err != nil {
			assert.ErrorIs(t, err, workerpool.ErrQueueFull)
			rejected++
		}
	}
	assert.GreaterOrEqual(t, rejected, 3)

	close(a.release)
	d.Close()
}
