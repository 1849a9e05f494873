package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/japaniel/translearn/pkg/db"
	"github.com/japaniel/translearn/pkg/events"
	mock_ingest "github.com/japaniel/translearn/pkg/mocks/ingest"
	"github.com/japaniel/translearn/pkg/recognition"
	"github.com/japaniel/translearn/pkg/translation"
	"github.com/japaniel/translearn/pkg/workerpool"
)

func openStore(t *testing.T) *db.Store {
	t.Helper()
	conn, err := db.Open(db.Options{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return db.NewStore(conn)
}

// recordingLearner collects submitted text.
type recordingLearner struct {
	mu    sync.Mutex
	texts []string
}

func (l *recordingLearner) Submit(text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.texts = append(l.texts, text)
	return nil
}

func (l *recordingLearner) submitted() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.texts...)
}

func TestAudioPipeline_EmptyBufferRecordsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	recognizer := mock_ingest.NewMockAudioRecognizer(ctrl)
	store := openStore(t)
	learner := &recordingLearner{}
	bus := events.NewBus()
	sub, cancel := bus.Subscribe(4)
	defer cancel()

	p := NewAudioPipeline(recognizer, Options{
		Translator: translation.NewPlaceholder(""),
		Store:      store,
		Learner:    learner,
		Notifier:   bus,
	})

	for _, tc := range []struct {
		buf []byte
		n   int
	}{
		{buf: nil, n: 0},
		{buf: make([]byte, 320), n: 0},
		{buf: nil, n: 100},
	} {
		res := p.Process(context.Background(), tc.buf, tc.n)
		assert.False(t, res.Found)
		assert.NoError(t, res.Err)
	}

	n, err := store.CountObservations(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, learner.submitted())
	assert.Equal(t, events.KindNoTextFound, (<-sub).Kind)
}

func TestAudioPipeline_SpeechIsRecordedAndDispatched(t *testing.T) {
	store := openStore(t)
	learner := &recordingLearner{}
	p := NewAudioPipeline(&recognition.MockSpeech{}, Options{
		Translator: translation.NewPlaceholder(""),
		Store:      store,
		Learner:    learner,
	})

	res := p.Process(context.Background(), make([]byte, 640), 640)
	require.NoError(t, res.Err)
	require.True(t, res.Found)
	require.NotNil(t, res.Observation)
	assert.NotZero(t, res.Observation.ID)
	assert.Equal(t, "[Translated] [Recognized speech chunk #1]", res.TranslatedText)

	obs, err := store.ListObservations(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, obs, 1)
	assert.Equal(t, db.ModalityAudio, obs[0].Modality)
	assert.Equal(t, "[Recognized speech chunk #1]", obs[0].SourceText)
	assert.Equal(t, []string{"[Recognized speech chunk #1]"}, learner.submitted())
}

func TestAudioPipeline_RecognitionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	recognizer := mock_ingest.NewMockAudioRecognizer(ctrl)
	recognizer.EXPECT().RecognizeAudio(gomock.Any(), gomock.Any(), 4).Return("", errors.New("model missing"))

	store := openStore(t)
	p := NewAudioPipeline(recognizer, Options{Translator: translation.NewPlaceholder(""), Store: store})
	res := p.Process(context.Background(), []byte{1, 2, 3, 4}, 10)
	assert.Error(t, res.Err)
	assert.False(t, res.Found)

	n, err := store.CountObservations(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAudioPipeline_HandleBufferCopiesChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	recognizer := mock_ingest.NewMockAudioRecognizer(ctrl)
	got := make(chan []byte, 1)
	recognizer.EXPECT().RecognizeAudio(gomock.Any(), gomock.Any(), 3).DoAndReturn(
		func(_ context.Context, buf []byte, n int) (string, error) {
			got <- append([]byte(nil), buf[:n]...)
			return "", nil
		})

	pool := workerpool.New(1, 4)
	p := NewAudioPipeline(recognizer, Options{
		Translator: translation.NewPlaceholder(""),
		Store:      openStore(t),
		Pool:       pool,
	})

	// Queue before starting the pool so the producer can reuse its buffer first.
	buf := []byte{1, 2, 3, 4, 5}
	p.HandleBuffer(buf, 3)
	buf[0], buf[1], buf[2] = 9, 9, 9
	pool.Start(context.Background())

	select {
	case b := <-got:
		assert.Equal(t, []byte{1, 2, 3}, b)
	case <-time.After(2 * time.Second):
		t.Fatal("chunk was not processed")
	}
	pool.Close()
}

func TestAudioPipeline_HandleBufferDropsWhenQueueFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	recognizer := mock_ingest.NewMockAudioRecognizer(ctrl)
	pool := mock_ingest.NewMockWorkerPoolInterface(ctrl)
	pool.EXPECT().TrySubmit(gomock.Any()).Return(workerpool.ErrQueueFull)

	p := NewAudioPipeline(recognizer, Options{Pool: pool})
	done := make(chan struct{})
	go func() {
		p.HandleBuffer([]byte{1, 2}, 2)
		p.HandleBuffer([]byte{1, 2}, 0)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("HandleBuffer blocked")
	}
}

func TestAudioPipeline_ConcurrentChunks(t *testing.T) {
	store := openStore(t)
	learner := &recordingLearner{}
	pool := workerpool.New(4, 32)
	pool.Start(context.Background())

	p := NewAudioPipeline(&recognition.MockSpeech{}, Options{
		Translator: translation.NewPlaceholder(""),
		Store:      store,
		Learner:    learner,
		Pool:       pool,
	})
	buf := make([]byte, 64)
	for i := 0; i < 20; i++ {
		p.HandleBuffer(buf, len(buf))
	}
	pool.Close()

	n, err := store.CountObservations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	assert.Len(t, learner.submitted(), 20)
}
