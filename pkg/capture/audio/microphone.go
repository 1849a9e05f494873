// Package audio captures microphone input with PortAudio and hands it out
// in fixed-duration 16-bit PCM chunks.
package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/gordonklaus/portaudio"
)

const (
	// DefaultSampleRate suits speech recognisers such as whisper.
	DefaultSampleRate = 16000
	// DefaultFramesPerBuffer is the PortAudio read size.
	DefaultFramesPerBuffer = 512
	// DefaultChannels is mono audio.
	DefaultChannels = 1
	// DefaultChunkDuration is the amount of audio handed to the recogniser at once.
	DefaultChunkDuration = 5 * time.Second
)

// Microphone reads the default (or a named) input device and delivers fixed
// duration PCM chunks to a handler.
type Microphone struct {
	SampleRate      float64
	Channels        int
	FramesPerBuffer int
	ChunkDuration   time.Duration
	// DeviceName selects an input device by name. Empty means the default device.
	DeviceName string
	Logger     *slog.Logger
}

// NewMicrophone returns a Microphone with default settings.
func NewMicrophone() *Microphone {
	return &Microphone{
		SampleRate:      DefaultSampleRate,
		Channels:        DefaultChannels,
		FramesPerBuffer: DefaultFramesPerBuffer,
		ChunkDuration:   DefaultChunkDuration,
	}
}

func (m *Microphone) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}

func (m *Microphone) samplesPerChunk() int {
	d := m.ChunkDuration
	if d <= 0 {
		d = DefaultChunkDuration
	}
	return int(m.SampleRate*d.Seconds()) * m.Channels
}

// Run captures audio until ctx is done, calling handle once per chunk from
// the capturing goroutine. Run owns its OS thread for the duration, as
// PortAudio streams are not safe to move between threads on every platform.
func (m *Microphone) Run(ctx context.Context, handle BufferHandler) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if m.SampleRate <= 0 {
		m.SampleRate = DefaultSampleRate
	}
	if m.Channels <= 0 {
		m.Channels = DefaultChannels
	}
	if m.FramesPerBuffer <= 0 {
		m.FramesPerBuffer = DefaultFramesPerBuffer
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	defer portaudio.Terminate()

	buffer := make([]int16, m.FramesPerBuffer*m.Channels)
	stream, err := m.open(buffer)
	if err != nil {
		return fmt.Errorf("failed to open audio stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("failed to start audio stream: %w", err)
	}
	defer stream.Stop()

	log := m.logger()
	log.Info("audio capture started", "sample_rate", m.SampleRate, "channels", m.Channels)
	c := newChunker(m.samplesPerChunk(), handle)
	for {
		select {
		case <-ctx.Done():
			c.flush()
			log.Info("audio capture stopped")
			return nil
		default:
		}
		if err := stream.Read(); err != nil {
			if errors.Is(err, portaudio.InputOverflowed) {
				log.Warn("audio input overflowed")
				continue
			}
			return fmt.Errorf("read audio: %w", err)
		}
		c.write(buffer)
	}
}

func (m *Microphone) open(buffer []int16) (*portaudio.Stream, error) {
	if m.DeviceName == "" || m.DeviceName == "default" {
		return portaudio.OpenDefaultStream(m.Channels, 0, m.SampleRate, m.FramesPerBuffer, buffer)
	}
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}
	for _, dev := range devices {
		if dev.Name == m.DeviceName && dev.MaxInputChannels > 0 {
			return portaudio.OpenStream(portaudio.StreamParameters{
				Input: portaudio.StreamDeviceParameters{
					Device:   dev,
					Channels: m.Channels,
					Latency:  dev.DefaultLowInputLatency,
				},
				SampleRate:      m.SampleRate,
				FramesPerBuffer: m.FramesPerBuffer,
			}, buffer)
		}
	}
	return nil, fmt.Errorf("device not found: %s", m.DeviceName)
}
