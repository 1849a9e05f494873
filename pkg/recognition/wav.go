package recognition

import (
	"encoding/binary"
	"io"
)

// WriteWAV writes 16-bit little-endian PCM as a RIFF/WAVE stream.
func WriteWAV(w io.Writer, pcm []byte, sampleRate, channels int) error {
	if channels <= 0 {
		channels = 1
	}
	const bitsPerSample = 16
	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign
	dataSize := len(pcm) - len(pcm)%2

	header := []any{
		[4]byte{'R', 'I', 'F', 'F'},
		uint32(36 + dataSize),
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16), // chunk size
		uint16(1),  // PCM
		uint16(channels),
		uint32(sampleRate),
		uint32(byteRate),
		uint16(blockAlign),
		uint16(bitsPerSample),
		[4]byte{'d', 'a', 't', 'a'},
		uint32(dataSize),
	}
	for _, v := range header {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	_, err := w.Write(pcm[:dataSize])
	return err
}
