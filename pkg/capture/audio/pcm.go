package audio

import "encoding/binary"

// BufferHandler receives one captured audio chunk: n valid bytes of 16-bit
// little-endian PCM at the start of buf. buf is reused after the call returns.
type BufferHandler func(buf []byte, n int)

// chunker accumulates int16 frames and emits fixed-size PCM chunks.
type chunker struct {
	out  []byte
	fill int
	emit BufferHandler
}

func newChunker(samplesPerChunk int, emit BufferHandler) *chunker {
	if samplesPerChunk <= 0 {
		samplesPerChunk = 1
	}
	return &chunker{out: make([]byte, samplesPerChunk*2), emit: emit}
}

func (c *chunker) write(samples []int16) {
	for _, s := range samples {
		binary.LittleEndian.PutUint16(c.out[c.fill:], uint16(s))
		c.fill += 2
		if c.fill == len(c.out) {
			c.emit(c.out, c.fill)
			c.fill = 0
		}
	}
}

// flush emits a partially filled chunk, if any.
func (c *chunker) flush() {
	if c.fill > 0 {
		c.emit(c.out, c.fill)
		c.fill = 0
	}
}

// DecodePCM16 converts little-endian 16-bit PCM bytes to samples.
func DecodePCM16(buf []byte) []int16 {
	out := make([]int16, len(buf)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
	}
	return out
}
