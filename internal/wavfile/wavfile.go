// Package wavfile encodes and decodes mono 16-bit PCM RIFF/WAVE files.
package wavfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/minicodemonkey/samplegen/internal/synth"
)

const (
	// HeaderSize is the size of the canonical RIFF/WAVE header Encode writes.
	HeaderSize = 44

	formatPCM     = 1
	channels      = 1
	bitsPerSample = 16
	blockAlign    = channels * bitsPerSample / 8
)

// ErrUnsupportedFormat is returned for WAV data that is not mono 16-bit PCM.
var ErrUnsupportedFormat = errors.New("unsupported wav format")

// Size returns the encoded file size for a buffer of n samples.
func Size(n int) int {
	return HeaderSize + n*blockAlign
}

// Encode serializes buf as a complete WAV file: the 44-byte header followed
// by little-endian 16-bit samples.
func Encode(buf synth.Buffer) ([]byte, error) {
	if buf.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", synth.ErrInvalidSpec, buf.SampleRate)
	}
	dataSize := len(buf.Samples) * blockAlign
	if uint64(dataSize)+HeaderSize-8 > math.MaxUint32 {
		return nil, fmt.Errorf("%d samples exceed the RIFF size limit", len(buf.Samples))
	}

	out := make([]byte, HeaderSize+dataSize)
	le := binary.LittleEndian

	// RIFF header
	copy(out[0:4], "RIFF")
	le.PutUint32(out[4:8], uint32(36+dataSize))
	copy(out[8:12], "WAVE")

	// fmt chunk
	copy(out[12:16], "fmt ")
	le.PutUint32(out[16:20], 16) // chunk size
	le.PutUint16(out[20:22], formatPCM)
	le.PutUint16(out[22:24], channels)
	le.PutUint32(out[24:28], uint32(buf.SampleRate))
	le.PutUint32(out[28:32], uint32(buf.SampleRate*blockAlign)) // byte rate
	le.PutUint16(out[32:34], blockAlign)
	le.PutUint16(out[34:36], bitsPerSample)

	// data chunk
	copy(out[36:40], "data")
	le.PutUint32(out[40:44], uint32(dataSize))

	offset := HeaderSize
	for _, s := range buf.Samples {
		le.PutUint16(out[offset:offset+2], uint16(s))
		offset += 2
	}

	return out, nil
}
