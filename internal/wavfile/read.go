package wavfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/youpy/go-wav"

	"github.com/minicodemonkey/samplegen/internal/synth"
)

// Source is the random-access input Decode needs to walk RIFF chunks.
type Source interface {
	io.Reader
	io.ReaderAt
}

// Decode parses a mono 16-bit PCM WAV stream back into a buffer.
func Decode(src Source) (synth.Buffer, error) {
	r := wav.NewReader(src)

	format, err := r.Format()
	if err != nil {
		return synth.Buffer{}, fmt.Errorf("failed to read wav format: %w", err)
	}
	if format.AudioFormat != formatPCM || format.NumChannels != channels || format.BitsPerSample != bitsPerSample {
		return synth.Buffer{}, fmt.Errorf("%w: format %d, %d channels, %d bits",
			ErrUnsupportedFormat, format.AudioFormat, format.NumChannels, format.BitsPerSample)
	}

	buf := synth.Buffer{SampleRate: int(format.SampleRate)}
	for {
		samples, err := r.ReadSamples()
		for _, s := range samples {
			buf.Samples = append(buf.Samples, int16(r.IntValue(s, 0)))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return synth.Buffer{}, fmt.Errorf("failed to read wav samples: %w", err)
		}
	}
	return buf, nil
}

// Read decodes the WAV file at path.
func Read(path string) (synth.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return synth.Buffer{}, err
	}
	return Decode(bytes.NewReader(data))
}
