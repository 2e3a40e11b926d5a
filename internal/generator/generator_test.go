package generator

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/minicodemonkey/samplegen/internal/recipe"
	"github.com/minicodemonkey/samplegen/internal/synth"
	"github.com/minicodemonkey/samplegen/internal/wavfile"
)

var sampleNames = []string{
	"sine_440hz.wav",
	"square_440hz.wav",
	"sawtooth_440hz.wav",
	"triangle_440hz.wav",
	"c_major_chord.wav",
	"c_major_scale.wav",
	"frequency_sweep.wav",
	"white_noise.wav",
	"beat_frequency.wav",
}

func TestGenerateAll(t *testing.T) {
	dir := t.TempDir()
	g := New(WithOutputDir(dir), WithLogger(zaptest.NewLogger(t)))

	report, err := g.GenerateAll(context.Background())
	require.NoError(t, err)
	require.NoError(t, report.Err())
	require.Len(t, report.Succeeded(), 9)
	assert.Empty(t, report.Failed())

	for i, res := range report.Results {
		assert.Equal(t, sampleNames[i], res.Name)
		assert.Equal(t, filepath.Join(dir, sampleNames[i]), res.Path)

		info, err := os.Stat(res.Path)
		require.NoError(t, err)
		assert.Equal(t, int64(res.Bytes), info.Size())
		assert.Equal(t, wavfile.Size(res.Samples), res.Bytes)
	}
}

func TestSineFileSize(t *testing.T) {
	dir := t.TempDir()
	_, err := New(WithOutputDir(dir)).GenerateAll(context.Background())
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "sine_440hz.wav"))
	require.NoError(t, err)
	assert.Equal(t, int64(44+2*132300), info.Size())
}

func TestWrittenFilesMatchRecipes(t *testing.T) {
	dir := t.TempDir()
	const seed = 99
	_, err := New(WithOutputDir(dir), WithSeed(seed)).GenerateAll(context.Background())
	require.NoError(t, err)

	c, err := recipe.Default()
	require.NoError(t, err)
	for _, r := range c.Recipes {
		want, err := r.Render(seed)
		require.NoError(t, err)

		got, err := wavfile.Read(filepath.Join(dir, r.Name))
		require.NoError(t, err)
		assert.Equal(t, 44100, got.SampleRate, r.Name)
		assert.Equal(t, want.Samples, got.Samples, r.Name)
	}
}

func TestRerunOverwritesDeterministically(t *testing.T) {
	dir := t.TempDir()
	g := New(WithOutputDir(dir), WithSeed(5))

	_, err := g.GenerateAll(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, "white_noise.wav"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "white_noise.wav"), []byte("junk"), 0o644))

	_, err = g.GenerateAll(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "white_noise.wav"))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second))
}

func TestContinueOnWriteError(t *testing.T) {
	dir := t.TempDir()
	diskFull := errors.New("no space left on device")

	writer := func(path string, buf synth.Buffer) error {
		if filepath.Base(path) == "c_major_chord.wav" {
			return diskFull
		}
		return wavfile.Write(path, buf)
	}

	report, err := New(WithOutputDir(dir), WithWriter(writer)).GenerateAll(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Succeeded(), 8)
	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "c_major_chord.wav", failed[0].Name)

	var artErr *ArtifactError
	require.ErrorAs(t, failed[0].Err, &artErr)
	assert.Equal(t, "c_major_chord.wav", artErr.Name)
	assert.Equal(t, "write", artErr.Op)
	assert.ErrorIs(t, report.Err(), diskFull)
	assert.Contains(t, report.Err().Error(), "c_major_chord.wav")

	_, err = os.Stat(filepath.Join(dir, "c_major_chord.wav"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "c_major_scale.wav"))
	assert.NoError(t, err, "artifacts after the failure must still be written")
}

func TestConcurrentResultsKeepCatalogOrder(t *testing.T) {
	dir := t.TempDir()
	var seen []string
	g := New(
		WithOutputDir(dir),
		WithConcurrency(4),
		WithObserver(func(r Result) { seen = append(seen, r.Name) }),
	)

	report, err := g.GenerateAll(context.Background())
	require.NoError(t, err)
	require.NoError(t, report.Err())

	names := make([]string, len(report.Results))
	for i, r := range report.Results {
		names[i] = r.Name
	}
	assert.Equal(t, sampleNames, names)
	assert.ElementsMatch(t, sampleNames, seen)
}

func TestMissingOutputDirectory(t *testing.T) {
	var calls atomic.Int32
	writer := func(string, synth.Buffer) error {
		calls.Add(1)
		return nil
	}

	_, err := New(WithOutputDir(filepath.Join(t.TempDir(), "nope")), WithWriter(writer)).GenerateAll(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, calls.Load())
}

func TestOutputPathIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := New(WithOutputDir(file)).GenerateAll(context.Background())
	require.Error(t, err)
}

func TestInvalidCatalogFailsBeforeWriting(t *testing.T) {
	var calls atomic.Int32
	writer := func(string, synth.Buffer) error {
		calls.Add(1)
		return nil
	}

	bad := &recipe.Catalog{
		SampleRate: 44100,
		Recipes: []recipe.Recipe{
			{Name: "ok.wav", SampleRate: 44100, Tone: &recipe.Tone{Kind: synth.KindSine, Frequency: 440, DurationMS: 10}},
			{Name: "bad.wav", SampleRate: 44100, Tone: &recipe.Tone{Kind: synth.KindSine, Frequency: 440, DurationMS: 0}},
		},
	}

	_, err := New(WithOutputDir(t.TempDir()), WithRecipes(bad), WithWriter(writer)).GenerateAll(context.Background())
	require.ErrorIs(t, err, recipe.ErrInvalidRecipe)
	require.ErrorIs(t, err, synth.ErrInvalidSpec)
	assert.Zero(t, calls.Load())
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	report, err := New(WithOutputDir(dir)).GenerateAll(ctx)
	require.NoError(t, err)
	require.Len(t, report.Failed(), 9)
	assert.ErrorIs(t, report.Err(), context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTotal(t *testing.T) {
	n, err := New().Total()
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

func TestConcurrencyFloor(t *testing.T) {
	g := New(WithConcurrency(0))
	assert.Equal(t, 1, g.concurrency)
}
