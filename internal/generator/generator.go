// Package generator renders every catalog artifact and writes it to the
// output directory. Artifacts are independent: a failure in one is recorded
// in the Report and the rest are still generated.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/minicodemonkey/samplegen/internal/recipe"
	"github.com/minicodemonkey/samplegen/internal/synth"
	"github.com/minicodemonkey/samplegen/internal/wavfile"
)

// WriteFunc persists one encoded artifact.
type WriteFunc func(path string, buf synth.Buffer) error

// Generator produces the sample files for a catalog.
type Generator struct {
	outputDir   string
	seed        uint64
	logger      *zap.Logger
	catalog     *recipe.Catalog
	concurrency int
	observer    func(Result)
	write       WriteFunc

	observeMu sync.Mutex
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutputDir sets the directory files are written to. Defaults to ".".
func WithOutputDir(dir string) Option {
	return func(g *Generator) { g.outputDir = dir }
}

// WithSeed sets the seed for noise artifacts.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.seed = seed }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithRecipes replaces the built-in catalog.
func WithRecipes(c *recipe.Catalog) Option {
	return func(g *Generator) { g.catalog = c }
}

// WithConcurrency sets how many artifacts are rendered at once.
// Values below 1 run sequentially.
func WithConcurrency(n int) Option {
	return func(g *Generator) { g.concurrency = max(n, 1) }
}

// WithObserver registers a callback invoked once per finished artifact.
// Calls are serialized.
func WithObserver(fn func(Result)) Option {
	return func(g *Generator) { g.observer = fn }
}

// WithWriter replaces the file writer. Defaults to wavfile.Write.
func WithWriter(fn WriteFunc) Option {
	return func(g *Generator) { g.write = fn }
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		outputDir:   ".",
		logger:      zap.NewNop(),
		concurrency: 1,
		write:       wavfile.Write,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Total returns how many artifacts GenerateAll will produce.
func (g *Generator) Total() (int, error) {
	c, err := g.recipes()
	if err != nil {
		return 0, err
	}
	return len(c.Recipes), nil
}

// GenerateAll renders and writes every artifact. It returns an error only
// when nothing can be attempted: an invalid catalog or an unusable output
// directory. Per-artifact failures are reported in the Report.
func (g *Generator) GenerateAll(ctx context.Context) (*Report, error) {
	c, err := g.recipes()
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(g.outputDir)
	if err != nil {
		return nil, fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output directory %s is not a directory", g.outputDir)
	}

	g.logger.Debug("generating samples",
		zap.String("dir", g.outputDir),
		zap.Int("artifacts", len(c.Recipes)),
		zap.Int("concurrency", g.concurrency),
	)

	results := make([]Result, len(c.Recipes))

	var eg errgroup.Group
	eg.SetLimit(g.concurrency)
	for i, r := range c.Recipes {
		eg.Go(func() error {
			results[i] = g.generate(ctx, r)
			g.notify(results[i])
			return nil
		})
	}
	_ = eg.Wait()

	return &Report{Results: results}, nil
}

func (g *Generator) generate(ctx context.Context, r recipe.Recipe) Result {
	res := Result{Name: r.Name, Path: filepath.Join(g.outputDir, r.Name)}

	if err := ctx.Err(); err != nil {
		res.Err = &ArtifactError{Name: r.Name, Op: "render", Err: err}
		return res
	}

	buf, err := r.Render(g.seed)
	if err != nil {
		res.Err = &ArtifactError{Name: r.Name, Op: "render", Err: err}
		g.logger.Error("artifact failed", zap.String("artifact", r.Name), zap.Error(err))
		return res
	}
	res.Samples = buf.Len()

	if err := g.write(res.Path, buf); err != nil {
		res.Err = &ArtifactError{Name: r.Name, Op: "write", Err: err}
		g.logger.Error("artifact failed",
			zap.String("artifact", r.Name),
			zap.String("path", res.Path),
			zap.Error(err),
		)
		return res
	}
	res.Bytes = wavfile.Size(buf.Len())

	g.logger.Debug("artifact written",
		zap.String("artifact", r.Name),
		zap.String("path", res.Path),
		zap.Int("samples", res.Samples),
		zap.Int("bytes", res.Bytes),
	)
	return res
}

func (g *Generator) notify(res Result) {
	if g.observer == nil {
		return
	}
	g.observeMu.Lock()
	defer g.observeMu.Unlock()
	g.observer(res)
}

func (g *Generator) recipes() (*recipe.Catalog, error) {
	if g.catalog != nil {
		return g.catalog, nil
	}
	c, err := recipe.Default()
	if err != nil {
		return nil, err
	}
	g.catalog = c
	return c, nil
}
