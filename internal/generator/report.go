package generator

import (
	"errors"
	"fmt"
)

// ArtifactError records which artifact failed and at which step.
type ArtifactError struct {
	Name string
	Op   string // "render" or "write"
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Name, e.Op, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }

// Result is the outcome of generating one artifact.
type Result struct {
	Name    string
	Path    string
	Samples int
	Bytes   int
	Err     error
}

// OK reports whether the artifact was written.
func (r Result) OK() bool { return r.Err == nil }

// Report lists every artifact's outcome in catalog order.
type Report struct {
	Results []Result
}

// Succeeded returns the results that were written.
func (r *Report) Succeeded() []Result {
	return r.filter(true)
}

// Failed returns the results that were not written.
func (r *Report) Failed() []Result {
	return r.filter(false)
}

// Err joins every artifact failure, or returns nil when all succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

func (r *Report) filter(ok bool) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.OK() == ok {
			out = append(out, res)
		}
	}
	return out
}
