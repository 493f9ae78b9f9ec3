// Package batch decodes a corpus of EDID files concurrently and tallies the
// outcome.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	edid "github.com/thyge/edidparse"
	"github.com/thyge/edidparse/pkg/source"
)

// Failure is one file that did not decode.
type Failure struct {
	Path string
	Err  error
}

// Summary is the result of a single Run.
type Summary struct {
	Passed     int
	Failed     int
	Unreadable int
	Panicked   int
	// Skipped counts paths never started because the context was done.
	Skipped  int
	Failures []Failure `json:",omitempty" yaml:",omitempty"`
	// ByKind counts failed decodes by error kind. Errors that are not an
	// *edid.Error are not counted here.
	ByKind map[edid.ErrorKind]int `json:",omitempty" yaml:",omitempty"`
}

// Total is the number of paths the run was given.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Unreadable + s.Panicked + s.Skipped
}

type status uint8

const (
	statusSkipped status = iota
	statusPassed
	statusFailed
	statusUnreadable
	statusPanicked
)

type outcome struct {
	status status
	err    error
}

// Run decodes every path with at most workers decodes in flight. A nil
// opts.Sink discards diagnostics; any other Sink must be safe for concurrent
// use. Failures are listed in the order of paths.
func Run(ctx context.Context, paths []string, workers int, opts edid.Options) Summary {
	if workers < 1 {
		workers = 1
	}
	if opts.Sink == nil {
		opts.Sink = edid.Discard
	}

	results := make([]outcome, len(paths))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
dispatch:
	for i, p := range paths {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[idx] = decodeFile(path, opts)
		}(i, p)
	}
	wg.Wait()

	s := Summary{ByKind: make(map[edid.ErrorKind]int)}
	for i, r := range results {
		switch r.status {
		case statusSkipped:
			s.Skipped++
			continue
		case statusPassed:
			s.Passed++
			continue
		case statusFailed:
			s.Failed++
			var e *edid.Error
			if errors.As(r.err, &e) {
				s.ByKind[e.Kind]++
			}
		case statusUnreadable:
			s.Unreadable++
		case statusPanicked:
			s.Panicked++
		}
		s.Failures = append(s.Failures, Failure{Path: paths[i], Err: r.err})
	}
	return s
}

func decodeFile(path string, opts edid.Options) (out outcome) {
	b, err := source.ReadFile(path)
	if err != nil {
		return outcome{status: statusUnreadable, err: err}
	}
	defer func() {
		if r := recover(); r != nil {
			out = outcome{status: statusPanicked, err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if _, err := edid.DecodeWithOptions(b, opts); err != nil {
		return outcome{status: statusFailed, err: err}
	}
	return outcome{status: statusPassed}
}

// Walk returns every regular file below root. Hidden files and directories
// are skipped.
func Walk(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return paths, nil
}
