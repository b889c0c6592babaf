package idxfile

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/YaDev/Nim/pkg/types"
)

// ParseFiles parses an explicit list of index files with bounded
// concurrency and returns the results aligned with the input order. The
// first failure cancels the remaining parses and fails the whole call;
// like Parse, a batch is trusted or rejected, never half-read.
//
// workers bounds how many files are parsed at once; values <= 0 use
// runtime.NumCPU(). ParseFiles does not walk directories, the caller names
// every file.
func ParseFiles(ctx context.Context, paths []string, workers int) ([]*types.ParseResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]*types.ParseResult, len(paths))
	semaphore := make(chan struct{}, workers)

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path // per-iteration copies; the go directive predates Go 1.22 loopvar semantics
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			result, err := ParseFile(path)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
