package rowindex

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"github.com/hupe1980/rowindex/index"
	"github.com/hupe1980/rowindex/record"
	"golang.org/x/sync/errgroup"
)

// Spec describes one index for BuildAll.
type Spec struct {
	Fields  []string
	Options []Option
}

// BuildAll builds one index per spec over the same rows, in parallel.
//
// Options given to BuildAll apply to every spec and are overridden by the
// spec's own options. The result is keyed by signature; two specs with the
// same signature are a configuration error. Each index is built by a single
// goroutine. The first error cancels the remaining builds.
func BuildAll(ctx context.Context, rows []record.Record, specs []Spec, optFns ...Option) (map[string]*Index, error) {
	shared := applyOptions(optFns)

	seen := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		sig := index.Signature(s.Fields)
		if _, dup := seen[sig]; dup {
			return nil, translateError(&index.ConfigurationError{
				Reason: fmt.Sprintf("duplicate signature %q", sig),
			})
		}
		seen[sig] = struct{}{}
	}

	limit := shared.buildConcurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	out := make(map[string]*Index, len(specs))

	for _, s := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o := applyOptions(append(slices.Clone(optFns), s.Options...))
			ix, err := newIndex(gctx, rows, s.Fields, o)
			if err != nil {
				return err
			}
			mu.Lock()
			out[ix.Signature()] = ix
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		shared.logger.ErrorContext(ctx, "build all failed", "specs", len(specs), "error", err)
		return nil, err
	}
	return out, nil
}
