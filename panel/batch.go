package panel

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is outcome of a single panel build.
type Result struct {
	Request *Request
	Files   []string
	Err     error
}

// BuildAll builds panels concurrently, at most configured number at a time.
// Failure of one panel never stops others, all errors are combined into the
// returned one and also kept per result.
func (b *Builder) BuildAll(ctx context.Context, reqs []*Request) ([]Result, error) {
	run := uuid.New()
	log := b.log.With(zap.Stringer("run", run))

	limit := b.cfg.WorkerCount(runtime.NumCPU())
	log.Info("Building panels", zap.Int("panels", len(reqs)), zap.Int("workers", limit))
	defer func(start time.Time) {
		log.Info("Panels done", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	results := make([]Result, len(reqs))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, req := range reqs {
		results[i].Request = req
		g.Go(func() error {
			results[i].Files, results[i].Err = b.buildOne(ctx, req, log)
			return nil
		})
	}
	// goroutines report through results
	_ = g.Wait()

	var err error
	for _, r := range results {
		err = multierr.Append(err, r.Err)
	}
	return results, err
}

// buildOne never lets a panic of one panel take down the whole batch, some
// image decoders are not robust against broken data.
func (b *Builder) buildOne(ctx context.Context, req *Request, log *zap.Logger) (files []string, rerr error) {
	log = log.With(zap.String("index", req.Index), zap.Stringer("subject", req.Subject))
	if req.Input != nil {
		log = log.With(zap.Stringer("kind", req.Input.Kind()))
	}

	log.Debug("Panel build starting")
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Panel build ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("panel %s: build panic: %v", req.Index, r)
			return
		}
		if rerr != nil {
			log.Error("Panel build failed", zap.Duration("elapsed", time.Since(start)), zap.Error(rerr))
			return
		}
		log.Info("Panel build completed", zap.Duration("elapsed", time.Since(start)), zap.Strings("files", files))
	}(time.Now())

	return b.Build(ctx, req)
}

// Files returns names of all written files in natural order.
func Files(results []Result) []string {
	var files []string
	for _, r := range results {
		files = append(files, r.Files...)
	}
	sort.Sort(natural.StringSlice(files))
	return files
}
