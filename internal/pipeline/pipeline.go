// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tamzrod/claim-normalizer/internal/report"
	"github.com/tamzrod/claim-normalizer/internal/sink"
	"github.com/tamzrod/claim-normalizer/internal/source"
	"github.com/tamzrod/claim-normalizer/pkg/claims"
)

// Config is the runtime config of the pipeline.
type Config struct {
	Workers    int
	Options    claims.SimplifyOptions
	Properties []string // optional property filter
}

// Runner normalizes source batches and delivers them to a sink.
// Runner-owned state: the report snapshot.
type Runner struct {
	cfg   Config
	out   sink.Writer
	log   *zap.Logger
	props map[string]struct{}

	snap report.Snapshot
}

// New creates a runner with immutable config.
func New(cfg Config, out sink.Writer, log *zap.Logger) (*Runner, error) {
	if cfg.Workers <= 0 {
		return nil, errors.New("pipeline: workers must be > 0")
	}
	if out == nil {
		return nil, errors.New("pipeline: sink required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	var props map[string]struct{}
	if len(cfg.Properties) > 0 {
		props = make(map[string]struct{}, len(cfg.Properties))
		for _, p := range cfg.Properties {
			props[p] = struct{}{}
		}
	}

	return &Runner{cfg: cfg, out: out, log: log, props: props}, nil
}

// Snapshot returns the report so far.
func (r *Runner) Snapshot() report.Snapshot { return r.snap }

// Run consumes batches until in is closed or ctx is done.
// Failed inputs and entities are logged and counted, never fatal.
// Only sink failures and cancellation stop the run.
func (r *Runner) Run(ctx context.Context, in <-chan source.Batch) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case b, ok := <-in:
			if !ok {
				return nil
			}
			if err := r.handle(ctx, b); err != nil {
				return err
			}
		}
	}
}

func (r *Runner) handle(ctx context.Context, b source.Batch) error {
	r.snap.Inputs++

	if b.Err != nil {
		r.snap.InputErrors++
		r.snap.LastError = b.Err.Error()
		r.log.Error("input failed", zap.String("source", b.Source), zap.Error(b.Err))
		return nil
	}

	results, err := r.Process(ctx, b)
	if err != nil {
		return err
	}

	for _, res := range results {
		r.snap.Entities++

		if res.Err != nil {
			r.snap.EntityFailures++
			r.snap.LastError = res.Err.Error()
			r.log.Warn("entity failed",
				zap.String("source", res.Source),
				zap.String("entity", res.EntityID),
				zap.Error(res.Err),
			)
			continue
		}

		r.snap.Properties += len(res.Claims)
		for _, vals := range res.Claims {
			r.snap.Values += len(vals)
		}

		if err := r.out.Write(res); err != nil {
			return err
		}
	}

	r.log.Debug("input done",
		zap.String("source", b.Source),
		zap.Int("entities", len(b.Entities)),
	)
	return nil
}

// Process normalizes every entity of a batch with bounded concurrency.
// Results keep the batch order. Entity failures are carried in Result.Err.
func (r *Runner) Process(ctx context.Context, b source.Batch) ([]sink.Result, error) {
	results := make([]sink.Result, len(b.Entities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for i := range b.Entities {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.normalize(b.Source, b.Entities[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) normalize(src string, e source.Entity) sink.Result {
	res := sink.Result{Source: src, EntityID: e.ID}

	selected := e.Claims
	if r.props != nil {
		selected = make(map[string][]claims.Claim, len(r.props))
		for p, list := range e.Claims {
			if _, ok := r.props[p]; ok {
				selected[p] = list
			}
		}
	}

	opts := r.cfg.Options
	if opts.Logger == nil {
		opts.Logger = r.log
	}
	opts.Logger = opts.Logger.With(zap.String("entity", e.ID))

	values, err := claims.SimplifyClaims(selected, opts)
	if err != nil {
		res.Err = err
		return res
	}
	res.Claims = values
	return res
}
