package workload

import (
	"context"
	"strconv"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/arena/v2"
)

// record is the struct kind. It counts its own destruction so the runner can
// check that Release visits every stored record exactly once.
type record struct {
	ID        int64
	Name      string
	destroyed *int
}

func (r record) Destroy() { *r.destroyed++ }

// WorkerResult is what one worker observed. Allocs and Destroyed add up
// over all rounds; Metrics is the snapshot of the last round's arena.
type WorkerResult struct {
	Worker    int
	Rounds    int
	Allocs    int
	Destroyed int
	Metrics   arena.ArenaMetrics
	Elapsed   time.Duration
}

// Report aggregates a run.
type Report struct {
	Workers []WorkerResult
	Elapsed time.Duration
	// Registry holds one arena collector per worker, labelled by worker.
	Registry *prometheus.Registry
}

// TotalPages returns the number of pages opened across all workers.
func (r *Report) TotalPages() int {
	n := 0
	for _, w := range r.Workers {
		n += w.Metrics.NumPages
	}
	return n
}

// snapshot serves metrics captured before the worker's arena was released.
type snapshot arena.ArenaMetrics

func (s snapshot) Metrics() arena.ArenaMetrics { return arena.ArenaMetrics(s) }

// Run executes cfg with one arena per worker goroutine.
func Run(ctx context.Context, cfg *Config, logger log.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid workload")
	}

	start := time.Now()
	plan := cfg.schedule()
	results := make([]WorkerResult, cfg.Workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			res, err := runWorker(ctx, w, cfg.Rounds, plan, log.With(logger, "worker", w))
			if err != nil {
				return errors.Wrapf(err, "worker %d", w)
			}
			results[w] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	for _, res := range results {
		c := arena.NewCollector(snapshot(res.Metrics), prometheus.Labels{"worker": strconv.Itoa(res.Worker)})
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register collector")
		}
	}

	return &Report{
		Workers:  results,
		Elapsed:  time.Since(start),
		Registry: reg,
	}, nil
}

// handles holds everything one worker allocated, by kind.
type handles struct {
	ints    []arena.Idx[int]
	strs    []arena.Idx[string]
	floats  []arena.Idx[float64]
	records []arena.Idx[record]
}

func runWorker(ctx context.Context, worker, rounds int, plan []Kind, logger log.Logger) (WorkerResult, error) {
	start := time.Now()
	res := WorkerResult{Worker: worker, Rounds: rounds}
	for r := 0; r < rounds; r++ {
		m, destroyed, err := runRound(ctx, plan, log.With(logger, "round", r))
		if err != nil {
			return WorkerResult{}, errors.Wrapf(err, "round %d", r)
		}
		res.Allocs += len(plan)
		res.Destroyed += destroyed
		res.Metrics = m
	}
	res.Elapsed = time.Since(start)

	level.Info(logger).Log("msg", "worker finished", "rounds", rounds, "allocs", res.Allocs, "pages", res.Metrics.NumPages, "utilization", res.Metrics.Utilization, "elapsed", res.Elapsed)
	return res, nil
}

// runRound allocates plan into a fresh arena, verifies every handle, and
// releases the arena. It returns the arena's metrics taken before release
// and the number of records destroyed by the release.
func runRound(ctx context.Context, plan []Kind, logger log.Logger) (arena.ArenaMetrics, int, error) {
	destroyed := 0
	a := arena.New(arena.WithLogger(logger))

	var h handles
	for n, kind := range plan {
		if n%arena.PageLen == 0 {
			if err := ctx.Err(); err != nil {
				a.Release()
				return arena.ArenaMetrics{}, 0, err
			}
		}
		switch kind {
		case KindInt:
			h.ints = append(h.ints, arena.Alloc(a, intValue(len(h.ints))))
		case KindString:
			h.strs = append(h.strs, arena.Alloc(a, stringValue(len(h.strs))))
		case KindFloat:
			h.floats = append(h.floats, arena.Alloc(a, floatValue(len(h.floats))))
		case KindRecord:
			h.records = append(h.records, arena.Alloc(a, recordValue(len(h.records), &destroyed)))
		}
	}

	err := verify(a, h.ints, intValue)
	if err == nil {
		err = verify(a, h.strs, stringValue)
	}
	if err == nil {
		err = verify(a, h.floats, floatValue)
	}
	if err == nil {
		err = verify(a, h.records, func(i int) record { return recordValue(i, &destroyed) })
	}
	if err != nil {
		a.Release()
		return arena.ArenaMetrics{}, 0, err
	}

	m := a.Metrics()
	a.Release()
	if destroyed != len(h.records) {
		return arena.ArenaMetrics{}, 0, errors.Errorf("release destroyed %d records, want %d", destroyed, len(h.records))
	}
	return m, destroyed, nil
}

// verify checks that handle i resolves to want(i).
func verify[T comparable](a *arena.Arena, hs []arena.Idx[T], want func(int) T) error {
	for i, h := range hs {
		got, err := arena.Lookup(a, h)
		if err != nil {
			return err
		}
		if *got != want(i) {
			return errors.Errorf("%s resolved to %v, want %v", h, *got, want(i))
		}
	}
	return nil
}

func intValue(i int) int { return i }

func stringValue(i int) string { return "value-" + strconv.Itoa(i) }

func floatValue(i int) float64 { return float64(i) / 2 }

func recordValue(i int, destroyed *int) record {
	return record{ID: int64(i), Name: stringValue(i), destroyed: destroyed}
}
