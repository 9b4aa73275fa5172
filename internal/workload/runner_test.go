package workload

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/arena/v2"
)

func TestRun(t *testing.T) {
	cfg := &Config{
		Workers:    3,
		Rounds:     2,
		Interleave: true,
		Types: []TypeSpec{
			{KindInt, arena.PageLen + 1},
			{KindString, 10},
			{KindFloat, 1},
			{KindRecord, 2 * arena.PageLen},
		},
	}

	var buf bytes.Buffer
	report, err := Run(context.Background(), cfg, log.NewLogfmtLogger(log.NewSyncWriter(&buf)))
	require.NoError(t, err)
	require.Len(t, report.Workers, 3)

	for i, w := range report.Workers {
		assert.Equal(t, i, w.Worker)
		assert.Equal(t, 2, w.Rounds)
		assert.Equal(t, 2*cfg.Total(), w.Allocs)
		assert.Equal(t, 2*2*arena.PageLen, w.Destroyed, "every round releases its own records")
		// last round only, on a fresh arena: int 2 pages, string 1, float 1, record 2
		assert.Equal(t, 6, w.Metrics.NumPages)
		assert.Equal(t, cfg.Total(), w.Metrics.SlotsInUse)
	}
	assert.Equal(t, 18, report.TotalPages())
	assert.Contains(t, buf.String(), `msg="worker finished"`)

	// pages, capacity, bytes, utilization and four slot series per worker
	n, err := testutil.GatherAndCount(report.Registry)
	require.NoError(t, err)
	assert.Equal(t, 3*8, n)
}

func TestRunInvalid(t *testing.T) {
	_, err := Run(context.Background(), &Config{}, log.NewNopLogger())
	assert.ErrorContains(t, err, "invalid workload")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Default(), log.NewNopLogger())
	assert.ErrorIs(t, err, context.Canceled)
}
