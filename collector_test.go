package arena

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	a := New()
	for i := 0; i < 3; i++ {
		Alloc(a, i)
	}
	Alloc(a, "s")

	c := NewCollector(a, prometheus.Labels{"arena": "test"})

	expected := `
# HELP arena_pages The number of pages in the arena.
# TYPE arena_pages gauge
arena_pages{arena="test"} 2
# HELP arena_slots_in_use The number of values stored, per element type.
# TYPE arena_slots_in_use gauge
arena_slots_in_use{arena="test",type="int"} 3
arena_slots_in_use{arena="test",type="string"} 1
# HELP arena_slot_capacity The total number of slots across all pages.
# TYPE arena_slot_capacity gauge
arena_slot_capacity{arena="test"} 2048
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"arena_pages", "arena_slots_in_use", "arena_slot_capacity"))
	require.Equal(t, 6, testutil.CollectAndCount(c))
}

func TestCollectorRegister(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector(New(), nil)))

	families, err := reg.Gather()
	require.NoError(t, err)
	// No types yet, so arena_slots_in_use has no samples.
	require.Len(t, families, 4)
}
