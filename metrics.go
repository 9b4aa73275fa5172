package arena

import (
	"reflect"
	"sort"
)

// NumPages returns the number of pages in the arena.
func (a *Arena) NumPages() int {
	if a.released {
		return 0
	}
	return a.table.Len()
}

// NumTypes returns the number of distinct types stored in the arena.
func (a *Arena) NumTypes() int {
	return len(a.current)
}

// SlotsInUse returns the number of values stored across all pages.
func (a *Arena) SlotsInUse() int {
	sum := 0
	for _, p := range a.table.pages {
		sum += p.Len()
	}
	return sum
}

// SlotCapacity returns the total number of slots across all pages.
func (a *Arena) SlotCapacity() int {
	return a.NumPages() * PageLen
}

// SizeInUse returns the number of bytes occupied by stored values.
// Memory referenced from those values is not counted.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, p := range a.table.pages {
		sum += p.SizeInUse()
	}
	return sum
}

// Utilization returns the ratio of slots in use to slot capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no pages.
func (a *Arena) Utilization() float64 {
	capacity := a.SlotCapacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SlotsInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	byType := make(map[reflect.Type]*TypeMetrics)
	for _, p := range a.table.pages {
		typ := p.ElemType()
		tm, ok := byType[typ]
		if !ok {
			tm = &TypeMetrics{Type: typ.String()}
			byType[typ] = tm
		}
		tm.Pages++
		tm.Slots += p.Len()
		tm.Bytes += p.SizeInUse()
	}

	types := make([]TypeMetrics, 0, len(byType))
	for _, tm := range byType {
		types = append(types, *tm)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Type < types[j].Type })

	return ArenaMetrics{
		NumPages:     a.NumPages(),
		SlotsInUse:   a.SlotsInUse(),
		SlotCapacity: a.SlotCapacity(),
		SizeInUse:    a.SizeInUse(),
		Utilization:  a.Utilization(),
		Types:        types,
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	NumPages     int           // Number of pages
	SlotsInUse   int           // Values stored
	SlotCapacity int           // Total slots across pages
	SizeInUse    int           // Bytes occupied by stored values
	Utilization  float64       // Ratio of used to total slots (0.0-1.0)
	Types        []TypeMetrics // Per-type breakdown, sorted by type name
}

// TypeMetrics describes the pages holding one element type.
type TypeMetrics struct {
	Type  string
	Pages int
	Slots int
	Bytes int
}
