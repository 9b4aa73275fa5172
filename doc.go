// Package arena implements a typed page arena for Go.
//
// # Overview
//
// An Arena stores values of many different types in fixed-size pages and
// hands back small handles instead of pointers. Each page holds 1024 values
// of exactly one type and is filled by bumping a watermark. This is
// particularly useful for:
//
//   - Graphs and trees whose nodes refer to each other by index
//   - Object pools mixing several record types under one owner
//   - Data that must be referenced by a 32-bit value rather than a pointer
//
// # Basic Usage
//
//	a := arena.New()
//	defer a.Release()
//
//	n := arena.Alloc(a, 42)       // arena.Idx[int]
//	s := arena.Alloc(a, "hello")  // arena.Idx[string]
//
//	fmt.Println(*arena.Resolve(a, n), *arena.Resolve(a, s))
//
// # Handles
//
// An Idx[T] packs a page index into its high 22 bits and a slot into its low
// 10 bits, so one arena addresses at most 2^22 pages of 1024 slots across all
// types. Handles are comparable and ordered by their packed value and can be
// used as map keys. The type parameter only selects the typed accessor.
//
// # Memory Layout
//
// The arena keeps one "current" page per type. Allocation writes into it
// until it is full, then opens a new page for that type. Older pages are
// never revisited, trading some fragmentation for O(1) allocation. Values
// are never moved, so pointers returned by Resolve stay valid until Release.
//
// # Faults
//
// Resolving a handle that names a page past the end of the table, a slot
// that was never allocated, or a page of a different type panics with an
// error wrapping ErrInvalidHandle or ErrTypeMismatch. Use Lookup to get the
// error back instead.
//
// # Thread Safety
//
// Arena is not thread-safe. Give each goroutine its own arena, or guard the
// whole arena with a lock.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Pages: %d\n", m.NumPages)
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//
// NewCollector exports the same numbers to Prometheus.
package arena
