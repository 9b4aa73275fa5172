// Package arena implements a typed page arena.
// Typical usage: create one arena per owner, allocate values of any type into
// it, keep the returned 32-bit handles, and Release() the arena when done.
package arena

import (
	"reflect"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Arena stores values of many types in fixed-size pages, one type per page.
// Not goroutine-safe: allocation needs exclusive access, and resolves must not
// overlap an allocation.
type Arena struct {
	table Table
	// current maps a type to the page that receives its next allocation.
	current  map[reflect.Type]PageIndex
	released bool
	logger   log.Logger
}

// Option configures an Arena.
type Option func(*Arena)

// WithLogger sets the logger used to report page growth.
func WithLogger(logger log.Logger) Option {
	return func(a *Arena) {
		a.logger = logger
	}
}

// New creates an empty Arena. No pages are allocated until the first Alloc.
func New(opts ...Option) *Arena {
	a := &Arena{
		current: make(map[reflect.Type]PageIndex),
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Table returns the arena's page table.
func (a *Arena) Table() *Table {
	a.panicIfReleased()
	return &a.table
}

// CurrentPage returns the page that receives the next allocation of typ.
func (a *Arena) CurrentPage(typ reflect.Type) (PageIndex, bool) {
	a.panicIfReleased()
	page, ok := a.current[typ]
	return page, ok
}

// Release destroys every stored value, page by page in table order, and makes
// the arena unusable. Any subsequent operation panics. Release is idempotent.
func (a *Arena) Release() {
	if a.released {
		return
	}
	pages := a.table.Len()
	a.released = true
	a.current = nil
	a.table.release()
	level.Debug(a.logger).Log("msg", "released arena", "pages", pages)
}

// openPage appends a fresh page for T and makes it T's allocation target.
func openPage[T any](a *Arena, typ reflect.Type, reason string) PageIndex {
	page := AppendPage[T](&a.table)
	a.current[typ] = page
	level.Debug(a.logger).Log("msg", "opened page", "type", typ, "page", page, "reason", reason)
	return page
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.released {
		panic(ErrReleased)
	}
}
