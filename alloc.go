package arena

import (
	"reflect"

	"github.com/pkg/errors"
)

// Alloc stores value in the arena and returns its handle.
//
// Values go to the most recently opened page for T. When that page is full a
// new one is opened and becomes T's target; older pages are never revisited.
func Alloc[T any](a *Arena, value T) Idx[T] {
	a.panicIfReleased()

	typ := reflect.TypeFor[T]()
	page, ok := a.current[typ]
	if !ok {
		page = openPage[T](a, typ, "first")
	}
	if slot, ok := PageAt[T](&a.table, page).Alloc(value); ok {
		return NewIdx[T](page, slot)
	}

	// Slow path: current page is full
	page = openPage[T](a, typ, "overflow")
	slot, ok := PageAt[T](&a.table, page).Alloc(value)
	if !ok {
		panic("arena: allocation into empty page failed")
	}
	return NewIdx[T](page, slot)
}

// Resolve returns a pointer to the value behind idx. The pointer stays valid
// until the arena is released; values are never moved.
//
// A handle naming a missing page, an unallocated slot, or a page of another
// type is a fault and panics.
func Resolve[T any](a *Arena, idx Idx[T]) *T {
	a.panicIfReleased()
	page, slot := idx.Split()
	return PageAt[T](&a.table, page).Get(slot)
}

// Lookup is like Resolve but reports a bad handle as an error instead of
// panicking. Use it for handles read back from outside the program.
func Lookup[T any](a *Arena, idx Idx[T]) (*T, error) {
	if a.released {
		return nil, ErrReleased
	}
	page, slot := idx.Split()
	if int(page) >= a.table.Len() {
		return nil, errors.Wrapf(ErrInvalidHandle, "%s: page %d, table has %d", idx, page, a.table.Len())
	}
	p, ok := a.table.pages[page].(*Page[T])
	if !ok {
		return nil, errors.Wrapf(ErrTypeMismatch, "%s: page %d holds %s", idx, page, a.table.pages[page].ElemType())
	}
	if int(slot) >= p.Len() {
		return nil, errors.Wrapf(ErrInvalidHandle, "%s: slot %d, %d allocated", idx, slot, p.Len())
	}
	return &p.data[slot], nil
}
