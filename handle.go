package arena

import (
	"cmp"
	"fmt"
	"reflect"
)

// Idx is a handle to a T stored in an Arena: a page index in the high 22 bits
// and a slot in the low 10. T only routes calls to the right typed accessor.
// Handles compare, order and hash by their packed value alone.
type Idx[T any] struct {
	raw uint32
}

// NewIdx packs page and slot into a handle.
func NewIdx[T any](page PageIndex, slot Slot) Idx[T] {
	if page >= MaxPages {
		fault(ErrTooManyPages, "page %d, max %d", page, MaxPages)
	}
	if slot >= PageLen {
		fault(ErrSlotOutOfRange, "slot %d, page length %d", slot, PageLen)
	}
	return Idx[T]{raw: uint32(page)<<PageLenBits | uint32(slot)}
}

// IdxFromRaw rebuilds a handle from a value previously returned by Raw.
func IdxFromRaw[T any](raw uint32) Idx[T] {
	return Idx[T]{raw: raw}
}

// Split unpacks the handle into its page and slot.
func (i Idx[T]) Split() (PageIndex, Slot) {
	return PageIndex(i.raw >> PageLenBits), Slot(i.raw & PageLenMask)
}

// Raw returns the packed handle.
func (i Idx[T]) Raw() uint32 {
	return i.raw
}

// Compare orders handles by their packed value.
func (i Idx[T]) Compare(other Idx[T]) int {
	return cmp.Compare(i.raw, other.raw)
}

// Less reports whether i orders before other.
func (i Idx[T]) Less(other Idx[T]) bool {
	return i.raw < other.raw
}

func (i Idx[T]) String() string {
	return fmt.Sprintf("Idx[%s](%d)", reflect.TypeFor[T](), i.raw)
}
