package arena

import "reflect"

const (
	// PageLenBits is the number of handle bits reserved for the in-page slot.
	PageLenBits = 10
	// PageLen is the fixed number of slots in every page (1024).
	PageLen = 1 << PageLenBits
	// PageLenMask extracts the slot from a packed handle.
	PageLenMask = PageLen - 1
	// MaxPages is the number of pages addressable by a handle (2^22).
	MaxPages = 1 << (32 - PageLenBits)
)

// Destroyer is implemented by values that hold resources of their own.
// Destroy is called once for every stored value when its arena is released;
// nil pointers are skipped. Destroy must not panic: a panic stops teardown
// with the rest of the page left uncleared.
type Destroyer interface {
	Destroy()
}

// Slot is an index into a single page.
type Slot uint32

// NewSlot converts raw to a Slot, panicking if it does not fit in a handle.
func NewSlot(raw int) Slot {
	if raw < 0 || raw >= PageLen {
		fault(ErrSlotOutOfRange, "slot %d, page length %d", raw, PageLen)
	}
	return Slot(raw)
}

// Page is a fixed-capacity bump allocator for values of one type.
// Cells [0, allocated) hold live values; the rest have never been written.
type Page[T any] struct {
	allocated int
	data      *[PageLen]T
}

// NewPage returns an empty page with its backing block allocated up front.
func NewPage[T any]() *Page[T] {
	return &Page[T]{data: new([PageLen]T)}
}

// Alloc stores value in the next free slot. It returns false when the page is
// full, in which case value was not stored and still belongs to the caller.
func (p *Page[T]) Alloc(value T) (Slot, bool) {
	slot := p.allocated
	if slot == PageLen {
		return 0, false
	}
	p.data[slot] = value
	p.allocated++
	return Slot(slot), true
}

// Get returns a pointer to the value in slot. Slots at or beyond the
// watermark were never written; asking for one is a fault.
func (p *Page[T]) Get(slot Slot) *T {
	if int(slot) >= p.allocated {
		fault(ErrInvalidHandle, "slot %d, %d allocated", slot, p.allocated)
	}
	return &p.data[slot]
}

// Len returns the number of allocated slots.
func (p *Page[T]) Len() int { return p.allocated }

// Cap returns the page capacity.
func (p *Page[T]) Cap() int { return PageLen }

// Full reports whether the next Alloc will fail.
func (p *Page[T]) Full() bool { return p.allocated == PageLen }

// ElemType returns the type of the values stored in the page.
func (p *Page[T]) ElemType() reflect.Type { return reflect.TypeFor[T]() }

// SizeInUse returns the number of bytes occupied by allocated slots.
func (p *Page[T]) SizeInUse() int {
	return p.allocated * int(reflect.TypeFor[T]().Size())
}

// release destroys the allocated prefix in slot order and drops the block.
func (p *Page[T]) release() {
	if p.data == nil {
		return
	}
	var zero T
	for i := 0; i < p.allocated; i++ {
		destroy(&p.data[i])
		p.data[i] = zero
	}
	p.data = nil
	p.allocated = 0
}

func destroy[T any](v *T) {
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
		return
	}
	if d, ok := any(*v).(Destroyer); ok {
		if rv := reflect.ValueOf(d); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return
		}
		d.Destroy()
	}
}
