package arena

import "reflect"

// PageIndex is the position of a page in a Table.
type PageIndex uint32

// NewPageIndex converts raw to a PageIndex, panicking if it does not fit in a handle.
func NewPageIndex(raw int) PageIndex {
	if raw < 0 || raw >= MaxPages {
		fault(ErrTooManyPages, "page %d, max %d", raw, MaxPages)
	}
	return PageIndex(raw)
}

// erasedPage is the type-independent view of a *Page[T] held by a Table.
type erasedPage interface {
	Len() int
	Cap() int
	ElemType() reflect.Type
	SizeInUse() int
	release()
}

// Table is an append-only sequence of pages of mixed element types.
// An index, once returned by AppendPage, refers to the same page for the
// lifetime of the table.
type Table struct {
	pages []erasedPage
}

// Len returns the number of pages.
func (t *Table) Len() int {
	return len(t.pages)
}

// IsEmpty reports whether the table holds no pages.
func (t *Table) IsEmpty() bool {
	return len(t.pages) == 0
}

// ElemType returns the element type of the page at i.
func (t *Table) ElemType(i PageIndex) reflect.Type {
	return t.at(i).ElemType()
}

// AppendPage appends an empty page for T and returns its index.
func AppendPage[T any](t *Table) PageIndex {
	i := NewPageIndex(len(t.pages))
	t.pages = append(t.pages, NewPage[T]())
	return i
}

// PageAt returns the page at i as a *Page[T]. The page must have been created
// for T; any other T is a fault, as is an index past the end of the table.
func PageAt[T any](t *Table, i PageIndex) *Page[T] {
	p, ok := t.at(i).(*Page[T])
	if !ok {
		fault(ErrTypeMismatch, "page %d holds %s, not %s", i, t.pages[i].ElemType(), reflect.TypeFor[T]())
	}
	return p
}

func (t *Table) at(i PageIndex) erasedPage {
	if int(i) >= len(t.pages) {
		fault(ErrInvalidHandle, "page %d, table has %d", i, len(t.pages))
	}
	return t.pages[i]
}

// release destroys every page in table order.
func (t *Table) release() {
	for _, p := range t.pages {
		p.release()
	}
	t.pages = nil
}
