package arena

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAppendPage(t *testing.T) {
	var tbl Table
	require.True(t, tbl.IsEmpty())

	assert.Equal(t, PageIndex(0), AppendPage[int](&tbl))
	assert.Equal(t, PageIndex(1), AppendPage[string](&tbl))
	assert.Equal(t, PageIndex(2), AppendPage[int](&tbl))

	assert.Equal(t, 3, tbl.Len())
	assert.False(t, tbl.IsEmpty())
	assert.Equal(t, reflect.TypeFor[string](), tbl.ElemType(1))
}

func TestTablePageAtIsStable(t *testing.T) {
	var tbl Table
	i := AppendPage[int](&tbl)
	first := PageAt[int](&tbl, i)
	first.Alloc(7)

	for n := 0; n < 100; n++ {
		AppendPage[float64](&tbl)
	}

	assert.Same(t, first, PageAt[int](&tbl, i))
	assert.Equal(t, 7, *PageAt[int](&tbl, i).Get(0))
}

func TestTablePageAtFaults(t *testing.T) {
	var tbl Table
	AppendPage[int](&tbl)

	err := panicErr(t, func() { PageAt[string](&tbl, 0) })
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "page 0 holds int, not string")

	err = panicErr(t, func() { PageAt[int](&tbl, 1) })
	assert.ErrorIs(t, err, ErrInvalidHandle)
}

func TestNewPageIndex(t *testing.T) {
	assert.Equal(t, PageIndex(MaxPages-1), NewPageIndex(MaxPages-1))

	err := panicErr(t, func() { NewPageIndex(MaxPages) })
	assert.ErrorIs(t, err, ErrTooManyPages)
}
