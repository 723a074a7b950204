package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type listRow struct {
	Name  string
	Brand string
}

func listColumns() []ListColumn[listRow] {
	return []ListColumn[listRow]{
		{Key: "name", Value: func(r listRow) string { return r.Name }},
		{Key: "brand", Value: func(r listRow) string { return r.Brand }},
	}
}

func TestFilterItems(t *testing.T) {
	items := []listRow{
		{Name: "Total Whitening", Brand: "Colgate"},
		{Name: "Kids Gel", Brand: "Elmex"},
		{Name: "Sensitive", Brand: "Sensodyne"},
	}

	got := filterItems(items, listColumns(), "gel")
	assert.Equal(t, []listRow{{Name: "Kids Gel", Brand: "Elmex"}}, got)

	// matches fold case and apply across all declared columns
	got = filterItems(items, listColumns(), "COLGATE")
	assert.Len(t, got, 1)
	assert.Equal(t, "Total Whitening", got[0].Name)

	// empty query keeps everything
	got = filterItems(items, listColumns(), "")
	assert.Len(t, got, 3)

	got = filterItems(items, listColumns(), "no-such-thing")
	assert.Empty(t, got)
}

func TestSortItems(t *testing.T) {
	items := []listRow{
		{Name: "b", Brand: "z"},
		{Name: "C", Brand: "y"},
		{Name: "a", Brand: "x"},
	}

	sortItems(items, listColumns(), "name", SortDirAsc)
	assert.Equal(t, []string{"a", "b", "C"}, []string{items[0].Name, items[1].Name, items[2].Name})

	sortItems(items, listColumns(), "name", SortDirDesc)
	assert.Equal(t, []string{"C", "b", "a"}, []string{items[0].Name, items[1].Name, items[2].Name})

	// unknown keys leave the current order untouched
	before := append([]listRow(nil), items...)
	sortItems(items, listColumns(), "bogus", SortDirAsc)
	assert.Equal(t, before, items)
}

func TestSlicePage(t *testing.T) {
	items := make([]listRow, 25)
	for i := range items {
		items[i] = listRow{Name: string(rune('a' + i))}
	}

	pageItems, pg := slicePage(items, 1, 10)
	assert.Len(t, pageItems, 10)
	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, 1, pg.StartIndex)
	assert.Equal(t, 10, pg.EndIndex)
	assert.Equal(t, 25, pg.TotalCount)
	assert.False(t, pg.HasPrev)
	assert.True(t, pg.HasNext)

	pageItems, pg = slicePage(items, 3, 10)
	assert.Len(t, pageItems, 5)
	assert.True(t, pg.HasPrev)
	assert.False(t, pg.HasNext)
	assert.Equal(t, 21, pg.StartIndex)
	assert.Equal(t, 25, pg.EndIndex)
}

func TestSlicePageSnapsBackPastEnd(t *testing.T) {
	items := []listRow{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	pageItems, pg := slicePage(items, 9, 10)
	assert.Len(t, pageItems, 3)
	assert.Equal(t, 1, pg.Page)
	assert.False(t, pg.HasNext)
}

func TestSlicePageEmptyCollection(t *testing.T) {
	pageItems, pg := slicePage([]listRow{}, 1, 10)
	assert.Empty(t, pageItems)
	assert.Equal(t, 0, pg.TotalCount)
	assert.Equal(t, 0, pg.StartIndex)
	assert.Equal(t, 0, pg.EndIndex)
	assert.False(t, pg.HasPrev)
	assert.False(t, pg.HasNext)
}
