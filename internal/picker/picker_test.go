package picker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imgswipe/internal/domain"
)

// library builds refs in newest-first order, the order a scan returns
func library(names ...string) []domain.ImageRef {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	out := make([]domain.ImageRef, len(names))
	for i, n := range names {
		out[i] = domain.ImageRef{
			Path:    "/pics/" + n,
			Name:    n,
			Size:    int64(100 * (i + 1)),
			ModTime: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return out
}

func names(refs []domain.ImageRef) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name
	}
	return out
}

func TestSinglePickReturnsCursorRow(t *testing.T) {
	p := New(nil)
	p.SetItems(library("a.png", "b.png", "c.png"), nil)
	p.Open(ModeSingle)
	require.True(t, p.IsOpen())

	p.Move(1)
	p.ToggleMark() // no marks in single mode
	result := p.Confirm()

	assert.False(t, p.IsOpen())
	assert.Equal(t, ModeSingle, result.Mode)
	assert.Equal(t, []string{"b.png"}, names(result.Refs))
}

func TestMultiplePickReturnsMarksInLibraryOrder(t *testing.T) {
	p := New(nil)
	p.SetItems(library("a", "b", "c", "d"), nil)
	p.Open(ModeMultiple)

	p.End()
	p.ToggleMark() // d
	p.Home()
	p.Move(1)
	p.ToggleMark() // b, cursor moves to c

	assert.Equal(t, 2, p.Marked())
	result := p.Confirm()
	assert.Equal(t, ModeMultiple, result.Mode)
	assert.Equal(t, []string{"b", "d"}, names(result.Refs))
}

func TestMultiplePickWithoutMarksReturnsCursorRow(t *testing.T) {
	p := New(nil)
	p.SetItems(library("a", "b"), nil)
	p.Open(ModeMultiple)

	result := p.Confirm()
	assert.Equal(t, []string{"a"}, names(result.Refs))
}

func TestCancelReturnsEmptyResult(t *testing.T) {
	p := New(nil)
	p.SetItems(library("a", "b"), nil)
	p.Open(ModeMultiple)
	p.ToggleMark()

	result := p.Cancel()
	assert.True(t, result.Cancelled())
	assert.Equal(t, ModeMultiple, result.Mode)
	assert.False(t, p.IsOpen())

	p.Open(ModeMultiple)
	assert.Zero(t, p.Marked(), "reopening starts without marks")
}

func TestConfirmOnEmptyLibraryIsCancel(t *testing.T) {
	p := New(nil)
	p.SetItems(nil, nil)
	p.Open(ModeSingle)

	assert.Equal(t, StatusEmpty, p.Status())
	assert.True(t, p.Confirm().Cancelled())
}

func TestFilterNarrowsAndKeepsMarks(t *testing.T) {
	p := New(nil)
	p.SetItems(library("beach.jpg", "cat.png", "beach2.png"), nil)
	p.Open(ModeMultiple)

	p.SetFilter("beach")
	assert.Equal(t, 2, p.Visible())
	p.ToggleAll()
	assert.Equal(t, 2, p.Marked())

	p.SetFilter("ext:png")
	assert.Equal(t, 2, p.Visible())
	p.Move(-5)
	p.ToggleMark() // cat.png

	p.SetFilter("")
	result := p.Confirm()
	assert.Equal(t, []string{"beach.jpg", "cat.png", "beach2.png"}, names(result.Refs))
}

func TestToggleAllClearsWhenEverythingMarked(t *testing.T) {
	p := New(nil)
	p.SetItems(library("a", "b"), nil)
	p.Open(ModeMultiple)

	p.ToggleAll()
	assert.Equal(t, 2, p.Marked())
	p.ToggleAll()
	assert.Zero(t, p.Marked())
}

func TestMarkRange(t *testing.T) {
	p := New(nil)
	p.SetItems(library("a", "b", "c", "d", "e"), nil)
	p.Open(ModeMultiple)

	p.ToggleMark() // a, cursor -> b
	p.Move(2)      // d
	p.MarkRange()

	assert.Equal(t, []string{"a", "b", "c", "d"}, names(p.Confirm().Refs))
}

func TestMarkRangeSkipsFilteredRows(t *testing.T) {
	p := New(nil)
	p.SetItems(library("beach1.png", "city.png", "office.png", "beach2.png"), nil)
	p.Open(ModeMultiple)

	p.SetFilter("beach")
	require.Equal(t, 2, p.Visible())
	p.ToggleMark() // beach1, cursor on beach2
	p.MarkRange()

	assert.Equal(t, 2, p.Marked())
	assert.Equal(t, []string{"beach1.png", "beach2.png"}, names(p.Confirm().Refs))
}

func TestSetItemsKeepsCursorOnSameImage(t *testing.T) {
	p := New(nil)
	p.SetItems(library("a", "b", "c"), nil)
	p.Open(ModeMultiple)
	p.Move(1)
	p.ToggleMark() // b marked, cursor on c

	p.SetItems(library("new", "a", "b", "c"), nil)

	rows := p.Rows()
	require.Len(t, rows, 4)
	assert.True(t, rows[3].Current)
	assert.True(t, rows[2].Marked)
	assert.Equal(t, []string{"b"}, names(p.Confirm().Refs))
}

func TestCycleSortKeepsCursorAndMarks(t *testing.T) {
	p := New(nil)
	p.SetItems(library("c", "a", "b"), nil)
	p.Open(ModeMultiple)
	assert.Equal(t, "newest", p.SortMode())

	p.ToggleMark() // c, cursor on a
	p.CycleSort()  // oldest: b a c
	assert.Equal(t, "oldest", p.SortMode())
	assert.Equal(t, 1, p.Cursor())

	p.CycleSort() // name: a b c
	assert.Equal(t, "name", p.SortMode())
	rows := p.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{rows[0].Ref.Name, rows[1].Ref.Name, rows[2].Ref.Name})
	assert.True(t, rows[0].Current)
	assert.True(t, rows[2].Marked)

	p.Move(1)
	p.ToggleMark() // b
	assert.Equal(t, []string{"b", "c"}, names(p.Confirm().Refs))
}

func TestSortBySizeLargestFirst(t *testing.T) {
	p := New(nil)
	p.SetItems(library("small", "medium", "large"), nil)
	p.Open(ModeSingle)
	p.CycleSort()
	p.CycleSort()
	p.CycleSort()
	p.Home()

	assert.Equal(t, "size", p.SortMode())
	assert.Equal(t, []string{"large"}, names(p.Confirm().Refs))
}

func TestSetItemsErrorKeepsListing(t *testing.T) {
	p := New(nil)
	p.SetItems(library("a"), nil)
	p.SetItems(nil, errors.New("permission denied"))

	assert.Equal(t, StatusError, p.Status())
	assert.EqualError(t, p.Err(), "permission denied")
	assert.Equal(t, 1, p.Total())
}

func TestRowsScrollWithCursor(t *testing.T) {
	p := New(nil)
	p.SetItems(library("0", "1", "2", "3", "4", "5", "6", "7"), nil)
	p.Open(ModeSingle)
	p.SetHeight(3)

	p.Move(4)
	rows := p.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2", "3", "4"}, []string{rows[0].Ref.Name, rows[1].Ref.Name, rows[2].Ref.Name})
	assert.True(t, rows[2].Current)

	p.PageUp()
	assert.Equal(t, 2, p.Cursor())
	assert.Equal(t, 2, p.Offset())

	p.End()
	assert.Equal(t, 7, p.Cursor())
	assert.Equal(t, 5, p.Offset())
}

func TestDeliverProducesPickedMsg(t *testing.T) {
	refs := library("x")
	msg := Deliver(Result{Mode: ModeSingle, Refs: refs})()

	picked, ok := msg.(PickedMsg)
	require.True(t, ok)
	assert.Equal(t, refs, picked.Refs)
}

func TestMatchesFilter(t *testing.T) {
	ref := domain.ImageRef{Path: "/home/me/Holiday/IMG_001.JPG", Name: "IMG_001.JPG"}

	assert.True(t, MatchesFilter(ref, ""))
	assert.True(t, MatchesFilter(ref, "img_"))
	assert.True(t, MatchesFilter(ref, "holiday"))
	assert.True(t, MatchesFilter(ref, "ext:jpg"))
	assert.True(t, MatchesFilter(ref, "ext:.JPG"))
	assert.False(t, MatchesFilter(ref, "ext:png"))
	assert.False(t, MatchesFilter(ref, "beach"))
}
