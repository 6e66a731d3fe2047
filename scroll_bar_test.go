package draglist

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/stretchr/testify/assert"
)

func TestScrollMetrics(t *testing.T) {
	tests := []struct {
		name        string
		trackCells  int
		contentLen  int
		viewportLen int
		offset      int
		want        scrollMetrics
	}{
		{
			name: "no track",
			want: scrollMetrics{},
		},
		{
			name:       "content fits the viewport",
			trackCells: 4, contentLen: 10, viewportLen: 10,
			want: scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 32},
		},
		{
			name:       "viewport larger than content",
			trackCells: 4, contentLen: 3, viewportLen: 10,
			want: scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 32},
		},
		{
			name:       "top of a scrollable range",
			trackCells: 4, contentLen: 10, viewportLen: 4,
			want: scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 12},
		},
		{
			name:       "middle offset lands between cells",
			trackCells: 4, contentLen: 10, viewportLen: 4, offset: 3,
			want: scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 12, thumbStart: 10},
		},
		{
			name:       "bottom of the range",
			trackCells: 4, contentLen: 10, viewportLen: 4, offset: 6,
			want: scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 12, thumbStart: 20},
		},
		{
			name:       "offset clamps to the scrollable range",
			trackCells: 4, contentLen: 10, viewportLen: 4, offset: 99,
			want: scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 12, thumbStart: 20},
		},
		{
			name:       "negative offset clamps to zero",
			trackCells: 4, contentLen: 10, viewportLen: 4, offset: -5,
			want: scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 12},
		},
		{
			name:       "thumb never shrinks below one cell",
			trackCells: 2, contentLen: 1000, viewportLen: 1,
			want: scrollMetrics{trackCells: 2, trackLen: 16, thumbLen: 8},
		},
		{
			name:       "minimal thumb still reaches the end",
			trackCells: 2, contentLen: 1000, viewportLen: 1, offset: 999,
			want: scrollMetrics{trackCells: 2, trackLen: 16, thumbLen: 8, thumbStart: 8},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := computeScrollMetrics(test.trackCells, test.contentLen, test.viewportLen, test.offset)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestCellFill(t *testing.T) {
	// Thumb covering subcells [10,22) of a 4 cell track.
	m := computeScrollMetrics(4, 10, 4, 3)

	tests := []struct {
		cell          int
		start, fillLen int
	}{
		{cell: 0},                       // thumb starts below this cell
		{cell: 1, start: 2, fillLen: 6}, // thumb enters mid-cell
		{cell: 2, start: 0, fillLen: 6}, // thumb leaves mid-cell
		{cell: 3},                       // thumb ends above this cell
	}
	for _, test := range tests {
		start, fillLen := cellFill(m, test.cell)
		assert.Equal(t, []int{test.start, test.fillLen}, []int{start, fillLen}, "cell %d", test.cell)
	}

	start, fillLen := cellFill(scrollMetrics{trackCells: 4, trackLen: 32}, 0)
	assert.Equal(t, []int{0, 0}, []int{start, fillLen}, "no thumb, no fill")

	start, fillLen = cellFill(scrollMetrics{trackCells: 1, trackLen: 8, thumbLen: 8}, 0)
	assert.Equal(t, []int{0, 8}, []int{start, fillLen}, "full coverage")
}

func TestScrollBarGlyphSelection(t *testing.T) {
	bar := NewScrollBar()

	glyph, style := bar.glyphForVertical(0, 0)
	assert.Equal(t, " ", glyph, "the minimal set uses a blank track")
	assert.Equal(t, tcell.StyleDefault.Dim(true), style)

	glyph, _ = bar.glyphForVertical(0, subcell)
	assert.Equal(t, BlockFullBlock, glyph)

	// A partial fill starting at the cell top grows downward from the top.
	glyph, _ = bar.glyphForVertical(0, 4)
	assert.Equal(t, BlockUpperHalfBlock, glyph)

	// A partial fill reaching the cell bottom grows upward from the bottom.
	glyph, _ = bar.glyphForVertical(4, 4)
	assert.Equal(t, BlockLowerHalfBlock, glyph)

	bar.SetGlyphSet(UnicodeGlyphSet())
	glyph, _ = bar.glyphForVertical(0, 6)
	assert.Equal(t, BlockUpperHalfBlock, glyph, "the unicode set rounds fractions to plain blocks")
	glyph, style = bar.glyphForVertical(0, 0)
	assert.Equal(t, BoxDrawingsLightVertical, glyph)
	assert.Equal(t, tcell.StyleDefault.Dim(true), style)

	bar.SetTrackGlyph(" ", false)
	glyph, _ = bar.glyphForVertical(0, 0)
	assert.Equal(t, " ", glyph, "a hidden track renders blanks")

	thumbStyle := tcell.StyleDefault.Foreground(color.Yellow)
	bar.SetThumbStyle(thumbStyle)
	bar.SetThumbGlyph("▓")
	glyph, style = bar.glyphForVertical(0, subcell)
	assert.Equal(t, "▓", glyph)
	assert.Equal(t, thumbStyle, style)
	glyph, _ = bar.glyphForVertical(3, 2)
	assert.Equal(t, "▓", glyph, "a single thumb glyph replaces all fractions")
}

func TestScrollBarDrawFractionalThumb(t *testing.T) {
	screen := simScreen(t)

	bar := NewScrollBar()
	bar.SetRect(0, 0, 1, 6)
	bar.SetLengths(ScrollLengths{ContentLen: 12, ViewportLen: 6})

	// At the top the thumb covers subcells [0,24): three full cells.
	bar.Draw(screen)
	for y := 0; y < 3; y++ {
		content, _, _ := screen.Get(0, y)
		assert.Equal(t, BlockFullBlock, content, "row %d", y)
	}
	for y := 3; y < 6; y++ {
		content, style, _ := screen.Get(0, y)
		assert.Equal(t, " ", content, "row %d", y)
		assert.Equal(t, tcell.StyleDefault.Dim(true), style, "row %d", y)
	}

	// Offset 3 of 6 shifts the thumb to subcells [12,36): its edges land
	// mid-cell, so the boundary rows use half blocks.
	bar.SetOffset(3)
	bar.Draw(screen)
	wantRows := []string{" ", BlockLowerHalfBlock, BlockFullBlock, BlockFullBlock, BlockUpperHalfBlock, " "}
	for y, want := range wantRows {
		content, _, _ := screen.Get(0, y)
		assert.Equal(t, want, content, "row %d", y)
	}
}

func TestScrollBarDrawArrows(t *testing.T) {
	screen := simScreen(t)

	bar := NewScrollBar()
	bar.SetRect(0, 0, 1, 6)
	bar.SetLengths(ScrollLengths{ContentLen: 12, ViewportLen: 6})
	bar.SetArrows(ScrollBarArrowsBoth)
	bar.SetOffset(3)
	bar.Draw(screen)

	// Arrows consume the end cells; the thumb covers subcells [8,24) of the
	// remaining four cell track.
	wantRows := []string{"▲", " ", BlockFullBlock, BlockFullBlock, " ", "▼"}
	for y, want := range wantRows {
		content, _, _ := screen.Get(0, y)
		assert.Equal(t, want, content, "row %d", y)
	}

	_, style, _ := screen.Get(0, 0)
	assert.Equal(t, tcell.StyleDefault.Dim(true), style)
}

func TestScrollBarAutoHide(t *testing.T) {
	screen := simScreen(t)
	background := tcell.StyleDefault.Background(Styles.PrimitiveBackgroundColor)

	bar := NewScrollBar()
	bar.SetRect(0, 0, 1, 6)
	bar.SetLengths(ScrollLengths{ContentLen: 4, ViewportLen: 6})
	bar.Draw(screen)
	for y := 0; y < 6; y++ {
		content, style, _ := screen.Get(0, y)
		assert.Equal(t, " ", content, "row %d", y)
		assert.Equal(t, background, style, "content fits, nothing to draw at row %d", y)
	}

	// Without auto hide a full length thumb is rendered instead.
	bar.SetAutoHide(false)
	bar.Draw(screen)
	for y := 0; y < 6; y++ {
		content, _, _ := screen.Get(0, y)
		assert.Equal(t, BlockFullBlock, content, "row %d", y)
	}

	// Empty content never renders, auto hide or not.
	bar.SetLengths(ScrollLengths{ContentLen: 0, ViewportLen: 6})
	bar.Draw(screen)
	_, style, _ := screen.Get(0, 0)
	assert.Equal(t, background, style)
}

func TestScrollBarViewportFallsBackToHeight(t *testing.T) {
	screen := simScreen(t)

	bar := NewScrollBar()
	bar.SetRect(0, 0, 1, 5)
	bar.SetLengths(ScrollLengths{ContentLen: 20})
	bar.Draw(screen)

	// Viewport 5 of content 20 over a 40 subcell track: the thumb covers
	// [0,10), one full cell and a quarter of the next.
	content, _, _ := screen.Get(0, 0)
	assert.Equal(t, BlockFullBlock, content)
	content, _, _ = screen.Get(0, 1)
	assert.Equal(t, "🮂", content)
	content, _, _ = screen.Get(0, 2)
	assert.Equal(t, " ", content)
}
