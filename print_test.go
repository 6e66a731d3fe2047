package draglist

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestPrintAlignments(t *testing.T) {
	screen := simScreen(t)

	bytes, width := Print(screen, "abc", 2, 0, 10, AlignmentLeft, Styles.PrimaryTextColor)
	assert.Equal(t, 3, bytes)
	assert.Equal(t, 3, width)
	assert.Equal(t, "  abc", rowText(screen, 0, 15))

	Print(screen, "abc", 2, 1, 10, AlignmentCenter, Styles.PrimaryTextColor)
	assert.Equal(t, "      abc", rowText(screen, 1, 15))

	Print(screen, "abc", 2, 2, 10, AlignmentRight, Styles.PrimaryTextColor)
	assert.Equal(t, "         abc", rowText(screen, 2, 15))
}

func TestPrintTruncates(t *testing.T) {
	screen := simScreen(t)

	bytes, width := Print(screen, "abcdefgh", 0, 0, 5, AlignmentLeft, Styles.PrimaryTextColor)
	assert.Equal(t, 5, bytes)
	assert.Equal(t, 5, width)
	assert.Equal(t, "abcde", rowText(screen, 0, 10), "left alignment keeps the head")

	bytes, width = Print(screen, "abcdefgh", 0, 1, 5, AlignmentRight, Styles.PrimaryTextColor)
	assert.Equal(t, 5, bytes)
	assert.Equal(t, 5, width)
	assert.Equal(t, "defgh", rowText(screen, 1, 10), "right alignment keeps the tail")

	bytes, width = Print(screen, "abcdefgh", 0, 2, 4, AlignmentCenter, Styles.PrimaryTextColor)
	assert.Equal(t, 4, bytes)
	assert.Equal(t, 4, width)
	assert.Equal(t, "cdef", rowText(screen, 2, 10), "center alignment trims both ends")
}

func TestPrintRejectsDegenerateArgs(t *testing.T) {
	screen := simScreen(t)

	for _, run := range []func() (int, int){
		func() (int, int) { return Print(screen, "abc", 0, 0, 0, AlignmentLeft, Styles.PrimaryTextColor) },
		func() (int, int) { return Print(screen, "", 0, 0, 5, AlignmentLeft, Styles.PrimaryTextColor) },
		func() (int, int) { return Print(screen, "abc", 0, -1, 5, AlignmentLeft, Styles.PrimaryTextColor) },
		func() (int, int) { return Print(screen, "abc", 0, 99, 5, AlignmentLeft, Styles.PrimaryTextColor) },
	} {
		bytes, width := run()
		assert.Zero(t, bytes)
		assert.Zero(t, width)
	}
	assert.Equal(t, "", rowText(screen, 0, 10))
}

func TestPrintMergesExistingBackground(t *testing.T) {
	screen := simScreen(t)

	contrast := tcell.StyleDefault.Background(Styles.ContrastBackgroundColor)
	for x := 0; x < 4; x++ {
		screen.Put(x, 5, " ", contrast)
	}

	style := tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Bold(true)
	PrintWithStyle(screen, "ab", 0, 5, 5, AlignmentLeft, style)

	content, _, _ := screen.Get(0, 5)
	assert.Equal(t, "a", content)
	assert.Equal(t, style.Background(Styles.ContrastBackgroundColor), cellStyle(screen, 0, 5))
	assert.Equal(t, style.Background(Styles.ContrastBackgroundColor), cellStyle(screen, 1, 5))
	assert.Equal(t, contrast, cellStyle(screen, 2, 5), "cells past the text keep their style")

	// On untouched cells the default background comes through unchanged.
	PrintWithStyle(screen, "z", 0, 6, 5, AlignmentLeft, style)
	assert.Equal(t, style, cellStyle(screen, 0, 6))
}

func TestPrintWideRunes(t *testing.T) {
	screen := simScreen(t)

	bytes, width := Print(screen, "日本", 0, 0, 10, AlignmentLeft, Styles.PrimaryTextColor)
	assert.Equal(t, 6, bytes)
	assert.Equal(t, 4, width)
	content, _, _ := screen.Get(0, 0)
	assert.Equal(t, "日", content)
	content, _, _ = screen.Get(2, 0)
	assert.Equal(t, "本", content)

	// Right alignment drops whole clusters from the left until the rest fits.
	bytes, width = Print(screen, "日本", 0, 1, 3, AlignmentRight, Styles.PrimaryTextColor)
	assert.Equal(t, 3, bytes)
	assert.Equal(t, 2, width)
	content, _, _ = screen.Get(1, 1)
	assert.Equal(t, "本", content)
}

func TestPrintSimpleUsesPrimaryText(t *testing.T) {
	screen := simScreen(t)

	PrintSimple(screen, "hey", 1, 1)
	assert.Equal(t, " hey", rowText(screen, 1, 10))
	assert.Equal(t, tcell.StyleDefault.Foreground(Styles.PrimaryTextColor), cellStyle(screen, 1, 1))
}

func TestTaggedStringWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"日本", 4},
		{"🙂", 2},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TaggedStringWidth(tc.text), "width of %q", tc.text)
	}
}

func TestWordWrap(t *testing.T) {
	assert.Equal(t, []string{"the quick ", "brown fox"}, WordWrap("the quick brown fox", 10),
		"breaks after spaces, keeping the space on the first line")

	assert.Equal(t, []string{"abcd", "efgh", "ij"}, WordWrap("abcdefghij", 4),
		"words longer than the width are chopped")

	assert.Equal(t, []string{"ab", "cd"}, WordWrap("ab\ncd", 10),
		"newlines force a break and are stripped")

	assert.Nil(t, WordWrap("anything", 0))
	assert.Equal(t, []string{""}, WordWrap("", 5))
}
