package tablegrid

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

func TestFormatColumn(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		text  string
		width int
		want  string
	}{
		"exact fit":     {text: "abc", width: 3, want: "abc"},
		"even leftover": {text: "ab", width: 4, want: " ab "},
		"odd leftover":  {text: "ab", width: 5, want: " ab  "},
		"one extra":     {text: "abc", width: 4, want: "abc "},
		"empty":         {text: "", width: 3, want: "   "},
		"zero width":    {text: "", width: 0, want: ""},
		"multibyte":     {text: "日本", width: 5, want: " 日本  "},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := formatColumn(tt.text, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.width, utf8.RuneCountInString(got))
		})
	}
}

func TestFormatColumnPosition(t *testing.T) {
	t.Parallel()
	for width := 5; width <= 12; width++ {
		got := formatColumn("hello", width)
		start := (width - 5) / 2
		assert.Equal(t, "hello", got[start:start+5], "width %d", width)
	}
}

func TestBandOffset(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		width, prevWidth, prevPadding int
		want                          int
	}{
		"first band":     {width: 10, want: 0},
		"narrower":       {width: 5, prevWidth: 11, prevPadding: 0, want: 3},
		"narrower odd":   {width: 5, prevWidth: 10, prevPadding: 2, want: 4},
		"same width":     {width: 7, prevWidth: 7, prevPadding: 4, want: 4},
		"wider":          {width: 12, prevWidth: 7, prevPadding: 4, want: 0},
		"same as offset": {width: 9, prevWidth: 9, prevPadding: 0, want: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bandOffset(tt.width, tt.prevWidth, tt.prevPadding))
		})
	}
}

func TestClip(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", clip("abc", 5))
	assert.Equal(t, "ab", clip("abc", 2))
	assert.Equal(t, "日", clip("日本", 1))
}

func TestDisplayWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 10, displayWidth([]int{1, 2}))
	assert.Equal(t, 4, displayWidth([]int{0}))
	assert.Equal(t, 19, displayWidth([]int{3, 3, 3}))
}

func TestCenterDisplayWide(t *testing.T) {
	t.Parallel()
	// "日本" occupies four terminal columns.
	assert.Equal(t, " 日本 ", centerDisplay("日本", 6))
	assert.Equal(t, "日本", centerDisplay("日本", 3))
}

func TestWriteCSVError(t *testing.T) {
	t.Parallel()
	tbl, err := NewBuilder().AddData([]string{"a", "b"}).Build()
	require.NoError(t, err)
	assert.Error(t, writeCSV(&errWriterInternal{}, tbl))
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}
