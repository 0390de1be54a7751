package search

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mmcdole/accordion/internal/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var titles = []string{"Installation", "Configuration", "Usage", "Troubleshooting"}

func TestFindSubsequence(t *testing.T) {
	f := NewFinder(titles, adapter.NullLogger())

	best, ok := f.Best("conf")
	require.True(t, ok)
	assert.Equal(t, 1, best.Index)
	assert.Equal(t, "Configuration", best.Title)
	assert.Equal(t, []int{0, 1, 2, 3}, best.MatchedIndexes)

	best, ok = f.Best("USAGE")
	require.True(t, ok)
	assert.Equal(t, 2, best.Index)
}

func TestFindNothing(t *testing.T) {
	f := NewFinder(titles, adapter.NullLogger())
	assert.Nil(t, f.Find("   "))
	_, ok := f.Best("zzz")
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	f := NewFinder(titles, adapter.NullLogger())

	s, ok := f.Suggest("usgae")
	require.True(t, ok)
	assert.Equal(t, "Usage", s)

	_, ok = f.Suggest("")
	assert.False(t, ok)

	_, ok = NewFinder(nil, nil).Suggest("x")
	assert.False(t, ok)
}

func TestFindAccentFallback(t *testing.T) {
	f := NewFinder([]string{"Overview", "Résumé"}, adapter.NullLogger())

	best, ok := f.Best("resume")
	require.True(t, ok)
	assert.Equal(t, 1, best.Index)
	assert.Empty(t, best.MatchedIndexes)
}

func TestFindOffsetsIndexOriginalTitle(t *testing.T) {
	// Lower-casing İ and the Kelvin sign changes their byte length
	tests := []string{"İstanbul notes", "\u212Aelvin notes"}
	for _, title := range tests {
		t.Run(title, func(t *testing.T) {
			f := NewFinder([]string{title}, adapter.NullLogger())
			best, ok := f.Best("notes")
			require.True(t, ok)
			require.Len(t, best.MatchedIndexes, len("notes"))

			var matched strings.Builder
			for _, pos := range best.MatchedIndexes {
				r, _ := utf8.DecodeRuneInString(title[pos:])
				matched.WriteRune(r)
			}
			assert.Equal(t, "notes", strings.ToLower(matched.String()))
		})
	}
}
