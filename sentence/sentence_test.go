package sentence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("strips page markers", func(t *testing.T) {
		assert.Equal(t, "The budget grew.", Normalize("Page 12 The budget grew."))
		assert.Equal(t, "The budget grew.", Normalize("The budget grew. Page 3 of 40"))
		assert.Equal(t, "The budget grew.", Normalize("page 7 The budget grew."))
	})

	t.Run("strips outline prefixes at line start", func(t *testing.T) {
		assert.Equal(t, "Scope of this policy.", Normalize("2.4.1 Scope of this policy."))
		assert.Equal(t, "Intro Scope", Normalize("1 Intro\n1.2 Scope"))
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		assert.Equal(t, "a b c", Normalize("a\t b\r\n  c"))
		assert.Equal(t, "a b", Normalize("a  b"))
	})

	t.Run("trims", func(t *testing.T) {
		assert.Equal(t, "x", Normalize("   x   "))
		assert.Equal(t, "", Normalize(" \n\t "))
	})
}

func TestFilter(t *testing.T) {
	long := strings.Repeat("policy terms apply ", 4) // > 40 chars, has letters

	sents := []Sentence{
		{Text: long, Position: 0},
		{Text: "short", Position: 1},
		{Text: strings.Repeat("1234567890", 5), Position: 2}, // long but numeric-only
		{Text: long, Position: 7},
	}

	valid := Filter(sents, DefaultMinLength)
	require.Len(t, valid, 2)
	assert.Equal(t, 0, valid[0].Position)
	assert.Equal(t, 7, valid[1].Position)
}

func TestFilterCountsRunesNotBytes(t *testing.T) {
	// 41 characters, 82 bytes: must pass on character count.
	umlauts := strings.Repeat("ü", DefaultMinLength+1)
	// 20 characters, 60 bytes: must be filtered despite its byte width.
	cjk := strings.Repeat("預", 20)

	valid := Filter([]Sentence{
		{Text: umlauts, Position: 0},
		{Text: cjk, Position: 1},
	}, DefaultMinLength)

	require.Len(t, valid, 1)
	assert.Equal(t, 0, valid[0].Position)
}

func TestFilterEmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, DefaultMinLength))
	assert.Empty(t, Filter([]Sentence{{Text: "tiny"}}, DefaultMinLength))
}

func TestFilterDefaultsMinLength(t *testing.T) {
	borderline := strings.Repeat("a", DefaultMinLength) // exactly 40: rejected
	above := strings.Repeat("a", DefaultMinLength+1)

	valid := Filter([]Sentence{{Text: borderline}, {Text: above, Position: 1}}, 0)
	require.Len(t, valid, 1)
	assert.Equal(t, 1, valid[0].Position)
}

func TestSplitter(t *testing.T) {
	sp, err := NewSplitter()
	require.NoError(t, err)

	t.Run("splits into ordered sentences", func(t *testing.T) {
		sents := sp.Split("The first rule applies. The second rule does not. A third rule is pending.")
		require.Len(t, sents, 3)
		for i, s := range sents {
			assert.Equal(t, i, s.Position)
		}
		assert.Equal(t, "The first rule applies.", sents[0].Text)
		assert.Equal(t, "A third rule is pending.", sents[2].Text)
	})

	t.Run("does not split on abbreviations", func(t *testing.T) {
		sents := sp.Split("Dr. Smith reviewed the draft. The board approved it.")
		require.Len(t, sents, 2)
	})

	t.Run("does not split on decimal numbers", func(t *testing.T) {
		sents := sp.Split("Inflation reached 3.5 percent last year. Wages stagnated.")
		require.Len(t, sents, 2)
	})

	t.Run("iterator is restartable", func(t *testing.T) {
		seq := sp.Sentences("One rule. Another rule.")

		var first, second int
		for range seq {
			first++
		}
		for range seq {
			second++
		}
		assert.Equal(t, first, second)
		assert.Equal(t, 2, first)
	})

	t.Run("empty input yields no sentences", func(t *testing.T) {
		assert.Empty(t, sp.Split(""))
	})
}
