package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	c := Default()

	t.Run("single match", func(t *testing.T) {
		assert.Equal(t, "financial", c.Categorize("The budget was cut in half."))
		assert.Equal(t, "legal", c.Categorize("New regulation takes effect in June."))
	})

	t.Run("highest count wins", func(t *testing.T) {
		// One legal marker vs two financial markers.
		assert.Equal(t, "financial", c.Categorize("The law changes both the tax rate and the revenue split."))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, "financial", c.Categorize("BUDGET review pending."))
	})

	t.Run("no match falls back to other", func(t *testing.T) {
		assert.Equal(t, Other, c.Categorize("The weather was pleasant."))
	})

	t.Run("tie breaks by declaration order", func(t *testing.T) {
		// One financial marker and one legal marker: financial is
		// declared first.
		assert.Equal(t, "financial", c.Categorize("The tax law changed."))
	})
}

func TestCategorizeCustomCategories(t *testing.T) {
	c := New(
		Category{Name: "alpha", Markers: []string{"first"}},
		Category{Name: "beta", Markers: []string{"second"}},
	)

	assert.Equal(t, "alpha", c.Categorize("the first item"))
	assert.Equal(t, "beta", c.Categorize("the second item"))
	assert.Equal(t, Other, c.Categorize("the third item"))
}

func TestBucket(t *testing.T) {
	c := Default()

	sections := c.Bucket([]string{
		"The budget grew.",
		"Nothing notable here.",
		"We recommend a phased rollout.",
		"Tax revenue declined.",
	})

	require.Len(t, sections, 3)

	// Declaration order, Other last.
	assert.Equal(t, "financial", sections[0].Name)
	assert.Equal(t, []string{"The budget grew.", "Tax revenue declined."}, sections[0].Sentences)
	assert.Equal(t, "recommendations", sections[1].Name)
	assert.Equal(t, Other, sections[2].Name)
}

func TestBucketEmpty(t *testing.T) {
	assert.Empty(t, Default().Bucket(nil))
}
