// Package category buckets summary sentences into topical sections by
// counting keyword occurrences. It is an auxiliary presentation
// concern layered on top of the selection core.
package category

import "strings"

// Other labels sentences that match no category keyword.
const Other = "other"

// Category pairs a section name with its marker terms.
type Category struct {
	Name    string
	Markers []string
}

// Categorizer assigns sentences to the declared categories. The
// declaration order doubles as the tie-break priority: when two
// categories match with the same count, the earlier one wins.
type Categorizer struct {
	categories []Category
}

// New creates a Categorizer from the given categories, in priority
// order.
func New(categories ...Category) *Categorizer {
	return &Categorizer{categories: categories}
}

// Default returns a Categorizer tuned for policy documents.
func Default() *Categorizer {
	return New(
		Category{Name: "financial", Markers: []string{"budget", "cost", "funding", "tax", "revenue", "expenditure"}},
		Category{Name: "legal", Markers: []string{"law", "regulation", "compliance", "liability", "statute", "legislation"}},
		Category{Name: "operations", Markers: []string{"process", "implementation", "staff", "procedure", "deadline", "timeline"}},
		Category{Name: "recommendations", Markers: []string{"recommend", "should", "propose", "advise", "suggest"}},
	)
}

// Categorize returns the category label for one sentence: the category
// with the highest non-zero keyword match count, ties broken by
// declaration order, or Other when nothing matches.
func (c *Categorizer) Categorize(sent string) string {
	lower := strings.ToLower(sent)

	best := Other
	bestCount := 0
	for _, cat := range c.categories {
		count := 0
		for _, m := range cat.Markers {
			count += strings.Count(lower, strings.ToLower(m))
		}
		// Strict > keeps the earliest category on ties.
		if count > bestCount {
			best = cat.Name
			bestCount = count
		}
	}
	return best
}

// Section is an ordered group of sentences sharing a category label.
type Section struct {
	Name      string
	Sentences []string
}

// Bucket groups sentences into sections. Sections appear in category
// declaration order, with Other last, and empty sections are omitted.
// Within a section, sentences keep their input order.
func (c *Categorizer) Bucket(sents []string) []Section {
	grouped := make(map[string][]string)
	for _, s := range sents {
		label := c.Categorize(s)
		grouped[label] = append(grouped[label], s)
	}

	var sections []Section
	for _, cat := range c.categories {
		if group, ok := grouped[cat.Name]; ok {
			sections = append(sections, Section{Name: cat.Name, Sentences: group})
		}
	}
	if group, ok := grouped[Other]; ok {
		sections = append(sections, Section{Name: Other, Sentences: group})
	}
	return sections
}
