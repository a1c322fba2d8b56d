package sentence

import (
	"iter"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Splitter segments raw document text into sentences using a trained
// punkt boundary detector. The detector is abbreviation-aware and does
// not split on "Dr.", "U.S.", decimal numbers and similar tokens.
//
// Sentence boundary detection remains the most failure-prone step of
// the pipeline; known false splits/joins are a property of the
// underlying detector, not of this package.
//
// A Splitter is safe for concurrent use.
type Splitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSplitter creates a Splitter backed by the English punkt model.
func NewSplitter() (*Splitter, error) {
	t, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &Splitter{tokenizer: t}, nil
}

// Split segments text into sentences in document order. Each sentence
// is cleaned with Normalize and tagged with its ordinal position.
// Sentences whose cleaned text is empty are still emitted (with empty
// Text) so positions stay aligned with the source document; Filter
// discards them later.
func (sp *Splitter) Split(text string) []Sentence {
	var out []Sentence
	for s := range sp.Sentences(text) {
		out = append(out, s)
	}
	return out
}

// Sentences returns a restartable iterator over the sentences of text
// in document order. Ranging over it a second time restarts from the
// first sentence.
func (sp *Splitter) Sentences(text string) iter.Seq[Sentence] {
	return func(yield func(Sentence) bool) {
		for i, tok := range sp.tokenizer.Tokenize(text) {
			s := Sentence{
				Raw:      tok.Text,
				Text:     Normalize(tok.Text),
				Position: i,
			}
			if !yield(s) {
				return
			}
		}
	}
}
