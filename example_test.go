package sumgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/sumgo"
	"github.com/hupe1980/sumgo/oracle"
)

// Example_builder demonstrates building a summarization request with
// the fluent builder.
func Example_builder() {
	s, err := sumgo.New(oracle.NewAdapter(nil, nil)) // artifacts not loaded
	if err != nil {
		log.Fatal(err)
	}

	sb := s.Summarize("The quarterly report covers budget, staffing and compliance."). // Document text
												Short().                  // 3-sentence summary
												RedundancyThreshold(0.7). // Similarity cutoff
												Categorize()              // Sectioned output

	result, err := sb.Execute(context.Background())
	if err != nil {
		fmt.Println(result.Diagnostic)
	}
	// Output: The summarization model is not available right now.
}

// Example_diagnostics demonstrates the user-facing diagnostics for
// degenerate documents.
func Example_diagnostics() {
	s, err := sumgo.New(oracle.NewAdapter(nil, nil))
	if err != nil {
		log.Fatal(err)
	}

	result, err := s.Summarize("Too short.").Execute(context.Background())
	if err != nil {
		fmt.Println(result.Diagnostic)
	}
	// Output: Not enough text could be extracted from the document.
}
