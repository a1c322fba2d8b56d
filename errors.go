package sumgo

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/sumgo/oracle"
)

var (
	// ErrInsufficientText is returned when the document contains too
	// little usable text to summarize. A user-facing rejection
	// prompting re-upload, not a crash.
	ErrInsufficientText = errors.New("not enough text to summarize")

	// ErrNoValidCandidates is returned when normalization and
	// filtering leave zero candidate sentences. An expected outcome
	// for degenerate documents.
	ErrNoValidCandidates = errors.New("no valid content to summarize")

	// ErrScoringUnavailable is returned when the scoring or
	// vectorization artifacts are missing or fail during inference.
	ErrScoringUnavailable = errors.New("summarization model unavailable")

	// ErrProcessingFailed covers unexpected internal failures
	// (malformed vectors, dimension mismatches). The underlying cause
	// is preserved in the error chain for operators but never shown
	// to end users.
	ErrProcessingFailed = errors.New("summary processing failed")

	// ErrInvalidThreshold is returned when a redundancy threshold
	// outside [0,1] is configured.
	ErrInvalidThreshold = errors.New("redundancy threshold must be within [0,1]")
)

// translateError maps subpackage errors onto the facade taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if errors.Is(err, oracle.ErrUnavailable) {
		return fmt.Errorf("%w: %w", ErrScoringUnavailable, err)
	}

	// Everything else (dimension mismatches included) is an internal
	// fault.
	return fmt.Errorf("%w: %w", ErrProcessingFailed, err)
}

// Diagnostic returns the single human-readable sentence the
// presentation layer may show for err. It never exposes internal
// detail or stack traces.
func Diagnostic(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientText):
		return "Not enough text could be extracted from the document."
	case errors.Is(err, ErrNoValidCandidates):
		return "No valid text found to summarize."
	case errors.Is(err, ErrScoringUnavailable):
		return "The summarization model is not available right now."
	default:
		return "The document could not be processed."
	}
}
