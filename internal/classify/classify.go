// Package classify is the boundary to the document-type classifier. The
// statistical model itself lives outside this repo; this package defines the
// capability interface plus a deterministic keyword fallback so the pipeline
// can run without a trained model.
package classify

import (
	"context"
	"regexp"
	"strings"

	"github.com/docsift/docsift/constants"
)

// Result is a category prediction with its confidence in [0,1].
type Result struct {
	Category   constants.DocType `json:"category"`
	Confidence float64           `json:"confidence"`
}

// Classifier predicts the document type for a text. Implementations wrap the
// external trained model; failures come back as errors and the caller decides
// whether to fall back.
type Classifier interface {
	Classify(ctx context.Context, text string) (Result, error)
}

// KeywordClassifier scores per-type keyword hits. It is intentionally crude:
// its job is to keep the pipeline running end to end when no trained model is
// configured, not to compete with one.
type KeywordClassifier struct {
	// Threshold below which the result degrades to unknown. Zero keeps
	// every prediction.
	Threshold float64
}

var typeKeywords = map[constants.DocType]*regexp.Regexp{
	constants.DocTypeInvoice:  regexp.MustCompile(`(?i)\binvoice\b|\bbill\s+to\b|\bamount\s+due\b|\bsubtotal\b|\bpo\s+number\b`),
	constants.DocTypeContract: regexp.MustCompile(`(?i)\bagreement\b|\bparty\b|\bparties\b|\bhereby\b|\beffective\s+date\b|\bterminat`),
	constants.DocTypeResume:   regexp.MustCompile(`(?i)\bresume\b|\bcurriculum\s+vitae\b|\bskills\b|\beducation\b|\bwork\s+experience\b`),
	constants.DocTypeLegal:    regexp.MustCompile(`(?i)\bplaintiff\b|\bdefendant\b|\bcourt\b|\bdocket\b|\bwhereas\b|\bcase\s+no\b`),
	constants.DocTypeReport:   regexp.MustCompile(`(?i)\breport\b|\bsummary\b|\bfindings\b|\bquarter\b|\bfiscal\b`),
}

func (k KeywordClassifier) Classify(_ context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{Category: constants.DocTypeUnknown}, nil
	}

	best := Result{Category: constants.DocTypeUnknown}
	total := 0
	for dt, re := range typeKeywords {
		hits := len(re.FindAllStringIndex(text, -1))
		total += hits
		// ties break toward the lexically smaller type to stay deterministic
		if hits > 0 && (float64(hits) > best.Confidence ||
			(float64(hits) == best.Confidence && dt < best.Category)) {
			best = Result{Category: dt, Confidence: float64(hits)}
		}
	}
	if total == 0 {
		return Result{Category: constants.DocTypeUnknown}, nil
	}

	best.Confidence /= float64(total)
	if best.Confidence < k.Threshold {
		return Result{Category: constants.DocTypeUnknown, Confidence: best.Confidence}, nil
	}
	return best, nil
}
