// Package extract turns raw document text plus an entity bag into a typed,
// structured record, specialized by document type.
//
// The heuristics are layered: every field tries its most specific labeled
// pattern first, degrades to entity-bag lookups, and degrades again to
// bounded positional scans. Extraction is stateless and deterministic; the
// only shared state is the read-only pattern library.
package extract

import (
	"context"
	"log/slog"

	"github.com/docsift/docsift/constants"
	"github.com/docsift/docsift/internal/entities"
	"github.com/docsift/docsift/internal/entity"
)

// Extractor dispatches text to the type-specific field extractors. The
// recognizer behind the aggregator is invoked at most once per document.
type Extractor struct {
	agg    *entities.Aggregator
	logger *slog.Logger
}

func New(agg *entities.Aggregator, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{agg: agg, logger: logger}
}

// Extract aggregates entities for text once, then applies the extractor for
// docType. Unrecognized types log a warning and fall back to the raw entity
// bag. Extract never fails: every error path degrades to a partial or empty
// record.
func (e *Extractor) Extract(ctx context.Context, text string, docType constants.DocType) entity.Record {
	bag := e.agg.Aggregate(ctx, text)
	return e.ExtractFromBag(text, docType, bag)
}

// ExtractFromBag runs the type-specific extractor over an already-aggregated
// bag. Callers that need the bag alongside the record (or share one bag
// across probes) use this form; Extract is the common path.
func (e *Extractor) ExtractFromBag(text string, docType constants.DocType, bag *entities.Bag) entity.Record {
	switch docType {
	case constants.DocTypeInvoice:
		return extractInvoice(text, bag)
	case constants.DocTypeContract:
		return extractContract(text, bag)
	case constants.DocTypeResume:
		return extractResume(text, bag)
	case constants.DocTypeLegal:
		return extractLegal(text, bag)
	default:
		e.logger.Warn("extract.unknown_doc_type", "doc_type", string(docType))
		return entity.GenericRecord{Bag: bag}
	}
}
