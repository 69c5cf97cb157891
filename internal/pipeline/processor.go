// Package pipeline coordinates normalization, classification, entity
// aggregation and field extraction for one document at a time, plus a
// bounded-concurrency batch runner on top.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/docsift/docsift/constants"
	"github.com/docsift/docsift/internal/classify"
	"github.com/docsift/docsift/internal/common"
	"github.com/docsift/docsift/internal/entity"
	"github.com/docsift/docsift/internal/extract"
	"github.com/docsift/docsift/internal/text"
)

// Result is the outcome of one document run.
type Result struct {
	JobID      uuid.UUID            `json:"job_id"`
	Path       string               `json:"path,omitempty"`
	DocType    constants.DocType    `json:"doc_type"`
	Status     constants.JobStatus  `json:"status"`
	Record     entity.Record        `json:"record,omitempty"`
	Classified *classify.Result     `json:"classified,omitempty"`
	Err        string               `json:"error,omitempty"`
	Duration   time.Duration        `json:"duration_ns"`
}

// Processor runs the per-document stages. It is safe for concurrent use: all
// per-document state lives in the call.
type Processor struct {
	Logger     *slog.Logger
	Extractor  *extract.Extractor
	Classifier classify.Classifier // used when the incoming type is unknown
	Validate   bool
}

func NewProcessor(logger *slog.Logger, ex *extract.Extractor, cl classify.Classifier, validate bool) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extractor: ex, Classifier: cl, Validate: validate}
}

// Process normalizes raw, resolves the document type (classifying when the
// caller passed unknown and a classifier is wired), extracts the record and
// optionally validates it. Process itself never fails on extraction
// heuristics — only marshal/validation problems surface in Result.Err, and
// even then a record is returned.
func (p *Processor) Process(ctx context.Context, raw string, docType constants.DocType) Result {
	start := time.Now()
	jobID := uuid.New()
	res := Result{JobID: jobID, DocType: docType, Status: constants.JobStatusRunning}

	cleaned := text.Normalize(raw)

	if docType == constants.DocTypeUnknown && p.Classifier != nil {
		if cr, err := p.Classifier.Classify(ctx, cleaned); err != nil {
			p.Logger.Warn("pipeline.classify.failed", "job_id", jobID, "err", err)
		} else {
			res.Classified = &cr
			res.DocType = cr.Category
			p.Logger.Info("pipeline.classify.ok",
				"job_id", jobID,
				"category", string(cr.Category),
				"confidence", cr.Confidence,
			)
		}
	}

	res.Record = p.Extractor.Extract(ctx, cleaned, res.DocType)
	res.Status = constants.JobStatusExtracted

	if p.Validate {
		if err := extract.ValidateRecord(res.Record); err != nil {
			res.Err = common.WrapError(err, "record validation").Error()
			p.Logger.Error("pipeline.validate.failed", "job_id", jobID, "err", err)
		}
	}

	res.Duration = time.Since(start)
	p.Logger.Info("pipeline.extract.ok",
		"job_id", jobID,
		"doc_type", string(res.DocType),
		"duration", res.Duration,
	)
	return res
}

// ProcessFile reads path and runs Process. Read failures produce a FAILED
// result rather than an error: batch runs keep going.
func (p *Processor) ProcessFile(ctx context.Context, path string, docType constants.DocType) Result {
	raw, err := os.ReadFile(path)
	if err != nil {
		p.Logger.Error("pipeline.read.failed", "path", path, "err", err)
		return Result{
			JobID:   uuid.New(),
			Path:    path,
			DocType: docType,
			Status:  constants.JobStatusFailed,
			Err:     common.WrapError(err, "reading document").Error(),
		}
	}
	res := p.Process(ctx, string(raw), docType)
	res.Path = path
	return res
}
