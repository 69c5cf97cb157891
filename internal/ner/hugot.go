// Package ner adapts an ONNX token-classification model to the recognizer
// capability consumed by the entity aggregator.
package ner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"go.uber.org/zap"

	"github.com/docsift/docsift/internal/entities"
)

var _ entities.Recognizer = (*HugotRecognizer)(nil)

// HugotRecognizer runs named-entity recognition through a hugot
// token-classification pipeline (pure Go goMLX backend, no CGO).
//
// CoNLL-style models emit PER/ORG/LOC/MISC only; labels are mapped onto the
// canonical categories (PER->PERSON, LOC->GPE) and categories the model does
// not know stay absent — the regex tiers downstream compensate.
type HugotRecognizer struct {
	session  *hugot.Session
	pipeline *pipelines.TokenClassificationPipeline
	logger   *zap.Logger
}

// NewHugotRecognizer loads the model at modelPath. onnxFilename defaults to
// "model.onnx".
func NewHugotRecognizer(modelPath, onnxFilename string, logger *zap.Logger) (*HugotRecognizer, error) {
	if modelPath == "" {
		return nil, errors.New("model path is required")
	}
	if onnxFilename == "" {
		onnxFilename = "model.onnx"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("creating hugot session: %w", err)
	}

	config := hugot.TokenClassificationConfig{
		ModelPath:    modelPath,
		Name:         fmt.Sprintf("ner:%s:%s", modelPath, onnxFilename),
		OnnxFilename: onnxFilename,
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("creating token classification pipeline: %w", err)
	}
	// Group adjacent tokens carrying the same entity type.
	pipeline.AggregationStrategy = "SIMPLE"

	logger.Info("initialized hugot recognizer",
		zap.String("modelPath", modelPath),
		zap.String("onnxFilename", onnxFilename))

	return &HugotRecognizer{session: session, pipeline: pipeline, logger: logger}, nil
}

// Recognize extracts tagged spans from text, keyed by canonical category.
func (r *HugotRecognizer) Recognize(ctx context.Context, text string) (map[string][]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	output, err := r.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("running token classification: %w", err)
	}
	if len(output.Entities) == 0 {
		return map[string][]string{}, nil
	}

	tagged := make(map[string][]string)
	for _, pe := range output.Entities[0] {
		category := canonicalCategory(pe.Entity)
		if category == "" {
			continue
		}
		start, end := int(pe.Start), int(pe.End)
		if start < 0 || end > len(text) || start >= end {
			r.logger.Debug("invalid entity offsets",
				zap.Int("start", start), zap.Int("end", end))
			continue
		}
		tagged[category] = append(tagged[category], text[start:end])
	}
	return tagged, nil
}

// Close releases the underlying session.
func (r *HugotRecognizer) Close() error {
	if r.session == nil {
		return nil
	}
	return r.session.Destroy()
}

// canonicalCategory maps a (possibly BIO-prefixed) model label onto the bag
// category names. Unknown labels and O ("outside") map to "".
func canonicalCategory(label string) string {
	label = strings.ToUpper(strings.TrimSpace(label))
	label = strings.TrimPrefix(label, "B-")
	label = strings.TrimPrefix(label, "I-")
	switch label {
	case "PER", "PERSON":
		return entities.CatPerson
	case "ORG", "ORGANIZATION":
		return entities.CatOrg
	case "LOC", "GPE", "LOCATION":
		return entities.CatGPE
	case "MONEY":
		return entities.CatMoney
	case "DATE":
		return entities.CatDate
	case "CARDINAL", "NUM", "NUMBER":
		return entities.CatCardinal
	default:
		return ""
	}
}
