// Package service implements the analyze service
package service

import (
	"context"

	"mouthsoap/internal/core/normalize"
	"mouthsoap/internal/core/sentence"
	"mouthsoap/internal/services/analyze/domain"
)

// Service implements domain.AnalyzerPort over the sentence scanner
type Service struct {
	norm *normalize.Normalizer
}

// New constructs an analyze service. A nil normalizer falls back to
// the default confusable table
func New(norm *normalize.Normalizer) *Service {
	if norm == nil {
		norm = normalize.Default()
	}
	return &Service{norm: norm}
}

// Analyze scans the input text and reports its canonical form together
// with the per-rune boundary classes and word start offsets
func (s *Service) Analyze(_ context.Context, in domain.AnalyzeInput) (domain.Analysis, error) {
	sn := sentence.New(in.Text, sentence.WithNormalizer(s.norm))

	bs := sn.Boundaries()
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.String()
	}

	ms := sn.WordMarkers()
	starts := make([]int, len(ms))
	for i, m := range ms {
		starts[i] = m.Start
	}

	return domain.Analysis{
		Normalized: sn.String(),
		Length:     sn.Len(),
		Boundaries: names,
		WordStarts: starts,
	}, nil
}
