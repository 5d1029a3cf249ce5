package domain

import "context"

// AnalyzerPort is the external port for sentence analysis
type AnalyzerPort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (Analysis, error)
}
