// Package domain defines the core types and interfaces for the analyze service
package domain

// AnalyzeInput is the request payload for sentence analysis.
// Text may be empty; an empty input analyzes to an empty sentence
type AnalyzeInput struct {
	Text string `json:"text" validate:"max=65536"`
}

// Analysis is the per-request analysis result. Boundaries holds one
// classification per canonical rune and WordStarts one offset per
// detected word, both in scan order
type Analysis struct {
	Normalized string   `json:"normalized"`
	Length     int      `json:"length"`
	Boundaries []string `json:"boundaries"`
	WordStarts []int    `json:"word_starts"`
}
