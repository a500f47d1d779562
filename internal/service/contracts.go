package service

import (
	"context"

	"github.com/AnanduApillAi/kendo-forms/internal/schema"
)

// HistoryTurn is one prior exchange replayed to the generator for context.
type HistoryTurn struct {
	Prompt  string
	Message string
}

type GenerationRequest struct {
	Prompt       string
	Mode         string
	ExistingForm schema.Schema
	History      []HistoryTurn
}

type GenerationResult struct {
	FormStructure schema.Schema
	Message       string
}

// FormGenerator produces a complete form structure from a natural-language
// prompt. Implementations talk to an upstream model; ErrUpstream signals the
// upstream failed, ErrInvalidResponse that it answered with something the
// builder cannot use.
type FormGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
}

type disabledGenerator struct{}

// NewDisabledGenerator is used when no generation backend is configured. It
// keeps the rest of the builder usable and reports every assistant turn as an
// upstream failure.
func NewDisabledGenerator() FormGenerator {
	return disabledGenerator{}
}

func (disabledGenerator) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	return nil, ErrUpstream
}
