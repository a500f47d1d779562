package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/AnanduApillAi/kendo-forms/internal/builder"
	"github.com/AnanduApillAi/kendo-forms/internal/schema"
	"github.com/AnanduApillAi/kendo-forms/pkg/logger"
	"github.com/AnanduApillAi/kendo-forms/pkg/validator"
)

var (
	ErrEmptyPrompt   = errors.New("prompt is required")
	ErrPromptTooLong = errors.New("prompt exceeds the maximum length")
)

var (
	assistantMetricsOnce sync.Once
	generationsTotal     *prometheus.CounterVec
	generationDuration   *prometheus.HistogramVec
)

func initAssistantMetrics() {
	assistantMetricsOnce.Do(func() {
		generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kendo_forms",
			Subsystem: "assistant",
			Name:      "generations_total",
			Help:      "Total form generation attempts",
		}, []string{"mode", "outcome"})

		generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "kendo_forms",
			Subsystem: "assistant",
			Name:      "generation_duration_seconds",
			Help:      "Duration of form generation attempts",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"})
	})
}

type AssistantService struct {
	generator      FormGenerator
	timeout        time.Duration
	historyWindow  int
	maxPromptChars int
}

func NewAssistantService(generator FormGenerator, timeout time.Duration, historyWindow, maxPromptChars int) *AssistantService {
	initAssistantMetrics()

	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if historyWindow <= 0 {
		historyWindow = 5
	}

	return &AssistantService{
		generator:      generator,
		timeout:        timeout,
		historyWindow:  historyWindow,
		maxPromptChars: maxPromptChars,
	}
}

// SubmitResult is the outcome of one assistant turn.
type SubmitResult struct {
	Entry  builder.ChatEntry `json:"entry"`
	Schema schema.Schema     `json:"formState"`
}

// Submit runs one assistant turn against a session: it gates on the session's
// in-flight flag, calls the generator with a bounded slice of prior turns,
// and records the outcome in the ledger. Only a successful turn replaces the
// live schema, and it does so together with its ledger entry so no failure
// path leaves the schema half-updated.
func (s *AssistantService) Submit(ctx context.Context, session *builder.Session, prompt, mode string) (*SubmitResult, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if s.maxPromptChars > 0 && len(prompt) > s.maxPromptChars {
		return nil, ErrPromptTooLong
	}
	if mode != "update" {
		mode = "create"
	}

	if err := session.BeginGeneration(); err != nil {
		return nil, err
	}
	defer session.EndGeneration()

	req := GenerationRequest{
		Prompt:  prompt,
		Mode:    mode,
		History: historyTurns(session.HistoryTail(s.historyWindow)),
	}
	if mode == "update" {
		req.ExistingForm = session.Schema()
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.generator.Generate(genCtx, req)
	generationDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(genCtx.Err(), context.DeadlineExceeded) {
			err = ErrUpstream
		}
		outcome := "upstream_error"
		if errors.Is(err, ErrInvalidResponse) {
			outcome = "invalid_response"
		}
		generationsTotal.WithLabelValues(mode, outcome).Inc()

		entry := session.AppendEntry(prompt, false, nil, "")
		return &SubmitResult{Entry: entry, Schema: session.Schema()}, err
	}

	message := validator.SanitizeString(result.Message)

	// An empty structure is a conversational turn, not a failure: the
	// assistant answered without proposing changes, so the current schema
	// is recorded as this turn's state.
	if len(result.FormStructure) == 0 {
		generationsTotal.WithLabelValues(mode, "no_change").Inc()
		current := session.Schema()
		entry := session.AppendEntry(prompt, true, current, message)
		return &SubmitResult{Entry: entry, Schema: current}, nil
	}

	normalized, err := schema.Normalize(result.FormStructure)
	if err != nil {
		generationsTotal.WithLabelValues(mode, "invalid_response").Inc()
		logger.Warn("Generated form failed validation", map[string]interface{}{
			"mode":  mode,
			"error": err.Error(),
		})
		entry := session.AppendEntry(prompt, false, nil, "")
		return &SubmitResult{Entry: entry, Schema: session.Schema()}, ErrInvalidResponse
	}

	generationsTotal.WithLabelValues(mode, "success").Inc()
	session.ReplaceSchema(normalized)
	entry := session.AppendEntry(prompt, true, normalized, message)
	return &SubmitResult{Entry: entry, Schema: session.Schema()}, nil
}

// historyTurns converts ledger entries into generator context. Prompts of
// every attempt are replayed; assistant messages only exist for successful
// turns.
func historyTurns(entries []builder.ChatEntry) []HistoryTurn {
	turns := make([]HistoryTurn, 0, len(entries))
	for _, e := range entries {
		turn := HistoryTurn{Prompt: e.Prompt}
		if e.Result {
			turn.Message = e.Message
		}
		turns = append(turns, turn)
	}
	return turns
}

// HistoryEntry is a ledger entry annotated with whether its snapshot matches
// the live schema.
type HistoryEntry struct {
	builder.ChatEntry
	IsCurrent bool `json:"isCurrent"`
}

// History returns the session's ledger with currency annotations.
func (s *AssistantService) History(session *builder.Session) []HistoryEntry {
	entries := session.History()
	out := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntry{ChatEntry: e, IsCurrent: session.IsCurrent(e)}
	}
	return out
}

// Restore replaces the session's live schema with the snapshot of an earlier
// successful turn.
func (s *AssistantService) Restore(session *builder.Session, entryID string) (schema.Schema, error) {
	return session.RestoreEntry(entryID)
}
