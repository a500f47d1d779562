package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/AnanduApillAi/kendo-forms/internal/schema"
	"github.com/AnanduApillAi/kendo-forms/pkg/logger"
)

var (
	ErrUpstream        = errors.New("form generator upstream unavailable")
	ErrInvalidResponse = errors.New("form generator returned an unusable response")
)

const generatorSystemPrompt = `You are a form builder assistant specialized in creating forms with Kendo React components. Your task is to create form structures based on user descriptions and provide brief, relevant feedback.

## Available Form Components
- textField: For single-line text input
- email: For email input
- number: For numeric input
- checkbox: For boolean selections
- radio: For single selection from multiple options
- dropdown: For single selection from a dropdown
- textarea: For multi-line text input

## Component Properties
Each component has the following properties:
- id: A unique identifier (use UUID format)
- type: One of the component types listed above
- label: The display label for the field
- componentName: The formal name of the component (Text Field, Email Field, Number Field, Checkbox, Radio Button, Dropdown, Textarea)
- name: The field name (usually lowercase, no spaces)
- className: CSS class (usually "form-control")
- placeholder: Placeholder text for input fields
- required: Boolean indicating if the field is required
- options: For radio and dropdown, an array of {label, value} objects

## Response Format
Your response must include:
1. A valid JSON array of arrays representing the form structure. Each inner array represents a row in the form. Each row contains one or more component objects.
2. A brief message with feedback or suggestion to improve the form

Example response:
{
  "formStructure": [
    [
      {component1},
      {component2}
    ],
    [
      {component3}
    ]
  ],
  "message": "Form created. Consider adding specific names for the fields to improve data handling."
}

Keep your feedback concise and directly related to improving the form structure. Do not provide code examples or explanations unless specifically requested.`

type OpenAIGeneratorConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type openAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(cfg OpenAIGeneratorConfig) (FormGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT3Dot5Turbo0125
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &openAIGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}, nil
}

func (g *openAIGenerator) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: generatorSystemPrompt},
	}

	for _, turn := range req.History {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: turn.Prompt,
		})
		if turn.Message != "" {
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: turn.Message,
			})
		}
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: buildUserPrompt(req),
	})

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		logger.Error(err, "Form generation request failed", map[string]interface{}{
			"mode": req.Mode,
		})
		return nil, ErrUpstream
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrInvalidResponse
	}

	return parseGeneratorResponse(resp.Choices[0].Message.Content)
}

func buildUserPrompt(req GenerationRequest) string {
	var b strings.Builder

	if req.Mode == "update" && req.ExistingForm != nil {
		existing, err := json.Marshal(req.ExistingForm)
		if err == nil {
			fmt.Fprintf(&b, "## Existing Form\n%s\n\n", existing)
		}
	}

	fmt.Fprintf(&b, "## User Request\n%s", req.Prompt)
	return b.String()
}

// parseGeneratorResponse accepts either the documented envelope
// {"formStructure": [...], "message": "..."} or a bare array of rows, which
// some models return despite the instructions.
func parseGeneratorResponse(content string) (*GenerationResult, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var envelope struct {
		FormStructure json.RawMessage `json:"formStructure"`
		Message       string          `json:"message"`
	}
	if err := json.Unmarshal([]byte(content), &envelope); err == nil && envelope.FormStructure != nil {
		structure, err := schema.ParseJSON(envelope.FormStructure)
		if err != nil {
			return nil, ErrInvalidResponse
		}
		return &GenerationResult{FormStructure: structure, Message: envelope.Message}, nil
	}

	structure, err := schema.ParseJSON([]byte(content))
	if err != nil {
		return nil, ErrInvalidResponse
	}
	return &GenerationResult{FormStructure: structure}, nil
}
