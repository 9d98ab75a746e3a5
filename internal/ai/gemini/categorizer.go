package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/spigell/resume-sorter/internal/ai"
	"github.com/spigell/resume-sorter/internal/classifier"
	"github.com/spigell/resume-sorter/internal/logger"
	"github.com/spigell/resume-sorter/internal/normalize"
	"github.com/spigell/resume-sorter/internal/utils"
	"go.uber.org/zap"
)

const (
	Provider = "gemini"

	defaultMaxLogLength = 200
	// maxResumeRunes keeps very long documents within a single request.
	maxResumeRunes = 20000
)

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

type reply struct {
	Category   string  `mapstructure:"category"`
	Confidence float64 `mapstructure:"confidence"`
	Reason     string  `mapstructure:"reason"`
}

// Categorizer asks Gemini to pick one label of a closed category vocabulary.
type Categorizer struct {
	generator  contentGenerator
	categories []string
	system     string
	logger     *zap.Logger
	maxLogLen  int
}

// NewCategorizer builds a Categorizer over categories, usually the label encoder
// vocabulary of the local model.
func NewCategorizer(generator contentGenerator, categories []string, maxLogLength int, log *zap.Logger) (*Categorizer, error) {
	if generator == nil {
		return nil, errors.New("gemini generator is required")
	}

	cleaned := make([]string, 0, len(categories))
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return nil, errors.New("at least one category is required")
	}

	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Categorizer{
		generator:  generator,
		categories: cleaned,
		system:     buildPrompt(cleaned),
		logger:     logger.WithCommonFields(log, Provider, generator.Model()),
		maxLogLen:  maxLogLength,
	}, nil
}

// Categories returns the vocabulary offered to the model.
func (c *Categorizer) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Categorize returns the category chosen by Gemini. Empty text and replies outside
// the vocabulary fail with classifier.ErrClassification.
func (c *Categorizer) Categorize(ctx context.Context, resume string) (*ai.Prediction, error) {
	text := normalize.Normalize(resume)
	if text == "" {
		return nil, fmt.Errorf("%w: text is empty after normalization", classifier.ErrClassification)
	}
	if utf8.RuneCountInString(text) > maxResumeRunes {
		text = string([]rune(text)[:maxResumeRunes])
	}

	c.logger.Debug("gemini generate content request",
		zap.Int("message_length", utf8.RuneCountInString(text)),
		zap.String("message_preview", utils.TruncateForLog(text, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, c.system, text)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, c.maxLogLen)),
	)

	parsed, err := parseReply(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", classifier.ErrClassification, err)
	}

	category, ok := c.lookup(parsed.Category)
	if !ok {
		return nil, fmt.Errorf("%w: gemini returned unknown category %q", classifier.ErrClassification, parsed.Category)
	}

	confidence := parsed.Confidence
	if math.IsNaN(confidence) || confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &ai.Prediction{
		Category:   category,
		Confidence: confidence,
		Reason:     strings.TrimSpace(parsed.Reason),
		Provider:   Provider,
	}, nil
}

func (c *Categorizer) lookup(category string) (string, bool) {
	category = strings.TrimSpace(category)
	for _, known := range c.categories {
		if strings.EqualFold(known, category) {
			return known, true
		}
	}
	return "", false
}

func buildPrompt(categories []string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Categories:\n{{CATEGORIES}}\n\nJSON Response:"
	}

	var list strings.Builder
	for i, c := range categories {
		if i > 0 {
			list.WriteByte('\n')
		}
		list.WriteString("- ")
		list.WriteString(c)
	}
	return strings.ReplaceAll(template, "{{CATEGORIES}}", list.String())
}

func parseReply(raw string) (*reply, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var out reply
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(data); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	return &out, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
