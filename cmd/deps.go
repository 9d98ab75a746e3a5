package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spigell/resume-sorter/internal/ai"
	"github.com/spigell/resume-sorter/internal/ai/gemini"
	"github.com/spigell/resume-sorter/internal/classifier"
	"github.com/spigell/resume-sorter/internal/logger"
	"github.com/spigell/resume-sorter/internal/secrets"
	"github.com/spigell/resume-sorter/internal/sections"

	"go.uber.org/zap"
)

const geminiKeyEnv = "GEMINI_API_KEY"

var errUnsupportedProvider = errors.New("unsupported classifier provider")

// loadAdapter reads the model artifacts once. Any failure here is fatal for the caller.
func loadAdapter(config *Config) (*classifier.Adapter, error) {
	model, err := classifier.LoadModel(config.Model)
	if err != nil {
		return nil, err
	}
	return classifier.New(model)
}

func providerName(config *Config) string {
	if config == nil || config.Classifier == nil {
		return ai.ProviderLocal
	}
	provider := strings.ToLower(strings.TrimSpace(config.Classifier.Provider))
	if provider == "" {
		return ai.ProviderLocal
	}
	return provider
}

func newCategorizer(ctx context.Context, config *Config, adapter *classifier.Adapter, log *zap.Logger) (ai.Categorizer, error) {
	switch provider := providerName(config); provider {
	case ai.ProviderLocal:
		return ai.Local(adapter), nil
	case gemini.Provider:
		return newGeminiCategorizer(ctx, config.Classifier.Gemini, adapter.Categories(), log)
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedProvider, provider)
	}
}

func newGeminiCategorizer(ctx context.Context, cfg *GeminiConfig, categories []string, log *zap.Logger) (ai.Categorizer, error) {
	if cfg == nil {
		cfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(geminiKeySource(cfg))
	if err != nil {
		return nil, fmt.Errorf("%w (set classifier.gemini.api-key-file, classifier.gemini.api-key or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithCommonFields(log, gemini.Provider, cfg.Model).With(
		zap.Int("ai_retry_attempts", cfg.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Model, cfg.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewCategorizer(generator, categories, cfg.MaxLogLength, logger.WithCommonFields(log, gemini.Provider, generator.Model()))
}

// geminiKeySource prefers the key file, then the inline config value, then GEMINI_API_KEY.
func geminiKeySource(cfg *GeminiConfig) secrets.Source {
	return secrets.Source{
		Name:  "gemini api key",
		File:  cfg.APIKeyFile,
		Value: cfg.APIKey,
		Env:   geminiKeyEnv,
	}
}

// headingSet picks the heading labels from the flag first, then from the config.
// Without either the default set is used.
func headingSet(config *Config, fromFlag []string) (*sections.HeadingSet, error) {
	labels := fromFlag
	if len(labels) == 0 && config != nil {
		labels = config.Headings
	}
	if len(labels) == 0 {
		return sections.DefaultHeadings(), nil
	}
	return sections.NewHeadingSet(labels...)
}
