package injector

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingki1/phone-sub002/src/core"
)

// PresetInjector renders a human-readable description of the bound preset's
// sampling behavior. It is also the single source of truth for translating
// a preset into transport-ready API parameters.
type PresetInjector struct{}

func NewPresetInjector() *PresetInjector { return &PresetInjector{} }

func (i *PresetInjector) Name() string  { return "preset" }
func (i *PresetInjector) Priority() int { return PriorityPreset }

func (i *PresetInjector) Inject(_ context.Context, pc *core.PromptContext) (string, error) {
	preset := pc.CurrentPreset
	if preset == nil {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("# Behavior Tuning\n")
	fmt.Fprintf(&b, "Preset \"%s\" is active.", preset.Name)
	if preset.Description != "" {
		fmt.Fprintf(&b, " %s", strings.TrimSpace(preset.Description))
	}
	b.WriteString("\n")

	temp := orDefault(preset.Temperature, defaultTemperature)
	fmt.Fprintf(&b, "- Response style: %s (temperature %.2f)\n", temperatureLabel(temp), temp)

	topP := orDefault(preset.TopP, defaultTopP)
	fmt.Fprintf(&b, "- Word choice: %s (top_p %.2f)\n", topPLabel(topP), topP)

	if preset.ResponseFormat != "" {
		fmt.Fprintf(&b, "- Responses must honor the %s response format.\n", preset.ResponseFormat)
	}
	if len(preset.StopSequences) > 0 {
		fmt.Fprintf(&b, "- Generation stops at: %s\n", strings.Join(preset.StopSequences, ", "))
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// Fixed default bundle used when no preset is bound.
const (
	defaultTemperature      = 0.8
	defaultMaxTokens        = 2000
	defaultTopP             = 0.8
	defaultFrequencyPenalty = 0.0
	defaultPresencePenalty  = 0.0
)

// APIParams maps a preset onto request parameters. The five core knobs are
// always present with defaults filled; optional keys appear only when the
// preset defines them, so no null values leak into the request.
func APIParams(preset *core.PresetConfig) map[string]any {
	params := map[string]any{
		"temperature":       orDefault(preset.Temperature, defaultTemperature),
		"max_tokens":        orDefault(preset.MaxTokens, defaultMaxTokens),
		"top_p":             orDefault(preset.TopP, defaultTopP),
		"frequency_penalty": orDefault(preset.FrequencyPenalty, defaultFrequencyPenalty),
		"presence_penalty":  orDefault(preset.PresencePenalty, defaultPresencePenalty),
	}
	if preset.TopK != nil {
		params["top_k"] = *preset.TopK
	}
	if len(preset.StopSequences) > 0 {
		params["stop"] = preset.StopSequences
	}
	if len(preset.LogitBias) > 0 {
		params["logit_bias"] = preset.LogitBias
	}
	if preset.ResponseFormat != "" {
		params["response_format"] = preset.ResponseFormat
	}
	if preset.Seed != nil {
		params["seed"] = *preset.Seed
	}
	if preset.User != "" {
		params["user"] = preset.User
	}
	return params
}

// DefaultAPIParams is the fixed bundle used when no preset is bound.
func DefaultAPIParams() map[string]any {
	return map[string]any{
		"temperature":       defaultTemperature,
		"max_tokens":        defaultMaxTokens,
		"top_p":             defaultTopP,
		"frequency_penalty": defaultFrequencyPenalty,
		"presence_penalty":  defaultPresencePenalty,
	}
}

func temperatureLabel(t float64) string {
	switch {
	case t < 0.4:
		return "conservative and precise"
	case t < 0.8:
		return "balanced"
	case t < 1.2:
		return "creative"
	default:
		return "highly random"
	}
}

func topPLabel(p float64) string {
	if p < 0.5 {
		return "focused"
	}
	return "diverse"
}

func orDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
