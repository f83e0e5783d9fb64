package injector

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/lingki1/phone-sub002/src/core"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// A preset with only temperature and max tokens set yields exactly the five
// core knobs, defaults filled, and no optional keys.
func TestAPIParamsDefaultsFilled(t *testing.T) {
	preset := &core.PresetConfig{
		ID:          "t",
		Name:        "Test",
		Temperature: floatPtr(0.5),
		MaxTokens:   intPtr(1000),
	}

	params := APIParams(preset)

	want := map[string]any{
		"temperature":       0.5,
		"max_tokens":        1000,
		"top_p":             0.8,
		"frequency_penalty": 0.0,
		"presence_penalty":  0.0,
	}
	if !reflect.DeepEqual(params, want) {
		t.Errorf("APIParams = %v, want %v", params, want)
	}
	for _, key := range []string{"stop", "logit_bias", "seed", "top_k", "response_format", "user"} {
		if _, ok := params[key]; ok {
			t.Errorf("optional key %q leaked into params", key)
		}
	}
}

func TestAPIParamsOptionalKeys(t *testing.T) {
	preset := &core.PresetConfig{
		ID:             "full",
		Name:           "Full",
		Temperature:    floatPtr(1.0),
		MaxTokens:      intPtr(2048),
		TopP:           floatPtr(0.9),
		TopK:           intPtr(40),
		StopSequences:  []string{"END"},
		LogitBias:      map[string]float64{"50256": -100},
		ResponseFormat: "json_object",
		Seed:           intPtr(7),
		User:           "tester",
	}

	params := APIParams(preset)

	checks := map[string]any{
		"top_k":           40,
		"response_format": "json_object",
		"seed":            7,
		"user":            "tester",
	}
	for key, want := range checks {
		if got, ok := params[key]; !ok || !reflect.DeepEqual(got, want) {
			t.Errorf("params[%q] = %v (present=%v), want %v", key, got, ok, want)
		}
	}
	if _, ok := params["stop"]; !ok {
		t.Error("stop sequences missing from params")
	}
	if _, ok := params["logit_bias"]; !ok {
		t.Error("logit bias missing from params")
	}
}

func TestDefaultAPIParams(t *testing.T) {
	want := map[string]any{
		"temperature":       0.8,
		"max_tokens":        2000,
		"top_p":             0.8,
		"frequency_penalty": 0.0,
		"presence_penalty":  0.0,
	}
	if got := DefaultAPIParams(); !reflect.DeepEqual(got, want) {
		t.Errorf("DefaultAPIParams = %v, want %v", got, want)
	}
}

func TestPresetInjectorNoPreset(t *testing.T) {
	inj := NewPresetInjector()
	out, err := inj.Inject(context.Background(), &core.PromptContext{Chat: &core.Chat{}})
	if err != nil {
		t.Fatalf("Inject returned error: %v", err)
	}
	if out != "" {
		t.Errorf("Inject without preset = %q, want empty", out)
	}
}

func TestPresetInjectorDescribesSampling(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		topP        float64
		wantTemp    string
		wantTopP    string
	}{
		{"precise", 0.2, 0.3, "conservative and precise", "focused"},
		{"balanced", 0.6, 0.8, "balanced", "diverse"},
		{"creative", 1.0, 0.95, "creative", "diverse"},
		{"wild", 1.5, 0.99, "highly random", "diverse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := &core.PromptContext{
				Chat: &core.Chat{},
				CurrentPreset: &core.PresetConfig{
					Name:        tt.name,
					Temperature: floatPtr(tt.temperature),
					TopP:        floatPtr(tt.topP),
				},
			}
			out, err := NewPresetInjector().Inject(context.Background(), pc)
			if err != nil {
				t.Fatalf("Inject returned error: %v", err)
			}
			if !strings.Contains(out, tt.wantTemp) {
				t.Errorf("output missing temperature label %q:\n%s", tt.wantTemp, out)
			}
			if !strings.Contains(out, tt.wantTopP) {
				t.Errorf("output missing top_p label %q:\n%s", tt.wantTopP, out)
			}
		})
	}
}

func TestPresetInjectorNotesConstraints(t *testing.T) {
	pc := &core.PromptContext{
		Chat: &core.Chat{},
		CurrentPreset: &core.PresetConfig{
			Name:           "strict",
			ResponseFormat: "json_object",
			StopSequences:  []string{"<END>"},
		},
	}
	out, err := NewPresetInjector().Inject(context.Background(), pc)
	if err != nil {
		t.Fatalf("Inject returned error: %v", err)
	}
	if !strings.Contains(out, "json_object") {
		t.Error("output missing response format constraint")
	}
	if !strings.Contains(out, "<END>") {
		t.Error("output missing stop sequence constraint")
	}
}
