package core

import "time"

// PresetConfig is a named bundle of model sampling parameters. Presets are
// created elsewhere; this core only reads them.
type PresetConfig struct {
	ID          string `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description,omitempty" toml:"description"`

	// Sampling knobs. Pointer fields distinguish "unset, use the default"
	// from a deliberate zero.
	Temperature      *float64 `json:"temperature,omitempty" toml:"temperature"`
	MaxTokens        *int     `json:"max_tokens,omitempty" toml:"max_tokens"`
	TopP             *float64 `json:"top_p,omitempty" toml:"top_p"`
	TopK             *int     `json:"top_k,omitempty" toml:"top_k"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty" toml:"frequency_penalty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty" toml:"presence_penalty"`

	StopSequences  []string           `json:"stop_sequences,omitempty" toml:"stop_sequences"`
	LogitBias      map[string]float64 `json:"logit_bias,omitempty" toml:"logit_bias"`
	ResponseFormat string             `json:"response_format,omitempty" toml:"response_format"`
	Seed           *int               `json:"seed,omitempty" toml:"seed"`
	User           string             `json:"user,omitempty" toml:"user"`
}

// WorldBookInfo is a reusable block of lore text optionally linked to a chat.
type WorldBookInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
}

// ItemInfo is an aggregated owned item derived from gift transactions.
type ItemInfo struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	ReceivedAt     time.Time `json:"received_at"`
	FromUser       string    `json:"from_user"`
	ShippingMethod string    `json:"shipping_method,omitempty"`
}
