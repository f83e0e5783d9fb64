package core

// PayloadMessage is one entry of the rolling message payload sent alongside
// the system prompt.
type PayloadMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PromptBuildResult is the disposable output of one build call.
type PromptBuildResult struct {
	SystemPrompt    string           `json:"system_prompt"`
	MessagesPayload []PayloadMessage `json:"messages_payload"`
	APIParams       map[string]any   `json:"api_params"`
}

// ValidationReport is the advisory output of prompt validation. It is never
// raised as an error.
type ValidationReport struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}
