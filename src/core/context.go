package core

import (
	"time"

	"github.com/lingki1/phone-sub002/src/errors"
)

// PromptContext bundles everything a template or injector needs for one
// build call. It is treated as immutable: templates and injectors read it,
// never write it.
type PromptContext struct {
	Chat        *Chat
	CurrentTime time.Time
	MyNickname  string
	MyPersona   string

	// AllChats is the broader conversation set, used only for
	// cross-context memory lookups. May be nil.
	AllChats []*Chat

	// ChatStatus is the live character state for single chats. May be nil.
	ChatStatus *ChatStatus

	// CurrentPreset is the bound sampling preset, if any.
	CurrentPreset *PresetConfig

	// ExtraInfo configures the optional structured-output contract.
	ExtraInfo *ExtraInfoConfig

	// StoryMode signals narrative framing to injectors. It does not change
	// which template variant is selected.
	StoryMode bool

	// MaxMemory is the history window for the message payload. Zero means
	// the caller did not override the configured default.
	MaxMemory int
}

// Validate reports caller-contract violations. Anything it returns is a
// programmer error, not a data-quality issue.
func (pc *PromptContext) Validate() error {
	if pc == nil {
		return errors.ErrNilContext
	}
	if pc.Chat == nil {
		return errors.ErrChatMissing
	}
	return nil
}

// ExtraInfoConfig describes a user-supplied structured-output requirement,
// typically an HTML snippet the model must embed in its replies.
type ExtraInfoConfig struct {
	Enabled     bool
	Description string
	Content     string
}
