package injector

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingki1/phone-sub002/src/core"
)

// The injectors in this file are not registered by default. They exist to
// keep the pipeline open for extension: an integration adds them through
// Manager.AddInjector without touching orchestration code.

// CharacterStateInjector adds psychological and emotional writing guidance.
type CharacterStateInjector struct{}

func NewCharacterStateInjector() *CharacterStateInjector { return &CharacterStateInjector{} }

func (i *CharacterStateInjector) Name() string  { return "character_state" }
func (i *CharacterStateInjector) Priority() int { return PriorityCharacterState }

func (i *CharacterStateInjector) Inject(_ context.Context, pc *core.PromptContext) (string, error) {
	return `# Inner State
- Carry an emotional throughline: moods build and fade, they do not flip per message.
- Show feelings through behavior (typing speed, sticker choice, what goes unsaid) rather than naming them.
- Let unresolved tension from earlier in the conversation color later replies.
- Small physical details (hunger, tiredness, weather) ground the character between topics.`, nil
}

// ExtraInfoInjector injects a user-specified HTML-snippet output contract.
// The embedding syntax differs between chat mode and narrative mode.
type ExtraInfoInjector struct{}

func NewExtraInfoInjector() *ExtraInfoInjector { return &ExtraInfoInjector{} }

func (i *ExtraInfoInjector) Name() string  { return "extra_info" }
func (i *ExtraInfoInjector) Priority() int { return PriorityExtraInfo }

func (i *ExtraInfoInjector) Inject(_ context.Context, pc *core.PromptContext) (string, error) {
	cfg := pc.ExtraInfo
	if cfg == nil || !cfg.Enabled || strings.TrimSpace(cfg.Content) == "" {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("# Extra Output Requirement\n")
	if cfg.Description != "" {
		b.WriteString(strings.TrimSpace(cfg.Description) + "\n")
	}
	fmt.Fprintf(&b, "Template:\n```html\n%s\n```\n", strings.TrimSpace(cfg.Content))

	if pc.StoryMode {
		b.WriteString("Embed the filled-in snippet at the end of your narration, on its own line.")
	} else {
		b.WriteString(`Embed the filled-in snippet as the content of one extra text action, e.g. {"type": "text", "content": "<filled snippet>"}.`)
	}
	return b.String(), nil
}

// StoryModeInjector adds story-development framing when narrative mode is
// on. It runs early (same priority band as the preset injector) so the
// framing lands right after the template section.
type StoryModeInjector struct{}

func NewStoryModeInjector() *StoryModeInjector { return &StoryModeInjector{} }

func (i *StoryModeInjector) Name() string  { return "story_mode" }
func (i *StoryModeInjector) Priority() int { return PriorityStoryMode }

func (i *StoryModeInjector) Inject(_ context.Context, pc *core.PromptContext) (string, error) {
	if !pc.StoryMode {
		return "", nil
	}
	return `# Story Development
- Treat the conversation as an unfolding story: introduce small events, callbacks and consequences.
- Maintain the relationship network: friends, family and rivals mentioned earlier stay consistent and occasionally resurface.
- Escalate slowly. Days-long arcs beat instant drama.
- Leave hooks: end scenes with something unresolved for the user to pick up.`, nil
}
