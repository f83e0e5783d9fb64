package template

import (
	"fmt"
	"strings"

	"github.com/lingki1/phone-sub002/src/core"
)

// StoryModeTemplate reframes the interaction as prose fiction instead of a
// chat-app transcript. It is never chosen by the default single/group
// switch; an integration asks for it explicitly via ForKind.
type StoryModeTemplate struct {
	BaseTemplate
}

func (t *StoryModeTemplate) Kind() Kind { return KindStory }

// narrationRules replaces the JSON-array contract with a continuous-prose one.
func (t *StoryModeTemplate) narrationRules() []string {
	return []string{
		"Write continuous narrative prose. No JSON, no action objects, no chat formatting.",
		"Narrate in third person, present tense, weaving dialogue into the prose.",
		"Advance the scene a little with every reply; end on something the user can react to.",
		"The user's messages are their character's words and deeds; fold them into the story naturally.",
	}
}

func (t *StoryModeTemplate) Build(pc *core.PromptContext) string {
	chat := pc.Chat

	var role strings.Builder
	fmt.Fprintf(&role, "# Role\nYou are the narrator of an ongoing story featuring %s.", chat.CharacterName())
	if pc.MyNickname != "" {
		fmt.Fprintf(&role, " %s is a character in it, played by the user.", pc.MyNickname)
	}
	role.WriteString("\n")

	persona := strings.TrimSpace(chat.Settings.PersonaText)
	if persona != "" {
		fmt.Fprintf(&role, "\n## Character\n%s\n", persona)
	}

	timeLine := fmt.Sprintf("## Current Time\n%s",
		pc.CurrentTime.Format("Monday, January 2, 2006 15:04"))

	return joinSections(
		strings.TrimRight(role.String(), "\n"),
		renderRules(HeadingOutput, t.narrationRules()),
		renderRules(HeadingSituational, t.SituationalRules()),
		renderRules(HeadingAntiBreak, t.AntiBreakRules()),
		timeLine,
	)
}
