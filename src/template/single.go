package template

import (
	"fmt"
	"strings"

	"github.com/lingki1/phone-sub002/src/core"
)

// memoryPlaceholder marks where cross-context memory lands. The template
// stays synchronous; the memory injector appends the actual excerpts in a
// later pipeline stage.
const memoryPlaceholder = "(Shared memories from linked group chats, if any, appear in a later section.)"

// SingleChatTemplate frames the model as one named character talking to the
// user in a 1:1 chat.
type SingleChatTemplate struct {
	BaseTemplate
}

func (t *SingleChatTemplate) Kind() Kind { return KindSingle }

func (t *SingleChatTemplate) Build(pc *core.PromptContext) string {
	chat := pc.Chat

	var role strings.Builder
	fmt.Fprintf(&role, "# Role\nYou are %s, chatting with %s on their phone. You are a person with your own life, not an assistant.\n\n",
		chat.CharacterName(), pc.MyNickname)

	persona := chat.Settings.PersonaText
	if persona != "" {
		fmt.Fprintf(&role, "## Your Persona\n%s\n\n", strings.TrimSpace(persona))
	}

	fmt.Fprintf(&role, "## The User\nNickname: %s", pc.MyNickname)
	if pc.MyPersona != "" {
		fmt.Fprintf(&role, "\n%s", strings.TrimSpace(pc.MyPersona))
	}

	timeLine := fmt.Sprintf("## Current Time\n%s\n\n%s",
		pc.CurrentTime.Format("Monday, January 2, 2006 15:04"), memoryPlaceholder)

	return joinSections(append([]string{
		strings.TrimRight(role.String(), "\n"),
		renderRules(HeadingOutput, t.BaseRules()),
		renderActions("## Actions", SingleChatActions()),
		renderRedPacketRules(SingleChatRedPacketRules()),
	}, append(t.sharedRuleSections(), timeLine)...)...)
}
