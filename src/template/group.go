package template

import (
	"fmt"
	"strings"

	"github.com/lingki1/phone-sub002/src/core"
)

// GroupChatTemplate frames the model as the controller of every group
// member except the user.
type GroupChatTemplate struct {
	BaseTemplate
}

func (t *GroupChatTemplate) Kind() Kind { return KindGroup }

func (t *GroupChatTemplate) Build(pc *core.PromptContext) string {
	chat := pc.Chat

	var role strings.Builder
	fmt.Fprintf(&role, "# Role\nYou are running the group chat \"%s\". You play every member except %s, each with their own voice and persona.\n",
		chat.Name, pc.MyNickname)

	roster := t.buildRoster(chat)

	identity := renderRules("## Identity Rules", []string{
		fmt.Sprintf("Never produce an action whose name is \"%s\". That is the user; only they speak for themselves.", pc.MyNickname),
		fmt.Sprintf("Never produce an action whose name is \"%s\". The group itself is not a speaker.", chat.Name),
		"Every action's name must match one member of the roster above exactly.",
		"Members talk to each other too, not only to the user. Let side conversations happen.",
	})

	userSection := fmt.Sprintf("## The User\nNickname: %s", pc.MyNickname)
	if pc.MyPersona != "" {
		userSection += "\n" + strings.TrimSpace(pc.MyPersona)
	}

	timeLine := fmt.Sprintf("## Current Time\n%s",
		pc.CurrentTime.Format("Monday, January 2, 2006 15:04"))

	return joinSections(append([]string{
		strings.TrimRight(role.String(), "\n"),
		roster,
		identity,
		userSection,
		renderRules(HeadingOutput, t.BaseRules()),
		renderActions("## Actions", GroupChatActions()),
		renderRedPacketRules(GroupChatRedPacketRules()),
	}, append(t.sharedRuleSections(), timeLine)...)...)
}

// buildRoster enumerates the member list with personas. This is the core
// worldbuilding block of a group prompt.
func (t *GroupChatTemplate) buildRoster(chat *core.Chat) string {
	if len(chat.Members) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Members\n")
	for _, m := range chat.Members {
		persona := strings.TrimSpace(m.Persona)
		if persona == "" {
			persona = "(no persona on file)"
		}
		fmt.Fprintf(&b, "### %s\n%s\n", m.Name, persona)
	}
	return strings.TrimRight(b.String(), "\n")
}
