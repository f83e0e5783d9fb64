package injector

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingki1/phone-sub002/src/core"
)

// MemoryInjector pulls recent excerpts from related conversations so the
// character keeps relationship continuity across chats. In a single chat it
// recalls how the character behaved in linked group chats; in a group chat
// it recalls each member's recent 1:1 history with the user.
type MemoryInjector struct {
	window int
}

// NewMemoryInjector creates a memory injector with the given excerpt
// window. A non-positive window falls back to 5 messages.
func NewMemoryInjector(window int) *MemoryInjector {
	if window <= 0 {
		window = 5
	}
	return &MemoryInjector{window: window}
}

func (i *MemoryInjector) Name() string  { return "memory" }
func (i *MemoryInjector) Priority() int { return PriorityMemory }

func (i *MemoryInjector) Inject(_ context.Context, pc *core.PromptContext) (string, error) {
	window := i.window
	if pc.Chat.Settings.MemoryWindow > 0 {
		window = pc.Chat.Settings.MemoryWindow
	}

	var blocks []string
	if pc.Chat.IsGroup {
		blocks = i.memberMemories(pc, window)
	} else {
		blocks = i.groupMemories(pc, window)
	}

	if len(blocks) == 0 {
		return "", nil
	}
	return "# Cross-Context Memory\n\n" + strings.Join(blocks, "\n\n"), nil
}

// groupMemories renders how the character recently behaved in each linked
// group chat. Single-chat branch.
func (i *MemoryInjector) groupMemories(pc *core.PromptContext, window int) []string {
	ids := pc.Chat.Settings.LinkedGroupChatIDs
	if len(ids) == 0 {
		return nil
	}

	var blocks []string
	for _, id := range ids {
		group := findChat(pc.AllChats, id)
		if group == nil || len(group.Messages) == 0 {
			continue
		}
		excerpt := lastN(group.Messages, window)
		var b strings.Builder
		fmt.Fprintf(&b, "## In the group \"%s\"\nHow you have been acting there recently:\n", group.Name)
		for _, msg := range excerpt {
			b.WriteString("- " + excerptLine(msg) + "\n")
		}
		blocks = append(blocks, strings.TrimRight(b.String(), "\n"))
	}
	return blocks
}

// memberMemories renders each member's recent 1:1 history with the user.
// Group-chat branch.
func (i *MemoryInjector) memberMemories(pc *core.PromptContext, window int) []string {
	var blocks []string
	for _, member := range pc.Chat.Members {
		if len(member.SingleChatMemory) == 0 {
			continue
		}
		excerpt := lastN(member.SingleChatMemory, window)
		var b strings.Builder
		fmt.Fprintf(&b, "## %s and %s in private\nTheir recent 1:1 exchange:\n", member.Name, pc.MyNickname)
		for _, msg := range excerpt {
			b.WriteString("- " + excerptLine(msg) + "\n")
		}
		blocks = append(blocks, strings.TrimRight(b.String(), "\n"))
	}
	return blocks
}

// excerptLine renders one memory line in compact form.
func excerptLine(msg core.Message) string {
	switch msg.Type {
	case core.MessageImage:
		return fmt.Sprintf("%s sent an image", msg.Sender)
	case core.MessageVoice:
		return fmt.Sprintf("%s (voice): \"%s\"", msg.Sender, msg.Content)
	case core.MessageSticker:
		return fmt.Sprintf("%s sent a sticker (%s)", msg.Sender, msg.Content)
	case core.MessageRedPacketSend, core.MessageRedPacketRequest:
		if msg.RedPacket != nil {
			return fmt.Sprintf("%s sent a red packet of %.2f (%s)", msg.Sender, msg.RedPacket.Amount, msg.RedPacket.Status)
		}
		return fmt.Sprintf("%s sent a red packet", msg.Sender)
	default:
		return fmt.Sprintf("%s: %s", msg.Sender, msg.Content)
	}
}

func lastN(msgs []core.Message, n int) []core.Message {
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}

func findChat(chats []*core.Chat, id string) *core.Chat {
	for _, c := range chats {
		if c != nil && c.ID == id {
			return c
		}
	}
	return nil
}
