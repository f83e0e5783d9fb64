package injector

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lingki1/phone-sub002/src/core"
)

func messages(sender string, n int) []core.Message {
	msgs := make([]core.Message, n)
	for i := range msgs {
		msgs[i] = core.Message{
			Sender:    sender,
			Timestamp: time.Date(2024, 4, 1, 10, i, 0, 0, time.UTC),
			Type:      core.MessageText,
			Content:   fmt.Sprintf("message %d", i),
		}
	}
	return msgs
}

func TestMemoryInjectorSingleChatPullsGroupHistory(t *testing.T) {
	group := &core.Chat{
		ID:       "g1",
		Name:     "Dorm 404",
		IsGroup:  true,
		Messages: messages("Xiaoyu", 8),
	}
	pc := &core.PromptContext{
		Chat: &core.Chat{
			ID:       "c1",
			Name:     "Xiaoyu",
			Settings: core.ChatSettings{LinkedGroupChatIDs: []string{"g1"}},
		},
		AllChats:   []*core.Chat{group},
		MyNickname: "Wanderer",
	}

	out, err := NewMemoryInjector(5).Inject(context.Background(), pc)
	if err != nil {
		t.Fatalf("Inject returned error: %v", err)
	}
	if !strings.Contains(out, "# Cross-Context Memory") {
		t.Fatalf("memory heading missing:\n%s", out)
	}
	if !strings.Contains(out, `In the group "Dorm 404"`) {
		t.Errorf("group memory block missing:\n%s", out)
	}
	// Only the last 5 of 8 messages are excerpted.
	if strings.Contains(out, "message 2") {
		t.Error("excerpt includes messages outside the window")
	}
	if !strings.Contains(out, "message 7") {
		t.Error("excerpt missing the most recent message")
	}
}

func TestMemoryInjectorGroupChatPullsMemberHistory(t *testing.T) {
	pc := &core.PromptContext{
		Chat: &core.Chat{
			ID:      "g1",
			Name:    "Dorm 404",
			IsGroup: true,
			Members: []core.GroupMember{
				{Name: "Xiaoyu", SingleChatMemory: messages("Xiaoyu", 3)},
				{Name: "Laoda"}, // no linked memory, contributes nothing
			},
		},
		MyNickname: "Wanderer",
	}

	out, err := NewMemoryInjector(5).Inject(context.Background(), pc)
	if err != nil {
		t.Fatalf("Inject returned error: %v", err)
	}
	if !strings.Contains(out, "Xiaoyu and Wanderer in private") {
		t.Errorf("member memory block missing:\n%s", out)
	}
	if strings.Contains(out, "Laoda and Wanderer") {
		t.Error("member without memory produced a block")
	}
}

func TestMemoryInjectorEmpty(t *testing.T) {
	tests := []*core.PromptContext{
		{Chat: &core.Chat{ID: "c1"}}, // single, nothing linked
		{Chat: &core.Chat{
			ID:       "c1",
			Settings: core.ChatSettings{LinkedGroupChatIDs: []string{"gone"}},
		}}, // linked chat cannot be resolved
		{Chat: &core.Chat{ID: "g1", IsGroup: true, Members: []core.GroupMember{{Name: "A"}}}},
	}
	inj := NewMemoryInjector(5)
	for i, pc := range tests {
		out, err := inj.Inject(context.Background(), pc)
		if err != nil {
			t.Fatalf("case %d: Inject returned error: %v", i, err)
		}
		if out != "" {
			t.Errorf("case %d: Inject = %q, want empty", i, out)
		}
	}
}

func TestExcerptLineFormats(t *testing.T) {
	rp := &core.RedPacket{ID: "rp_1", Amount: 8.8, Status: core.RedPacketPending}
	tests := []struct {
		msg  core.Message
		want string
	}{
		{core.Message{Sender: "A", Type: core.MessageText, Content: "hello"}, "A: hello"},
		{core.Message{Sender: "A", Type: core.MessageImage}, "A sent an image"},
		{core.Message{Sender: "A", Type: core.MessageVoice, Content: "hi"}, `A (voice): "hi"`},
		{core.Message{Sender: "A", Type: core.MessageSticker, Content: "joy"}, "A sent a sticker (joy)"},
		{core.Message{Sender: "A", Type: core.MessageRedPacketSend, RedPacket: rp}, "A sent a red packet of 8.80 (pending)"},
	}
	for _, tt := range tests {
		if got := excerptLine(tt.msg); got != tt.want {
			t.Errorf("excerptLine(%s) = %q, want %q", tt.msg.Type, got, tt.want)
		}
	}
}

func TestMemoryInjectorPerChatWindowOverride(t *testing.T) {
	group := &core.Chat{
		ID:       "g1",
		Name:     "Dorm 404",
		IsGroup:  true,
		Messages: messages("Xiaoyu", 8),
	}
	pc := &core.PromptContext{
		Chat: &core.Chat{
			ID: "c1",
			Settings: core.ChatSettings{
				LinkedGroupChatIDs: []string{"g1"},
				MemoryWindow:       2,
			},
		},
		AllChats: []*core.Chat{group},
	}

	out, err := NewMemoryInjector(5).Inject(context.Background(), pc)
	if err != nil {
		t.Fatalf("Inject returned error: %v", err)
	}
	if strings.Contains(out, "message 5") {
		t.Error("excerpt ignored the chat's own window setting")
	}
	if !strings.Contains(out, "message 6") || !strings.Contains(out, "message 7") {
		t.Errorf("excerpt missing the last two messages:\n%s", out)
	}
}
