package prompt

import (
	"testing"
	"time"

	"github.com/lingki1/phone-sub002/src/core"
)

func TestSynthesizeMessagesSubtypes(t *testing.T) {
	ts := time.Date(2024, 4, 1, 19, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		msg  core.Message
		want string
	}{
		{
			"text carries sender and timestamp",
			core.Message{Sender: "Xiaoyu", Timestamp: ts, Type: core.MessageText, Content: "on my way"},
			"Xiaoyu (Timestamp: 2024-04-01 19:30:00): on my way",
		},
		{
			"image collapses to a marker",
			core.Message{Sender: "Xiaoyu", Type: core.MessageImage, Content: "base64junk"},
			"[Xiaoyu sent an image]",
		},
		{
			"voice keeps its transcription",
			core.Message{Sender: "Xiaoyu", Type: core.MessageVoice, Content: "miss you"},
			"[Xiaoyu sent a voice message: \"miss you\"]",
		},
		{
			"sticker keeps its meaning",
			core.Message{Sender: "Xiaoyu", Type: core.MessageSticker, Content: "rolling eyes"},
			"[Xiaoyu sent a sticker meaning \"rolling eyes\"]",
		},
		{
			"red packet send embeds id amount status",
			core.Message{
				Sender: "Wanderer", Type: core.MessageRedPacketSend,
				RedPacket: &core.RedPacket{ID: "rp-7", Amount: 5.2, Status: core.RedPacketPending, Greeting: "treat yourself"},
			},
			"[Wanderer sent a red packet (id: rp-7, amount: 5.20, status: pending), greeting: \"treat yourself\"]",
		},
		{
			"red packet request without greeting",
			core.Message{
				Sender: "Xiaoyu", Type: core.MessageRedPacketRequest,
				RedPacket: &core.RedPacket{ID: "rp-8", Amount: 10, Status: core.RedPacketPending},
			},
			"[Xiaoyu requested a red packet (id: rp-8, amount: 10.00, status: pending)]",
		},
		{
			"red packet with missing payload degrades",
			core.Message{Sender: "Xiaoyu", Type: core.MessageRedPacketSend},
			"[Xiaoyu sent a red packet]",
		},
		{
			"unknown subtype falls back to text",
			core.Message{Sender: "Xiaoyu", Timestamp: ts, Type: "hologram", Content: "??"},
			"Xiaoyu (Timestamp: 2024-04-01 19:30:00): ??",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynthesizeMessages([]core.Message{tt.msg}, 0)
			if len(got) != 1 {
				t.Fatalf("got %d payload messages", len(got))
			}
			if got[0].Content != tt.want {
				t.Errorf("content = %q, want %q", got[0].Content, tt.want)
			}
		})
	}
}

func TestSynthesizeMessagesFlattensRoles(t *testing.T) {
	msgs := []core.Message{
		{Sender: "Wanderer", Type: core.MessageText, Content: "hey"},
		{Sender: "Xiaoyu", Type: core.MessageText, Content: "hi!"},
		{Sender: "Xiaoyu", Type: core.MessageImage},
	}
	for i, pm := range SynthesizeMessages(msgs, 0) {
		if pm.Role != "user" {
			t.Errorf("message %d role = %q, want user", i, pm.Role)
		}
	}
}

func TestSynthesizeMessagesWindow(t *testing.T) {
	msgs := make([]core.Message, 30)
	for i := range msgs {
		msgs[i] = core.Message{Sender: "Xiaoyu", Type: core.MessageText, Content: string(rune('a' + i))}
	}

	got := SynthesizeMessages(msgs, 20)
	if len(got) != 20 {
		t.Fatalf("got %d messages, want 20", len(got))
	}
	if want := string(rune('a' + 10)); got[0].Content[len(got[0].Content)-1:] != want {
		t.Errorf("window starts at %q, want content ending in %q", got[0].Content, want)
	}

	if got := SynthesizeMessages(msgs, 0); len(got) != 30 {
		t.Errorf("max 0 should keep everything, got %d", len(got))
	}
	if got := SynthesizeMessages(msgs[:3], 20); len(got) != 3 {
		t.Errorf("short history should pass through, got %d", len(got))
	}
}
