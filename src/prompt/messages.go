package prompt

import (
	"fmt"

	"github.com/lingki1/phone-sub002/src/core"
)

const timestampLayout = "2006-01-02 15:04:05"

// SynthesizeMessages converts the last max entries of a chat history into
// the payload sent alongside the system prompt. Every entry gets the user
// role: the receiving model sees one linear narrated transcript rather than
// a role-typed dialogue. This flattening is deliberate and load-bearing;
// the templates assume it.
func SynthesizeMessages(msgs []core.Message, max int) []core.PayloadMessage {
	if max > 0 && len(msgs) > max {
		msgs = msgs[len(msgs)-max:]
	}

	payload := make([]core.PayloadMessage, 0, len(msgs))
	for _, msg := range msgs {
		payload = append(payload, core.PayloadMessage{
			Role:    "user",
			Content: synthesize(msg),
		})
	}
	return payload
}

// synthesize renders one history entry as transcript text, by subtype.
func synthesize(msg core.Message) string {
	switch msg.Type {
	case core.MessageImage:
		return fmt.Sprintf("[%s sent an image]", msg.Sender)
	case core.MessageVoice:
		return fmt.Sprintf("[%s sent a voice message: \"%s\"]", msg.Sender, msg.Content)
	case core.MessageSticker:
		return fmt.Sprintf("[%s sent a sticker meaning \"%s\"]", msg.Sender, msg.Content)
	case core.MessageRedPacketSend:
		return redPacketSummary(msg, "sent a red packet")
	case core.MessageRedPacketRequest:
		return redPacketSummary(msg, "requested a red packet")
	default:
		return fmt.Sprintf("%s (Timestamp: %s): %s",
			msg.Sender, msg.Timestamp.Format(timestampLayout), msg.Content)
	}
}

// redPacketSummary embeds the packet id, amount and current status so the
// model (or a later injector) can reference the id verbatim.
func redPacketSummary(msg core.Message, verb string) string {
	rp := msg.RedPacket
	if rp == nil {
		return fmt.Sprintf("[%s %s]", msg.Sender, verb)
	}
	summary := fmt.Sprintf("[%s %s (id: %s, amount: %.2f, status: %s)",
		msg.Sender, verb, rp.ID, rp.Amount, rp.Status)
	if rp.Greeting != "" {
		summary += fmt.Sprintf(", greeting: \"%s\"", rp.Greeting)
	}
	return summary + "]"
}
