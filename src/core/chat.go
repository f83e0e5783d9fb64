package core

import "time"

// MessageType discriminates the history message subtypes the payload
// synthesizer understands.
type MessageType string

const (
	MessageText             MessageType = "text"
	MessageImage            MessageType = "image"
	MessageVoice            MessageType = "voice"
	MessageSticker          MessageType = "sticker"
	MessageRedPacketSend    MessageType = "red_packet_send"
	MessageRedPacketRequest MessageType = "red_packet_request"
)

// RedPacketStatus tracks the lifecycle of a red packet referenced in chat.
type RedPacketStatus string

const (
	RedPacketPending  RedPacketStatus = "pending"
	RedPacketAccepted RedPacketStatus = "accepted"
	RedPacketRejected RedPacketStatus = "rejected"
	RedPacketClaimed  RedPacketStatus = "claimed"
)

// RedPacket carries the payload of a red-packet message. The ID is surfaced
// verbatim in the synthesized transcript so the model can reference it.
type RedPacket struct {
	ID       string          `json:"id"`
	Amount   float64         `json:"amount"`
	Greeting string          `json:"greeting,omitempty"`
	Status   RedPacketStatus `json:"status"`
}

// Message is one entry of a chat's ordered history.
type Message struct {
	ID        string      `json:"id"`
	Sender    string      `json:"sender"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MessageType `json:"type"`

	// Content holds the text body for text messages, the transcript for
	// voice messages and the meaning for stickers.
	Content string `json:"content,omitempty"`

	// RedPacket is set for the red-packet subtypes only.
	RedPacket *RedPacket `json:"red_packet,omitempty"`
}

// GroupMember is one roster entry of a group chat.
type GroupMember struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Persona string `json:"persona"`

	// SingleChatMemory holds recent 1:1 history between this member and
	// the user, if the member is linked to a single chat.
	SingleChatMemory []Message `json:"single_chat_memory,omitempty"`
}

// ChatSettings holds the per-chat configuration injectors read.
type ChatSettings struct {
	PersonaText        string   `json:"persona_text,omitempty"`
	LinkedWorldBookIDs []string `json:"linked_world_book_ids,omitempty"`

	// LinkedGroupChatIDs names group chats whose recent history is pulled
	// into a single chat as behavioral memory.
	LinkedGroupChatIDs []string `json:"linked_group_chat_ids,omitempty"`

	// MemoryWindow overrides the configured excerpt size when positive.
	MemoryWindow int `json:"memory_window,omitempty"`
}

// Chat is the conversation a prompt is composed for.
type Chat struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	IsGroup  bool          `json:"is_group"`
	Members  []GroupMember `json:"members,omitempty"`
	Messages []Message     `json:"messages"`
	Settings ChatSettings  `json:"settings"`

	// Status is the persisted live status card, single chats only.
	Status *ChatStatus `json:"status,omitempty"`
}

// CharacterName returns the display name of the single-chat character.
func (c *Chat) CharacterName() string {
	return c.Name
}

// ChatStatus is the live character state shown in single chats.
type ChatStatus struct {
	IsOnline   bool      `json:"is_online"`
	Mood       string    `json:"mood"`
	Location   string    `json:"location"`
	Outfit     string    `json:"outfit"`
	LastUpdate time.Time `json:"last_update"`
}
