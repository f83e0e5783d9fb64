package template

// ActionInstruction is one entry of the action catalogue advertised to the
// model. Each type gets exactly one canonical example payload; the catalogue
// never enumerates a full parameter schema.
type ActionInstruction struct {
	Type        string
	Description string
	Example     string
	Required    bool
}

// RedPacketRule is one entry of the red-packet protocol block.
type RedPacketRule struct {
	Type        string
	Description string
	Example     string
}

// SingleChatActions is the action vocabulary for 1:1 chats. The speaker is
// unambiguous, so no example carries a name field. Only the text action is
// required; everything else is advertised through its example.
func SingleChatActions() []ActionInstruction {
	return []ActionInstruction{
		{
			Type:        "text",
			Description: "A plain chat message. Your bread and butter; most replies are one or more of these.",
			Example:     `{"type": "text", "content": "Hold on, I just got home."}`,
			Required:    true,
		},
		{
			Type:        "sticker",
			Description: "Send a sticker by describing what it conveys.",
			Example:     `{"type": "sticker", "meaning": "rolling on the floor laughing"}`,
		},
		{
			Type:        "image",
			Description: "Send a picture by describing what it shows. Use when the character would naturally share a photo.",
			Example:     `{"type": "image", "description": "a blurry photo of tonight's ramen"}`,
		},
		{
			Type:        "voice",
			Description: "Send a voice message; content is what the character says out loud.",
			Example:     `{"type": "voice", "content": "I'm heading out now, wait for me at the gate."}`,
		},
		{
			Type:        "pat_user",
			Description: "Give the user an affectionate pat, the way the app's nudge feature works.",
			Example:     `{"type": "pat_user", "suffix": "'s head"}`,
		},
		{
			Type:        "status_update",
			Description: "Refresh your live status card. Emit this whenever your mood, location or outfit changes.",
			Example:     `{"type": "status_update", "is_online": true, "mood": "sleepy", "location": "home", "outfit": "oversized hoodie"}`,
		},
	}
}

// GroupChatActions is the action vocabulary for group chats. Every example
// carries an explicit name field identifying the speaking member. There is
// no status_update action: a group has no single shared status card.
func GroupChatActions() []ActionInstruction {
	return []ActionInstruction{
		{
			Type:        "text",
			Description: "A plain chat message from one member. Always say who is speaking.",
			Example:     `{"type": "text", "name": "Xiaoyu", "content": "Who finished the leftovers?!"}`,
			Required:    true,
		},
		{
			Type:        "sticker",
			Description: "A member sends a sticker described by its meaning.",
			Example:     `{"type": "sticker", "name": "Xiaoyu", "meaning": "smug grin"}`,
		},
		{
			Type:        "image",
			Description: "A member shares a picture described in words.",
			Example:     `{"type": "image", "name": "Xiaoyu", "description": "screenshot of the group's shared playlist"}`,
		},
		{
			Type:        "voice",
			Description: "A member sends a voice message.",
			Example:     `{"type": "voice", "name": "Xiaoyu", "content": "Stop spamming, some of us are working!"}`,
		},
		{
			Type:        "pat_user",
			Description: "A member pats the user.",
			Example:     `{"type": "pat_user", "name": "Xiaoyu", "suffix": "'s shoulder"}`,
		},
	}
}

// SingleChatRedPacketRules is the red-packet protocol for 1:1 chats.
func SingleChatRedPacketRules() []RedPacketRule {
	return []RedPacketRule{
		{
			Type:        "send_red_packet",
			Description: "Send the user money with a short greeting. Use sparingly, on occasions where the character genuinely would.",
			Example:     `{"type": "send_red_packet", "amount": 5.20, "greeting": "Treat yourself to something sweet."}`,
		},
		{
			Type:        "request_red_packet",
			Description: "Ask the user for a red packet. Give a reason in the surrounding messages, not inside the action.",
			Example:     `{"type": "request_red_packet", "message": "I saw a claw machine today and lost all my coins..."}`,
		},
		{
			Type:        "accept_red_packet",
			Description: "Accept a pending red packet. Quote the red packet id from the transcript verbatim.",
			Example:     `{"type": "accept_red_packet", "red_packet_id": "rp_88012"}`,
		},
		{
			Type:        "decline_red_packet",
			Description: "Decline a pending red packet, if accepting would be out of character.",
			Example:     `{"type": "decline_red_packet", "red_packet_id": "rp_88012"}`,
		},
	}
}

// GroupChatRedPacketRules is the red-packet protocol for group chats, with
// the speaking member named in every example.
func GroupChatRedPacketRules() []RedPacketRule {
	return []RedPacketRule{
		{
			Type:        "send_red_packet",
			Description: "A member sends the user money with a short greeting.",
			Example:     `{"type": "send_red_packet", "name": "Xiaoyu", "amount": 8.88, "greeting": "Congrats on the new job!"}`,
		},
		{
			Type:        "request_red_packet",
			Description: "A member asks the user for a red packet.",
			Example:     `{"type": "request_red_packet", "name": "Xiaoyu", "message": "Dinner's on me if someone covers the taxi~"}`,
		},
		{
			Type:        "accept_red_packet",
			Description: "A member accepts a pending red packet, quoting its id verbatim from the transcript.",
			Example:     `{"type": "accept_red_packet", "name": "Xiaoyu", "red_packet_id": "rp_88012"}`,
		},
		{
			Type:        "decline_red_packet",
			Description: "A member declines a pending red packet.",
			Example:     `{"type": "decline_red_packet", "name": "Xiaoyu", "red_packet_id": "rp_88012"}`,
		},
	}
}
