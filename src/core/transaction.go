package core

import "time"

// Transaction is one payment record attached to a chat. Message is an
// opaque JSON payload; gift purchases are tagged {"kind": "gift_purchase"}
// and carry an items array plus a shipping method.
type Transaction struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	FromUser  string    `json:"from_user"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
