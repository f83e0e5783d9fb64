// Package store persists chats, world books and transactions in a local
// libSQL database. The prompt core only ever reads from it; writes exist
// for the CLI and for seeding.
package store

import (
	"context"

	"github.com/lingki1/phone-sub002/src/core"
)

// WorldBookReader is the narrow read surface the world-book injector needs.
type WorldBookReader interface {
	GetWorldBook(ctx context.Context, id string) (*core.WorldBookInfo, error)
}

// TransactionReader is the narrow read surface the item injector needs.
type TransactionReader interface {
	GetTransactionsByChatID(ctx context.Context, chatID string) ([]core.Transaction, error)
}

// ChatReader loads chat documents for callers assembling a PromptContext.
type ChatReader interface {
	GetChat(ctx context.Context, id string) (*core.Chat, error)
	ListChats(ctx context.Context) ([]*core.Chat, error)
}
