// Package injector implements the fail-soft content pipeline appended to
// the template's opening section. Each injector owns one concern, is
// stateless across calls, and reads only the context plus external
// read-only stores.
package injector

import (
	"context"

	"github.com/lingki1/phone-sub002/src/core"
)

// Default priorities. Lower runs earlier in the final prompt. Ties are
// broken by registration order.
const (
	PriorityPreset         = 5
	PriorityStoryMode      = 5
	PriorityWorldBook      = 10
	PriorityItem           = 15
	PriorityMemory         = 20
	PriorityCharacterState = 25
	PriorityExtraInfo      = 25
	PriorityStatus         = 30
)

// Injector produces one addendum for the system prompt. An empty string
// means "nothing to contribute"; an error means the same, plus a log line.
// Errors never abort the build.
type Injector interface {
	// Name is the type discriminator used for removal and logging.
	Name() string
	// Priority is the ordering key; ascending priority is earlier output.
	Priority() int
	Inject(ctx context.Context, pc *core.PromptContext) (string, error)
}

// WorldBookSource resolves world book ids. Implemented by the store.
type WorldBookSource interface {
	GetWorldBook(ctx context.Context, id string) (*core.WorldBookInfo, error)
}

// TransactionSource lists the payment records of a chat.
type TransactionSource interface {
	GetTransactionsByChatID(ctx context.Context, chatID string) ([]core.Transaction, error)
}
