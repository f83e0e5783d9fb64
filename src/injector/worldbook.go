package injector

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingki1/phone-sub002/src/core"
)

// WorldBookInjector resolves the chat's linked world book ids and renders
// the lore blocks. Unresolved ids are dropped silently; an empty result
// emits no heading at all.
type WorldBookInjector struct {
	books WorldBookSource
}

func NewWorldBookInjector(books WorldBookSource) *WorldBookInjector {
	return &WorldBookInjector{books: books}
}

func (i *WorldBookInjector) Name() string  { return "worldbook" }
func (i *WorldBookInjector) Priority() int { return PriorityWorldBook }

func (i *WorldBookInjector) Inject(ctx context.Context, pc *core.PromptContext) (string, error) {
	ids := pc.Chat.Settings.LinkedWorldBookIDs
	if len(ids) == 0 || i.books == nil {
		return "", nil
	}

	var blocks []string
	for _, id := range ids {
		book, err := i.books.GetWorldBook(ctx, id)
		if err != nil || book == nil {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("## %s (%s)\n%s",
			book.Name, book.Category, strings.TrimSpace(book.Content)))
	}

	if len(blocks) == 0 {
		return "", nil
	}

	return "# World Setting\n\n" + strings.Join(blocks, "\n\n"), nil
}
