package injector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lingki1/phone-sub002/src/core"
)

// staleInstruction is how live status data stays fresh without a scheduler:
// when the card is old, the model is told to refresh it in its next reply.
const staleInstruction = "Your status card is out of date. Include a status_update action in your next reply reflecting what you are doing right now."

// StatusInjector renders the live character status for single chats and
// demands a refresh when the card has gone stale.
type StatusInjector struct {
	staleness time.Duration
}

// NewStatusInjector creates a status injector with the given staleness
// threshold. A non-positive threshold falls back to 30 minutes.
func NewStatusInjector(staleness time.Duration) *StatusInjector {
	if staleness <= 0 {
		staleness = 30 * time.Minute
	}
	return &StatusInjector{staleness: staleness}
}

func (i *StatusInjector) Name() string  { return "status" }
func (i *StatusInjector) Priority() int { return PriorityStatus }

func (i *StatusInjector) Inject(_ context.Context, pc *core.PromptContext) (string, error) {
	if pc.Chat.IsGroup {
		return "", nil
	}
	status := pc.ChatStatus
	if status == nil {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("# Current Status\n")
	fmt.Fprintf(&b, "- Online: %s\n", yesNo(status.IsOnline))
	if status.Mood != "" {
		fmt.Fprintf(&b, "- Mood: %s\n", status.Mood)
	}
	if status.Location != "" {
		fmt.Fprintf(&b, "- Location: %s\n", status.Location)
	}
	if status.Outfit != "" {
		fmt.Fprintf(&b, "- Outfit: %s\n", status.Outfit)
	}
	fmt.Fprintf(&b, "- Last updated: %s\n", status.LastUpdate.Format("2006-01-02 15:04"))

	if i.needsRefresh(pc, status) {
		b.WriteString("\n" + staleInstruction)
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// needsRefresh is true when the card is older than the staleness threshold
// or the conversation has barely started.
func (i *StatusInjector) needsRefresh(pc *core.PromptContext, status *core.ChatStatus) bool {
	if len(pc.Chat.Messages) <= 1 {
		return true
	}
	return pc.CurrentTime.Sub(status.LastUpdate) > i.staleness
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
