// Package prompt orchestrates prompt composition: one template variant for
// the opening section, then a priority-ordered, fail-soft chain of
// injectors, then the message payload and API parameters.
package prompt

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/lingki1/phone-sub002/src/config"
	"github.com/lingki1/phone-sub002/src/core"
	"github.com/lingki1/phone-sub002/src/injector"
	"github.com/lingki1/phone-sub002/src/template"
)

// Manager owns the ordered injector list and drives the build algorithm.
// The injector list is expected to be configured at startup; concurrent
// BuildPrompt calls are safe as long as Add/RemoveInjector are not racing
// them.
type Manager struct {
	injectors []registered
	logger    *zap.Logger
	maxMemory int
	nextSeq   int
}

// registered pairs an injector with its registration sequence so priority
// ties keep registration order.
type registered struct {
	injector.Injector
	seq int
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxMemory overrides the default history window (20 messages).
func WithMaxMemory(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxMemory = n
		}
	}
}

// NewManager creates a manager with the given injector set. A nil logger
// falls back to a no-op logger.
func NewManager(logger *zap.Logger, injectors []injector.Injector, opts ...Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		logger:    logger,
		maxMemory: config.DefaultMaxMemory,
	}
	for _, inj := range injectors {
		m.AddInjector(inj)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DefaultInjectors is the standard registration: preset, world book, item,
// memory and status, in that priority order.
func DefaultInjectors(books injector.WorldBookSource, transactions injector.TransactionSource, settings config.PromptSettings) []injector.Injector {
	return []injector.Injector{
		injector.NewPresetInjector(),
		injector.NewWorldBookInjector(books),
		injector.NewItemInjector(transactions),
		injector.NewMemoryInjector(settings.MemoryWindow),
		injector.NewStatusInjector(settings.StatusStaleness()),
	}
}

// AddInjector appends an injector and re-sorts the list by ascending
// priority, ties broken by registration order.
func (m *Manager) AddInjector(inj injector.Injector) {
	m.injectors = append(m.injectors, registered{Injector: inj, seq: m.nextSeq})
	m.nextSeq++
	sort.SliceStable(m.injectors, func(a, b int) bool {
		if m.injectors[a].Priority() != m.injectors[b].Priority() {
			return m.injectors[a].Priority() < m.injectors[b].Priority()
		}
		return m.injectors[a].seq < m.injectors[b].seq
	})
}

// RemoveInjector removes every injector with the given name.
func (m *Manager) RemoveInjector(name string) {
	kept := m.injectors[:0]
	for _, inj := range m.injectors {
		if inj.Name() != name {
			kept = append(kept, inj)
		}
	}
	m.injectors = kept
}

// Injectors returns the current injector names in execution order.
func (m *Manager) Injectors() []string {
	names := make([]string, len(m.injectors))
	for i, inj := range m.injectors {
		names[i] = inj.Name()
	}
	return names
}

// BuildPrompt assembles the system prompt, message payload and API
// parameters for one request. A single injector's failure is logged and
// contributes nothing; only a caller-contract violation returns an error.
func (m *Manager) BuildPrompt(ctx context.Context, pc *core.PromptContext) (*core.PromptBuildResult, error) {
	if err := pc.Validate(); err != nil {
		return nil, err
	}

	tmpl := template.ForChat(pc.Chat.IsGroup)

	var b strings.Builder
	b.WriteString(tmpl.Build(pc))

	for _, inj := range m.injectors {
		addendum, err := inj.Inject(ctx, pc)
		if err != nil {
			m.logger.Warn("injector failed, skipping its contribution",
				zap.String("injector", inj.Name()),
				zap.String("chat", pc.Chat.ID),
				zap.Error(err))
			continue
		}
		if addendum == "" {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(addendum)
	}

	return &core.PromptBuildResult{
		SystemPrompt:    b.String(),
		MessagesPayload: SynthesizeMessages(pc.Chat.Messages, m.historyWindow(pc)),
		APIParams:       m.apiParams(pc),
	}, nil
}

func (m *Manager) historyWindow(pc *core.PromptContext) int {
	if pc.MaxMemory > 0 {
		return pc.MaxMemory
	}
	return m.maxMemory
}

func (m *Manager) apiParams(pc *core.PromptContext) map[string]any {
	if pc.CurrentPreset != nil {
		return injector.APIParams(pc.CurrentPreset)
	}
	return injector.DefaultAPIParams()
}
