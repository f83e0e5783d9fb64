// Package template generates the opening section of the system prompt.
// Each chat shape has one variant; all variants share the rule catalogues
// of BaseTemplate so behavior stays consistent while vocabulary diverges.
package template

import (
	"github.com/lingki1/phone-sub002/src/core"
	"github.com/lingki1/phone-sub002/src/errors"
)

// Kind is the closed set of template variants.
type Kind int

const (
	KindSingle Kind = iota
	KindGroup
	KindStory
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindGroup:
		return "group"
	case KindStory:
		return "story"
	default:
		return "unknown"
	}
}

// Template produces the opening system-prompt section for one chat shape.
// Build is synchronous and pure: it reads the context and nothing else.
type Template interface {
	Kind() Kind
	Build(pc *core.PromptContext) string
}

// ForChat selects the default variant for a chat. Story mode is not part of
// this switch: it is signaled to injectors via the context and requested
// explicitly via ForKind when an integration wants pure narrative framing.
func ForChat(isGroup bool) Template {
	if isGroup {
		return &GroupChatTemplate{}
	}
	return &SingleChatTemplate{}
}

// ForKind returns the variant for an explicit kind.
func ForKind(k Kind) (Template, error) {
	switch k {
	case KindSingle:
		return &SingleChatTemplate{}, nil
	case KindGroup:
		return &GroupChatTemplate{}, nil
	case KindStory:
		return &StoryModeTemplate{}, nil
	default:
		return nil, errors.ErrUnknownVariant
	}
}
