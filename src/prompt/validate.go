package prompt

import (
	"fmt"
	"strings"

	"github.com/lingki1/phone-sub002/src/core"
	"github.com/lingki1/phone-sub002/src/template"
)

// Bounds outside which a prompt is flagged as suspicious. Advisory only.
const (
	minPromptLength = 100
	maxPromptLength = 10000
)

// requiredMarkers are the rule-section headings every template variant
// emits. Their absence usually means a truncated or hand-mangled prompt.
var requiredMarkers = []string{
	template.HeadingOutput,
	template.HeadingSituational,
	template.HeadingAntiBreak,
}

// ValidatePrompt runs a cheap structural sanity check over a built system
// prompt. Findings are advisory: they never block a build and are returned
// as a report, not raised as errors.
func (m *Manager) ValidatePrompt(systemPrompt string) core.ValidationReport {
	var errs []string

	if n := len(systemPrompt); n < minPromptLength {
		errs = append(errs, fmt.Sprintf("prompt is suspiciously short (%d chars, expected at least %d)", n, minPromptLength))
	} else if n > maxPromptLength {
		errs = append(errs, fmt.Sprintf("prompt is suspiciously long (%d chars, expected at most %d)", n, maxPromptLength))
	}

	for _, marker := range requiredMarkers {
		if !strings.Contains(systemPrompt, marker) {
			errs = append(errs, fmt.Sprintf("missing rule section %q", marker))
		}
	}

	return core.ValidationReport{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
