package injector

import (
	"context"
	"strings"
	"testing"

	"github.com/lingki1/phone-sub002/src/core"
	"github.com/lingki1/phone-sub002/src/errors"
)

type fakeBooks struct {
	books map[string]*core.WorldBookInfo
}

func (f *fakeBooks) GetWorldBook(_ context.Context, id string) (*core.WorldBookInfo, error) {
	if book, ok := f.books[id]; ok {
		return book, nil
	}
	return nil, errors.ErrWorldBookNotFound
}

func worldBookContext(ids ...string) *core.PromptContext {
	return &core.PromptContext{
		Chat: &core.Chat{
			ID:       "c1",
			Settings: core.ChatSettings{LinkedWorldBookIDs: ids},
		},
	}
}

func TestWorldBookInjectorRendersBlocks(t *testing.T) {
	source := &fakeBooks{books: map[string]*core.WorldBookInfo{
		"w1": {ID: "w1", Name: "The Academy", Category: "setting", Content: "A cliffside art school."},
		"w2": {ID: "w2", Name: "House Rules", Category: "customs", Content: "Nobody mentions the third floor."},
	}}

	out, err := NewWorldBookInjector(source).Inject(context.Background(), worldBookContext("w1", "w2"))
	if err != nil {
		t.Fatalf("Inject returned error: %v", err)
	}
	for _, want := range []string{
		"# World Setting",
		"## The Academy (setting)",
		"A cliffside art school.",
		"## House Rules (customs)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("world setting missing %q:\n%s", want, out)
		}
	}
}

// Unresolved ids are dropped silently; the resolved ones still render.
func TestWorldBookInjectorDropsUnresolved(t *testing.T) {
	source := &fakeBooks{books: map[string]*core.WorldBookInfo{
		"w1": {ID: "w1", Name: "The Academy", Category: "setting", Content: "A cliffside art school."},
	}}

	out, err := NewWorldBookInjector(source).Inject(context.Background(), worldBookContext("missing", "w1"))
	if err != nil {
		t.Fatalf("Inject returned error: %v", err)
	}
	if !strings.Contains(out, "The Academy") {
		t.Error("resolved book missing from output")
	}
	if strings.Contains(out, "missing") {
		t.Error("unresolved id leaked into output")
	}
}

// No linked books means no heading at all.
func TestWorldBookInjectorEmpty(t *testing.T) {
	source := &fakeBooks{}

	for _, pc := range []*core.PromptContext{
		worldBookContext(),
		worldBookContext("nope"),
	} {
		out, err := NewWorldBookInjector(source).Inject(context.Background(), pc)
		if err != nil {
			t.Fatalf("Inject returned error: %v", err)
		}
		if out != "" {
			t.Errorf("Inject = %q, want empty", out)
		}
	}
}
