package injector

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lingki1/phone-sub002/src/core"
)

type fakeTransactions struct {
	txs []core.Transaction
	err error
}

func (f *fakeTransactions) GetTransactionsByChatID(_ context.Context, _ string) ([]core.Transaction, error) {
	return f.txs, f.err
}

func giftTx(from string, createdAt time.Time, payload string) core.Transaction {
	return core.Transaction{
		ChatID:    "c1",
		FromUser:  from,
		Status:    "completed",
		Message:   payload,
		CreatedAt: createdAt,
	}
}

// Two gift transactions for the same product id sum their quantities into a
// single entry, with the most recent sender winning.
func TestAggregateGiftsSumsQuantities(t *testing.T) {
	earlier := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := earlier.Add(48 * time.Hour)

	txs := []core.Transaction{
		giftTx("Alice", earlier, `{"kind": "gift_purchase", "items": [{"id": "plush_cat", "name": "Cat Plushie", "quantity": 2}], "shippingMethod": "standard"}`),
		giftTx("Bob", later, `{"kind": "gift_purchase", "items": [{"id": "plush_cat", "name": "Cat Plushie", "quantity": 3}], "shippingMethod": "express"}`),
	}

	items := AggregateGifts(txs)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	item := items[0]
	if item.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", item.Quantity)
	}
	if item.FromUser != "Bob" {
		t.Errorf("sender = %s, want Bob (most recent)", item.FromUser)
	}
	if item.ShippingMethod != "express" {
		t.Errorf("shipping = %s, want express (most recent)", item.ShippingMethod)
	}
}

func TestAggregateGiftsSortsNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		giftTx("A", base, `{"kind": "gift_purchase", "items": [{"id": "old", "name": "Old Gift", "quantity": 1}]}`),
		giftTx("A", base.Add(time.Hour), `{"kind": "gift_purchase", "items": [{"id": "new", "name": "New Gift", "quantity": 1}]}`),
	}

	items := AggregateGifts(txs)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != "new" {
		t.Errorf("first item = %s, want new (newest first)", items[0].ID)
	}
}

func TestAggregateGiftsIgnoresJunk(t *testing.T) {
	now := time.Now()
	txs := []core.Transaction{
		giftTx("A", now, `{"kind": "refund", "amount": 10}`),
		giftTx("A", now, `not json at all`),
		giftTx("A", now, `{"kind": "gift_purchase", "items": [{"name": "no id"}]}`),
		giftTx("A", now, `{"kind": "gift_purchase"}`),
	}
	if items := AggregateGifts(txs); len(items) != 0 {
		t.Errorf("got %d items from junk transactions, want 0", len(items))
	}
}

func TestAggregateGiftsDefaultsQuantity(t *testing.T) {
	txs := []core.Transaction{
		giftTx("A", time.Now(), `{"kind": "gift_purchase", "items": [{"id": "x", "name": "X"}]}`),
	}
	items := AggregateGifts(txs)
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Errorf("missing quantity should default to 1, got %+v", items)
	}
}

func TestItemInjectorRendersInventory(t *testing.T) {
	source := &fakeTransactions{txs: []core.Transaction{
		giftTx("Wanderer", time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
			`{"kind": "gift_purchase", "items": [{"id": "plush_cat", "name": "Cat Plushie", "quantity": 1}], "shippingMethod": "instant"}`),
	}}
	pc := &core.PromptContext{Chat: &core.Chat{ID: "c1", Name: "Xiaoyu"}}

	out, err := NewItemInjector(source).Inject(context.Background(), pc)
	if err != nil {
		t.Fatalf("Inject returned error: %v", err)
	}
	for _, want := range []string{"# Owned Items", "Cat Plushie ×1", "from Wanderer", "via instant"} {
		if !strings.Contains(out, want) {
			t.Errorf("inventory missing %q:\n%s", want, out)
		}
	}
}

func TestItemInjectorEmptyWhenNoGifts(t *testing.T) {
	pc := &core.PromptContext{Chat: &core.Chat{ID: "c1"}}

	out, err := NewItemInjector(&fakeTransactions{}).Inject(context.Background(), pc)
	if err != nil {
		t.Fatalf("Inject returned error: %v", err)
	}
	if out != "" {
		t.Errorf("Inject with no gifts = %q, want empty", out)
	}
}
