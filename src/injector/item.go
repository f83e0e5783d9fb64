package injector

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/lingki1/phone-sub002/src/core"
	"github.com/lingki1/phone-sub002/src/errors"
)

// ItemInjector aggregates gift-purchase transactions into an owned-item
// inventory the character may reference or show off in conversation.
type ItemInjector struct {
	transactions TransactionSource
}

func NewItemInjector(transactions TransactionSource) *ItemInjector {
	return &ItemInjector{transactions: transactions}
}

func (i *ItemInjector) Name() string  { return "item" }
func (i *ItemInjector) Priority() int { return PriorityItem }

func (i *ItemInjector) Inject(ctx context.Context, pc *core.PromptContext) (string, error) {
	if i.transactions == nil {
		return "", nil
	}

	txs, err := i.transactions.GetTransactionsByChatID(ctx, pc.Chat.ID)
	if err != nil {
		return "", errors.WrapWithContext(err, "listing transactions for chat %s", pc.Chat.ID)
	}

	items := AggregateGifts(txs)
	if len(items) == 0 {
		return "", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Owned Items\nThings %s has received as gifts, newest first:\n", pc.Chat.CharacterName())
	for _, item := range items {
		fmt.Fprintf(&b, "- %s ×%d, from %s", item.Name, item.Quantity, item.FromUser)
		if item.ShippingMethod != "" {
			fmt.Fprintf(&b, " via %s", item.ShippingMethod)
		}
		fmt.Fprintf(&b, ", received %s\n", item.ReceivedAt.Format("2006-01-02"))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// AggregateGifts explodes gift-purchase transactions into per-item records,
// sums quantities per item id, and keeps the most recent receipt's sender
// and shipping metadata. Result is sorted newest-first. Transactions whose
// payload is not a gift purchase, or is malformed, contribute nothing.
func AggregateGifts(txs []core.Transaction) []core.ItemInfo {
	byID := make(map[string]*core.ItemInfo)

	for _, tx := range txs {
		payload := gjson.Parse(tx.Message)
		if payload.Get("kind").String() != "gift_purchase" {
			continue
		}
		shipping := payload.Get("shippingMethod").String()

		for _, raw := range payload.Get("items").Array() {
			id := raw.Get("id").String()
			if id == "" {
				continue
			}
			quantity := int(raw.Get("quantity").Int())
			if quantity <= 0 {
				quantity = 1
			}

			existing, ok := byID[id]
			if !ok {
				byID[id] = &core.ItemInfo{
					ID:             id,
					Name:           raw.Get("name").String(),
					Quantity:       quantity,
					ReceivedAt:     tx.CreatedAt,
					FromUser:       tx.FromUser,
					ShippingMethod: shipping,
				}
				continue
			}

			existing.Quantity += quantity
			// Most recent receipt wins the sender and shipping metadata.
			if tx.CreatedAt.After(existing.ReceivedAt) {
				existing.ReceivedAt = tx.CreatedAt
				existing.FromUser = tx.FromUser
				existing.ShippingMethod = shipping
				if name := raw.Get("name").String(); name != "" {
					existing.Name = name
				}
			}
		}
	}

	items := make([]core.ItemInfo, 0, len(byID))
	for _, item := range byID {
		items = append(items, *item)
	}
	sort.Slice(items, func(a, b int) bool {
		return items[a].ReceivedAt.After(items[b].ReceivedAt)
	})
	return items
}
