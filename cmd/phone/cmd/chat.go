package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lingki1/phone-sub002/src/core"
)

// chatCmd manages the chats the composer builds prompts for.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Manage chats",
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List chats",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		chats, err := db.ListChats(cmd.Context())
		if err != nil {
			return err
		}
		if len(chats) == 0 {
			fmt.Println("no chats")
			return nil
		}
		for _, chat := range chats {
			shape := "single"
			if chat.IsGroup {
				shape = fmt.Sprintf("group, %d members", len(chat.Members))
			}
			fmt.Printf("%s\t%s (%s, %d messages)\n", chat.ID, chat.Name, shape, len(chat.Messages))
		}
		return nil
	},
}

var chatImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a chat document from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var chat core.Chat
		if err := json.Unmarshal(data, &chat); err != nil {
			return fmt.Errorf("failed to parse chat document: %w", err)
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.PutChat(cmd.Context(), &chat); err != nil {
			return err
		}
		fmt.Printf("imported %s (%s)\n", chat.Name, chat.ID)
		return nil
	},
}

// chatSeedCmd creates a small demo dataset so compose has something to
// build against on a fresh install.
var chatSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo chat with history, status and gift transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		now := time.Now()

		chat := &core.Chat{
			Name:    "Xiaoyu",
			IsGroup: false,
			Settings: core.ChatSettings{
				PersonaText: "A sharp-tongued art student who softens once she trusts someone. Loves claw machines and late-night snacks.",
			},
			Messages: []core.Message{
				{Sender: "Xiaoyu", Timestamp: now.Add(-50 * time.Minute), Type: core.MessageText, Content: "I'm telling you, the claw machine at the mall is rigged."},
				{Sender: "User", Timestamp: now.Add(-48 * time.Minute), Type: core.MessageText, Content: "You say that every week."},
				{Sender: "Xiaoyu", Timestamp: now.Add(-45 * time.Minute), Type: core.MessageSticker, Content: "pouting"},
			},
			Status: &core.ChatStatus{
				IsOnline:   true,
				Mood:       "mildly annoyed",
				Location:   "dorm",
				Outfit:     "paint-stained overalls",
				LastUpdate: now.Add(-10 * time.Minute),
			},
		}
		if err := db.PutChat(ctx, chat); err != nil {
			return err
		}

		gift := &core.Transaction{
			ChatID:    chat.ID,
			FromUser:  "User",
			Status:    "completed",
			Message:   `{"kind": "gift_purchase", "items": [{"id": "plush_cat", "name": "Cat Plushie", "quantity": 1}], "shippingMethod": "instant"}`,
			CreatedAt: now.Add(-24 * time.Hour),
		}
		if err := db.AddTransaction(ctx, gift); err != nil {
			return err
		}

		fmt.Printf("seeded chat %s. try: phone compose --chat %s\n", chat.ID, chat.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.AddCommand(chatListCmd)
	chatCmd.AddCommand(chatImportCmd)
	chatCmd.AddCommand(chatSeedCmd)
}
