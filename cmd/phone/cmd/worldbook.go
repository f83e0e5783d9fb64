package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lingki1/phone-sub002/src/config"
	"github.com/lingki1/phone-sub002/src/core"
	"github.com/lingki1/phone-sub002/src/store"
)

var (
	worldbookCategory    string
	worldbookDescription string
	worldbookContentFile string
)

// worldbookCmd manages the lore blocks injectors link into prompts.
var worldbookCmd = &cobra.Command{
	Use:   "worldbook",
	Short: "Manage world books",
}

var worldbookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List world books",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		books, err := db.ListWorldBooks(cmd.Context())
		if err != nil {
			return err
		}
		if len(books) == 0 {
			fmt.Println("no world books")
			return nil
		}
		for _, book := range books {
			fmt.Printf("%s\t%s (%s)\n", book.ID, book.Name, book.Category)
		}
		return nil
	},
}

var worldbookAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a world book from a content file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(worldbookContentFile)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		book := &core.WorldBookInfo{
			Name:        args[0],
			Category:    worldbookCategory,
			Content:     string(content),
			Description: worldbookDescription,
		}
		if err := db.PutWorldBook(cmd.Context(), book); err != nil {
			return err
		}
		fmt.Printf("added %s (%s)\n", book.Name, book.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(worldbookCmd)
	worldbookCmd.AddCommand(worldbookListCmd)
	worldbookCmd.AddCommand(worldbookAddCmd)

	worldbookAddCmd.Flags().StringVar(&worldbookCategory, "category", "lore", "World book category")
	worldbookAddCmd.Flags().StringVar(&worldbookDescription, "description", "", "Short description")
	worldbookAddCmd.Flags().StringVar(&worldbookContentFile, "content", "", "Path to the content file (required)")
	worldbookAddCmd.MarkFlagRequired("content")
}

// openStore opens the configured chat database.
func openStore() (*store.Store, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	dbPath, err := settings.DatabasePath()
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
