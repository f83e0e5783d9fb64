package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lingki1/phone-sub002/src/config"
	"github.com/lingki1/phone-sub002/src/core"
	"github.com/lingki1/phone-sub002/src/injector"
	"github.com/lingki1/phone-sub002/src/logging"
	"github.com/lingki1/phone-sub002/src/preset"
	"github.com/lingki1/phone-sub002/src/prompt"
	"github.com/lingki1/phone-sub002/src/store"
)

var (
	composeChatID   string
	composePreset   string
	composeNickname string
	composePersona  string
	composeStory    bool
	composeExtra    string
	composeInner    bool
	composeJSON     bool
)

// composeCmd builds the full prompt bundle for one chat and prints it.
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Build the prompt bundle for a chat",
	Long: `Load a chat from the local database, assemble its system prompt,
message payload and API parameters, and print them.

Examples:
  phone compose --chat 42
  phone compose --chat 42 --preset creative --json
  phone compose --chat 42 --story`,
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)

	composeCmd.Flags().StringVar(&composeChatID, "chat", "", "Chat id to compose for (required)")
	composeCmd.Flags().StringVar(&composePreset, "preset", "", "Sampling preset name")
	composeCmd.Flags().StringVar(&composeNickname, "nickname", "User", "The user's display name")
	composeCmd.Flags().StringVar(&composePersona, "persona", "", "The user's persona text")
	composeCmd.Flags().BoolVar(&composeStory, "story", false, "Signal narrative mode to the injectors")
	composeCmd.Flags().StringVar(&composeExtra, "extra-html", "", "HTML snippet the model must embed in replies")
	composeCmd.Flags().BoolVar(&composeInner, "inner-state", false, "Add psychological writing guidance")
	composeCmd.Flags().BoolVar(&composeJSON, "json", false, "Print the result as JSON")
	composeCmd.MarkFlagRequired("chat")
}

func runCompose(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(logMode)
	if err != nil {
		return err
	}
	defer logger.Sync()

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	dbPath, err := settings.DatabasePath()
	if err != nil {
		return err
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()

	chat, err := db.GetChat(ctx, composeChatID)
	if err != nil {
		return fmt.Errorf("failed to load chat %s: %w", composeChatID, err)
	}

	allChats, err := db.ListChats(ctx)
	if err != nil {
		return fmt.Errorf("failed to list chats: %w", err)
	}

	pc := &core.PromptContext{
		Chat:        chat,
		CurrentTime: time.Now(),
		MyNickname:  composeNickname,
		MyPersona:   composePersona,
		AllChats:    allChats,
		ChatStatus:  chat.Status,
		StoryMode:   composeStory,
		MaxMemory:   settings.Prompt.MaxMemory,
	}

	if composePreset != "" {
		p, err := preset.LoadPreset(composePreset)
		if err != nil {
			return err
		}
		pc.CurrentPreset = p
	}

	if composeExtra != "" {
		pc.ExtraInfo = &core.ExtraInfoConfig{Enabled: true, Content: composeExtra}
	}

	manager := prompt.NewManager(logger, prompt.DefaultInjectors(db, db, settings.Prompt))
	if composeStory {
		manager.AddInjector(injector.NewStoryModeInjector())
	}
	if composeExtra != "" {
		manager.AddInjector(injector.NewExtraInfoInjector())
	}
	if composeInner {
		manager.AddInjector(injector.NewCharacterStateInjector())
	}

	result, err := manager.BuildPrompt(ctx, pc)
	if err != nil {
		return fmt.Errorf("failed to build prompt: %w", err)
	}

	if report := manager.ValidatePrompt(result.SystemPrompt); !report.IsValid {
		for _, e := range report.Errors {
			logger.Warn("prompt validation finding", zap.String("finding", e))
		}
	}

	if composeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(result)
	return nil
}

func printResult(result *core.PromptBuildResult) {
	fmt.Println("=== System Prompt ===")
	fmt.Println(result.SystemPrompt)
	fmt.Println()
	fmt.Println("=== Messages ===")
	for _, msg := range result.MessagesPayload {
		fmt.Printf("[%s] %s\n", msg.Role, msg.Content)
	}
	fmt.Println()
	fmt.Println("=== API Params ===")
	params, _ := json.MarshalIndent(result.APIParams, "", "  ")
	fmt.Println(string(params))
}
