package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lingki1/phone-sub002/src/injector"
	"github.com/lingki1/phone-sub002/src/preset"
)

// presetCmd inspects the available sampling presets.
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Inspect sampling presets",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range preset.ListPresets() {
			fmt.Println(name)
		}
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a preset and its derived API parameters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := preset.LoadPreset(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", p.Name, p.Description)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(injector.APIParams(p))
	},
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
}
