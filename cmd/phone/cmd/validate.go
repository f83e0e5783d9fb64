package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lingki1/phone-sub002/src/logging"
	"github.com/lingki1/phone-sub002/src/prompt"
)

// validateCmd runs the structural sanity check over a prompt.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Sanity-check a system prompt",
	Long: `Run the structural prompt validator over a file, or stdin when no
file is given. Findings are advisory; the exit code is non-zero when
any finding is reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return err
		}

		manager := prompt.NewManager(logging.Nop(), nil)
		report := manager.ValidatePrompt(string(data))
		if report.IsValid {
			fmt.Println("ok")
			return nil
		}
		for _, e := range report.Errors {
			fmt.Println(e)
		}
		os.Exit(1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
