package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lingki1/phone-sub002/src/config"
)

var (
	cfgFile string
	logMode string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "phone",
	Short: "Prompt composition toolkit for character chats",
	Long: `phone builds the system prompt, message payload and API parameters
for a character chat: one template variant for the opening section
(single, group or story narration), then a priority-ordered chain of
content injectors for presets, world lore, cross-context memory,
owned items and live status.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/phone/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logMode, "log-mode", "dev", "logger mode (dev or prod)")

	viper.BindPFlag("log_mode", rootCmd.PersistentFlags().Lookup("log-mode"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err == nil {
			viper.AddConfigPath(configDir)
		}
		viper.AddConfigPath(filepath.Join(".", ".phone"))
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("PHONE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = config.EnsureDirs()
	_ = viper.ReadInConfig()
}
