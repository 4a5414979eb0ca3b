// Package main is the entry point for the termfolio terminal portfolio.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

var (
	// Global flags
	configPath string
	themeFlag  string
	contentDir string
	watch      bool
	plainMode  bool
	initConfig bool
)

// rootCmd runs the interactive portfolio.
var rootCmd = &cobra.Command{
	Use:     "termfolio",
	Short:   "termfolio - an interactive portfolio in your terminal",
	Version: version,
	Long: `termfolio is a portfolio you browse like a shell.

Type slash-commands such as /experience, /projects or /help at the prompt.

KEYBINDINGS:
    Enter       Run the command
    Tab         Complete the selected suggestion
    Up/Down     Move through suggestions or command history
    Esc         Hide suggestions
    PgUp/PgDn   Scroll the transcript
    Ctrl+T      Choose a theme
    Ctrl+N      Next theme
    Ctrl+C      Stop the Matrix rain, or quit

CONFIGURATION:
    Config file: ~/.config/termfolio/config.yaml
    Run 'termfolio --init' to create a commented template.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initConfig {
			return createConfigTemplate()
		}
		return runApp(cmd)
	},
}

// showCmd prints a single command's output.
var showCmd = &cobra.Command{
	Use:   "show <command>",
	Short: "Print the output of one command and exit",
	Example: `  termfolio show projects
  termfolio show /skills`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.config/termfolio/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "Directory with the portfolio collections")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Theme: one-dark, light, ayu or github-dark")

	rootCmd.Flags().BoolVar(&initConfig, "init", false, "Create a template config file")
	rootCmd.Flags().BoolVar(&plainMode, "plain", false, "Use the line-mode shell instead of the full-screen UI")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Reload content when files change")

	rootCmd.AddCommand(showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
