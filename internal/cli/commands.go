// Package cli implements the roomkit command line interface. It wraps the
// session client in commands for creating sessions, minting and inspecting
// tokens, and checking server compatibility.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput     bool
	configFile     string
	requestTimeout time.Duration
)

var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roomkit [command] [flags]",
	Short: "roomkit - a command line client for media server sessions",
	Long: `roomkit is a command line client for a media server's session API.
It creates or reuses conferencing sessions and mints short-lived access
tokens scoped to them.

Examples:
  # Create a session with default properties
  roomkit session create

  # Create a named session that records automatically
  roomkit session create --custom-id room42 --recording-mode ALWAYS

  # Mint a moderator token for a session
  roomkit token create --custom-id room42 --role MODERATOR

  # Show what a minted token asserts
  roomkit token inspect <token>`,
	PersistentPreRun: preRunHandlePersistents,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Path to configuration file to override default")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().DurationVarP(&requestTimeout, "timeout", "", 30*time.Second, "Deadline for each server call")

	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error

	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, ErrAlreadyHandled) {
			os.Exit(1)
		}
		if jsonOutput {
			kv := map[string]string{
				"error": err.Error(),
			}
			printJSON(kv)
		} else {
			errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// preRunHandlePersistents loads the configuration before command execution.
// The version command works without a config file.
func preRunHandlePersistents(cmd *cobra.Command, args []string) {
	switch cmd.Name() {
	case "roomkit", "help", "version", "inspect":
		return
	}
	if err := LoadConfig(configFile); err != nil {
		errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
