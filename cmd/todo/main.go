// Package main implements the todo CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wasif-mahmood1/Todo-app/tasklist"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Operation failures were already reported through the
		// notifier; everything else gets printed here.
		if !tasklist.IsNotified(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Todo - a task list backed by a records store and an upload server",

	SilenceErrors: true,
	SilenceUsage:  true,
}

var rootVerbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}
