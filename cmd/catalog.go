package cmd

import (
	"fmt"

	"github.com/gnolang/refit/formatter"
	"github.com/gnolang/refit/internal/catalog"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rules the engine knows",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(formatter.FormatRules(catalog.Default().Rules()))
	},
}

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the rule sets the engine knows",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(formatter.FormatSets(catalog.Default().Sets()))
	},
}
