package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/shiksha/internal/catalog"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported languages",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range catalog.AllLanguages() {
			marker := " "
			if l.Code == catalog.DefaultLanguage {
				marker = "*"
			}
			fmt.Printf("%s %-6s %s (%s)\n", marker, l.Code, l.Name, l.EnglishName)
		}
	},
}
