package cmd

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"querykeys/pkg/categorizer"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Show the category vocabulary and its stems",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		stemmed := appInstance.Extractor.Vocabulary()

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Category", "Words", "Stems"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, category := range categorizer.Categories {
			table.Append([]string{
				category,
				strings.Join(appInstance.Vocabulary[category], ", "),
				strings.Join(stemmed.Stems(category), ", "),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}
