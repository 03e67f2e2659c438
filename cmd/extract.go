package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"querykeys/internal/app"
	"querykeys/internal/clix"
	"querykeys/internal/models"
	"querykeys/pkg/categorizer"
)

var (
	extractFile    string
	extractForward bool
	extractJSON    bool
	extractOnly    string
)

type extractOutcome struct {
	Query        string             `json:"query"`
	Status       string             `json:"status"`
	Data         categorizer.Result `json:"data"`
	NodeResponse json.RawMessage    `json:"node_response,omitempty"`
	Message      string             `json:"message,omitempty"`
}

var extractCmd = &cobra.Command{
	Use:   "extract [query...]",
	Short: "Extract category keywords from a query",
	Long: `Runs keyword extraction locally and prints the matched category words.
Provide the query as arguments, or use --file to process one query per line.
With --forward the keywords are also sent to the search service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		queries, err := clix.ParseQueries(cmd.Flags(), args)
		if err != nil {
			return err
		}
		only := clix.ParseCategories(cmd.Flags())
		for _, c := range only {
			if !categorizer.IsCategory(c) {
				return fmt.Errorf("unknown category %q (expected one of %s)", c, strings.Join(categorizer.Categories, ", "))
			}
		}

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		outcomes := make([]extractOutcome, 0, len(queries))
		for _, q := range queries {
			outcome, err := runExtract(cmd, appInstance, q)
			if err != nil {
				return err
			}
			outcome.Data = filterCategories(outcome.Data, only)
			outcomes = append(outcomes, outcome)
		}

		out := cmd.OutOrStdout()
		if extractJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if len(outcomes) == 1 {
				return enc.Encode(outcomes[0])
			}
			return enc.Encode(outcomes)
		}
		renderOutcomes(out, outcomes)
		return nil
	},
}

func runExtract(cmd *cobra.Command, a *app.App, query string) (extractOutcome, error) {
	outcome := extractOutcome{Query: query}

	if !extractForward {
		keywords, err := a.ProcessService.Extract(query)
		outcome.Data = keywords
		if errors.Is(err, models.ErrNoKeywords) {
			outcome.Status = models.StatusError
			outcome.Message = err.Error()
			return outcome, nil
		}
		outcome.Status = models.StatusSuccess
		return outcome, err
	}

	result, err := a.ProcessService.Process(cmd.Context(), query)
	if errors.Is(err, models.ErrNoKeywords) {
		outcome.Data = categorizer.Result{}
		outcome.Status = models.StatusError
		outcome.Message = err.Error()
		return outcome, nil
	}
	if err != nil {
		return outcome, fmt.Errorf("process failed: %w", err)
	}
	outcome.Data = result.Keywords
	outcome.Status = result.Status
	outcome.NodeResponse = result.NodeResponse
	return outcome, nil
}

func filterCategories(r categorizer.Result, only []string) categorizer.Result {
	if len(only) == 0 {
		return r
	}
	filtered := categorizer.Result{}
	for _, c := range only {
		if w, ok := r[c]; ok {
			filtered[c] = w
		}
	}
	return filtered
}

func renderOutcomes(out io.Writer, outcomes []extractOutcome) {
	header := []string{"Query", "Status"}
	for _, c := range categorizer.Categories {
		header = append(header, strings.ToUpper(c[:1])+c[1:])
	}
	if extractForward {
		header = append(header, "Search Response")
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, o := range outcomes {
		status := color.GreenString(o.Status)
		if o.Status != models.StatusSuccess {
			status = color.RedString(o.Status)
		}
		row := []string{o.Query, status}
		for _, c := range categorizer.Categories {
			row = append(row, o.Data[c])
		}
		if extractForward {
			resp := string(o.NodeResponse)
			if resp == "" {
				resp = o.Message
			}
			row = append(row, resp)
		}
		table.Append(row)
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Read queries from a file, one per line")
	extractCmd.Flags().BoolVar(&extractForward, "forward", false, "Also send extracted keywords to the search service")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print results as JSON")
	extractCmd.Flags().StringVar(&extractOnly, "only", "", "Comma-separated categories to show (e.g. 'language,content type')")
}
