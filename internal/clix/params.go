package clix

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"querykeys/internal/util"
)

// ParseQueries returns the queries to process: one per line of --file when
// given, otherwise the positional args joined into a single query.
func ParseQueries(flags *pflag.FlagSet, args []string) ([]string, error) {
	path, _ := flags.GetString("file")
	if path != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("pass either a query or --file, not both")
		}
		queries, err := util.ReadLines(path)
		if err != nil {
			return nil, err
		}
		if len(queries) == 0 {
			return nil, fmt.Errorf("no queries found in %s", path)
		}
		return queries, nil
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return nil, fmt.Errorf("a query is required (as arguments or via --file)")
	}
	return []string{query}, nil
}

// ParseCategories reads the comma-separated --only flag, trimming blanks.
func ParseCategories(flags *pflag.FlagSet) []string {
	raw, _ := flags.GetString("only")
	var categories []string
	if raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(c); trimmed != "" {
				categories = append(categories, trimmed)
			}
		}
	}
	return categories
}
