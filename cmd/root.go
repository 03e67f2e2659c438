package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"querykeys/internal/app"
	"querykeys/internal/config"
	"querykeys/pkg/categorizer"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "querykeys",
	Short: "Keyword extraction front end for a search service",
	Long: `querykeys pulls title, language and content-type keywords out of free-text
search queries by stem matching against a fixed vocabulary, and forwards them
to a downstream search service.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd == cmd.Root() {
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store the app instance in the command's context
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(context.WithValue(ctx, appKey, appInstance))
		return nil
	},
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadConfigFile(configPath)
	}
	return config.LoadConfig()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext returns the App stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	if ctx == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a config file (default: ./config.yaml)")

	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the vocabulary and search service connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Checking vocabulary...")
		for _, category := range categorizer.Categories {
			for _, word := range appInstance.Vocabulary[category] {
				got := appInstance.Extractor.Extract(word)
				if got[category] == "" {
					return fmt.Errorf("vocabulary word %q does not match its own category %q", word, category)
				}
			}
		}
		fmt.Fprintf(out, "  %s\n", color.GreenString("OK"))

		fmt.Fprintf(out, "Checking search service at %s...\n", appInstance.Downstream.URL())
		if err := appInstance.Downstream.Ping(ctx); err != nil {
			fmt.Fprintf(out, "  %s\n", color.RedString("UNREACHABLE"))
			return fmt.Errorf("search service ping failed: %w", err)
		}
		fmt.Fprintf(out, "  %s\n", color.GreenString("OK"))
		return nil
	},
}
