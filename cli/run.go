package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ka2n/mealdb/api"
	"github.com/ka2n/mealdb/log"
	"github.com/ka2n/mealdb/mcp"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	// Version information
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// openURL is replaced in tests
	openURL = browser.OpenURL
)

// app holds the state shared by every subcommand
type app struct {
	debug   bool
	baseURL string

	newClient func(baseURL string) *api.Client
}

func defaultClient(baseURL string) *api.Client {
	c := api.NewClient()
	c.BaseURL = baseURL
	return c
}

// client returns an API client whose diagnostics go to the command's stderr
func (a *app) client(cmd *cobra.Command) *api.Client {
	c := a.newClient(a.baseURL)
	c.Diagnostics = cmd.ErrOrStderr()
	return c
}

// NewRootCmd builds the mealdb command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultClient)
}

func newRootCmd(newClient func(baseURL string) *api.Client) *cobra.Command {
	a := &app{newClient: newClient}

	rootCmd := &cobra.Command{
		Use:           "mealdb",
		Short:         "Browse recipes from TheMealDB",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `mealdb is a CLI tool for looking up recipes on TheMealDB (https://www.themealdb.com).

Examples:
  mealdb random
  mealdb search Arrabiata
  mealdb category Seafood
  mealdb list
  mealdb details 52772
  mealdb filter-ingredient chicken_breast`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(a.debug)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging, including HTTP traffic")
	rootCmd.PersistentFlags().StringVar(&a.baseURL, "base-url", api.DefaultBaseURL, "TheMealDB API base URL")
	_ = rootCmd.PersistentFlags().MarkHidden("base-url")

	rootCmd.AddCommand(
		newRandomCmd(a),
		newSearchCmd(a),
		newCategoryCmd(a),
		newListCmd(a),
		newDetailsCmd(a),
		newFilterIngredientCmd(a),
		newSourceCmd(a),
		newVersionCmd(),
		mcp.Command(func() *api.Client { return a.newClient(a.baseURL) }),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about mealdb",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			commit := Commit
			if commit == "none" && api.VersionCommit != "" {
				commit = api.VersionCommit
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mealdb version %s\n", Version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", Date)
		},
	}
}

// Run executes the main CLI functionality
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// openInBrowser opens the TheMealDB page of a meal in the default browser
func openInBrowser(cmd *cobra.Command, id string) error {
	u := api.MealWebURL(id)
	fmt.Fprintf(cmd.OutOrStdout(), "Opening meal in browser: %s\n", u)
	if err := openURL(u.String()); err != nil {
		return failure.New(BrowserFailed,
			failure.Message("Failed to open the browser"),
			failure.Context{
				"url":   u.String(),
				"error": err.Error(),
			},
		)
	}
	return nil
}
