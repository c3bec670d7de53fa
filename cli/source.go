package cli

import (
	"fmt"
	"io"

	"github.com/ka2n/mealdb/api"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

func newSourceCmd(a *app) *cobra.Command {
	var noPager bool
	cmd := &cobra.Command{
		Use:   "source <id>",
		Short: "Show the original recipe page of a meal",
		Long: `Fetch the page a meal was published on and display it as markdown.
The page is shown in a pager when the output is a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.client(cmd)

			meal := client.MealByID(cmd.Context(), args[0])
			if meal == nil {
				return failure.New(MealNotFound,
					failure.Message("Could not retrieve meal details"),
					failure.Context{"id": args[0]},
				)
			}

			page, err := client.FetchSourcePage(cmd.Context(), meal)
			if err != nil {
				return failure.Wrap(err)
			}

			out := cmd.OutOrStdout()
			tty := isTerminal(out)
			doc := fmt.Sprintf("# %s\n\nSource: <%s>\n\n%s", meal.GetOr(api.FieldName, "Unknown Meal Name"), page.URL, page.Markdown)
			rendered, err := renderMarkdown(doc, tty)
			if err != nil {
				return failure.New(RenderFailed,
					failure.Message("Failed to render markdown"),
					failure.Context{"error": err.Error()},
				)
			}

			if tty && !noPager {
				if err := runPager(meal.Name(), rendered); err != nil {
					return failure.Wrap(err)
				}
				return nil
			}
			_, err = io.WriteString(out, rendered)
			return err
		},
	}
	cmd.Flags().BoolVar(&noPager, "no-pager", false, "Print the page instead of opening the pager")
	return cmd
}
