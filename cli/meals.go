package cli

import (
	"github.com/ka2n/mealdb/api"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

// mealViewFlags are shared by the commands that show a single meal
type mealViewFlags struct {
	format  formatFlag
	browser bool
}

func (f *mealViewFlags) register(cmd *cobra.Command) {
	cmd.Flags().VarP(&f.format, "format", "f", "Output format (text, markdown)")
	cmd.Flags().BoolVarP(&f.browser, "browser", "b", false, "Open the meal page in a browser")
}

// show renders a single meal according to the flags
func (f *mealViewFlags) show(cmd *cobra.Command, meal api.Meal) error {
	if f.browser && meal != nil {
		return openInBrowser(cmd, meal.ID())
	}

	r := newRenderer(cmd.OutOrStdout())
	if f.format.String() == formatMarkdown {
		if err := r.MealDetailsMarkdown(meal); err != nil {
			return failure.New(RenderFailed,
				failure.Message("Failed to render markdown"),
				failure.Context{"error": err.Error()},
			)
		}
		return nil
	}
	r.MealDetails(meal)
	return nil
}

func newRandomCmd(a *app) *cobra.Command {
	var flags mealViewFlags
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Get a random meal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			meal := a.client(cmd).RandomMeal(cmd.Context())
			return flags.show(cmd, meal)
		},
	}
	flags.register(cmd)
	return cmd
}

func newDetailsCmd(a *app) *cobra.Command {
	var flags mealViewFlags
	cmd := &cobra.Command{
		Use:   "details <id>",
		Short: "Get full meal details by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The meal page is addressed by id, no lookup needed
			if flags.browser {
				return openInBrowser(cmd, args[0])
			}
			meal := a.client(cmd).MealByID(cmd.Context(), args[0])
			return flags.show(cmd, meal)
		},
	}
	flags.register(cmd)
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search meals by name",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			meals := a.client(cmd).SearchMealsByName(cmd.Context(), args[0])
			newRenderer(cmd.OutOrStdout()).MealList(meals, "No meals found.")
		},
	}
}

func newCategoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "category <category>",
		Short: "List meals in a category",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			meals := a.client(cmd).MealsByCategory(cmd.Context(), args[0])
			newRenderer(cmd.OutOrStdout()).MealList(meals, "No meals found in this category.")
		},
	}
}

func newFilterIngredientCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "filter-ingredient <ingredient>",
		Short:   "Filter meals by ingredient",
		Example: "  mealdb filter-ingredient beef",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			meals := a.client(cmd).MealsByIngredient(cmd.Context(), args[0])
			newRenderer(cmd.OutOrStdout()).MealList(meals, "No meals found with this ingredient.")
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all meal categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			categories := a.client(cmd).ListCategories(cmd.Context())
			newRenderer(cmd.OutOrStdout()).Categories(categories)
		},
	}
}
