package mcp

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/mealdb/api"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var validate = validator.New()

const noMealsFound = "no meals found"

type MealSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type MealDetail struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category,omitempty"`
	Area         string           `json:"area,omitempty"`
	Tags         string           `json:"tags,omitempty"`
	Ingredients  []api.Ingredient `json:"ingredients"`
	Instructions string           `json:"instructions,omitempty"`
	Thumbnail    string           `json:"thumbnail,omitempty"`
	Youtube      string           `json:"youtube,omitempty"`
	Source       string           `json:"source,omitempty"`
	URL          string           `json:"url"`
}

func InitTools(client *api.Client) []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(RandomMeal(client)))
	tools = append(tools, newServerTool(SearchMeals(client)))
	tools = append(tools, newServerTool(MealDetails(client)))
	tools = append(tools, newServerTool(MealsByCategory(client)))
	tools = append(tools, newServerTool(MealsByIngredient(client)))
	tools = append(tools, newServerTool(ListCategories(client)))

	return tools
}

func RandomMeal(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"random_meal",
			mcp.WithDescription("Fetch one random meal with ingredients and instructions"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			meal := client.RandomMeal(ctx)
			if meal == nil {
				return mcp.NewToolResultText(noMealsFound), nil
			}
			return jsonResult(newMealDetail(meal))
		}
}

func MealDetails(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"meal_details",
			mcp.WithDescription("Fetch the full recipe of a meal by its TheMealDB ID"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Meal ID (e.g. 52772)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				ID string `json:"id" validate:"required,numeric"`
			}
			var args ToolArguments
			if err := decodeArguments(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			meal := client.MealByID(ctx, args.ID)
			if meal == nil {
				return mcp.NewToolResultText(noMealsFound), nil
			}
			return jsonResult(newMealDetail(meal))
		}
}

func SearchMeals(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"search_meals",
			mcp.WithDescription("Search meals by name"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Full or partial meal name")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Name string `json:"name" validate:"required"`
			}
			var args ToolArguments
			if err := decodeArguments(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return summaryResult(client.SearchMealsByName(ctx, args.Name))
		}
}

func MealsByCategory(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"meals_by_category",
			mcp.WithDescription("List meals in a category (see list_categories)"),
			mcp.WithString("category", mcp.Required(), mcp.Description("Category name (e.g. Seafood)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Category string `json:"category" validate:"required"`
			}
			var args ToolArguments
			if err := decodeArguments(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return summaryResult(client.MealsByCategory(ctx, args.Category))
		}
}

func MealsByIngredient(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"meals_by_ingredient",
			mcp.WithDescription("List meals that use an ingredient"),
			mcp.WithString("ingredient", mcp.Required(), mcp.Description("Ingredient name, spaces as underscores (e.g. chicken_breast)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Ingredient string `json:"ingredient" validate:"required"`
			}
			var args ToolArguments
			if err := decodeArguments(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return summaryResult(client.MealsByIngredient(ctx, args.Ingredient))
		}
}

func ListCategories(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"list_categories",
			mcp.WithDescription("List all meal categories"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return jsonResult(client.ListCategories(ctx))
		}
}

func decodeArguments(ctx context.Context, req mcp.CallToolRequest, out any) error {
	if err := mapstructure.Decode(req.Params.Arguments, out); err != nil {
		return err
	}
	return validate.StructCtx(ctx, out)
}

func newMealDetail(meal api.Meal) MealDetail {
	return MealDetail{
		ID:           meal.ID(),
		Name:         meal.Name(),
		Category:     meal.Category(),
		Area:         meal.Area(),
		Tags:         meal[api.FieldTags],
		Ingredients:  meal.Ingredients(),
		Instructions: meal[api.FieldInstructions],
		Thumbnail:    meal[api.FieldThumbnail],
		Youtube:      meal[api.FieldYoutube],
		Source:       meal[api.FieldSource],
		URL:          api.MealWebURL(meal.ID()).String(),
	}
}

func summaryResult(meals []api.Meal) (*mcp.CallToolResult, error) {
	if len(meals) == 0 {
		return mcp.NewToolResultText(noMealsFound), nil
	}
	return jsonResult(lo.Map(meals, func(m api.Meal, _ int) MealSummary {
		return MealSummary{
			ID:        m.ID(),
			Name:      m.Name(),
			Thumbnail: m[api.FieldThumbnail],
		}
	}))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
