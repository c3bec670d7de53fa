package api

import (
	"context"
	"net/url"

	"github.com/samber/lo"
)

// Endpoints of the JSON API, relative to the base URL
const (
	EndpointRandom     = "random.php"
	EndpointSearch     = "search.php"
	EndpointLookup     = "lookup.php"
	EndpointFilter     = "filter.php"
	EndpointCategories = "categories.php"
)

// RandomMeal returns one random meal, or nil
func (c *Client) RandomMeal(ctx context.Context) Meal {
	var resp mealsResponse
	if err := c.get(ctx, EndpointRandom, nil, &resp); err != nil {
		c.degrade("random", err)
		return nil
	}
	if len(resp.Meals) == 0 {
		return nil
	}
	return resp.Meals[0]
}

// SearchMealsByName returns meals whose name matches name, or nil when none match
func (c *Client) SearchMealsByName(ctx context.Context, name string) []Meal {
	return c.listMeals(ctx, "search", EndpointSearch, url.Values{"s": {name}})
}

// MealByID returns the full record of a meal, or nil.
// An unknown id is reported on Diagnostics.
func (c *Client) MealByID(ctx context.Context, id string) Meal {
	var resp mealsResponse
	if err := c.get(ctx, EndpointLookup, url.Values{"i": {id}}, &resp); err != nil {
		c.degrade("lookup", err)
		return nil
	}
	if len(resp.Meals) == 0 {
		c.diagnose("No meal found with ID %s.", id)
		return nil
	}
	return resp.Meals[0]
}

// MealsByCategory returns the meals in category, or nil.
// Filter results only carry id, name and thumbnail.
func (c *Client) MealsByCategory(ctx context.Context, category string) []Meal {
	return c.listMeals(ctx, "category", EndpointFilter, url.Values{"c": {category}})
}

// MealsByIngredient returns the meals using ingredient, or nil.
// Filter results only carry id, name and thumbnail.
func (c *Client) MealsByIngredient(ctx context.Context, ingredient string) []Meal {
	return c.listMeals(ctx, "ingredient", EndpointFilter, url.Values{"i": {ingredient}})
}

// ListCategories returns category names in the order the service lists them.
// It never returns nil; failures yield an empty slice.
func (c *Client) ListCategories(ctx context.Context) []string {
	var resp categoriesResponse
	if err := c.get(ctx, EndpointCategories, nil, &resp); err != nil {
		c.degrade("categories", err)
		return []string{}
	}
	return lo.Map(resp.Categories, func(cat categoryEntry, _ int) string {
		return cat.Name
	})
}

func (c *Client) listMeals(ctx context.Context, op, endpoint string, params url.Values) []Meal {
	var resp mealsResponse
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		c.degrade(op, err)
		return nil
	}
	if len(resp.Meals) == 0 {
		return nil
	}
	return resp.Meals
}
