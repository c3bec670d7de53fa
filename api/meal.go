package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// MaxIngredients is the number of ingredient/measure slots a meal record carries
const MaxIngredients = 20

// Known meal record fields
const (
	FieldID           = "idMeal"
	FieldName         = "strMeal"
	FieldCategory     = "strCategory"
	FieldArea         = "strArea"
	FieldInstructions = "strInstructions"
	FieldThumbnail    = "strMealThumb"
	FieldTags         = "strTags"
	FieldYoutube      = "strYoutube"
	FieldSource       = "strSource"
)

// Meal is a recipe record as returned by TheMealDB.
// Null and non-string JSON values are dropped while decoding, so a field is either a string or absent.
type Meal map[string]string

// Ingredient is one used ingredient slot of a meal
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Meal) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*m = nil
		return nil
	}
	meal := make(Meal, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			meal[k] = s
		}
	}
	*m = meal
	return nil
}

// Get returns the value of a field and whether it is present
func (m Meal) Get(field string) (string, bool) {
	v, ok := m[field]
	return v, ok
}

// GetOr returns the value of a field, or fallback when the field is absent
func (m Meal) GetOr(field, fallback string) string {
	if v, ok := m[field]; ok {
		return v
	}
	return fallback
}

func (m Meal) ID() string       { return m[FieldID] }
func (m Meal) Name() string     { return m[FieldName] }
func (m Meal) Category() string { return m[FieldCategory] }
func (m Meal) Area() string     { return m[FieldArea] }

// Ingredients returns every slot whose ingredient is present and non-blank, in slot order.
// Measures are trimmed; an absent measure is the empty string.
func (m Meal) Ingredients() []Ingredient {
	return lo.FilterMap(lo.RangeFrom(1, MaxIngredients), func(slot int, _ int) (Ingredient, bool) {
		name := m[fmt.Sprintf("strIngredient%d", slot)]
		if strings.TrimSpace(name) == "" {
			return Ingredient{}, false
		}
		return Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(m[fmt.Sprintf("strMeasure%d", slot)]),
		}, true
	})
}

// mealList decodes the "meals" key. The service answers null (and on some
// endpoints a bare string) when nothing matches; both decode as an empty list.
type mealList []Meal

func (l *mealList) UnmarshalJSON(data []byte) error {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		*l = nil
		return nil
	}
	var meals []Meal
	if err := json.Unmarshal(data, &meals); err != nil {
		return err
	}
	*l = meals
	return nil
}

type mealsResponse struct {
	Meals mealList `json:"meals"`
}

type categoryEntry struct {
	Name string `json:"strCategory"`
}

type categoriesResponse struct {
	Categories []categoryEntry `json:"categories"`
}
