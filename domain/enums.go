package domain

import "strings"

type IngredientType string

const (
	TypeProtein   IngredientType = "PROTEIN"
	TypeDairy     IngredientType = "DAIRY"
	TypeVegetable IngredientType = "VEGETABLE"
	TypeFruit     IngredientType = "FRUIT"
	TypeGrain     IngredientType = "GRAIN"
	TypeBaking    IngredientType = "BAKING"
	TypeSeasoning IngredientType = "SEASONING"
	TypeHerb      IngredientType = "HERB"
	TypeOil       IngredientType = "OIL"
	TypeSweetener IngredientType = "SWEETENER"
	TypeCondiment IngredientType = "CONDIMENT"
)

var ingredientTypes = map[string]IngredientType{
	"PROTEIN":   TypeProtein,
	"DAIRY":     TypeDairy,
	"VEGETABLE": TypeVegetable,
	"FRUIT":     TypeFruit,
	"GRAIN":     TypeGrain,
	"BAKING":    TypeBaking,
	"SEASONING": TypeSeasoning,
	"HERB":      TypeHerb,
	"OIL":       TypeOil,
	"SWEETENER": TypeSweetener,
	"CONDIMENT": TypeCondiment,
}

// ParseIngredientType matches value case-insensitively. Unknown values
// return false.
func ParseIngredientType(value string) (IngredientType, bool) {
	t, ok := ingredientTypes[strings.ToUpper(strings.TrimSpace(value))]
	return t, ok
}

type Category string

const (
	CategoryBreakfast Category = "BREAKFAST"
	CategoryLunch     Category = "LUNCH"
	CategoryDinner    Category = "DINNER"
	CategoryDessert   Category = "DESSERT"
	CategorySnack     Category = "SNACK"
)

var categories = map[string]Category{
	"BREAKFAST": CategoryBreakfast,
	"LUNCH":     CategoryLunch,
	"DINNER":    CategoryDinner,
	"DESSERT":   CategoryDessert,
	"SNACK":     CategorySnack,
}

func ParseCategory(value string) (Category, bool) {
	c, ok := categories[strings.ToUpper(strings.TrimSpace(value))]
	return c, ok
}
