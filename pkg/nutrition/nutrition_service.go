package nutrition

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"recipe-catalog/domain"
)

type (
	// Merger attaches provider nutrition facts to the ingredients of a
	// recipe view. It never fails: provider errors leave the view as it was.
	Merger interface {
		EnrichRecipe(ctx context.Context, recipe *domain.RecipeResponse)
	}

	merger struct {
		provider Provider
		log      *zap.Logger
	}
)

func NewMerger(provider Provider, log *zap.Logger) Merger {
	if log == nil {
		log = zap.NewNop()
	}
	return &merger{provider: provider, log: log.Named("nutrition")}
}

func (m *merger) EnrichRecipe(ctx context.Context, recipe *domain.RecipeResponse) {
	if recipe == nil || m.provider == nil {
		return
	}

	slugs := collectSlugs(recipe)
	if len(slugs) == 0 {
		return
	}

	records, err := m.provider.FetchNutrition(ctx, slugs)
	if err != nil {
		m.log.Warn("nutrition lookup failed",
			zap.Int("recipe_id", recipe.ID),
			zap.Strings("slugs", slugs),
			zap.Error(err),
		)
		return
	}

	lookup := make(map[string]domain.Nutrition, len(records))
	for _, record := range records {
		key := strings.ToLower(record.Slug)
		if _, seen := lookup[key]; !seen {
			lookup[key] = record
		}
	}

	for i := range recipe.Ingredients {
		ing := recipe.Ingredients[i].Ingredient
		if ing == nil {
			continue
		}
		if record, ok := lookup[strings.ToLower(ing.Slug)]; ok {
			n := record
			ing.Nutrition = &n
		}
	}
}

// collectSlugs returns the distinct lower-cased slugs of the recipe's
// ingredients in first-seen order.
func collectSlugs(recipe *domain.RecipeResponse) []string {
	seen := make(map[string]struct{}, len(recipe.Ingredients))
	slugs := make([]string, 0, len(recipe.Ingredients))
	for _, ri := range recipe.Ingredients {
		if ri.Ingredient == nil || ri.Ingredient.Slug == "" {
			continue
		}
		slug := strings.ToLower(ri.Ingredient.Slug)
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}
	return slugs
}
