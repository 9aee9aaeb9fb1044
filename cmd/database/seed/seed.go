package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
	"recipe-catalog/internal/utils"
	"recipe-catalog/pkg/user"
)

type (
	ingredientSeed struct {
		key, name   string
		typ         domain.IngredientType
		description string
		slug        string
	}

	lineSeed struct {
		ingredient  string
		quantity    int
		unit        string
		preparation string
	}

	recipeSeed struct {
		name        string
		category    domain.Category
		description string
		lines       []lineSeed
	}

	userSeed struct {
		username string
		password string
		roles    []string
	}
)

var ingredientSeeds = []ingredientSeed{
	{"eggs", "Egg", domain.TypeProtein, "Chicken eggs", "egg"},
	{"chicken", "Chicken", domain.TypeProtein, "Chicken breast", "chicken"},
	{"bacon", "Bacon", domain.TypeProtein, "Smoked bacon", "bacon"},
	{"salmon", "Salmon", domain.TypeProtein, "Fresh salmon fillet", "salmon"},
	{"beef", "Beef", domain.TypeProtein, "Ground beef", "beef"},
	{"tofu", "Tofu", domain.TypeProtein, "Firm tofu", "tofu"},
	{"butter", "Butter", domain.TypeDairy, "Dairy butter", "butter"},
	{"milk", "Milk", domain.TypeDairy, "Whole milk", "milk"},
	{"cheese", "Cheese", domain.TypeDairy, "Grated cheese", "cheese"},
	{"yogurt", "Yogurt", domain.TypeDairy, "Greek yogurt", "yogurt"},
	{"cream", "Cream", domain.TypeDairy, "Heavy cream", "cream"},
	{"garlic", "Garlic", domain.TypeVegetable, "Garlic clove", "garlic"},
	{"onion", "Onion", domain.TypeVegetable, "Yellow onion", "onion"},
	{"tomato", "Tomato", domain.TypeVegetable, "Fresh tomato", "tomato"},
	{"spinach", "Spinach", domain.TypeVegetable, "Fresh spinach leaves", "spinach"},
	{"mushroom", "Mushroom", domain.TypeVegetable, "Button mushrooms", "mushroom"},
	{"bellPepper", "Bell Pepper", domain.TypeVegetable, "Red bell pepper", "bell-pepper"},
	{"carrot", "Carrot", domain.TypeVegetable, "Fresh carrot", "carrot"},
	{"broccoli", "Broccoli", domain.TypeVegetable, "Fresh broccoli", "broccoli"},
	{"lettuce", "Lettuce", domain.TypeVegetable, "Fresh lettuce leaves", "lettuce"},
	{"rice", "Rice", domain.TypeGrain, "White rice", "rice"},
	{"pasta", "Pasta", domain.TypeGrain, "Pasta noodles", "pasta"},
	{"bread", "Bread", domain.TypeGrain, "Sliced bread", "bread"},
	{"oats", "Oats", domain.TypeGrain, "Rolled oats", "oats"},
	{"flour", "Flour", domain.TypeBaking, "All-purpose flour", "flour"},
	{"lemon", "Lemon", domain.TypeFruit, "Fresh lemon", "lemon"},
	{"banana", "Banana", domain.TypeFruit, "Ripe banana", "banana"},
	{"apple", "Apple", domain.TypeFruit, "Fresh apple", "apple"},
	{"strawberry", "Strawberry", domain.TypeFruit, "Fresh strawberries", "strawberry"},
	{"blueberry", "Blueberry", domain.TypeFruit, "Fresh blueberries", "blueberry"},
	{"salt", "Salt", domain.TypeSeasoning, "Table salt", "salt"},
	{"blackPepper", "Black Pepper", domain.TypeSeasoning, "Freshly ground black pepper", "black-pepper"},
	{"basil", "Basil", domain.TypeHerb, "Fresh basil leaves", "basil"},
	{"oregano", "Oregano", domain.TypeHerb, "Dried oregano", "oregano"},
	{"parsley", "Parsley", domain.TypeHerb, "Fresh parsley", "parsley"},
	{"cumin", "Cumin", domain.TypeSeasoning, "Ground cumin", "cumin"},
	{"paprika", "Paprika", domain.TypeSeasoning, "Sweet paprika", "paprika"},
	{"vanilla", "Vanilla", domain.TypeSeasoning, "Vanilla extract", "vanilla"},
	{"oliveOil", "Olive Oil", domain.TypeOil, "Extra virgin olive oil", "olive-oil"},
	{"vegetableOil", "Vegetable Oil", domain.TypeOil, "Vegetable oil", "vegetable-oil"},
	{"sugar", "Sugar", domain.TypeSweetener, "White sugar", "sugar"},
	{"honey", "Honey", domain.TypeSweetener, "Natural honey", "honey"},
	{"chocolate", "Chocolate", domain.TypeSweetener, "Dark chocolate", "chocolate"},
	{"soySauce", "Soy Sauce", domain.TypeCondiment, "Soy sauce", "soy-sauce"},
	{"vinegar", "Vinegar", domain.TypeCondiment, "White vinegar", "vinegar"},
}

var recipeSeeds = []recipeSeed{
	{"Garlic Scrambled Eggs", domain.CategoryBreakfast, "Delicious scrambled eggs with garlic", []lineSeed{
		{"eggs", 2, "eggs", "beaten"},
		{"butter", 10, "g", "melted in the pan"},
		{"garlic", 1, "clove", "finely chopped"},
		{"salt", 1, "pinch", "to taste"},
	}},
	{"Classic Pancakes", domain.CategoryBreakfast, "Fluffy homemade pancakes", []lineSeed{
		{"flour", 200, "g", "sifted"},
		{"milk", 250, "ml", "room temperature"},
		{"eggs", 2, "eggs", "beaten"},
		{"butter", 30, "g", "melted"},
		{"sugar", 2, "tbsp", ""},
	}},
	{"Lemon Rice", domain.CategoryLunch, "Aromatic rice with lemon flavor", []lineSeed{
		{"rice", 150, "g", "cooked"},
		{"oliveOil", 1, "tbsp", "heated in the pan"},
		{"lemon", 1, "½ lemon", "juice + a little zest"},
		{"salt", 1, "pinch", "to taste"},
	}},
	{"Chicken Salad", domain.CategoryLunch, "Fresh and healthy lunch option", []lineSeed{
		{"chicken", 150, "g", "cooked and diced"},
		{"tomato", 1, "piece", "diced"},
		{"onion", 1, "piece", "diced"},
		{"oliveOil", 2, "tbsp", "for dressing"},
		{"lemon", 1, "piece", "juiced"},
	}},
	{"Butter Basil Pasta", domain.CategoryDinner, "Simple and delicious pasta with butter and basil", []lineSeed{
		{"pasta", 200, "g", "cooked al dente"},
		{"butter", 20, "g", "melted"},
		{"basil", 5, "g", "roughly torn"},
		{"blackPepper", 1, "pinch", "freshly ground"},
	}},
	{"Grilled Salmon", domain.CategoryDinner, "Healthy and flavorful fish dish", []lineSeed{
		{"salmon", 200, "g", "fillet"},
		{"lemon", 1, "piece", "juiced"},
		{"oliveOil", 2, "tbsp", "for grilling"},
		{"salt", 1, "pinch", "to taste"},
		{"blackPepper", 1, "pinch", "freshly ground"},
	}},
	{"Chocolate Cake", domain.CategoryDessert, "Rich and moist chocolate cake", []lineSeed{
		{"flour", 200, "g", "sifted"},
		{"sugar", 150, "g", ""},
		{"chocolate", 100, "g", "melted"},
		{"eggs", 3, "eggs", "beaten"},
		{"butter", 100, "g", "melted"},
	}},
	{"Strawberry Cheesecake", domain.CategoryDessert, "Creamy and fruity dessert", []lineSeed{
		{"cheese", 250, "g", "cream cheese"},
		{"strawberry", 200, "g", "fresh"},
		{"sugar", 100, "g", ""},
		{"eggs", 2, "eggs", ""},
		{"cream", 100, "ml", "heavy"},
	}},
	{"Trail Mix", domain.CategorySnack, "Healthy and energizing snack", []lineSeed{
		{"oats", 50, "g", "raw"},
		{"blueberry", 30, "g", "dried"},
		{"chocolate", 30, "g", "chips"},
		{"honey", 1, "tbsp", "for binding"},
	}},
	{"Cheese and Crackers", domain.CategorySnack, "Simple and satisfying snack", []lineSeed{
		{"cheese", 100, "g", "sliced"},
		{"bread", 4, "crackers", "crispy"},
		{"tomato", 1, "piece", "sliced"},
	}},
}

var userSeeds = []userSeed{
	{"A", "A1", []string{domain.RoleAdmin, domain.RoleUser}},
	{"U", "U1", []string{domain.RoleUser}},
}

// Seed fills an empty catalog with starter data in a single transaction.
// It does nothing when any recipe or ingredient already exists.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&entities.Ingredient{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			log.Info("catalog already populated, skipping seed")
			return nil
		}

		ingredients := make(map[string]*entities.Ingredient, len(ingredientSeeds))
		for _, s := range ingredientSeeds {
			ing := &entities.Ingredient{Name: s.name, Type: string(s.typ), Description: s.description, Slug: s.slug}
			if err := tx.Omit(clause.Associations).Create(ing).Error; err != nil {
				return fmt.Errorf("seed ingredient %s: %w", s.name, err)
			}
			ingredients[s.key] = ing
		}

		associations := 0
		for _, s := range recipeSeeds {
			recipe := &entities.Recipe{Name: s.name, Category: string(s.category), Description: s.description}
			if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
				return fmt.Errorf("seed recipe %s: %w", s.name, err)
			}
			for _, line := range s.lines {
				ri := recipe.AddIngredient(ingredients[line.ingredient], line.quantity, line.unit, line.preparation)
				if ri == nil {
					return fmt.Errorf("seed recipe %s: unknown ingredient %q", s.name, line.ingredient)
				}
				if err := tx.Omit(clause.Associations).Create(ri).Error; err != nil {
					return fmt.Errorf("seed recipe %s: %w", s.name, err)
				}
				associations++
			}
		}

		for _, s := range userSeeds {
			var count int64
			if err := tx.Model(&entities.User{}).Where("username = ?", s.username).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			hashed, err := utils.HashPassword(s.password)
			if err != nil {
				return err
			}
			if err := tx.Create(&entities.User{
				Username:     s.username,
				PasswordHash: hashed,
				Roles:        user.JoinRoles(s.roles...),
			}).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", s.username, err)
			}
		}

		log.Info("catalog seeded",
			zap.Int("ingredients", len(ingredients)),
			zap.Int("recipes", len(recipeSeeds)),
			zap.Int("associations", associations),
		)
		return nil
	})
}
