package domain

type (
	// Nutrition is one record of the external nutrition provider. Fields the
	// provider sends beyond these are ignored.
	Nutrition struct {
		Slug     string   `json:"slug"`
		Calories *int     `json:"calories"`
		Protein  *float64 `json:"protein"`
		Fat      *float64 `json:"fat"`
		Carbs    *float64 `json:"carbs"`
	}

	NutritionListResponse struct {
		Data []Nutrition `json:"data"`
	}
)
