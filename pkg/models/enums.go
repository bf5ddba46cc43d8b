package models

// Difficulty is the closed set of recipe difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every permitted difficulty value.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is a member of the difficulty domain.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// CuisineType is the closed set of supported cuisines.
type CuisineType string

const (
	CuisineItalian       CuisineType = "italian"
	CuisineMexican       CuisineType = "mexican"
	CuisineAsian         CuisineType = "asian"
	CuisineIndian        CuisineType = "indian"
	CuisineMediterranean CuisineType = "mediterranean"
	CuisineAmerican      CuisineType = "american"
	CuisineFrench        CuisineType = "french"
	CuisineOther         CuisineType = "other"
)

func CuisineTypes() []CuisineType {
	return []CuisineType{
		CuisineItalian, CuisineMexican, CuisineAsian, CuisineIndian,
		CuisineMediterranean, CuisineAmerican, CuisineFrench, CuisineOther,
	}
}

func (c CuisineType) Valid() bool {
	for _, v := range CuisineTypes() {
		if c == v {
			return true
		}
	}
	return false
}

// DietaryRestriction is the closed set of dietary restrictions a recipe or
// user profile can carry.
type DietaryRestriction string

const (
	DietVegetarian DietaryRestriction = "vegetarian"
	DietVegan      DietaryRestriction = "vegan"
	DietGlutenFree DietaryRestriction = "gluten-free"
	DietDairyFree  DietaryRestriction = "dairy-free"
	DietNutFree    DietaryRestriction = "nut-free"
	DietKeto       DietaryRestriction = "keto"
	DietPaleo      DietaryRestriction = "paleo"
	DietHalal      DietaryRestriction = "halal"
	DietKosher     DietaryRestriction = "kosher"
)

func DietaryRestrictions() []DietaryRestriction {
	return []DietaryRestriction{
		DietVegetarian, DietVegan, DietGlutenFree, DietDairyFree,
		DietNutFree, DietKeto, DietPaleo, DietHalal, DietKosher,
	}
}

func (d DietaryRestriction) Valid() bool {
	for _, v := range DietaryRestrictions() {
		if d == v {
			return true
		}
	}
	return false
}

// MealType is the closed set of meal slots a recipe can belong to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
	MealDessert   MealType = "dessert"
)

func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack, MealDessert}
}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack, MealDessert:
		return true
	}
	return false
}

// SortKey is the closed set of recipe search sort keys.
type SortKey string

const (
	SortByRating     SortKey = "rating"
	SortByCreatedAt  SortKey = "createdAt"
	SortByPopularity SortKey = "popularity"
)

func SortKeys() []SortKey {
	return []SortKey{SortByRating, SortByCreatedAt, SortByPopularity}
}

func (s SortKey) Valid() bool {
	switch s {
	case SortByRating, SortByCreatedAt, SortByPopularity:
		return true
	}
	return false
}

// SortDirection is either ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (s SortDirection) Valid() bool {
	return s == SortAsc || s == SortDesc
}
