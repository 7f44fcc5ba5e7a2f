package domain

import "fmt"

// Category classifies the food types a dish covers. Categories carry no
// behavior of their own; they exist so the planner can track dietary
// diversity across a week.
type Category string

const (
	CategoryGreens      Category = "greens"      // spinach, lettuce, bok choy
	CategoryLegumes     Category = "legumes"     // beans, lentils, chickpeas
	CategoryGrains      Category = "grains"      // rice, oats, wheat
	CategoryAlliums     Category = "alliums"     // onion, garlic, leeks
	CategoryCruciferous Category = "cruciferous" // broccoli, cabbage, cauliflower
	CategoryFreshHerbs  Category = "fresh_herbs" // basil, cilantro, mint
	CategorySeeds       Category = "seeds"       // sesame, sunflower, pumpkin
	CategoryFermented   Category = "fermented"   // kimchi, miso, sauerkraut
	CategoryRootVeg     Category = "root_veg"    // potato, carrot, beet
	CategoryDairy       Category = "dairy"       // milk, cheese, yogurt
)

// AllCategories returns every known category in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryGreens,
		CategoryLegumes,
		CategoryGrains,
		CategoryAlliums,
		CategoryCruciferous,
		CategoryFreshHerbs,
		CategorySeeds,
		CategoryFermented,
		CategoryRootVeg,
		CategoryDairy,
	}
}

// PurchaseType says how a food category is typically bought.
type PurchaseType string

const (
	PurchaseBulk   PurchaseType = "bulk"   // buy monthly, stores well
	PurchaseWeekly PurchaseType = "weekly" // buy fresh each week
)

// CategoryPurchaseType maps every category to where it is bought.
var CategoryPurchaseType = map[Category]PurchaseType{
	CategoryGreens:      PurchaseWeekly,
	CategoryLegumes:     PurchaseBulk,
	CategoryGrains:      PurchaseBulk,
	CategoryAlliums:     PurchaseWeekly,
	CategoryCruciferous: PurchaseWeekly,
	CategoryFreshHerbs:  PurchaseWeekly,
	CategorySeeds:       PurchaseBulk,
	CategoryFermented:   PurchaseWeekly,
	CategoryRootVeg:     PurchaseBulk,
	CategoryDairy:       PurchaseWeekly,
}

// Region is the binary east/west classification behind the per-week
// balance constraint (2 Eastern + 2 Western by default).
type Region string

const (
	RegionEastern Region = "eastern"
	RegionWestern Region = "western"
)

// Cuisine is the granular cuisine type used for novelty scoring.
type Cuisine string

const (
	CuisineKorean        Cuisine = "korean"
	CuisineJapanese      Cuisine = "japanese"
	CuisineChinese       Cuisine = "chinese"
	CuisineThai          Cuisine = "thai"
	CuisineVietnamese    Cuisine = "vietnamese"
	CuisineIndian        Cuisine = "indian"
	CuisineItalian       Cuisine = "italian"
	CuisineFrench        Cuisine = "french"
	CuisineAmerican      Cuisine = "american"
	CuisineMexican       Cuisine = "mexican"
	CuisineMediterranean Cuisine = "mediterranean"
)

// AllCuisines returns every known cuisine, Eastern first then Western.
func AllCuisines() []Cuisine {
	return []Cuisine{
		CuisineKorean,
		CuisineJapanese,
		CuisineChinese,
		CuisineThai,
		CuisineVietnamese,
		CuisineIndian,
		CuisineItalian,
		CuisineFrench,
		CuisineAmerican,
		CuisineMexican,
		CuisineMediterranean,
	}
}

// CuisineRegion maps every cuisine to its region. The map is total by
// construction; RegionOf relies on that.
var CuisineRegion = map[Cuisine]Region{
	CuisineKorean:        RegionEastern,
	CuisineJapanese:      RegionEastern,
	CuisineChinese:       RegionEastern,
	CuisineThai:          RegionEastern,
	CuisineVietnamese:    RegionEastern,
	CuisineIndian:        RegionEastern,
	CuisineItalian:       RegionWestern,
	CuisineFrench:        RegionWestern,
	CuisineAmerican:      RegionWestern,
	CuisineMexican:       RegionWestern,
	CuisineMediterranean: RegionWestern,
}

// RegionOf derives the region for a cuisine. Unknown cuisines fall back to
// Western so the derivation stays total even for data written by a newer
// version of the taxonomy.
func RegionOf(c Cuisine) Region {
	if r, ok := CuisineRegion[c]; ok {
		return r
	}
	return RegionWestern
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// ParseCuisine converts a raw string into a Cuisine.
func ParseCuisine(s string) (Cuisine, error) {
	for _, c := range AllCuisines() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown cuisine %q", s)
}
