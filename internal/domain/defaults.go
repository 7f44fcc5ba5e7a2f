package domain

import "strings"

// DefaultsVersion tags the curated starter catalogue so a future reseed can
// tell which revision a user started from.
const DefaultsVersion = "v1"

const defaultIDPrefix = "DEFAULT-"

// defaultID builds a deterministic identifier like "DEFAULT-chi-mapo-tofu"
// so seeded dishes keep a stable identity across installs.
func defaultID(prefix, name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "'", "")
	return defaultIDPrefix + prefix + "-" + slug
}

// IsDefaultDish reports whether the ID belongs to the seeded catalogue.
func IsDefaultDish(id string) bool {
	return strings.HasPrefix(id, defaultIDPrefix)
}

func defaultDish(prefix, name string, cuisine Cuisine, recipeRef string, categories ...Category) Dish {
	return Dish{
		ID:         defaultID(prefix, name),
		Name:       NormalizeName(name),
		Categories: categories,
		Cuisine:    cuisine,
		RecipeRef:  recipeRef,
	}
}

// DefaultDishes returns the curated vegetarian starter catalogue: a spread
// across all eleven cuisines suitable for an Indo-Chinese household with a
// Western upbringing. Callers get a fresh slice each time.
func DefaultDishes() []Dish {
	return []Dish{
		// Chinese
		defaultDish("chi", "Mapo Tofu", CuisineChinese,
			"Silken tofu, doubanjiang, Sichuan peppercorns, scallions",
			CategoryLegumes, CategoryFermented, CategoryAlliums),
		defaultDish("chi", "Vegetable Chow Mein", CuisineChinese,
			"Egg noodles, bok choy, cabbage, carrots, soy sauce",
			CategoryGrains, CategoryGreens, CategoryAlliums),
		defaultDish("chi", "Kung Pao Tofu", CuisineChinese,
			"Firm tofu, peanuts, dried chilies, Sichuan peppercorns",
			CategoryLegumes, CategoryAlliums, CategorySeeds),
		defaultDish("chi", "Vegetable Fried Rice", CuisineChinese,
			"Jasmine rice, eggs, peas, carrots, scallions",
			CategoryGrains, CategoryGreens, CategoryAlliums),
		defaultDish("chi", "Hot and Sour Soup", CuisineChinese,
			"Tofu, wood ear mushrooms, bamboo shoots, rice vinegar",
			CategoryLegumes, CategoryFermented, CategoryGreens),

		// Japanese
		defaultDish("jap", "Miso Soup", CuisineJapanese,
			"White miso paste, silken tofu, wakame, scallions",
			CategoryFermented, CategoryLegumes, CategoryGreens),
		defaultDish("jap", "Vegetable Tempura", CuisineJapanese,
			"Sweet potato, kabocha, shiso leaves, tempura batter",
			CategoryRootVeg, CategoryGreens, CategoryGrains),
		defaultDish("jap", "Edamame Buddha Bowl", CuisineJapanese,
			"Brown rice, edamame, avocado, pickled ginger, sesame",
			CategoryGrains, CategoryLegumes, CategoryGreens, CategorySeeds),
		defaultDish("jap", "Agedashi Tofu", CuisineJapanese,
			"Silken tofu, dashi broth, grated daikon, scallions",
			CategoryLegumes, CategoryGrains, CategoryAlliums),
		defaultDish("jap", "Japanese Curry", CuisineJapanese,
			"Potato, carrots, onions, curry roux, rice",
			CategoryRootVeg, CategoryGrains, CategoryAlliums),

		// Korean
		defaultDish("kor", "Kimchi Fried Rice", CuisineKorean,
			"Short-grain rice, aged kimchi, gochujang, sesame oil",
			CategoryGrains, CategoryFermented, CategoryAlliums),
		defaultDish("kor", "Bibimbap", CuisineKorean,
			"Rice, spinach, bean sprouts, gochujang, fried egg",
			CategoryGrains, CategoryGreens, CategoryFermented, CategorySeeds),
		defaultDish("kor", "Japchae", CuisineKorean,
			"Sweet potato noodles, spinach, carrots, sesame",
			CategoryGrains, CategoryGreens, CategoryAlliums, CategorySeeds),
		defaultDish("kor", "Sundubu Jjigae", CuisineKorean,
			"Soft tofu, gochugaru, kimchi, scallions, egg",
			CategoryLegumes, CategoryFermented, CategoryAlliums),
		defaultDish("kor", "Kimbap", CuisineKorean,
			"Sushi rice, spinach, pickled radish, carrots, seaweed",
			CategoryGrains, CategoryGreens, CategoryRootVeg, CategorySeeds),

		// Thai
		defaultDish("tha", "Green Curry", CuisineThai,
			"Coconut milk, green curry paste, tofu, Thai basil",
			CategoryGreens, CategoryLegumes, CategoryFreshHerbs),
		defaultDish("tha", "Pad Thai", CuisineThai,
			"Rice noodles, tofu, bean sprouts, peanuts, lime",
			CategoryGrains, CategoryLegumes, CategoryAlliums, CategorySeeds),
		defaultDish("tha", "Tom Yum Soup", CuisineThai,
			"Lemongrass, galangal, kaffir lime, mushrooms, tofu",
			CategoryGreens, CategoryFreshHerbs, CategoryAlliums),
		defaultDish("tha", "Massaman Curry", CuisineThai,
			"Coconut milk, potatoes, tofu, peanuts, massaman paste",
			CategoryRootVeg, CategoryLegumes, CategorySeeds),

		// Vietnamese
		defaultDish("vie", "Pho Chay", CuisineVietnamese,
			"Rice noodles, vegetable broth, tofu, Thai basil, bean sprouts",
			CategoryGrains, CategoryGreens, CategoryFreshHerbs, CategoryAlliums),
		defaultDish("vie", "Banh Mi Chay", CuisineVietnamese,
			"Baguette, lemongrass tofu, pickled carrots, cilantro",
			CategoryGrains, CategoryLegumes, CategoryRootVeg, CategoryFreshHerbs),
		defaultDish("vie", "Fresh Spring Rolls", CuisineVietnamese,
			"Rice paper, vermicelli, lettuce, mint, peanut sauce",
			CategoryGrains, CategoryGreens, CategoryFreshHerbs),

		// Indian
		defaultDish("ind", "Dal Tadka", CuisineIndian,
			"Yellow lentils, cumin, garlic, cilantro, ghee",
			CategoryLegumes, CategoryAlliums, CategoryFreshHerbs),
		defaultDish("ind", "Palak Paneer", CuisineIndian,
			"Spinach puree, paneer, cream, garam masala",
			CategoryGreens, CategoryDairy, CategoryAlliums),
		defaultDish("ind", "Chana Masala", CuisineIndian,
			"Chickpeas, tomatoes, onions, garam masala, cilantro",
			CategoryLegumes, CategoryAlliums, CategoryFreshHerbs),
		defaultDish("ind", "Aloo Gobi", CuisineIndian,
			"Potatoes, cauliflower, turmeric, cumin, ginger",
			CategoryRootVeg, CategoryCruciferous, CategoryAlliums),
		defaultDish("ind", "Vegetable Biryani", CuisineIndian,
			"Basmati rice, mixed vegetables, saffron, fried onions",
			CategoryGrains, CategoryRootVeg, CategoryAlliums, CategoryFreshHerbs),

		// Mediterranean
		defaultDish("med", "Falafel Wrap", CuisineMediterranean,
			"Chickpea falafel, pita, tahini, lettuce, tomatoes",
			CategoryLegumes, CategoryGreens, CategoryGrains, CategoryFreshHerbs),
		defaultDish("med", "Greek Salad", CuisineMediterranean,
			"Cucumber, tomatoes, feta, olives, red onion",
			CategoryGreens, CategoryDairy, CategoryAlliums),
		defaultDish("med", "Shakshuka", CuisineMediterranean,
			"Poached eggs, tomato sauce, bell peppers, cumin",
			CategoryLegumes, CategoryAlliums, CategoryFreshHerbs),
		defaultDish("med", "Hummus Plate", CuisineMediterranean,
			"Chickpea hummus, pita, olive oil, pine nuts",
			CategoryLegumes, CategorySeeds, CategoryGrains),

		// Italian
		defaultDish("ita", "Margherita Pizza", CuisineItalian,
			"Pizza dough, tomato sauce, mozzarella, fresh basil",
			CategoryGrains, CategoryDairy, CategoryFreshHerbs),
		defaultDish("ita", "Pasta Primavera", CuisineItalian,
			"Penne, zucchini, bell peppers, cherry tomatoes, garlic",
			CategoryGrains, CategoryGreens, CategoryAlliums),
		defaultDish("ita", "Caprese Salad", CuisineItalian,
			"Fresh mozzarella, tomatoes, basil, balsamic glaze",
			CategoryDairy, CategoryFreshHerbs),

		// Mexican
		defaultDish("mex", "Black Bean Tacos", CuisineMexican,
			"Corn tortillas, black beans, cabbage, salsa, lime",
			CategoryLegumes, CategoryGrains, CategoryGreens, CategoryAlliums),
		defaultDish("mex", "Veggie Burrito Bowl", CuisineMexican,
			"Cilantro lime rice, black beans, corn, guacamole",
			CategoryGrains, CategoryLegumes, CategoryGreens),
		defaultDish("mex", "Cheese Quesadilla", CuisineMexican,
			"Flour tortilla, cheddar, peppers, onions, salsa",
			CategoryGrains, CategoryDairy, CategoryAlliums),

		// French
		defaultDish("fre", "Ratatouille", CuisineFrench,
			"Eggplant, zucchini, tomatoes, bell peppers, herbs de Provence",
			CategoryGreens, CategoryRootVeg, CategoryAlliums, CategoryFreshHerbs),
		defaultDish("fre", "French Onion Soup", CuisineFrench,
			"Caramelized onions, vegetable broth, crusty bread, gruyere",
			CategoryAlliums, CategoryGrains, CategoryDairy),

		// American
		defaultDish("ame", "Mac and Cheese", CuisineAmerican,
			"Elbow pasta, cheddar cheese sauce, breadcrumbs",
			CategoryGrains, CategoryDairy),
	}
}
