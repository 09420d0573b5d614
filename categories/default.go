package categories

// The Barrel & Born menu taxonomy. The trailing food keys (starters,
// sizzlers, pizza, ...) have no browse tile of their own but are live import
// targets, so they keep a partition under FOOD.
var foodSubcategories = []SubCategory{
	{ID: "nibbles", DisplayLabel: "Nibbles", Key: "nibbles"},
	{ID: "soups", DisplayLabel: "Soups", Key: "soups"},
	{ID: "titbits", DisplayLabel: "Titbits", Key: "titbits"},
	{ID: "salads", DisplayLabel: "Salads", Key: "salads"},
	{ID: "mangalorean-style", DisplayLabel: "Mangalorean Style", Key: "mangalorean-style"},
	{ID: "wok", DisplayLabel: "Wok", Key: "wok"},
	{ID: "charcoal", DisplayLabel: "Charcoal", Key: "charcoal"},
	{ID: "continental", DisplayLabel: "Continental", Key: "continental"},
	{ID: "pasta", DisplayLabel: "Pasta", Key: "pasta"},
	{ID: "artisan-pizzas", DisplayLabel: "Artisan Pizzas", Key: "artisan-pizzas"},
	{ID: "mini-burger-sliders", DisplayLabel: "Mini Burger Sliders", Key: "mini-burger-sliders"},
	{ID: "entree", DisplayLabel: "Entree (Main Course)", Key: "entree"},
	{ID: "bao-dimsum", DisplayLabel: "Bao & Dim Sum", Key: "bao-dimsum"},
	{ID: "indian-mains-curries", DisplayLabel: "Indian Mains - Curries", Key: "indian-mains-curries"},
	{ID: "biryanis-rice", DisplayLabel: "Biryanis & Rice", Key: "biryanis-rice"},
	{ID: "dals", DisplayLabel: "Dals", Key: "dals"},
	{ID: "breads", DisplayLabel: "Breads", Key: "breads"},
	{ID: "asian-mains", DisplayLabel: "Asian Mains", Key: "asian-mains"},
	{ID: "rice-with-curry---thai-asian-bowls", DisplayLabel: "Rice with Curry - Thai & Asian Bowls", Key: "rice-with-curry---thai-asian-bowls"},
	{ID: "rice-noodles", DisplayLabel: "Rice & Noodles", Key: "rice-noodles"},
	{ID: "thai-bowls", DisplayLabel: "Thai Bowls", Key: "thai-bowls"},
	{ID: "starters", DisplayLabel: "Starters", Key: "starters"},
	{ID: "tandoor-starters", DisplayLabel: "Tandoor Starters", Key: "tandoor-starters"},
	{ID: "oriental-starters", DisplayLabel: "Oriental Starters", Key: "oriental-starters"},
	{ID: "sizzlers", DisplayLabel: "Sizzlers", Key: "sizzlers"},
	{ID: "sliders", DisplayLabel: "Sliders", Key: "sliders"},
	{ID: "pizza", DisplayLabel: "Pizza", Key: "pizza"},
}

var barSubcategories = []SubCategory{
	// Whiskey
	{ID: "blended-whisky", DisplayLabel: "Blended Whisky", Key: "blended-whisky"},
	{ID: "blended-scotch-whisky", DisplayLabel: "Blended Scotch Whisky", Key: "blended-scotch-whisky"},
	{ID: "american-irish-whiskey", DisplayLabel: "American & Irish Whiskey", Key: "american-irish-whiskey"},
	{ID: "single-malt-whisky", DisplayLabel: "Single Malt Whisky", Key: "single-malt-whisky"},
	// Other spirits
	{ID: "vodka", DisplayLabel: "Vodka", Key: "vodka"},
	{ID: "gin", DisplayLabel: "Gin", Key: "gin"},
	{ID: "rum", DisplayLabel: "Rum", Key: "rum"},
	{ID: "tequila", DisplayLabel: "Tequila", Key: "tequila"},
	{ID: "cognac-brandy", DisplayLabel: "Cognac & Brandy", Key: "cognac-brandy"},
	{ID: "liqueurs", DisplayLabel: "Liqueurs", Key: "liqueurs"},
	// Wine
	{ID: "sparkling-wine", DisplayLabel: "Sparkling Wine", Key: "sparkling-wine"},
	{ID: "white-wines", DisplayLabel: "White Wines", Key: "white-wines"},
	{ID: "rose-wines", DisplayLabel: "Rosé Wines", Key: "rose-wines"},
	{ID: "red-wines", DisplayLabel: "Red Wines", Key: "red-wines"},
	{ID: "dessert-wines", DisplayLabel: "Dessert Wines", Key: "dessert-wines"},
	{ID: "port-wine", DisplayLabel: "Port Wine", Key: "port-wine"},
}

var defaultMains = []MainCategory{
	{
		ID:            "food",
		DisplayLabel:  "FOOD",
		Description:   "Delicious cuisines from around the world",
		Subcategories: foodSubcategories,
	},
	{
		ID:           "crafted-beer",
		DisplayLabel: "CRAFT BEERS",
		Description:  "Premium brewed beers",
		Subcategories: []SubCategory{
			{ID: "craft-beers-on-tap", DisplayLabel: "Craft Beers On Tap", Key: "craft-beers-on-tap"},
			{ID: "draught-beer", DisplayLabel: "Draught Beer", Key: "draught-beer"},
			{ID: "pint-beers", DisplayLabel: "Pint Beers", Key: "pint-beers"},
		},
	},
	{
		ID:           "cocktails",
		DisplayLabel: "COCKTAILS",
		Description:  "Expertly mixed drinks",
		Subcategories: []SubCategory{
			{ID: "classic-cocktails", DisplayLabel: "Classic Cocktails", Key: "classic-cocktails"},
			{ID: "signature-cocktails", DisplayLabel: "Signature Cocktails", Key: "signature-cocktails"},
			{ID: "wine-cocktails", DisplayLabel: "Wine Cocktails", Key: "wine-cocktails"},
			{ID: "sangria", DisplayLabel: "Sangria", Key: "sangria"},
			{ID: "signature-shots", DisplayLabel: "Signature Shots", Key: "signature-shots"},
		},
	},
	{
		ID:            "bar",
		DisplayLabel:  "BAR",
		Description:   "Premium spirits and wines",
		Subcategories: barSubcategories,
	},
	{
		ID:           "desserts",
		DisplayLabel: "DESSERTS",
		Description:  "Sweet endings to your meal",
		Subcategories: []SubCategory{
			{ID: "desserts", DisplayLabel: "Desserts", Key: "desserts"},
		},
	},
	{
		ID:           "mocktails",
		DisplayLabel: "MOCKTAILS",
		Description:  "Refreshing non-alcoholic beverages",
		Subcategories: []SubCategory{
			{ID: "signature-mocktails", DisplayLabel: "Signature Mocktails", Key: "signature-mocktails"},
			{ID: "soft-beverages", DisplayLabel: "Soft Beverages", Key: "soft-beverages"},
		},
	},
}

// defaultAliases maps legacy category spellings, still present in old data
// and client URLs, to their canonical keys. Aliases never get a partition.
var defaultAliases = map[string]string{
	"entree-(main-course)":                 "entree",
	"bao-&-dim-sum":                        "bao-dimsum",
	"indian-mains---curries":               "indian-mains-curries",
	"biryanis-&-rice":                      "biryanis-rice",
	"rice-&-noodles":                       "rice-noodles",
	"rice-with-curry---thai-&-asian-bowls": "rice-with-curry---thai-asian-bowls",
}

// Default builds the registry for the static taxonomy above.
func Default() (*Registry, error) {
	return New(defaultMains, defaultAliases)
}
