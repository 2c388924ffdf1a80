package catalog

// The product range of the supermarket chain, one list per category.
var categories = []Category{
	{
		ID:   "meat",
		Name: "Meat",
		Products: []Product{
			{ID: "m1", Name: "Chicken", Price: "$5.99", Image: "images/chiken.png"},
			{ID: "m2", Name: "Beef", Price: "$7.50", Image: "images/beef.png"},
			{ID: "m3", Name: "Pork", Price: "$6.25", Image: "images/pork.png"},
			{ID: "m4", Name: "Turkey", Price: "$8.50", Image: "images/turkey.png"},
			{ID: "m5", Name: "Lamb", Price: "$9.99", Image: "images/lamb.png"},
			{ID: "m6", Name: "Fish", Price: "$7.75", Image: "images/fish.png"},
		},
	},
	{
		ID:   "dairy-and-cereal",
		Name: "Dairy & Cereal",
		Products: []Product{
			{ID: "d1", Name: "Milk", Price: "$1.99", Image: "images/dairy.png"},
			{ID: "d2", Name: "Cheese", Price: "$3.50", Image: "images/dairy.png"},
			{ID: "d3", Name: "Yogurt", Price: "$1.25", Image: "images/dairy.png"},
			{ID: "d4", Name: "Oats", Price: "$2.75", Image: "images/dairy.png"},
			{ID: "d5", Name: "Cereal", Price: "$4.20", Image: "images/dairy.png"},
			{ID: "d6", Name: "Butter", Price: "$2.30", Image: "images/dairy.png"},
		},
	},
	{
		ID:   "snacks",
		Name: "Snacks",
		Products: []Product{
			{ID: "s1", Name: "Doritos", Price: "$2.50", Image: "images/snacks.png"},
			{ID: "s2", Name: "Lays", Price: "$2.25", Image: "images/snacks.png"},
			{ID: "s3", Name: "Pringles", Price: "$3.00", Image: "images/snacks.png"},
			{ID: "s4", Name: "Chips", Price: "$1.75", Image: "images/snacks.png"},
		},
	},
	{
		ID:   "cleaning",
		Name: "Cleaning",
		Products: []Product{
			{ID: "c1", Name: "Detergent", Price: "$5.99", Image: "images/cleaning.png"},
			{ID: "c2", Name: "Soap", Price: "$2.50", Image: "images/cleaning.png"},
			{ID: "c3", Name: "Bleach", Price: "$3.25", Image: "images/cleaning.png"},
			{ID: "c4", Name: "Glass Cleaner", Price: "$4.50", Image: "images/cleaning.png"},
			{ID: "c5", Name: "Sponges", Price: "$1.99", Image: "images/cleaning.png"},
			{ID: "c6", Name: "Floor Cleaner", Price: "$6.75", Image: "images/cleaning.png"},
		},
	},
}

func Categories() []Category {
	return categories
}

func CategoryByID(id string) (Category, bool) {
	for _, category := range categories {
		if category.ID == id {
			return category, true
		}
	}
	return Category{}, false
}

func ProductByID(id string) (Product, bool) {
	for _, category := range categories {
		for _, product := range category.Products {
			if product.ID == id {
				return product, true
			}
		}
	}
	return Product{}, false
}
