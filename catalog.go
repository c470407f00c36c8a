package main

import "cakeshop/internal/models"

// cakeCatalog is the demo catalog created on first start.
func cakeCatalog() []models.Product {
	return []models.Product{
		{Name: "Dutch Truffle Cake (1/2 kg)", Price: 649, Category: "Cake", Description: "Layers of chocolate sponge and dark truffle ganache.", Image: "/images/cake/dutch-truffle.webp", Rating: 4.7},
		{Name: "Eggless Dutch Truffle Cake (1 kg)", Price: 1199, Category: "Cake", Description: "Our truffle cake, baked without eggs.", Image: "/images/cake/eggless-dutch-truffle.webp", Rating: 4.6},
		{Name: "Red Velvet Cake (1/2 kg)", Price: 699, Category: "Cake", Description: "Red velvet sponge with cream cheese frosting.", Image: "/images/cake/red-velvet.jpg", Rating: 4.8},
		{Name: "New York Cheesecake", Price: 799, Category: "Cake", Description: "Baked cheesecake on a buttery biscuit base.", Image: "/images/cake/new-york-cheesecake.webp"},
		{Name: "Blueberry Cheesecake", Price: 849, Category: "Cake", Description: "Creamy cheesecake topped with blueberry compote.", Image: "/images/cake/blueberry-cheesecake.webp"},
		{Name: "Fresh Fruit Cream Cake", Price: 599, Category: "Cake", Description: "Vanilla sponge with whipped cream and seasonal fruit.", Image: "/images/cake/fresh-fruit.webp"},
		{Name: "Butterscotch Milk Chocolate Cake", Price: 629, Category: "Cake", Description: "Butterscotch crunch folded into milk chocolate cream.", Image: "/images/cake/butterscotch.webp"},
		{Name: "Strawberry Custard Cake", Price: 579, Category: "Cake", Description: "Strawberry sponge layered with vanilla custard.", Image: "/images/cake/strawberry-custard.webp"},
		{Name: "Dark Chocolate Mousse Cake", Price: 749, Category: "Cake", Description: "Light dark chocolate mousse on a cocoa base.", Image: "/images/cake/dark-chocolate-mousse.webp", Rating: 4.9},
		{Name: "Whole Wheat Bread", Price: 55, Category: "Bread", Description: "Soft sandwich loaf made with whole wheat flour.", Image: "/images/bread/whole-wheat.jpg", Rating: 4.3},
		{Name: "Milk Bread", Price: 45, Category: "Bread", Description: "Classic soft white milk bread.", Image: "/images/bread/milk.jpg"},
		{Name: "Garlic Loaf", Price: 85, Category: "Bread", Description: "Herb and garlic butter swirled loaf.", Image: "/images/bread/garlic.jpg"},
		{Name: "Butter Cookies", Price: 120, Category: "Biscuit", Description: "Crisp cookies baked with pure butter.", Image: "/images/biscuit/butter.jpg"},
		{Name: "Cheese Biscuits", Price: 110, Category: "Biscuit", Description: "Savoury biscuits with aged cheddar.", Image: "/images/biscuit/cheese.jpg", Rating: 4.4},
		{Name: "Masala Biscuits", Price: 95, Category: "Biscuit", Description: "Spiced biscuits with cumin and green chilli.", Image: "/images/biscuit/masala.jpg"},
	}
}
