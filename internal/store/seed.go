package store

import "storefront/internal/model"

// FileSeedProducts is the sample catalog loaded by the file backend on first
// run. Drivers assign ids and timestamps.
func FileSeedProducts() []model.Product {
	return []model.Product{
		{
			Name:        "Classic Beef Burger",
			Description: "Juicy beef patty with lettuce, tomato, onion, and our special sauce",
			Price:       12.99,
			Category:    "Burgers",
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=300",
			Stock:       50,
			PrepTime:    15,
			Rating:      4.5,
		},
		{
			Name:        "Margherita Pizza",
			Description: "Fresh mozzarella, tomato sauce, and basil on thin crust",
			Price:       16.99,
			Category:    "Pizza",
			Image:       "https://images.unsplash.com/photo-1604382355076-af4b0eb60143?w=300",
			Stock:       30,
			PrepTime:    20,
			Rating:      4.7,
		},
		{
			Name:        "Caesar Salad",
			Description: "Crispy romaine lettuce with parmesan, croutons, and caesar dressing",
			Price:       9.99,
			Category:    "Salads",
			Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=300",
			Stock:       25,
			PrepTime:    10,
			Rating:      4.2,
		},
		{
			Name:        "Chicken Wings (8pcs)",
			Description: "Crispy chicken wings with your choice of buffalo or BBQ sauce",
			Price:       13.99,
			Category:    "Appetizers",
			Image:       "https://images.unsplash.com/photo-1567620832903-9fc6debc209f?w=300",
			Stock:       40,
			PrepTime:    18,
			Rating:      4.6,
		},
		{
			Name:        "Pepperoni Pizza",
			Description: "Classic pepperoni with mozzarella cheese and tomato sauce",
			Price:       18.99,
			Category:    "Pizza",
			Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=300",
			Stock:       35,
			PrepTime:    22,
			Rating:      4.8,
		},
		{
			Name:        "Fish Tacos (3pcs)",
			Description: "Grilled fish with cabbage slaw and chipotle mayo in corn tortillas",
			Price:       14.99,
			Category:    "Mexican",
			Image:       "https://images.unsplash.com/photo-1565299585323-38174c26d82b?w=300",
			Stock:       20,
			PrepTime:    16,
			Rating:      4.4,
		},
		{
			Name:        "Chocolate Brownie",
			Description: "Warm chocolate brownie served with vanilla ice cream",
			Price:       7.99,
			Category:    "Desserts",
			Image:       "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=300",
			Stock:       15,
			PrepTime:    5,
			Rating:      4.3,
		},
		{
			Name:        "Grilled Chicken Salad",
			Description: "Mixed greens with grilled chicken, cherry tomatoes, and balsamic dressing",
			Price:       11.99,
			Category:    "Salads",
			Image:       "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=300",
			Stock:       28,
			PrepTime:    12,
			Rating:      4.1,
		},
		{
			Name:        "BBQ Ribs",
			Description: "Tender pork ribs with our house BBQ sauce and coleslaw",
			Price:       19.99,
			Category:    "BBQ",
			Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?w=300",
			Stock:       12,
			PrepTime:    25,
			Rating:      4.9,
		},
		{
			Name:        "Vegetable Stir Fry",
			Description: "Fresh mixed vegetables stir-fried with teriyaki sauce over rice",
			Price:       10.99,
			Category:    "Asian",
			Image:       "https://images.unsplash.com/photo-1512058564366-18510be2db19?w=300",
			Stock:       22,
			PrepTime:    14,
			Rating:      4.0,
		},
	}
}

// FileSeedOrders is the pair of sample orders loaded by the file backend on
// first run.
func FileSeedOrders() []model.Order {
	return []model.Order{
		{
			CustomerName:    "John Smith",
			CustomerPhone:   "+1-555-0123",
			CustomerEmail:   "john@example.com",
			DeliveryAddress: "123 Main St, Apt 4B, New York, NY 10001",
			Items: []model.OrderItem{
				{ProductID: 1, Name: "Classic Beef Burger", Price: 12.99, Quantity: 2},
				{ProductID: 4, Name: "Chicken Wings (8pcs)", Price: 13.99, Quantity: 1},
			},
			Total:               39.97,
			Status:              model.StatusPreparing,
			PaymentStatus:       model.PaymentPaid,
			DeliveryTime:        25,
			SpecialInstructions: "No onions on the burger please",
		},
		{
			CustomerName:    "Sarah Johnson",
			CustomerPhone:   "+1-555-0456",
			CustomerEmail:   "sarah@example.com",
			DeliveryAddress: "456 Oak Avenue, Brooklyn, NY 11201",
			Items: []model.OrderItem{
				{ProductID: 2, Name: "Margherita Pizza", Price: 16.99, Quantity: 1},
				{ProductID: 7, Name: "Chocolate Brownie", Price: 7.99, Quantity: 2},
			},
			Total:               32.97,
			Status:              model.StatusDelivered,
			PaymentStatus:       model.PaymentPaid,
			DeliveryTime:        30,
			SpecialInstructions: "Leave at door",
		},
	}
}

// PGSeedCategories is the category catalog seeded into the relational backend
func PGSeedCategories() []model.Category {
	return []model.Category{
		{Name: "Burgers", Description: "Delicious beef and chicken burgers"},
		{Name: "Pizza", Description: "Fresh baked pizzas with various toppings"},
		{Name: "Appetizers", Description: "Tasty starters and sides"},
		{Name: "Salads", Description: "Fresh and healthy salad options"},
		{Name: "Drinks", Description: "Refreshing beverages"},
		{Name: "Desserts", Description: "Sweet treats and desserts"},
	}
}

// PGSeedProducts is the sample catalog seeded into the relational backend
func PGSeedProducts() []model.Product {
	return []model.Product{
		{
			Name:        "Classic Beef Burger",
			Description: "Juicy beef patty with lettuce, tomato, onion, and our special sauce",
			Price:       12.99,
			Category:    "Burgers",
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400",
			Stock:       50,
			PrepTime:    15,
			Rating:      4.5,
		},
		{
			Name:        "Margherita Pizza",
			Description: "Fresh mozzarella, tomato sauce, and basil on thin crust",
			Price:       16.99,
			Category:    "Pizza",
			Image:       "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=400",
			Stock:       30,
			PrepTime:    20,
			Rating:      4.7,
		},
		{
			Name:        "Buffalo Wings (8pcs)",
			Description: "Crispy chicken wings tossed in buffalo sauce with ranch dip",
			Price:       14.99,
			Category:    "Appetizers",
			Image:       "https://images.unsplash.com/photo-1567620832903-9fc6debc209f?w=400",
			Stock:       25,
			PrepTime:    12,
			Rating:      4.3,
		},
		{
			Name:        "Caesar Salad",
			Description: "Crispy romaine lettuce with parmesan, croutons, and caesar dressing",
			Price:       9.99,
			Category:    "Salads",
			Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400",
			Stock:       20,
			PrepTime:    8,
			Rating:      4.1,
		},
		{
			Name:        "Pepperoni Pizza",
			Description: "Classic pepperoni with mozzarella cheese and tomato sauce",
			Price:       18.99,
			Category:    "Pizza",
			Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400",
			Stock:       35,
			PrepTime:    22,
			Rating:      4.8,
		},
	}
}
