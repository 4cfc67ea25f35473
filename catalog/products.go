package catalog

// Product is a single catalog entry. The catalog is static and loaded at
// startup; products are never created or mutated at runtime.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// Products is the full storefront catalog.
var Products = []Product{
	{ID: 1, Name: "Red Rose Bouquet", Description: "A stunning arrangement of 12 premium red roses, perfect for expressing love and romance.", Price: 49.99, Image: "https://res.cloudinary.com/duf4t01vy/image/upload/v1771819102/ChatGPT_Image_Feb_22_2026_10_57_56_PM_nxsgri.png", Category: "Garlands", InStock: true},
	{ID: 2, Name: "Sunflower Delight", Description: "Bright and cheerful sunflowers that bring warmth and happiness to any space.", Price: 34.99, Image: "https://res.cloudinary.com/duf4t01vy/image/upload/v1771818621/ChatGPT_Image_Feb_22_2026_10_49_55_PM_zopiuw.png", Category: "Garlands", InStock: true},
	{ID: 3, Name: "Elegant Lily Collection", Description: "Pure white lilies symbolizing elegance and sophistication.", Price: 54.99, Image: "https://res.cloudinary.com/duf4t01vy/image/upload/v1771819265/ChatGPT_Image_Feb_22_2026_11_00_56_PM_vrgztm.png", Category: "Garlands", InStock: true},
	{ID: 4, Name: "Mixed Spring Bouquet", Description: "A colorful mix of seasonal spring flowers including tulips, daisies, and carnations.", Price: 39.99, Image: "https://res.cloudinary.com/duf4t01vy/image/upload/v1771819326/ChatGPT_Image_Feb_22_2026_11_01_54_PM_ehrqxd.png", Category: "Garlands", InStock: true},
	{ID: 5, Name: "Pink Peony Paradise", Description: "Lush pink peonies that exude romance and charm.", Price: 64.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Flowers", InStock: true},
	{ID: 6, Name: "Orchid Elegance", Description: "Exotic orchids that add a touch of luxury to any setting.", Price: 79.99, Image: "https://images.unsplash.com/photo-1566873535350-a3f5d4a804b7?w=400", Category: "Flowers", InStock: true},
	{ID: 7, Name: "Lavender Dreams", Description: "Fragrant lavender bundles perfect for relaxation and home decor.", Price: 29.99, Image: "https://images.unsplash.com/photo-1468327768560-75b778cbb551?w=400", Category: "Flowers", InStock: true},
	{ID: 8, Name: "Tropical Paradise", Description: "Exotic tropical flowers including birds of paradise and hibiscus.", Price: 69.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Flowers", InStock: true},
	{ID: 9, Name: "White Rose Serenity", Description: "Pure white roses symbolizing peace, purity, and new beginnings.", Price: 44.99, Image: "https://images.unsplash.com/photo-1559563362-c667ba5f5480?w=400", Category: "Bouquets", InStock: true},
	{ID: 10, Name: "Tulip Festival", Description: "Vibrant tulips in assorted colors celebrating the beauty of spring.", Price: 36.99, Image: "https://images.unsplash.com/photo-1520763185298-1b434c919102?w=400", Category: "Flowers", InStock: true},
	{ID: 11, Name: "Carnation Charm", Description: "Long-lasting carnations in beautiful shades of pink and red.", Price: 27.99, Image: "https://images.unsplash.com/photo-1526047932273-341f2a7631f9?w=400", Category: "Flowers", InStock: true},
	{ID: 12, Name: "Premium Flower Box", Description: "Luxury arrangement in an elegant gift box, perfect for special occasions.", Price: 89.99, Image: "https://images.unsplash.com/photo-1561181286-d3fee7d55364?w=400", Category: "Gifts", InStock: true},
	{ID: 13, Name: "Yellow Rose Sunshine", Description: "Bright yellow roses representing friendship and joy.", Price: 42.99, Image: "https://images.unsplash.com/photo-1455659817273-f96807779a8a?w=400", Category: "Flowers", InStock: true},
	{ID: 14, Name: "Daisy Meadow", Description: "Fresh white daisies bringing simplicity and charm.", Price: 24.99, Image: "https://images.unsplash.com/photo-1606041008023-472dfb5e530f?w=400", Category: "Flowers", InStock: true},
	{ID: 15, Name: "Hydrangea Heaven", Description: "Beautiful blue hydrangeas perfect for home decoration.", Price: 52.99, Image: "https://images.unsplash.com/photo-1468327768560-75b778cbb551?w=400", Category: "Flowers", InStock: true},
	{ID: 16, Name: "Cherry Blossom Branch", Description: "Delicate cherry blossoms symbolizing renewal and hope.", Price: 47.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Bouquets", InStock: true},
	{ID: 17, Name: "Gerbera Fiesta", Description: "Colorful gerbera daisies bringing vibrant energy to any room.", Price: 32.99, Image: "https://images.unsplash.com/photo-1487530811176-3780de880c2d?w=400", Category: "Flowers", InStock: true},
	{ID: 18, Name: "Calla Lily Grace", Description: "Elegant calla lilies for sophisticated arrangements.", Price: 58.99, Image: "https://images.unsplash.com/photo-1606041008023-472dfb5e530f?w=400", Category: "Flowers", InStock: true},
	{ID: 19, Name: "Wildflower Mix", Description: "Natural wildflower bouquet with rustic charm.", Price: 35.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Bouquets", InStock: true},
	{ID: 20, Name: "Ranunculus Delight", Description: "Layered ranunculus blooms in soft pastel colors.", Price: 45.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Flowers", InStock: true},
	{ID: 21, Name: "Purple Iris Elegance", Description: "Stunning purple irises with elegant form.", Price: 38.99, Image: "https://images.unsplash.com/photo-1566873535350-a3f5d4a804b7?w=400", Category: "Flowers", InStock: true},
	{ID: 22, Name: "Protea Exotic", Description: "Unique South African protea flowers.", Price: 72.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Flowers", InStock: true},
	{ID: 23, Name: "Dahlia Dreams", Description: "Gorgeous dahlias in rich autumn colors.", Price: 48.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Flowers", InStock: true},
	{ID: 24, Name: "Anemone Beauty", Description: "Delicate anemones with striking dark centers.", Price: 41.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Flowers", InStock: true},
	{ID: 25, Name: "Chrysanthemum Burst", Description: "Full chrysanthemum blooms in various colors.", Price: 33.99, Image: "https://images.unsplash.com/photo-1487530811176-3780de880c2d?w=400", Category: "Garlands", InStock: true},
	{ID: 26, Name: "Freesia Fragrance", Description: "Sweetly scented freesias in soft hues.", Price: 36.99, Image: "https://images.unsplash.com/photo-1606041008023-472dfb5e530f?w=400", Category: "Flowers", InStock: true},
	{ID: 27, Name: "Amaryllis Red", Description: "Bold red amaryllis for dramatic displays.", Price: 55.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Flowers", InStock: true},
	{ID: 28, Name: "Sweet Pea Garden", Description: "Delicate sweet peas with lovely fragrance.", Price: 31.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Flowers", InStock: true},
	{ID: 29, Name: "Magnolia Majesty", Description: "Elegant magnolia branches for statement arrangements.", Price: 67.99, Image: "https://images.unsplash.com/photo-1559563362-c667ba5f5480?w=400", Category: "Flowers", InStock: true},
	{ID: 30, Name: "Jasmine Bliss", Description: "Fragrant jasmine for romantic occasions.", Price: 43.99, Image: "https://images.unsplash.com/photo-1468327768560-75b778cbb551?w=400", Category: "Garlands", InStock: true},
	{ID: 31, Name: "Gardenia Perfection", Description: "Creamy gardenias with intoxicating scent.", Price: 59.99, Image: "https://images.unsplash.com/photo-1559563362-c667ba5f5480?w=400", Category: "Flowers", InStock: true},
	{ID: 32, Name: "Zinnia Carnival", Description: "Bright zinnias in rainbow colors.", Price: 28.99, Image: "https://images.unsplash.com/photo-1487530811176-3780de880c2d?w=400", Category: "Flowers", InStock: true},
	{ID: 33, Name: "Cosmos Cloud", Description: "Airy cosmos flowers in pink and white.", Price: 26.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Garlands", InStock: true},
	{ID: 34, Name: "Snapdragon Tower", Description: "Vertical snapdragons adding height to arrangements.", Price: 34.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Flowers", InStock: true},
	{ID: 35, Name: "Petunia Paradise", Description: "Cascading petunias in vibrant shades.", Price: 23.99, Image: "https://images.unsplash.com/photo-1597848212624-a19eb35e2651?w=400", Category: "Flowers", InStock: true},
	{ID: 36, Name: "Marigold Gold", Description: "Traditional marigolds in sunny yellow and orange, ideal for garlands.", Price: 22.99, Image: "https://images.unsplash.com/photo-1597848212624-a19eb35e2651?w=400", Category: "Garlands", InStock: true},
	{ID: 37, Name: "Aster Autumn", Description: "Purple asters perfect for fall garlands and arrangements.", Price: 29.99, Image: "https://images.unsplash.com/photo-1566873535350-a3f5d4a804b7?w=400", Category: "Garlands", InStock: true},
	{ID: 38, Name: "Delphinium Blue", Description: "Tall blue delphiniums for dramatic effect.", Price: 46.99, Image: "https://images.unsplash.com/photo-1468327768560-75b778cbb551?w=400", Category: "Flowers", InStock: true},
	{ID: 39, Name: "Stock Fragrant", Description: "Sweetly scented stock in pastel shades.", Price: 37.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Flowers", InStock: true},
	{ID: 40, Name: "Lisianthus Luxury", Description: "Rose-like lisianthus in soft colors.", Price: 51.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Flowers", InStock: true},
	{ID: 41, Name: "Eucalyptus Seeded", Description: "Fresh eucalyptus for greenery arrangements.", Price: 19.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Decoration", InStock: true},
	{ID: 42, Name: "Baby Breath Cloud", Description: "Delicate baby breath for filler or solo arrangements.", Price: 18.99, Image: "https://images.unsplash.com/photo-1559563362-c667ba5f5480?w=400", Category: "Decoration", InStock: true},
	{ID: 43, Name: "Fern Forest", Description: "Lush fern fronds for natural arrangements.", Price: 21.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Decoration", InStock: true},
	{ID: 44, Name: "Dusty Miller", Description: "Silver-grey dusty miller for texture.", Price: 17.99, Image: "https://images.unsplash.com/photo-1468327768560-75b778cbb551?w=400", Category: "Decoration", InStock: true},
	{ID: 45, Name: "Olive Branch", Description: "Mediterranean olive branches for rustic style.", Price: 25.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Decoration", InStock: true},
	{ID: 46, Name: "Pink Rose Garden", Description: "Soft pink roses for romantic gestures.", Price: 47.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Flowers", InStock: true},
	{ID: 47, Name: "Orange Rose Sunset", Description: "Warm orange roses for vibrant arrangements.", Price: 45.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Flowers", InStock: true},
	{ID: 48, Name: "Peach Rose Blush", Description: "Delicate peach roses for elegant occasions.", Price: 48.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Flowers", InStock: true},
	{ID: 49, Name: "Coral Rose Joy", Description: "Cheerful coral roses for celebrations.", Price: 46.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Flowers", InStock: true},
	{ID: 50, Name: "Lavender Rose Dream", Description: "Unique lavender roses for special moments.", Price: 52.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Flowers", InStock: true},
	{ID: 51, Name: "Mini Sunflower Bunch", Description: "Petite sunflowers for compact arrangements.", Price: 28.99, Image: "https://images.unsplash.com/photo-1597848212624-a19eb35e2651?w=400", Category: "Flowers", InStock: true},
	{ID: 52, Name: "Giant Sunflower Single", Description: "Statement single giant sunflower.", Price: 15.99, Image: "https://images.unsplash.com/photo-1597848212624-a19eb35e2651?w=400", Category: "Flowers", InStock: true},
	{ID: 53, Name: "Stargazer Lily", Description: "Fragrant stargazer lilies in pink.", Price: 56.99, Image: "https://images.unsplash.com/photo-1606041008023-472dfb5e530f?w=400", Category: "Flowers", InStock: true},
	{ID: 54, Name: "Tiger Lily Wild", Description: "Spotted tiger lilies for exotic flair.", Price: 49.99, Image: "https://images.unsplash.com/photo-1606041008023-472dfb5e530f?w=400", Category: "Flowers", InStock: true},
	{ID: 55, Name: "Asiatic Lily Mix", Description: "Colorful asiatic lilies in mixed hues.", Price: 44.99, Image: "https://images.unsplash.com/photo-1606041008023-472dfb5e530f?w=400", Category: "Flowers", InStock: true},
	{ID: 56, Name: "Red Tulip Romance", Description: "Classic red tulips for love.", Price: 34.99, Image: "https://images.unsplash.com/photo-1520763185298-1b434c919102?w=400", Category: "Flowers", InStock: true},
	{ID: 57, Name: "Yellow Tulip Sunshine", Description: "Bright yellow tulips for happiness.", Price: 32.99, Image: "https://images.unsplash.com/photo-1520763185298-1b434c919102?w=400", Category: "Flowers", InStock: true},
	{ID: 58, Name: "Purple Tulip Royal", Description: "Regal purple tulips for elegance.", Price: 35.99, Image: "https://images.unsplash.com/photo-1520763185298-1b434c919102?w=400", Category: "Flowers", InStock: true},
	{ID: 59, Name: "White Tulip Pure", Description: "Pure white tulips for simplicity.", Price: 33.99, Image: "https://images.unsplash.com/photo-1520763185298-1b434c919102?w=400", Category: "Flowers", InStock: true},
	{ID: 60, Name: "Parrot Tulip Fancy", Description: "Frilly parrot tulips in mixed colors.", Price: 39.99, Image: "https://images.unsplash.com/photo-1520763185298-1b434c919102?w=400", Category: "Flowers", InStock: true},
	{ID: 61, Name: "White Carnation Pure", Description: "Classic white carnations for any occasion.", Price: 24.99, Image: "https://images.unsplash.com/photo-1526047932273-341f2a7631f9?w=400", Category: "Flowers", InStock: true},
	{ID: 62, Name: "Red Carnation Love", Description: "Deep red carnations expressing love.", Price: 26.99, Image: "https://images.unsplash.com/photo-1526047932273-341f2a7631f9?w=400", Category: "Flowers", InStock: true},
	{ID: 63, Name: "Pink Carnation Sweet", Description: "Sweet pink carnations for gratitude.", Price: 25.99, Image: "https://images.unsplash.com/photo-1526047932273-341f2a7631f9?w=400", Category: "Flowers", InStock: true},
	{ID: 64, Name: "White Peony Bride", Description: "Bridal white peonies for weddings.", Price: 69.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Flowers", InStock: true},
	{ID: 65, Name: "Blush Peony Romance", Description: "Soft blush peonies for romance.", Price: 66.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Flowers", InStock: true},
	{ID: 66, Name: "Coral Peony Joy", Description: "Vibrant coral peonies for celebrations.", Price: 67.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Flowers", InStock: true},
	{ID: 67, Name: "White Orchid Zen", Description: "Peaceful white orchids for tranquility.", Price: 74.99, Image: "https://images.unsplash.com/photo-1566873535350-a3f5d4a804b7?w=400", Category: "Flowers", InStock: true},
	{ID: 68, Name: "Purple Orchid Royal", Description: "Majestic purple orchids for luxury.", Price: 82.99, Image: "https://images.unsplash.com/photo-1566873535350-a3f5d4a804b7?w=400", Category: "Flowers", InStock: true},
	{ID: 69, Name: "Yellow Orchid Exotic", Description: "Sunny yellow orchids for brightness.", Price: 77.99, Image: "https://images.unsplash.com/photo-1566873535350-a3f5d4a804b7?w=400", Category: "Flowers", InStock: true},
	{ID: 70, Name: "Mixed Orchid Pot", Description: "Potted orchid mix for lasting beauty.", Price: 89.99, Image: "https://images.unsplash.com/photo-1566873535350-a3f5d4a804b7?w=400", Category: "Bouquets", InStock: true},
	{ID: 71, Name: "Bird of Paradise", Description: "Striking bird of paradise flowers.", Price: 62.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Flowers", InStock: true},
	{ID: 72, Name: "Anthurium Red", Description: "Glossy red anthuriums for modern style.", Price: 54.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Flowers", InStock: true},
	{ID: 73, Name: "Heliconia Exotic", Description: "Dramatic heliconia for tropical vibes.", Price: 58.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Flowers", InStock: true},
	{ID: 74, Name: "Ginger Flower", Description: "Unique ginger flowers for exotic arrangements.", Price: 49.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Flowers", InStock: true},
	{ID: 75, Name: "Plumeria Hawaiian", Description: "Fragrant Hawaiian plumeria flowers.", Price: 44.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Flowers", InStock: true},
	{ID: 76, Name: "Birthday Celebration Box", Description: "Festive arrangement for birthdays.", Price: 79.99, Image: "https://images.unsplash.com/photo-1561181286-d3fee7d55364?w=400", Category: "Gifts", InStock: true},
	{ID: 77, Name: "Anniversary Deluxe", Description: "Romantic arrangement for anniversaries.", Price: 99.99, Image: "https://images.unsplash.com/photo-1561181286-d3fee7d55364?w=400", Category: "Gifts", InStock: true},
	{ID: 78, Name: "Get Well Wishes", Description: "Cheerful bouquet for recovery wishes.", Price: 54.99, Image: "https://images.unsplash.com/photo-1487530811176-3780de880c2d?w=400", Category: "Bouquets", InStock: true},
	{ID: 79, Name: "Sympathy White", Description: "Respectful white arrangement for sympathy.", Price: 74.99, Image: "https://images.unsplash.com/photo-1559563362-c667ba5f5480?w=400", Category: "Gifts", InStock: true},
	{ID: 80, Name: "Congratulations Burst", Description: "Celebratory arrangement for achievements.", Price: 64.99, Image: "https://images.unsplash.com/photo-1487530811176-3780de880c2d?w=400", Category: "Bouquets", InStock: true},
	{ID: 81, Name: "Thank You Bouquet", Description: "Grateful arrangement to say thanks.", Price: 49.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Bouquets", InStock: true},
	{ID: 82, Name: "New Baby Pink", Description: "Soft pink flowers for baby girl.", Price: 56.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Gifts", InStock: true},
	{ID: 83, Name: "New Baby Blue", Description: "Gentle blue flowers for baby boy.", Price: 56.99, Image: "https://images.unsplash.com/photo-1468327768560-75b778cbb551?w=400", Category: "Gifts", InStock: true},
	{ID: 84, Name: "Mothers Day Special", Description: "Special arrangement for mothers.", Price: 69.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Gifts", InStock: true},
	{ID: 85, Name: "Valentine Romance", Description: "Romantic red roses for Valentine.", Price: 79.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Gifts", InStock: true},
	{ID: 86, Name: "Christmas Joy", Description: "Festive holiday arrangement.", Price: 72.99, Image: "https://images.unsplash.com/photo-1561181286-d3fee7d55364?w=400", Category: "Gifts", InStock: true},
	{ID: 87, Name: "Easter Spring", Description: "Fresh spring arrangement for Easter.", Price: 54.99, Image: "https://images.unsplash.com/photo-1520763185298-1b434c919102?w=400", Category: "Gifts", InStock: true},
	{ID: 88, Name: "Thanksgiving Harvest", Description: "Autumn harvest arrangement.", Price: 64.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Gifts", InStock: true},
	{ID: 89, Name: "Succulent Garden", Description: "Long-lasting succulent arrangement.", Price: 42.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Decoration", InStock: true},
	{ID: 90, Name: "Potted Peace Lily", Description: "Air-purifying peace lily plant.", Price: 39.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Decoration", InStock: true},
	{ID: 91, Name: "Mini Rose Plant", Description: "Potted miniature rose plant.", Price: 34.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Decoration", InStock: true},
	{ID: 92, Name: "Herb Garden Kit", Description: "Fresh herb plants for cooking.", Price: 29.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Decoration", InStock: true},
	{ID: 93, Name: "Bonsai Tree", Description: "Artistic bonsai tree for decor.", Price: 89.99, Image: "https://images.unsplash.com/photo-1508610048659-a06b669e3321?w=400", Category: "Decoration", InStock: true},
	{ID: 94, Name: "Wedding Bridal Bouquet", Description: "Elegant bridal bouquet for weddings.", Price: 149.99, Image: "https://images.unsplash.com/photo-1559563362-c667ba5f5480?w=400", Category: "Bouquets", InStock: true},
	{ID: 95, Name: "Bridesmaid Bouquet", Description: "Coordinating bridesmaid bouquet.", Price: 69.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Bouquets", InStock: true},
	{ID: 96, Name: "Boutonniere Classic", Description: "Classic boutonniere for groom.", Price: 19.99, Image: "https://images.unsplash.com/photo-1518882605630-8eb920bc4c49?w=400", Category: "Garlands", InStock: true},
	{ID: 97, Name: "Corsage Elegant", Description: "Elegant wrist corsage.", Price: 29.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Garlands", InStock: true},
	{ID: 98, Name: "Centerpiece Grand", Description: "Grand table centerpiece.", Price: 119.99, Image: "https://images.unsplash.com/photo-1561181286-d3fee7d55364?w=400", Category: "Decoration", InStock: true},
	{ID: 99, Name: "Flower Crown", Description: "Bohemian flower crown for events.", Price: 44.99, Image: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=400", Category: "Garlands", InStock: true},
	{ID: 100, Name: "Dried Flower Bundle", Description: "Long-lasting dried flower arrangement.", Price: 38.99, Image: "https://images.unsplash.com/photo-1468327768560-75b778cbb551?w=400", Category: "Decoration", InStock: true},
}
