package catalog

const smartTableDescription = `Made with high-quality melamine table, designed for durability, functionality, and a sleek aesthetic. Crafted from 15mm particle melamine board, 1.5"X1.5" powder coated steel frame and legs. This table is perfect for home, office, or commercial use.

Features:
✔ Sturdy & Durable – Made from premium 15mm melamine-coated particleboard for a smooth, scratch-resistant surface.
✔ Modern Design – Available in White, American Ash White, Black, and Teak finishes to match any décor.
✔ Easy to Clean – Resistant to stains and everyday wear.
✔ Multi-Purpose Use – Ideal for offices, workstations, study desks, conference rooms, and more.
✔ Customizable Sizes – Various dimensions available to suit your needs.

💳 Free Islandwide Delivery (COD) Available!`

const smartTableMaterial = "15mm Melamine Particleboard with Steel Frame"

var tableColors = []string{"White", "American Ash White", "Black", "Teak"}

// Seed returns the built-in catalog. Records are listed in display order;
// ids are stable because carts and reviews reference them.
func Seed() []Product {
	return []Product{
		{
			ID:               1,
			Name:             "5ft x 2ft Smart Table",
			ShortDescription: "Modern melamine computer table with steel frame",
			Description:      smartTableDescription,
			Price:            18200,
			Images: []string{
				"https://i.ibb.co/gMcKWyFk/elegance-dining-1.jpg",
				"https://i.ibb.co/Mkpp82D7/elegance-dining-2.jpg",
				"https://i.ibb.co/DnMk7x5/elegance-dining-3.jpg",
			},
			Categories: []string{"computer", "Modern", "Office"},
			Material:   smartTableMaterial,
			Dimensions: Dimensions{Width: 24, Length: 60, Height: 30},
			InStock:    true,
			Featured:   true,
			Rating:     4.8,
			Colors:     tableColors,
			Reviews: []Review{
				{ID: 1, UserName: "Sarath Kumara", Rating: 5, Comment: "Absolutely love this table! The quality is exceptional and it looks stunning in our office room.", Date: "2023-04-15"},
				{ID: 2, UserName: "Anuradha Perera", Rating: 4, Comment: "Beautiful table, exactly as described. Took off one star because delivery took longer than expected.", Date: "2025-05-22"},
			},
		},
		{
			ID:               2,
			Name:             "4ft x 2ft Smart Table",
			ShortDescription: "Modern melamine computer table with steel frame",
			Description:      smartTableDescription,
			Price:            16200,
			Images: []string{
				"https://u.cubeupload.com/Tablelkk/IMG20250606WA0017.jpg",
				"https://u.cubeupload.com/Tablelkk/Screenshot2025060516.jpg",
			},
			Categories: []string{"computer", "Modern", "office Room"},
			Material:   smartTableMaterial,
			Dimensions: Dimensions{Width: 24, Length: 48, Height: 30},
			InStock:    true,
			Featured:   true,
			Rating:     4.9,
			Colors:     tableColors,
			Reviews: []Review{
				{ID: 3, UserName: "Nuwan Bandara", Rating: 5, Comment: "Perfect size for my home office. Solid frame and easy to assemble.", Date: "2024-11-02"},
			},
		},
		{
			ID:               3,
			Name:             "3ft x 2ft Smart Table",
			ShortDescription: "Modern melamine study desk with steel frame",
			Description:      smartTableDescription,
			Price:            14600,
			Images: []string{
				"https://i.ibb.co/997VBVdX/desk-1.jpg",
				"https://i.ibb.co/LXkYMk1S/desk-2.jpg",
			},
			Categories: []string{"Office", "Modern", "Desk"},
			Material:   smartTableMaterial,
			Dimensions: Dimensions{Width: 24, Length: 36, Height: 30},
			InStock:    true,
			Featured:   false,
			Rating:     4.9,
			Colors:     tableColors,
			Reviews: []Review{
				{ID: 4, UserName: "Dilani Fernando", Rating: 5, Comment: "Great study desk for my daughter. Smooth surface, no sharp edges.", Date: "2025-01-18"},
				{ID: 5, UserName: "Kasun Silva", Rating: 5, Comment: "Value for money. The teak finish matches our furniture nicely.", Date: "2025-03-09"},
			},
		},
		{
			ID:               4,
			Name:             "2.5ft x 2ft Smart Table",
			ShortDescription: "Modern melamine office table with steel frame",
			Description:      smartTableDescription,
			Price:            12900,
			Images: []string{
				"https://u.cubeupload.com/Tablelkk/compact-1.jpg",
			},
			Categories: []string{"office", "Modern", "Living Room"},
			Material:   smartTableMaterial,
			Dimensions: Dimensions{Width: 24, Length: 32, Height: 30},
			InStock:    true,
			Featured:   true,
			Rating:     4.7,
			Colors:     tableColors,
			Reviews: []Review{
				{ID: 6, UserName: "Ruwan Jayasinghe", Rating: 5, Comment: "Compact and sturdy. Fits the corner of my room perfectly.", Date: "2024-08-27"},
			},
		},
		{
			ID:               5,
			Name:             "Modern L-Shaped Tables",
			ShortDescription: "Modern melamine L-Shaped table with steel frame",
			Description:      smartTableDescription,
			Price:            22000,
			Images: []string{
				"https://u.cubeupload.com/Tablelkk/lshape-1.jpg",
			},
			Categories: []string{"Conference", "Modern", "Office"},
			Material:   smartTableMaterial,
			Dimensions: Dimensions{Width: 24, Length: 48, Height: 36},
			InStock:    true,
			Featured:   false,
			Rating:     4.7,
			Colors:     tableColors,
			Reviews: []Review{
				{ID: 7, UserName: "Chaminda Weerasinghe", Rating: 5, Comment: "Ordered two for our startup office. Delivery was quick and the tables look premium.", Date: "2025-06-14"},
			},
		},
		{
			ID:               6,
			Name:             "Modern Dining Table",
			ShortDescription: "Modern melamine dining table with steel frame",
			Description:      smartTableDescription,
			Price:            16500,
			Images: []string{
				"https://images.unsplash.com/photo-1631455853929-ba06397f9a69?auto=format&fit=crop&w=1097&q=80",
			},
			Categories: []string{"dining Table", "Modern", "Living Room"},
			Material:   smartTableMaterial,
			Dimensions: Dimensions{Width: 36, Length: 60, Height: 30},
			InStock:    true,
			Featured:   false,
			Rating:     4.6,
			Colors:     tableColors,
			Reviews: []Review{
				{ID: 8, UserName: "Ishara Gunawardena", Rating: 4, Comment: "Nice dining table, seats six comfortably. Wipe-clean surface is a plus with kids.", Date: "2025-02-03"},
			},
		},
	}
}
