package models

import "time"

// SeedProperties returns the demo inventory the dashboard starts with
func SeedProperties() []Property {
	return []Property{
		{
			ID:          "p1",
			Title:       "Modern Sunset Villa",
			Address:     "123 Ocean Drive, Miami, FL",
			Price:       1250000,
			Type:        PropertyTypeSale,
			Status:      PropertyStatusAvailable,
			Beds:        4,
			Baths:       3,
			Sqft:        2800,
			ImageURL:    "https://picsum.photos/seed/villa1/800/600",
			Description: "A stunning modern villa with ocean views and private pool.",
		},
		{
			ID:          "p2",
			Title:       "Downtown Loft Apartment",
			Address:     "789 Main St, New York, NY",
			Price:       4500,
			Type:        PropertyTypeRental,
			Status:      PropertyStatusAvailable,
			Beds:        2,
			Baths:       2,
			Sqft:        1200,
			ImageURL:    "https://picsum.photos/seed/loft1/800/600",
			Description: "Chic industrial loft in the heart of downtown, featuring high ceilings.",
		},
		{
			ID:          "p3",
			Title:       "Family Suburban Home",
			Address:     "456 Oak Lane, Austin, TX",
			Price:       650000,
			Type:        PropertyTypeSale,
			Status:      PropertyStatusPending,
			Beds:        3,
			Baths:       2.5,
			Sqft:        2100,
			ImageURL:    "https://picsum.photos/seed/home1/800/600",
			Description: "Perfect family home with a spacious backyard and modern kitchen.",
		},
	}
}

// SeedLeads returns the demo leads in seed order
func SeedLeads() []Lead {
	return []Lead{
		{
			ID:           "l1",
			Name:         "John Doe",
			Email:        "john@example.com",
			Phone:        "+15551234567",
			Status:       LeadStatusNew,
			InterestedIn: "p1",
			Source:       "Zillow",
			CreatedAt:    time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "l2",
			Name:         "Sarah Smith",
			Email:        "sarah@test.com",
			Phone:        "+15559876543",
			Status:       LeadStatusContacted,
			InterestedIn: "p2",
			Source:       "Website",
			CreatedAt:    time.Date(2024, 3, 19, 14, 30, 0, 0, time.UTC),
		},
	}
}
