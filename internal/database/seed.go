package database

import "github.com/gopalshiyal099-lang/Mahuva-property/internal/models"

// seedProperties numbers the demo properties in seed order
func seedProperties() []models.Property {
	properties := models.SeedProperties()
	for i := range properties {
		properties[i].Seq = i + 1
	}
	return properties
}

// seedLeads numbers the demo leads in seed order
func seedLeads() []models.Lead {
	leads := models.SeedLeads()
	for i := range leads {
		leads[i].Seq = i + 1
	}
	return leads
}
