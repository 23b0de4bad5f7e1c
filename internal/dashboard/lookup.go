package dashboard

import "github.com/gopalshiyal099-lang/Mahuva-property/internal/models"

// Placeholders shown when an id reference does not resolve
const (
	MissingPropertyLabel = "N/A"
	MissingLeadLabel     = "Unknown lead"
	// DraftPropertyFallback is the property name used in drafts for a lead with no resolvable interest
	DraftPropertyFallback = "our listings"
)

// FindProperty looks a property up by id
func FindProperty(properties []models.Property, id string) (models.Property, bool) {
	for _, p := range properties {
		if p.ID == id {
			return p, true
		}
	}
	return models.Property{}, false
}

// FindLead looks a lead up by id
func FindLead(leads []models.Lead, id string) (models.Lead, bool) {
	for _, l := range leads {
		if l.ID == id {
			return l, true
		}
	}
	return models.Lead{}, false
}

// PropertyTitle resolves a property id to its title, or fallback if it dangles
func PropertyTitle(properties []models.Property, id, fallback string) string {
	if p, ok := FindProperty(properties, id); ok {
		return p.Title
	}
	return fallback
}

// LeadName resolves a lead id to its name, or MissingLeadLabel
func LeadName(leads []models.Lead, id string) string {
	if l, ok := FindLead(leads, id); ok {
		return l.Name
	}
	return MissingLeadLabel
}
