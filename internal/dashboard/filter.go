package dashboard

import (
	"strings"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

// FilterProperties keeps properties whose title or address contains term,
// ignoring case. An empty term keeps everything.
func FilterProperties(properties []models.Property, term string) []models.Property {
	needle := strings.ToLower(term)
	out := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if containsFold(p.Title, needle) || containsFold(p.Address, needle) {
			out = append(out, p)
		}
	}
	return out
}

// FilterLeads keeps leads whose name, email or phone contains term, ignoring case
func FilterLeads(leads []models.Lead, term string) []models.Lead {
	needle := strings.ToLower(term)
	out := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if containsFold(l.Name, needle) || containsFold(l.Email, needle) || containsFold(l.Phone, needle) {
			out = append(out, l)
		}
	}
	return out
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

// RecentLeads returns the first n leads in their stored order
func RecentLeads(leads []models.Lead, n int) []models.Lead {
	return head(leads, n)
}

// RecentMessages returns the first n messages of the log (newest first)
func RecentMessages(messages []models.Message, n int) []models.Message {
	return head(messages, n)
}

func head[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
