package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

// FormatInventoryValue renders a dollar amount in millions, e.g. "$1.9M".
// Halves round up.
func FormatInventoryValue(total float64) string {
	return fmt.Sprintf("$%.1fM", math.Round(total/100000)/10)
}

// FormatPrice renders a sale price in thousands ("$1250k", halves round up)
// and a rental as a monthly rate ("$4500/mo")
func FormatPrice(p models.Property) string {
	if p.IsSale() {
		return fmt.Sprintf("$%.0fk", math.Round(p.Price/1000))
	}
	return "$" + strconv.FormatFloat(p.Price, 'f', -1, 64) + "/mo"
}

// FormatConversionRate renders the conversion stat, e.g. "12.5%"
func FormatConversionRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}

// Initials returns the uppercase first letter of each word of name
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}

// ActivityLine describes a dispatched message, e.g. "SMS sent to John Doe"
func ActivityLine(m models.Message, leads []models.Lead) string {
	return fmt.Sprintf("%s sent to %s", strings.ToUpper(string(m.Type)), LeadName(leads, m.LeadID))
}
