package dashboard

import "fmt"

// View is one of the navigable sections
type View string

const (
	ViewDashboard View = "dashboard"
	ViewInventory View = "inventory"
	ViewLeads     View = "leads"
	ViewMessages  View = "messages"
)

// Views lists the sections in navigation order
var Views = []View{ViewDashboard, ViewInventory, ViewLeads, ViewMessages}

// ParseView validates a section name
func ParseView(s string) (View, error) {
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// Label is the navigation label of the view
func (v View) Label() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewInventory:
		return "Inventory"
	case ViewLeads:
		return "Leads"
	case ViewMessages:
		return "Communications"
	default:
		return string(v)
	}
}

// Communications section is a placeholder for now
const (
	CommunicationsTitle   = "Communication Hub"
	CommunicationsMessage = "Consolidated messaging history coming soon."
)
