// Package app holds the dashboard's application state and the reducer that
// applies user events to it.
package app

import (
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/compose"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/dashboard"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

// State is the whole back-office state. Collections are never modified in
// place: a change installs a new slice, so a State copy is a safe snapshot.
type State struct {
	ActiveView         dashboard.View    `json:"activeView"`
	PropertySearch     string            `json:"propertySearch"`
	LeadSearch         string            `json:"leadSearch"`
	PropertyDialogOpen bool              `json:"propertyDialogOpen"`
	Properties         []models.Property `json:"properties"`
	Leads              []models.Lead     `json:"leads"`
	Messages           []models.Message  `json:"messages"`
	Compose            *compose.Session  `json:"compose,omitempty"`
	Notice             string            `json:"notice,omitempty"`
}

// NewState builds the initial state from loaded collections
func NewState(properties []models.Property, leads []models.Lead, messages []models.Message) State {
	if messages == nil {
		messages = []models.Message{}
	}
	return State{
		ActiveView: dashboard.ViewDashboard,
		Properties: properties,
		Leads:      leads,
		Messages:   messages,
	}
}

// Stats derives the dashboard statistics
func (s State) Stats() dashboard.Stats {
	return dashboard.ComputeStats(s.Properties, s.Leads)
}

// Inventory is the property list under the current inventory search
func (s State) Inventory() []models.Property {
	return dashboard.FilterProperties(s.Properties, s.PropertySearch)
}

// FilteredLeads is the lead list under the current lead search
func (s State) FilteredLeads() []models.Lead {
	return dashboard.FilterLeads(s.Leads, s.LeadSearch)
}

// InterestTitle is the title of the property a lead is interested in, or "N/A"
func (s State) InterestTitle(l models.Lead) string {
	return dashboard.PropertyTitle(s.Properties, l.InterestedIn, dashboard.MissingPropertyLabel)
}
