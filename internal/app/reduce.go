package app

import (
	"errors"
	"fmt"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/compose"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/dashboard"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

var (
	ErrLeadNotFound = errors.New("lead not found")
	// ErrStaleDraft means a generation result arrived for a session that has
	// since closed or moved on, and was dropped
	ErrStaleDraft   = errors.New("draft result no longer wanted")
	ErrUnknownEvent = errors.New("unknown event")
)

// Reduce applies ev to s. On error the returned state is s unchanged and no
// effects are produced.
func Reduce(s State, ev Event) (State, []Effect, error) {
	switch ev := ev.(type) {
	case Navigate:
		if _, err := dashboard.ParseView(string(ev.View)); err != nil {
			return s, nil, err
		}
		s.ActiveView = ev.View
		return s, nil, nil

	case SetPropertySearch:
		s.PropertySearch = ev.Term
		return s, nil, nil

	case SetLeadSearch:
		s.LeadSearch = ev.Term
		return s, nil, nil

	case OpenPropertyDialog:
		s.PropertyDialogOpen = true
		return s, nil, nil

	case DismissPropertyDialog:
		s.PropertyDialogOpen = false
		return s, nil, nil

	case OpenCompose:
		lead, ok := dashboard.FindLead(s.Leads, ev.LeadID)
		if !ok {
			return s, nil, fmt.Errorf("%w: %s", ErrLeadNotFound, ev.LeadID)
		}
		session, err := compose.Open(ev.SessionID, lead, ev.Channel)
		if err != nil {
			return s, nil, err
		}
		s.Compose = &session
		return s, nil, nil

	case EditDraft:
		if s.Compose == nil {
			return s, nil, compose.ErrNotOpen
		}
		session, err := s.Compose.Edit(ev.Text)
		if err != nil {
			return s, nil, err
		}
		s.Compose = &session
		return s, nil, nil

	case RequestDraft:
		if s.Compose == nil {
			return s, nil, compose.ErrNotOpen
		}
		session, err := s.Compose.BeginDraft()
		if err != nil {
			return s, nil, err
		}
		s.Compose = &session
		title := dashboard.DraftPropertyFallback
		if lead, ok := dashboard.FindLead(s.Leads, session.LeadID); ok {
			title = dashboard.PropertyTitle(s.Properties, lead.InterestedIn, dashboard.DraftPropertyFallback)
		}
		return s, []Effect{GenerateDraft{
			SessionID:     session.ID,
			Token:         session.Token,
			Channel:       session.Channel,
			LeadName:      session.LeadName,
			PropertyTitle: title,
		}}, nil

	case DraftResolved:
		if s.Compose == nil || s.Compose.ID != ev.SessionID {
			return s, nil, ErrStaleDraft
		}
		session, ok := s.Compose.ResolveDraft(ev.Token, ev.Text)
		if !ok {
			return s, nil, ErrStaleDraft
		}
		s.Compose = &session
		return s, nil, nil

	case SendCompose:
		if s.Compose == nil {
			return s, nil, compose.ErrNotOpen
		}
		if _, ok := dashboard.FindLead(s.Leads, s.Compose.LeadID); !ok {
			return s, nil, fmt.Errorf("%w: %s", ErrLeadNotFound, s.Compose.LeadID)
		}
		_, msg, err := s.Compose.Dispatch(ev.MessageID, ev.Now)
		if err != nil {
			return s, nil, err
		}
		notice := compose.SuccessNotice(msg.Type, s.Compose.LeadName)
		messages := make([]models.Message, 0, len(s.Messages)+1)
		messages = append(messages, msg)
		s.Messages = append(messages, s.Messages...)
		s.Compose = nil
		s.Notice = notice
		return s, []Effect{PersistMessage{Message: msg}, Notify{Text: notice}}, nil

	case CancelCompose:
		s.Compose = nil
		return s, nil, nil

	case DismissNotice:
		s.Notice = ""
		return s, nil, nil
	}
	return s, nil, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
}
