// Package compose is the state machine behind the message compose dialog:
// pick a lead and channel, optionally request an AI draft, edit, dispatch.
//
// Sessions are values. Every transition returns a new Session and leaves the
// receiver untouched.
package compose

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

// State of a compose session
type State string

const (
	StateIdle         State = "idle"
	StateLeadSelected State = "lead_selected"
	StateDrafting     State = "drafting"
	StateDraftReady   State = "draft_ready"
	StateSent         State = "sent"
)

var (
	ErrNotOpen            = errors.New("compose dialog is not open")
	ErrNoLead             = errors.New("no lead selected")
	ErrInvalidChannel     = errors.New("invalid channel")
	ErrEmptyDraft         = errors.New("draft is empty")
	ErrGenerationInFlight = errors.New("draft generation already in progress")
	ErrAlreadySent        = errors.New("message already sent")
)

// Session is one open compose dialog
type Session struct {
	ID        string         `json:"id"`
	LeadID    string         `json:"leadId"`
	LeadName  string         `json:"leadName"`
	LeadPhone string         `json:"leadPhone"`
	Channel   models.Channel `json:"channel"`
	Draft     string         `json:"draft"`
	State     State          `json:"state"`
	// Token identifies the latest generation request
	Token int `json:"token"`
}

// Open starts a session for lead on channel with an empty draft
func Open(id string, lead models.Lead, channel models.Channel) (Session, error) {
	if lead.ID == "" {
		return Session{}, ErrNoLead
	}
	if !channel.IsValid() {
		return Session{}, fmt.Errorf("%w: %q", ErrInvalidChannel, channel)
	}
	return Session{
		ID:        id,
		LeadID:    lead.ID,
		LeadName:  lead.Name,
		LeadPhone: lead.Phone,
		Channel:   channel,
		State:     StateLeadSelected,
	}, nil
}

func (s Session) editable() bool {
	return s.State == StateLeadSelected || s.State == StateDraftReady
}

// CanGenerate reports whether an AI draft may be requested now
func (s Session) CanGenerate() bool {
	return s.editable()
}

// CanSend reports whether Dispatch would succeed
func (s Session) CanSend() bool {
	return s.editable() && s.LeadID != "" && s.Draft != ""
}

// Title is the dialog heading, e.g. "Send SMS"
func (s Session) Title() string {
	return "Send " + s.Channel.Label()
}

// Recipient is the dialog subheading, e.g. "To: John Doe (+15551234567)"
func (s Session) Recipient() string {
	return fmt.Sprintf("To: %s (%s)", s.LeadName, s.LeadPhone)
}

func (s Session) check() error {
	switch s.State {
	case StateIdle, "":
		return ErrNotOpen
	case StateSent:
		return ErrAlreadySent
	case StateDrafting:
		return ErrGenerationInFlight
	}
	return nil
}

// BeginDraft moves to Drafting and issues a new generation token
func (s Session) BeginDraft() (Session, error) {
	if err := s.check(); err != nil {
		return s, err
	}
	s.State = StateDrafting
	s.Token++
	return s, nil
}

// ResolveDraft installs a generated draft. It reports false, leaving the
// session as it was, when the session is not waiting for this token.
func (s Session) ResolveDraft(token int, text string) (Session, bool) {
	if s.State != StateDrafting || s.Token != token {
		return s, false
	}
	s.Draft = text
	s.State = stateForDraft(text)
	return s, true
}

// Edit replaces the draft with user-typed text
func (s Session) Edit(text string) (Session, error) {
	if err := s.check(); err != nil {
		return s, err
	}
	s.Draft = text
	s.State = stateForDraft(text)
	return s, nil
}

func stateForDraft(text string) State {
	if text == "" {
		return StateLeadSelected
	}
	return StateDraftReady
}

// Dispatch turns the draft into a sent Message
func (s Session) Dispatch(messageID string, now time.Time) (Session, models.Message, error) {
	if err := s.check(); err != nil {
		return s, models.Message{}, err
	}
	if s.LeadID == "" {
		return s, models.Message{}, ErrNoLead
	}
	if s.Draft == "" {
		return s, models.Message{}, ErrEmptyDraft
	}
	msg := models.Message{
		ID:        messageID,
		LeadID:    s.LeadID,
		Type:      s.Channel,
		Content:   s.Draft,
		Timestamp: now,
		Status:    models.MessageStatusSent,
	}
	s.State = StateSent
	s.Draft = ""
	return s, msg, nil
}

// SuccessNotice is the confirmation shown after dispatch
func SuccessNotice(channel models.Channel, leadName string) string {
	return fmt.Sprintf("Success: %s sent to %s", strings.ToUpper(string(channel)), leadName)
}
