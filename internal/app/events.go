package app

import (
	"time"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/dashboard"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

// Event is a discrete user action or the completion of one
type Event interface {
	isEvent()
}

type Navigate struct{ View dashboard.View }

type SetPropertySearch struct{ Term string }

type SetLeadSearch struct{ Term string }

type OpenPropertyDialog struct{}

// DismissPropertyDialog closes the Add Property placeholder. Nothing is created.
type DismissPropertyDialog struct{}

type OpenCompose struct {
	SessionID string
	LeadID    string
	Channel   models.Channel
}

type EditDraft struct{ Text string }

// RequestDraft asks for an AI-generated draft for the open session
type RequestDraft struct{}

// DraftResolved carries a generation result back into the state
type DraftResolved struct {
	SessionID string
	Token     int
	Text      string
}

type SendCompose struct {
	MessageID string
	Now       time.Time
}

type CancelCompose struct{}

type DismissNotice struct{}

func (Navigate) isEvent()              {}
func (SetPropertySearch) isEvent()     {}
func (SetLeadSearch) isEvent()         {}
func (OpenPropertyDialog) isEvent()    {}
func (DismissPropertyDialog) isEvent() {}
func (OpenCompose) isEvent()           {}
func (EditDraft) isEvent()             {}
func (RequestDraft) isEvent()          {}
func (DraftResolved) isEvent()         {}
func (SendCompose) isEvent()           {}
func (CancelCompose) isEvent()         {}
func (DismissNotice) isEvent()         {}

// Effect is work the reducer asks the runner to do outside the state lock
type Effect interface {
	isEffect()
}

// GenerateDraft asks the generation client for a draft
type GenerateDraft struct {
	SessionID     string
	Token         int
	Channel       models.Channel
	LeadName      string
	PropertyTitle string
}

// PersistMessage records a dispatched message in the repository
type PersistMessage struct{ Message models.Message }

// Notify tells the user something happened
type Notify struct{ Text string }

func (GenerateDraft) isEffect()  {}
func (PersistMessage) isEffect() {}
func (Notify) isEffect()         {}
