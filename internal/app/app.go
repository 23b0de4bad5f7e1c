package app

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/compose"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

// Drafter produces a message draft. It must not fail; a failed generation
// comes back as fallback text.
type Drafter interface {
	DraftMessage(ctx context.Context, channel models.Channel, leadName, propertyName, draftContext string) string
}

// MessageStore records dispatched messages
type MessageStore interface {
	SaveMessage(ctx context.Context, m models.Message) error
}

// Notifier delivers user-facing notices
type Notifier interface {
	Notify(text string)
}

// LogNotifier writes notices to the standard logger
type LogNotifier struct{}

func (LogNotifier) Notify(text string) {
	log.Printf("[notify] %s", text)
}

// App runs events against State one at a time
type App struct {
	mu    sync.Mutex
	state State

	drafter      Drafter
	store        MessageStore
	notifier     Notifier
	draftContext string
	now          func() time.Time
	newID        func() string
}

// Option configures an App
type Option func(*App)

// WithMessageStore writes every dispatched message through to store
func WithMessageStore(store MessageStore) Option {
	return func(a *App) { a.store = store }
}

func WithNotifier(n Notifier) Option {
	return func(a *App) { a.notifier = n }
}

// WithDraftContext sets the context phrase passed to the drafter
func WithDraftContext(c string) Option {
	return func(a *App) { a.draftContext = c }
}

// WithClock overrides time.Now for message timestamps
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithIDGenerator overrides the UUID generator for sessions and messages
func WithIDGenerator(newID func() string) Option {
	return func(a *App) { a.newID = newID }
}

func New(initial State, drafter Drafter, opts ...Option) *App {
	a := &App{
		state:    initial,
		drafter:  drafter,
		notifier: LogNotifier{},
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State returns a snapshot of the current state
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Dispatch applies ev and runs the resulting effects. A GenerateDraft effect
// blocks the caller until the draft is resolved; the state stays readable
// and writable meanwhile. Cancelling ctx does not abort a generation already
// in flight. When an effect fails the returned state is the one current
// after the failure.
func (a *App) Dispatch(ctx context.Context, ev Event) (State, error) {
	next, effects, err := a.apply(ev)
	if err != nil {
		return next, err
	}
	for _, eff := range effects {
		s, err := a.run(ctx, eff)
		if err != nil {
			return *s, err
		}
		if s != nil {
			next = *s
		}
	}
	return next, nil
}

func (a *App) apply(ev Event) (State, []Effect, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	next, effects, err := Reduce(a.state, ev)
	if err != nil {
		return a.state, nil, err
	}
	a.state = next
	return next, effects, nil
}

func (a *App) run(ctx context.Context, eff Effect) (*State, error) {
	switch eff := eff.(type) {
	case GenerateDraft:
		// the session stays open when the caller goes away, so the draft is
		// still wanted
		text := a.drafter.DraftMessage(context.WithoutCancel(ctx), eff.Channel, eff.LeadName, eff.PropertyTitle, a.draftContext)
		next, _, err := a.apply(DraftResolved{SessionID: eff.SessionID, Token: eff.Token, Text: text})
		if err != nil {
			log.Printf("[compose] dropped draft for session %s: %v", eff.SessionID, err)
			return &next, err
		}
		return &next, nil
	case PersistMessage:
		if a.store == nil {
			return nil, nil
		}
		if err := a.store.SaveMessage(ctx, eff.Message); err != nil {
			log.Printf("[compose] failed to persist message %s: %v", eff.Message.ID, err)
		}
	case Notify:
		if a.notifier != nil {
			a.notifier.Notify(eff.Text)
		}
	}
	return nil, nil
}

// OpenCompose opens the compose dialog for a lead
func (a *App) OpenCompose(ctx context.Context, leadID string, channel models.Channel) (compose.Session, error) {
	s, err := a.Dispatch(ctx, OpenCompose{SessionID: a.newID(), LeadID: leadID, Channel: channel})
	if err != nil {
		return compose.Session{}, err
	}
	return *s.Compose, nil
}

// GenerateDraft requests an AI draft for the open dialog and waits for it
func (a *App) GenerateDraft(ctx context.Context) (compose.Session, error) {
	s, err := a.Dispatch(ctx, RequestDraft{})
	if err != nil {
		return compose.Session{}, err
	}
	if s.Compose == nil {
		return compose.Session{}, ErrStaleDraft
	}
	return *s.Compose, nil
}

// EditDraft replaces the draft text of the open dialog
func (a *App) EditDraft(ctx context.Context, text string) (compose.Session, error) {
	s, err := a.Dispatch(ctx, EditDraft{Text: text})
	if err != nil {
		return compose.Session{}, err
	}
	return *s.Compose, nil
}

// Send dispatches the draft of the open dialog and returns the sent message
// with the confirmation notice
func (a *App) Send(ctx context.Context) (models.Message, string, error) {
	s, err := a.Dispatch(ctx, SendCompose{MessageID: a.newID(), Now: a.now()})
	if err != nil {
		return models.Message{}, "", err
	}
	return s.Messages[0], s.Notice, nil
}

// CancelCompose closes the dialog and discards the draft
func (a *App) CancelCompose(ctx context.Context) error {
	_, err := a.Dispatch(ctx, CancelCompose{})
	return err
}
