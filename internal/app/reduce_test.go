package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/compose"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/dashboard"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

func seedState() State {
	return NewState(models.SeedProperties(), models.SeedLeads(), nil)
}

func mustReduce(t *testing.T, s State, ev Event) (State, []Effect) {
	t.Helper()
	next, effects, err := Reduce(s, ev)
	require.NoError(t, err)
	return next, effects
}

func TestNavigateAndSearch(t *testing.T) {
	s := seedState()
	assert.Equal(t, dashboard.ViewDashboard, s.ActiveView)

	s, _ = mustReduce(t, s, Navigate{View: dashboard.ViewInventory})
	assert.Equal(t, dashboard.ViewInventory, s.ActiveView)

	_, _, err := Reduce(s, Navigate{View: "settings"})
	assert.Error(t, err)

	s, _ = mustReduce(t, s, SetPropertySearch{Term: "LOFT"})
	require.Len(t, s.Inventory(), 1)
	assert.Equal(t, "p2", s.Inventory()[0].ID)

	s, _ = mustReduce(t, s, SetLeadSearch{Term: "john"})
	assert.Len(t, s.FilteredLeads(), 1)
}

func TestPropertyDialogCreatesNothing(t *testing.T) {
	s := seedState()
	s, _ = mustReduce(t, s, OpenPropertyDialog{})
	assert.True(t, s.PropertyDialogOpen)
	s, _ = mustReduce(t, s, DismissPropertyDialog{})
	assert.False(t, s.PropertyDialogOpen)
	assert.Len(t, s.Properties, 3)
}

func TestOpenComposeUnknownLead(t *testing.T) {
	s := seedState()
	next, effects, err := Reduce(s, OpenCompose{SessionID: "s1", LeadID: "l9", Channel: models.ChannelSMS})
	assert.ErrorIs(t, err, ErrLeadNotFound)
	assert.Nil(t, effects)
	assert.Nil(t, next.Compose)
}

func TestRequestDraftResolvesInterest(t *testing.T) {
	s := seedState()
	s, _ = mustReduce(t, s, OpenCompose{SessionID: "s1", LeadID: "l1", Channel: models.ChannelSMS})

	s, effects := mustReduce(t, s, RequestDraft{})
	require.Len(t, effects, 1)
	assert.Equal(t, GenerateDraft{
		SessionID:     "s1",
		Token:         1,
		Channel:       models.ChannelSMS,
		LeadName:      "John Doe",
		PropertyTitle: "Modern Sunset Villa",
	}, effects[0])
	assert.Equal(t, compose.StateDrafting, s.Compose.State)

	_, _, err := Reduce(s, RequestDraft{})
	assert.ErrorIs(t, err, compose.ErrGenerationInFlight)
}

func TestRequestDraftDanglingInterest(t *testing.T) {
	s := seedState()
	s.Properties = nil
	s, _ = mustReduce(t, s, OpenCompose{SessionID: "s1", LeadID: "l2", Channel: models.ChannelWhatsApp})

	_, effects := mustReduce(t, s, RequestDraft{})
	require.Len(t, effects, 1)
	assert.Equal(t, dashboard.DraftPropertyFallback, effects[0].(GenerateDraft).PropertyTitle)
}

func TestDraftResolvedAfterCancelIsDropped(t *testing.T) {
	s := seedState()
	s, _ = mustReduce(t, s, OpenCompose{SessionID: "s1", LeadID: "l1", Channel: models.ChannelSMS})
	s, _ = mustReduce(t, s, RequestDraft{})
	s, _ = mustReduce(t, s, CancelCompose{})

	next, _, err := Reduce(s, DraftResolved{SessionID: "s1", Token: 1, Text: "late"})
	assert.ErrorIs(t, err, ErrStaleDraft)
	assert.Nil(t, next.Compose)

	// a new dialog for another lead is not touched either
	s, _ = mustReduce(t, s, OpenCompose{SessionID: "s2", LeadID: "l2", Channel: models.ChannelSMS})
	next, _, err = Reduce(s, DraftResolved{SessionID: "s1", Token: 1, Text: "late"})
	assert.ErrorIs(t, err, ErrStaleDraft)
	assert.Empty(t, next.Compose.Draft)
	assert.Equal(t, compose.StateLeadSelected, next.Compose.State)
}

func TestSendEmptyDraftKeepsDialogOpen(t *testing.T) {
	s := seedState()
	s, _ = mustReduce(t, s, OpenCompose{SessionID: "s1", LeadID: "l1", Channel: models.ChannelSMS})

	next, effects, err := Reduce(s, SendCompose{MessageID: "m1", Now: time.Now()})
	assert.ErrorIs(t, err, compose.ErrEmptyDraft)
	assert.Nil(t, effects)
	assert.Empty(t, next.Messages)
	require.NotNil(t, next.Compose)
	assert.Equal(t, "s1", next.Compose.ID)
}

func TestSendPrependsMessage(t *testing.T) {
	now := time.Date(2024, 3, 21, 9, 0, 0, 0, time.UTC)
	prior := models.Message{ID: "m0", LeadID: "l2", Type: models.ChannelWhatsApp, Content: "earlier", Status: models.MessageStatusSent}
	s := NewState(models.SeedProperties(), models.SeedLeads(), []models.Message{prior})
	original := s.Messages

	s, _ = mustReduce(t, s, OpenCompose{SessionID: "s1", LeadID: "l1", Channel: models.ChannelSMS})
	s, _ = mustReduce(t, s, EditDraft{Text: "Test"})
	s, effects := mustReduce(t, s, SendCompose{MessageID: "m1", Now: now})

	require.Len(t, s.Messages, 2)
	first := s.Messages[0]
	assert.Equal(t, "l1", first.LeadID)
	assert.Equal(t, models.ChannelSMS, first.Type)
	assert.Equal(t, "Test", first.Content)
	assert.Equal(t, models.MessageStatusSent, first.Status)
	assert.Equal(t, now, first.Timestamp)
	assert.Equal(t, prior, s.Messages[1])

	assert.Nil(t, s.Compose)
	assert.Equal(t, "Success: SMS sent to John Doe", s.Notice)
	assert.Equal(t, []Effect{PersistMessage{Message: first}, Notify{Text: s.Notice}}, effects)

	require.Len(t, original, 1, "previous collection is left intact")
	assert.Equal(t, prior, original[0])
}

func TestEditWithoutDialog(t *testing.T) {
	_, _, err := Reduce(seedState(), EditDraft{Text: "x"})
	assert.ErrorIs(t, err, compose.ErrNotOpen)
}

func TestDismissNotice(t *testing.T) {
	s := seedState()
	s.Notice = "Success"
	s, _ = mustReduce(t, s, DismissNotice{})
	assert.Empty(t, s.Notice)
}
