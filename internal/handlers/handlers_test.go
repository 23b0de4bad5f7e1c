package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/app"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/ratelimit"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/scheduler"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/search"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedDrafter string

func (d fixedDrafter) DraftMessage(ctx context.Context, channel models.Channel, leadName, propertyName, draftContext string) string {
	return string(d)
}

type fakeSearcher struct {
	got  search.FilterParams
	hits []models.Property
	err  error
}

func (f *fakeSearcher) FilterSearch(params search.FilterParams) ([]models.Property, error) {
	f.got = params
	return f.hits, f.err
}

type fakeReporter struct{ runs int }

func (f *fakeReporter) RunNow() scheduler.Report {
	f.runs++
	return scheduler.Report{MessagesSent: 7}
}

func newTestRouter(t *testing.T, opts ...Option) (*gin.Engine, *app.App) {
	t.Helper()
	a := app.New(
		app.NewState(models.SeedProperties(), models.SeedLeads(), nil),
		fixedDrafter("Hi John, still interested in the villa?"),
		app.WithNotifier(app.LogNotifier{}),
		app.WithClock(func() time.Time { return time.Date(2024, 3, 21, 9, 0, 0, 0, time.UTC) }),
	)
	return NewRouter(New(a, opts...), nil, false), a
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboard(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Stats struct {
			TotalValue     float64 `json:"totalValue"`
			ActiveRentals  int     `json:"activeRentals"`
			TotalLeads     int     `json:"totalLeads"`
			ConversionRate float64 `json:"conversionRate"`
		} `json:"stats"`
		Cards       []statCard `json:"cards"`
		RecentLeads []struct {
			ID       string `json:"id"`
			Initials string `json:"initials"`
			Interest string `json:"interest"`
		} `json:"recentLeads"`
		RecentActivity []activityRow `json:"recentActivity"`
	}](t, w)

	assert.Equal(t, 1900000.0, body.Stats.TotalValue)
	assert.Equal(t, 1, body.Stats.ActiveRentals)
	assert.Equal(t, 2, body.Stats.TotalLeads)
	assert.Equal(t, 12.5, body.Stats.ConversionRate)
	assert.Equal(t, statCard{Label: "Inventory Value", Value: "$1.9M"}, body.Cards[0])
	assert.Equal(t, statCard{Label: "Conversion Rate", Value: "12.5%"}, body.Cards[3])
	require.Len(t, body.RecentLeads, 2)
	assert.Equal(t, "JD", body.RecentLeads[0].Initials)
	assert.Equal(t, "Modern Sunset Villa", body.RecentLeads[0].Interest)
	assert.Empty(t, body.RecentActivity)
}

func TestDashboardChart(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/dashboard/chart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestSetView(t *testing.T) {
	r, a := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/view", gin.H{"view": "messages"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Communications", decode[map[string]string](t, w)["label"])

	w = doJSON(t, r, http.MethodPut, "/api/view", gin.H{"view": "settings"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "messages", string(a.State().ActiveView))
}

func TestInventorySearch(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/inventory/search", searchTermRequest{Term: "austin"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/inventory", nil)
	body := decode[struct {
		Term       string        `json:"term"`
		Count      int           `json:"count"`
		Properties []propertyRow `json:"properties"`
	}](t, w)
	assert.Equal(t, "austin", body.Term)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "p3", body.Properties[0].ID)
	assert.Equal(t, "$650k", body.Properties[0].DisplayPrice)
}

func TestGetProperty(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/properties/p2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "$4500/mo", decode[propertyRow](t, w).DisplayPrice)

	w = doJSON(t, r, http.MethodGet, "/api/properties/p9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPropertyDialog(t *testing.T) {
	r, a := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/property-dialog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, a.State().PropertyDialogOpen)

	w = doJSON(t, r, http.MethodDelete, "/api/property-dialog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, a.State().PropertyDialogOpen)
	assert.Len(t, a.State().Properties, 3)
}

func TestLeadsQueryOverridesStoredTerm(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPut, "/api/leads/search", searchTermRequest{Term: "sarah"})

	w := doJSON(t, r, http.MethodGet, "/api/leads", nil)
	assert.Equal(t, 1, decode[struct {
		Count int `json:"count"`
	}](t, w).Count)

	w = doJSON(t, r, http.MethodGet, "/api/leads?q=", nil)
	assert.Equal(t, 2, decode[struct {
		Count int `json:"count"`
	}](t, w).Count)
}

func TestComposeFlow(t *testing.T) {
	r, a := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/leads/l1/compose", gin.H{"channel": "SMS"})
	require.Equal(t, http.StatusCreated, w.Code)
	opened := decode[sessionView](t, w)
	assert.Equal(t, "Send SMS", opened.Title)
	assert.Equal(t, "To: John Doe (+15551234567)", opened.Recipient)
	assert.False(t, opened.CanSend)

	// nothing to send yet
	w = doJSON(t, r, http.MethodPost, "/api/compose/send", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/compose/generate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	generated := decode[sessionView](t, w)
	assert.Equal(t, "Hi John, still interested in the villa?", generated.Draft)
	assert.True(t, generated.CanSend)

	w = doJSON(t, r, http.MethodPut, "/api/compose/draft", gin.H{"content": "Test"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/compose/send", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	sent := decode[struct {
		Message models.Message `json:"message"`
		Notice  string         `json:"notice"`
	}](t, w)
	assert.Equal(t, "Test", sent.Message.Content)
	assert.Equal(t, models.ChannelSMS, sent.Message.Type)
	assert.Equal(t, "Success: SMS sent to John Doe", sent.Notice)

	w = doJSON(t, r, http.MethodGet, "/api/compose", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/messages", nil)
	messages := decode[struct {
		Messages []activityRow `json:"messages"`
	}](t, w)
	require.Len(t, messages.Messages, 1)
	assert.Equal(t, "SMS sent to John Doe", messages.Messages[0].Line)
	assert.Len(t, a.State().Messages, 1)
}

func TestComposeErrors(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/leads/l9/compose", gin.H{"channel": "sms"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/leads/l1/compose", gin.H{"channel": "email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/compose/draft", gin.H{"content": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/compose", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSearchDisabled(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/search?q=villa", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSearchPassesFilters(t *testing.T) {
	s := &fakeSearcher{hits: models.SeedProperties()[:1]}
	r, _ := newTestRouter(t, WithSearcher(s))

	w := doJSON(t, r, http.MethodGet, "/api/search?q=villa&type=Sale&status=Available,Pending&min_price=100000&limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "villa", s.got.Query)
	assert.Equal(t, models.PropertyTypeSale, s.got.Type)
	assert.Equal(t, []models.PropertyStatus{models.PropertyStatusAvailable, models.PropertyStatusPending}, s.got.Statuses)
	require.NotNil(t, s.got.MinPrice)
	assert.Equal(t, 100000.0, *s.got.MinPrice)
	assert.Equal(t, int64(5), s.got.Limit)

	w = doJSON(t, r, http.MethodGet, "/api/search?min_price=cheap", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.err = errors.New("meilisearch down")
	w = doJSON(t, r, http.MethodGet, "/api/search?q=villa", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRateLimitStats(t *testing.T) {
	r, _ := newTestRouter(t, WithRateLimiter(ratelimit.NewRateLimiter(10, 100, 1000, true)))
	w := doJSON(t, r, http.MethodGet, "/api/ratelimit/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[ratelimit.Stats](t, w)
	assert.True(t, stats.Enabled)
	assert.Equal(t, 10, stats.LimitPerMinute)
}

func TestRunReport(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/admin/report/run", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	rep := &fakeReporter{}
	r, _ = newTestRouter(t, WithReporter(rep))
	w = doJSON(t, r, http.MethodPost, "/api/admin/report/run", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, rep.runs)
	assert.Equal(t, 7, decode[scheduler.Report](t, w).MessagesSent)
}

func TestCommunications(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/communications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Communication Hub", decode[map[string]string](t, w)["title"])
}

type ctxRecordingDrafter struct{ err error }

func (d *ctxRecordingDrafter) DraftMessage(ctx context.Context, channel models.Channel, leadName, propertyName, draftContext string) string {
	d.err = ctx.Err()
	return "generated"
}

func TestGenerateSurvivesClientDisconnect(t *testing.T) {
	drafter := &ctxRecordingDrafter{}
	a := app.New(app.NewState(models.SeedProperties(), models.SeedLeads(), nil), drafter)
	r := NewRouter(New(a), nil, false)

	w := doJSON(t, r, http.MethodPost, "/api/leads/l1/compose", gin.H{"channel": "sms"})
	require.Equal(t, http.StatusCreated, w.Code)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/compose/generate", nil).WithContext(ctx)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, drafter.err)
	assert.Equal(t, "generated", a.State().Compose.Draft)
}
