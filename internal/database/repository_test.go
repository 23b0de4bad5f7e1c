package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/config"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

func sampleMessages() []models.Message {
	base := time.Date(2024, 3, 21, 9, 0, 0, 0, time.UTC)
	return []models.Message{
		{ID: "m1", LeadID: "l1", Type: models.ChannelSMS, Content: "first", Timestamp: base, Status: models.MessageStatusSent},
		{ID: "m2", LeadID: "l2", Type: models.ChannelWhatsApp, Content: "second", Timestamp: base.Add(time.Minute), Status: models.MessageStatusSent},
	}
}

// exerciseRepository checks the behaviour every backend shares
func exerciseRepository(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	props, err := repo.Properties(ctx)
	require.NoError(t, err)
	require.Len(t, props, 3)
	assert.Equal(t, models.SeedProperties()[0], props[0])

	leads, err := repo.Leads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "l1", leads[0].ID)
	assert.True(t, models.SeedLeads()[0].CreatedAt.Equal(leads[0].CreatedAt))

	msgs, err := repo.Messages(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	for _, m := range sampleMessages() {
		require.NoError(t, repo.SaveMessage(ctx, m))
	}

	msgs, err = repo.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m2", msgs[0].ID)
	assert.Equal(t, "m1", msgs[1].ID)
	assert.Equal(t, models.ChannelWhatsApp, msgs[0].Type)
	assert.Equal(t, "second", msgs[0].Content)
	assert.True(t, sampleMessages()[1].Timestamp.Equal(msgs[0].Timestamp))
}

func TestMemoryRepository(t *testing.T) {
	repo, err := New(context.Background(), config.StorageConfig{Type: "memory"})
	require.NoError(t, err)
	defer repo.Close()

	exerciseRepository(t, repo)
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemory(models.SeedProperties(), models.SeedLeads())
	props, err := repo.Properties(context.Background())
	require.NoError(t, err)
	props[0].Title = "changed"

	again, err := repo.Properties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Modern Sunset Villa", again[0].Title)
}

func TestSQLiteRepository(t *testing.T) {
	repo, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	defer repo.Close()

	exerciseRepository(t, repo)
}

func TestSQLiteSeedsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "estate.db")

	repo, err := New(ctx, config.StorageConfig{Type: "sqlite", SQLite: config.SQLiteConfig{Path: path}})
	require.NoError(t, err)
	require.NoError(t, repo.SaveMessage(ctx, sampleMessages()[0]))
	require.NoError(t, repo.Close())

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	props, err := reopened.Properties(ctx)
	require.NoError(t, err)
	assert.Len(t, props, 3)

	msgs, err := reopened.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "m1", msgs[0].ID)
}

func TestNewUnknownType(t *testing.T) {
	_, err := New(context.Background(), config.StorageConfig{Type: "cassandra"})
	assert.Error(t, err)
}

func TestSQLiteKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	defer repo.Close()

	// rows added after the seed sort before the seed by id and by created_at
	_, err = repo.conn.ExecContext(ctx, `
		INSERT INTO properties (id, title, address, price, type, status)
		VALUES ('p10', 'Harbor Condo', '1 Pier Rd', 900000, 'Sale', 'Available')`)
	require.NoError(t, err)
	_, err = repo.conn.ExecContext(ctx, `
		INSERT INTO leads (id, name, status, created_at)
		VALUES ('l0', 'Amy Adams', 'New', ?)`, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	props, err := repo.Properties(ctx)
	require.NoError(t, err)
	var propIDs []string
	for _, p := range props {
		propIDs = append(propIDs, p.ID)
	}
	assert.Equal(t, []string{"p1", "p2", "p3", "p10"}, propIDs)

	leads, err := repo.Leads(ctx)
	require.NoError(t, err)
	var leadIDs []string
	for _, l := range leads {
		leadIDs = append(leadIDs, l.ID)
	}
	assert.Equal(t, []string{"l1", "l2", "l0"}, leadIDs)
}

func TestSeedRowsNumberedInSeedOrder(t *testing.T) {
	props := seedProperties()
	require.Len(t, props, 3)
	for i, p := range props {
		assert.Equal(t, i+1, p.Seq)
		assert.Equal(t, models.SeedProperties()[i].ID, p.ID)
	}

	leads := seedLeads()
	require.Len(t, leads, 2)
	for i, l := range leads {
		assert.Equal(t, i+1, l.Seq)
		assert.Equal(t, models.SeedLeads()[i].ID, l.ID)
	}
}
