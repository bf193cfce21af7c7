package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalystvc/lead-capture-service/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "leads.db")
	repo, err := NewRepository(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	require.NoError(t, repo.Init(context.Background()))

	return repo
}

func sampleLead() *domain.Lead {
	return &domain.Lead{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Company:     "Analytical Engines Ltd",
		Role:        "CTO",
		Phone:       "+1-555-0100",
		Topic:       "infra",
		Notes:       "Interested in an infrastructure audit",
		Consent:     true,
		SourcePage:  "/services/infra",
		UTMSource:   "google",
		UTMMedium:   "cpc",
		UTMCampaign: "q3_launch",
		UTMTerm:     "ai+infrastructure",
		UTMContent:  "ad_variant_b",
	}
}

func TestRepository_InitIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, sampleLead())
	require.NoError(t, err)

	// A second Init must not truncate or alter existing rows.
	require.NoError(t, repo.Init(ctx))

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	leads, err := repo.ListAll(ctx)
	assert.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Ada", leads[0].FirstName)
}

func TestRepository_InsertAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id1, err := repo.Insert(ctx, sampleLead())
	require.NoError(t, err)

	lead2 := sampleLead()
	lead2.FirstName = "Grace"
	id2, err := repo.Insert(ctx, lead2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)
	assert.Greater(t, id2, id1)
}

func TestRepository_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	in := sampleLead()
	id, err := repo.Insert(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, in.SubmissionTime)

	leads, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	got := leads[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, in.FirstName, got.FirstName)
	assert.Equal(t, in.LastName, got.LastName)
	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, in.Company, got.Company)
	assert.Equal(t, in.Role, got.Role)
	assert.Equal(t, in.Phone, got.Phone)
	assert.Equal(t, in.Topic, got.Topic)
	assert.Equal(t, in.Notes, got.Notes)
	assert.Equal(t, in.Consent, got.Consent)
	assert.Equal(t, in.SourcePage, got.SourcePage)
	assert.Equal(t, in.UTMSource, got.UTMSource)
	assert.Equal(t, in.UTMMedium, got.UTMMedium)
	assert.Equal(t, in.UTMCampaign, got.UTMCampaign)
	assert.Equal(t, in.UTMTerm, got.UTMTerm)
	assert.Equal(t, in.UTMContent, got.UTMContent)
	assert.Equal(t, in.SubmissionTime, got.SubmissionTime)
}

func TestRepository_RoundTrip_OptionalFieldsEmpty(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	in := &domain.Lead{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Topic:     "infra",
		Consent:   true,
	}
	_, err := repo.Insert(ctx, in)
	require.NoError(t, err)

	leads, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	assert.Empty(t, leads[0].Company)
	assert.Empty(t, leads[0].Notes)
	assert.Empty(t, leads[0].UTMCampaign)
}

func TestRepository_ConsentFalsePersisted(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	in := sampleLead()
	in.Consent = false
	_, err := repo.Insert(ctx, in)
	require.NoError(t, err)

	leads, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.False(t, leads[0].Consent)
}

func TestRepository_ListAllMostRecentFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"Ada", "Grace", "Katherine"} {
		lead := sampleLead()
		lead.FirstName = name
		_, err := repo.Insert(ctx, lead)
		require.NoError(t, err)
	}

	leads, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 3)

	assert.Equal(t, "Katherine", leads[0].FirstName)
	assert.Equal(t, "Grace", leads[1].FirstName)
	assert.Equal(t, "Ada", leads[2].FirstName)
}

func TestRepository_CountEmpty(t *testing.T) {
	repo := newTestRepository(t)

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRepository_Exists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.db")
	repo, err := NewRepository(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	// No file until the schema is created.
	assert.False(t, repo.Exists())

	require.NoError(t, repo.Init(context.Background()))
	assert.True(t, repo.Exists())
}
