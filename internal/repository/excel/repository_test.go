package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/katalystvc/lead-capture-service/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "leads.xlsx")
	repo := NewRepository(path, zap.NewNop())
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

func TestRepository_InitWritesHeaderRow(t *testing.T) {
	repo := newTestRepository(t)

	f, err := excelize.OpenFile(repo.path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, headers, rows[0])
}

func TestRepository_InitIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, sampleLead())
	require.NoError(t, err)

	// A second Init must leave the existing workbook untouched.
	require.NoError(t, repo.Init(ctx))

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_InsertAssignsSequentialIDs(t *testing.T) {
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

func TestRepository_ConsentRecordedAsYesNo(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	granted := sampleLead()
	_, err := repo.Insert(ctx, granted)
	require.NoError(t, err)

	declined := sampleLead()
	declined.Consent = false
	_, err = repo.Insert(ctx, declined)
	require.NoError(t, err)

	f, err := excelize.OpenFile(repo.path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Yes", rows[1][10])
	assert.Equal(t, "No", rows[2][10])

	leads, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.True(t, leads[0].Consent)
	assert.False(t, leads[1].Consent)
}

func TestRepository_ListAllInsertionOrder(t *testing.T) {
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
	assert.Equal(t, "Ada", leads[0].FirstName)
	assert.Equal(t, "Katherine", leads[2].FirstName)
}

func TestRepository_CountHeaderOnly(t *testing.T) {
	repo := newTestRepository(t)

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRepository_Exists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	repo := NewRepository(path, zap.NewNop())

	assert.False(t, repo.Exists())

	require.NoError(t, repo.Init(context.Background()))
	assert.True(t, repo.Exists())
}

func TestRepository_OptionalFieldsSurviveRowTrimming(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// Trailing optional columns left empty get trimmed by GetRows;
	// reads must tolerate the short row.
	in := &domain.Lead{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Topic:     "fhir",
		Consent:   true,
	}
	_, err := repo.Insert(ctx, in)
	require.NoError(t, err)

	leads, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Empty(t, leads[0].Company)
	assert.Empty(t, leads[0].UTMContent)
	assert.Equal(t, "fhir", leads[0].Topic)
}
