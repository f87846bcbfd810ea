package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/domain"
	"github.com/storepulse/storepulse/infrastructure/persistence/memory"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func seedReports(t *testing.T, repo outbound.ReportRepository) {
	t.Helper()
	ctx := context.Background()
	for _, r := range []domain.Report{
		domain.NewReport("S42", day(1)),
		domain.NewReport("S42", day(3)),
		domain.NewReport("S42", day(5)),
		domain.NewReport("S42", day(9)),
		domain.NewReport("S17", day(3)),
	} {
		_, err := repo.Save(ctx, r)
		require.NoError(t, err)
	}
}

func TestReportRepository_ForStoreWithRangeIsInclusive(t *testing.T) {
	repo := NewReportRepository(memory.New(), testLogger())
	seedReports(t, repo)

	reports, err := repo.ForStore(context.Background(), "S42", &outbound.DateRange{
		From: day(1),
		To:   day(5),
	})

	require.NoError(t, err)
	// Both endpoints are included
	require.Len(t, reports, 3)
	assert.Equal(t, day(1), reports[0].Date)
	assert.Equal(t, day(3), reports[1].Date)
	assert.Equal(t, day(5), reports[2].Date)
}

func TestReportRepository_ForStoreWithoutRangeReturnsAllDates(t *testing.T) {
	repo := NewReportRepository(memory.New(), testLogger())
	seedReports(t, repo)

	reports, err := repo.ForStore(context.Background(), "S42", nil)

	require.NoError(t, err)
	assert.Len(t, reports, 4)
	for _, r := range reports {
		assert.Equal(t, "S42", r.StoreCode)
	}
}

func TestReportRepository_SaveAndGet(t *testing.T) {
	repo := NewReportRepository(memory.New(), testLogger())
	ctx := context.Background()

	report := domain.NewReport("S42", day(1))
	report.Sales = 9000.25
	report.Visitors = 120

	saved, err := repo.Save(ctx, report)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	fetched, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, 9000.25, fetched.Sales)
	assert.Equal(t, 120, fetched.Visitors)
}

func TestReportRepository_DeleteThenGetReturnsEmpty(t *testing.T) {
	repo := NewReportRepository(memory.New(), testLogger())
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.NewReport("S42", day(1)))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved))

	fetched, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}
