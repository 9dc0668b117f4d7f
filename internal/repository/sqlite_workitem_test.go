package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/gantt/internal/db"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkItemRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkItemRepo(db)
	ctx := context.Background()

	item := testutil.NewTestWorkItem("Design",
		testutil.WithDates("2025-09-01", "2025-09-05"),
		testutil.WithStatus(domain.WorkItemInProgress),
		testutil.WithColor("#83a598"),
		testutil.WithProgress(40),
		testutil.WithRow(3),
	)
	require.NoError(t, repo.Create(ctx, item))

	fetched, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Design", fetched.Title)
	assert.Equal(t, domain.MustParseDate("2025-09-01"), fetched.Start)
	assert.Equal(t, domain.MustParseDate("2025-09-05"), fetched.End)
	assert.Equal(t, 3, fetched.RowIndex)
	assert.Equal(t, domain.WorkItemInProgress, fetched.Status)
	assert.Equal(t, "#83a598", fetched.StatusColor)
	assert.Equal(t, 40, fetched.Progress)
	assert.True(t, item.CreatedAt.Equal(fetched.CreatedAt))
}

func TestWorkItemRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteWorkItemRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkItemRepo_List_OrderedByRow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkItemRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkItem("third", testutil.WithRow(2))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkItem("first", testutil.WithRow(0))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkItem("second", testutil.WithRow(1))))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
	assert.Equal(t, "third", items[2].Title)
}

func TestWorkItemRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkItemRepo(db)
	ctx := context.Background()

	item := testutil.NewTestWorkItem("Build")
	require.NoError(t, repo.Create(ctx, item))

	item.Title = "Build v2"
	item.Status = domain.WorkItemDone
	item.Progress = 100
	require.NoError(t, repo.Update(ctx, item))

	fetched, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Build v2", fetched.Title)
	assert.Equal(t, domain.WorkItemDone, fetched.Status)
	assert.Equal(t, 100, fetched.Progress)
}

func TestWorkItemRepo_UpdateDates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkItemRepo(db)
	ctx := context.Background()

	item := testutil.NewTestWorkItem("Test", testutil.WithDates("2025-09-01", "2025-09-05"))
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.UpdateDates(ctx, item.ID,
		domain.MustParseDate("2025-09-02"), domain.MustParseDate("2025-09-06")))

	fetched, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-02", fetched.Start.String())
	assert.Equal(t, "2025-09-06", fetched.End.String())
	assert.Equal(t, "Test", fetched.Title)
}

func TestWorkItemRepo_UpdateDates_InvertedRangeRejectedBySchema(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkItemRepo(db)
	ctx := context.Background()

	item := testutil.NewTestWorkItem("Test", testutil.WithDates("2025-09-01", "2025-09-05"))
	require.NoError(t, repo.Create(ctx, item))

	err := repo.UpdateDates(ctx, item.ID,
		domain.MustParseDate("2025-09-10"), domain.MustParseDate("2025-09-05"))
	assert.Error(t, err)
}

func TestWorkItemRepo_UpdateDates_Missing(t *testing.T) {
	repo := NewSQLiteWorkItemRepo(testutil.NewTestDB(t))

	err := repo.UpdateDates(context.Background(), "missing",
		domain.MustParseDate("2025-09-01"), domain.MustParseDate("2025-09-02"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkItemRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkItemRepo(db)
	ctx := context.Background()

	item := testutil.NewTestWorkItem("Gone")
	require.NoError(t, repo.Create(ctx, item))
	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, item.ID), ErrNotFound)
}

func TestWorkItemRepo_NextRowIndex(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkItemRepo(db)
	ctx := context.Background()

	next, err := repo.NextRowIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkItem("a", testutil.WithRow(4))))
	next, err = repo.NextRowIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, next)
}

func TestWorkItemRepo_InsideTransaction(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	item := testutil.NewTestWorkItem("Tx")
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteWorkItemRepo(tx).Create(ctx, item)
	})
	require.NoError(t, err)

	_, err = NewSQLiteWorkItemRepo(database).GetByID(ctx, item.ID)
	assert.NoError(t, err)
}
