package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/repository"
	"github.com/alexanderramin/gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWorkItemService(t *testing.T) (WorkItemService, repository.WorkItemRepo, *RecordingObserver) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkItemRepo(database)
	rec := &RecordingObserver{}
	return NewWorkItemService(repo, testutil.NewTestUoW(database), rec), repo, rec
}

func TestWorkItemService_Create_Defaults(t *testing.T) {
	svc, _, _ := setupWorkItemService(t)
	ctx := context.Background()

	wi := testutil.NewTestWorkItem("Design")
	wi.ID = ""
	wi.Status = ""
	require.NoError(t, svc.Create(ctx, wi))

	assert.NotEmpty(t, wi.ID, "service should assign UUID")
	fetched, err := svc.GetByID(ctx, wi.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkItemTodo, fetched.Status)
}

func TestWorkItemService_Create_RejectsBadColor(t *testing.T) {
	svc, _, _ := setupWorkItemService(t)

	wi := testutil.NewTestWorkItem("Design")
	wi.StatusColor = "javascript:red"
	assert.ErrorIs(t, svc.Create(context.Background(), wi), domain.ErrInvalidColor)
}

func TestWorkItemService_Create_AutoRow(t *testing.T) {
	svc, _, _ := setupWorkItemService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testutil.NewTestWorkItem("a", testutil.WithRow(0))))
	require.NoError(t, svc.Create(ctx, testutil.NewTestWorkItem("b", testutil.WithRow(1))))

	wi := testutil.NewTestWorkItem("c", testutil.WithRow(-1))
	require.NoError(t, svc.Create(ctx, wi))
	assert.Equal(t, 2, wi.RowIndex)
}

func TestWorkItemService_Create_RejectsInvalid(t *testing.T) {
	svc, _, _ := setupWorkItemService(t)
	ctx := context.Background()

	bad := testutil.NewTestWorkItem("Bad", testutil.WithDates("2025-09-05", "2025-09-01"))
	assert.ErrorIs(t, svc.Create(ctx, bad), domain.ErrInvertedRange)

	blank := testutil.NewTestWorkItem("  ")
	assert.ErrorIs(t, svc.Create(ctx, blank), domain.ErrEmptyTitle)
}

func TestWorkItemService_List_Observed(t *testing.T) {
	svc, _, rec := setupWorkItemService(t)
	ctx := context.Background()

	for _, w := range testutil.NewTestWorkItems("a", "b") {
		require.NoError(t, svc.Create(ctx, w))
	}
	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	ev, ok := rec.Last("list-items")
	require.True(t, ok)
	assert.True(t, ev.Success)
	assert.Equal(t, 2, ev.Fields["count"])
}

func TestWorkItemService_Reschedule(t *testing.T) {
	svc, _, _ := setupWorkItemService(t)
	ctx := context.Background()

	wi := testutil.NewTestWorkItem("Build", testutil.WithDates("2025-09-01", "2025-09-05"))
	require.NoError(t, svc.Create(ctx, wi))

	updated, err := svc.Reschedule(ctx, wi.ID, domain.MustParseDate("2025-09-03"), domain.MustParseDate("2025-09-10"))
	require.NoError(t, err)
	assert.Equal(t, "2025-09-03", updated.Start.String())

	fetched, err := svc.GetByID(ctx, wi.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-10", fetched.End.String())
}

func TestWorkItemService_Reschedule_Inverted(t *testing.T) {
	svc, _, _ := setupWorkItemService(t)
	ctx := context.Background()

	wi := testutil.NewTestWorkItem("Build", testutil.WithDates("2025-09-01", "2025-09-05"))
	require.NoError(t, svc.Create(ctx, wi))

	_, err := svc.Reschedule(ctx, wi.ID, domain.MustParseDate("2025-09-08"), domain.MustParseDate("2025-09-05"))
	assert.ErrorIs(t, err, domain.ErrInvertedRange)

	fetched, err := svc.GetByID(ctx, wi.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-01", fetched.Start.String())
}

func TestWorkItemService_Reschedule_NotFound(t *testing.T) {
	svc, _, _ := setupWorkItemService(t)
	_, err := svc.Reschedule(context.Background(), "missing", testutil.FixedToday, testutil.FixedToday)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkItemService_Delete(t *testing.T) {
	svc, _, _ := setupWorkItemService(t)
	ctx := context.Background()

	wi := testutil.NewTestWorkItem("Gone")
	require.NoError(t, svc.Create(ctx, wi))
	require.NoError(t, svc.Delete(ctx, wi.ID))

	_, err := svc.GetByID(ctx, wi.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkItemService_CommitDrafts_OnlyChanged(t *testing.T) {
	svc, _, rec := setupWorkItemService(t)
	ctx := context.Background()

	a := testutil.NewTestWorkItem("a", testutil.WithDates("2025-09-01", "2025-09-05"), testutil.WithRow(0))
	b := testutil.NewTestWorkItem("b", testutil.WithDates("2025-09-08", "2025-09-12"), testutil.WithRow(1))
	require.NoError(t, svc.Create(ctx, a))
	require.NoError(t, svc.Create(ctx, b))

	draftA := *a
	draftA.Start = draftA.Start.AddDays(1)
	draftA.End = draftA.End.AddDays(1)

	n, err := svc.CommitDrafts(ctx, []domain.WorkItem{draftA, *b})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	fetched, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-02", fetched.Start.String())
	assert.Equal(t, "2025-09-06", fetched.End.String())

	ev, ok := rec.Last("commit-drafts")
	require.True(t, ok)
	assert.Equal(t, 1, ev.Fields["changed"])
}

func TestWorkItemService_CommitDrafts_RejectsInverted(t *testing.T) {
	svc, _, _ := setupWorkItemService(t)
	ctx := context.Background()

	a := testutil.NewTestWorkItem("a", testutil.WithDates("2025-09-01", "2025-09-05"))
	require.NoError(t, svc.Create(ctx, a))

	draft := *a
	draft.Start = domain.MustParseDate("2025-09-10")
	_, err := svc.CommitDrafts(ctx, []domain.WorkItem{draft})
	assert.ErrorIs(t, err, domain.ErrInvertedRange)
}

func TestWorkItemService_CommitDrafts_RollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkItemRepo(database)
	ctx := context.Background()

	a := testutil.NewTestWorkItem("a", testutil.WithDates("2025-09-01", "2025-09-05"), testutil.WithRow(0))
	b := testutil.NewTestWorkItem("b", testutil.WithDates("2025-09-08", "2025-09-12"), testutil.WithRow(1))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	injected := errors.New("injected update failure")
	failUoW := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}
	svc := NewWorkItemService(repo, failUoW)

	draftA, draftB := *a, *b
	draftA.Shift(2, testutil.FixedNow)
	draftB.Shift(2, testutil.FixedNow)

	_, err := svc.CommitDrafts(ctx, []domain.WorkItem{draftA, draftB})
	assert.ErrorIs(t, err, injected)

	fetched, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-01", fetched.Start.String(), "first update must roll back")
}

func TestWorkItemService_CommitDrafts_UnknownItem(t *testing.T) {
	svc, _, _ := setupWorkItemService(t)
	draft := *testutil.NewTestWorkItem("ghost")

	_, err := svc.CommitDrafts(context.Background(), []domain.WorkItem{draft})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
