package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	ucerrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
)

var noon = time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)

func newService(repo *fakeTaskRepo) *taskService {
	svc := NewTaskService(repo, nil).(*taskService)
	svc.now = func() time.Time { return noon }
	return svc
}

func seed(repo *fakeTaskRepo, desc string, deadline *time.Time, status entities.TaskStatus) *entities.Task {
	draft, _ := entities.NewTaskDraft(desc, "", deadline, "")
	task := entities.NewTaskFromDraft("m1", draft)
	task.Status = status
	return repo.add(task)
}

func TestDashboard(t *testing.T) {
	repo := newFakeTaskRepo()
	overdue := seed(repo, "overdue", at(noon.AddDate(0, 0, -1)), entities.TaskStatusPending)
	earlyToday := seed(repo, "early today", at(time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)), entities.TaskStatusPending)
	lateToday := seed(repo, "late today", at(time.Date(2024, time.March, 14, 23, 59, 0, 0, time.UTC)), entities.TaskStatusPending)
	upcoming := seed(repo, "upcoming", at(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)), entities.TaskStatusPending)
	seed(repo, "done", at(noon), entities.TaskStatusCompleted)
	seed(repo, "no deadline", nil, entities.TaskStatusPending)

	d, err := newService(repo).Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{overdue.ID}, ids(d.Overdue))
	assert.ElementsMatch(t, []string{earlyToday.ID, lateToday.ID}, ids(d.Today))
	assert.Equal(t, []string{upcoming.ID}, ids(d.Upcoming))
}

func TestCalendar_IncludesWholeLastDay(t *testing.T) {
	repo := newFakeTaskRepo()
	first := seed(repo, "first", at(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)), entities.TaskStatusPending)
	last := seed(repo, "last", at(time.Date(2024, time.February, 29, 17, 0, 0, 0, time.UTC)), entities.TaskStatusCompleted)
	seed(repo, "march", at(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)), entities.TaskStatusPending)
	seed(repo, "january", at(time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC)), entities.TaskStatusPending)

	tasks, err := newService(repo).Calendar(context.Background(), 2, 2024)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, last.ID}, ids(tasks))
}

func TestCalendar_InvalidRange(t *testing.T) {
	svc := newService(newFakeTaskRepo())
	for _, c := range [][2]int{{0, 2024}, {13, 2024}, {5, 1969}, {5, 10000}} {
		_, err := svc.Calendar(context.Background(), c[0], c[1])
		assert.ErrorIs(t, err, ucerrors.ErrInvalidCalendarRange, "%v", c)
	}
}

func TestCreate(t *testing.T) {
	svc := newService(newFakeTaskRepo())

	task, err := svc.Create(context.Background(), CreateTaskInput{
		MeetingID:   "m1",
		Description: "  Draft the budget  ",
		Tags:        []string{"finance", " ", "finance", "q2"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Draft the budget", task.Description)
	assert.Equal(t, entities.AssigneeNotSpecified, task.Assignee)
	assert.Equal(t, entities.TaskPriorityMedium, task.Priority)
	assert.Equal(t, entities.TaskStatusPending, task.Status)
	assert.Equal(t, []string{"finance", "q2"}, task.Tags)
}

func TestCreate_Validation(t *testing.T) {
	svc := newService(newFakeTaskRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTaskInput{Description: "x"})
	assert.ErrorIs(t, err, ucerrors.ErrMeetingIDRequired)

	_, err = svc.Create(ctx, CreateTaskInput{MeetingID: "m1", Description: "   "})
	assert.ErrorIs(t, err, ucerrors.ErrTaskDescriptionRequired)

	_, err = svc.Create(ctx, CreateTaskInput{MeetingID: "m1", Description: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, ucerrors.ErrInvalidPriority)
}

func TestUpdate(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := newService(repo)
	ctx := context.Background()
	task := seed(repo, "Write report", at(noon), entities.TaskStatusPending)

	status := "completed"
	priority := "HIGH"
	assignee := ""
	updated, err := svc.Update(ctx, task.ID, UpdateTaskInput{
		Status:        &status,
		Priority:      &priority,
		Assignee:      &assignee,
		ClearDeadline: true,
		Tags:          []string{"done"},
		ReplaceTags:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Write report", updated.Description)
	assert.Equal(t, entities.TaskStatusCompleted, updated.Status)
	assert.Equal(t, entities.TaskPriorityHigh, updated.Priority)
	assert.Equal(t, entities.AssigneeNotSpecified, updated.Assignee)
	assert.Nil(t, updated.Deadline)
	assert.Equal(t, []string{"done"}, updated.Tags)

	stored, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.TaskStatusCompleted, stored.Status)
}

func TestUpdate_Errors(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := newService(repo)
	ctx := context.Background()
	task := seed(repo, "Write report", nil, entities.TaskStatusPending)

	_, err := svc.Update(ctx, "missing", UpdateTaskInput{})
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	bad := "archived"
	_, err = svc.Update(ctx, task.ID, UpdateTaskInput{Status: &bad})
	assert.ErrorIs(t, err, ucerrors.ErrInvalidStatus)

	blank := " "
	_, err = svc.Update(ctx, task.ID, UpdateTaskInput{Description: &blank})
	assert.ErrorIs(t, err, ucerrors.ErrTaskDescriptionRequired)
}

func TestDeleteAndSearch(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := newService(repo)
	ctx := context.Background()
	keep := seed(repo, "Prepare slides", nil, entities.TaskStatusPending)
	gone := seed(repo, "Book slides room", nil, entities.TaskStatusPending)

	require.NoError(t, svc.Delete(ctx, gone.ID))
	assert.ErrorIs(t, svc.Delete(ctx, gone.ID), entities.ErrTaskNotFound)

	found, err := svc.Search(ctx, "SLIDES")
	require.NoError(t, err)
	assert.Equal(t, []string{keep.ID}, ids(found))

	_, err = svc.Search(ctx, "  ")
	assert.ErrorIs(t, err, ucerrors.ErrSearchQueryRequired)
}
