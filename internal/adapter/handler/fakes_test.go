package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	meetingUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
	taskUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/task"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

type fakeMeetingService struct {
	summarize  func(ctx context.Context, transcript string) (*meetingUsecase.SummarizeOutput, error)
	getMeeting func(ctx context.Context, id string) (*meetingUsecase.MeetingDetails, error)
}

func (f *fakeMeetingService) Summarize(ctx context.Context, transcript string) (*meetingUsecase.SummarizeOutput, error) {
	return f.summarize(ctx, transcript)
}

func (f *fakeMeetingService) GetMeeting(ctx context.Context, id string) (*meetingUsecase.MeetingDetails, error) {
	return f.getMeeting(ctx, id)
}

type fakeTaskService struct {
	err          error
	tasks        []*entities.Task
	dashboard    *taskUsecase.Dashboard
	lastCreate   taskUsecase.CreateTaskInput
	lastUpdate   taskUsecase.UpdateTaskInput
	lastID       string
	lastQuery    string
	lastMonth    int
	lastYear     int
	calendarErr  error
	createResult *entities.Task
}

func (f *fakeTaskService) List(context.Context) ([]*entities.Task, error) {
	return f.tasks, f.err
}

func (f *fakeTaskService) Dashboard(context.Context) (*taskUsecase.Dashboard, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.dashboard, nil
}

func (f *fakeTaskService) Calendar(_ context.Context, month, year int) ([]*entities.Task, error) {
	f.lastMonth, f.lastYear = month, year
	if f.calendarErr != nil {
		return nil, f.calendarErr
	}
	return f.tasks, f.err
}

func (f *fakeTaskService) Create(_ context.Context, input taskUsecase.CreateTaskInput) (*entities.Task, error) {
	f.lastCreate = input
	if f.err != nil {
		return nil, f.err
	}
	return f.createResult, nil
}

func (f *fakeTaskService) Update(_ context.Context, id string, input taskUsecase.UpdateTaskInput) (*entities.Task, error) {
	f.lastID = id
	f.lastUpdate = input
	if f.err != nil {
		return nil, f.err
	}
	return &entities.Task{ID: id, Description: "updated", Status: entities.TaskStatusCompleted}, nil
}

func (f *fakeTaskService) Delete(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakeTaskService) Search(_ context.Context, q string) ([]*entities.Task, error) {
	f.lastQuery = q
	return f.tasks, f.err
}

func newTestServer(meetings meetingUsecase.Service, tasks taskUsecase.Service) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	cfg := &config.Config{Server: config.ServerConfig{Environment: "test"}}
	var mh *Meeting
	if meetings != nil {
		mh = NewMeetingHandler(meetings, nil)
	}
	var th *Task
	if tasks != nil {
		th = NewTaskHandler(tasks, nil)
	}
	NewRouter(cfg, HealthInfo{Store: "none", Generator: "disabled"}, mh, th).Setup(e)
	return e
}
