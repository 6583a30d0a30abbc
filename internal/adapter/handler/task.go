package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/task"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/presenter"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
	taskUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/task"
)

// Task handles task-related HTTP requests
type Task struct {
	taskService taskUsecase.Service
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService taskUsecase.Service, logger *zap.Logger) *Task {
	return &Task{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks handles GET /api/tasks
// @Summary      List tasks
// @Description  Lists every task, newest first
// @Tags         Tasks
// @Produce      json
// @Success      200  {object}  task.TaskListResponse  "Tasks"
// @Failure      503  {object}  map[string]interface{}  "Store unavailable"
// @Router       /api/tasks [get]
func (h *Task) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToTaskListResponse(tasks))
}

// Dashboard handles GET /api/tasks/dashboard
// @Summary      Task dashboard
// @Description  Groups pending tasks into overdue, today and upcoming
// @Tags         Tasks
// @Produce      json
// @Success      200  {object}  task.DashboardResponse  "Dashboard"
// @Failure      503  {object}  map[string]interface{}  "Store unavailable"
// @Router       /api/tasks/dashboard [get]
func (h *Task) Dashboard(c echo.Context) error {
	dashboard, err := h.taskService.Dashboard(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToDashboardResponse(dashboard))
}

// Calendar handles GET /api/tasks/calendar
// @Summary      Task calendar
// @Description  Lists tasks whose deadline falls inside the given month
// @Tags         Tasks
// @Produce      json
// @Param        month  query     int  true  "Month (1-12)"
// @Param        year   query     int  true  "Year"
// @Success      200    {object}  task.TaskListResponse  "Tasks"
// @Failure      400    {object}  map[string]interface{}  "Invalid month or year"
// @Router       /api/tasks/calendar [get]
func (h *Task) Calendar(c echo.Context) error {
	var req task.CalendarRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("month and year must be integers"))
	}

	tasks, err := h.taskService.Calendar(c.Request().Context(), req.Month, req.Year)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrInvalidCalendarRange) {
			return HandleError(h.logger, c, errors.ErrInvalidCalendarRange(req.Month, req.Year))
		}
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToTaskListResponse(tasks))
}

// Search handles GET /api/tasks/search
// @Summary      Search tasks
// @Description  Case-insensitive substring search over description, assignee and tags
// @Tags         Tasks
// @Produce      json
// @Param        q    query     string  true  "Search text"
// @Success      200  {object}  task.TaskListResponse  "Matching tasks"
// @Failure      400  {object}  map[string]interface{}  "Missing query"
// @Router       /api/tasks/search [get]
func (h *Task) Search(c echo.Context) error {
	var req task.SearchRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	tasks, err := h.taskService.Search(c.Request().Context(), req.Q)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToTaskListResponse(tasks))
}

// CreateTask handles POST /api/tasks
// @Summary      Create a task
// @Description  Adds a task to an existing meeting
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        request  body      task.CreateTaskRequest  true  "Task"
// @Success      201      {object}  task.TaskResponse  "Created task"
// @Failure      400      {object}  map[string]interface{}  "Validation failed"
// @Failure      404      {object}  map[string]interface{}  "Meeting not found"
// @Router       /api/tasks [post]
func (h *Task) CreateTask(c echo.Context) error {
	var req task.CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	created, err := h.taskService.Create(c.Request().Context(), taskUsecase.CreateTaskInput{
		MeetingID:   req.MeetingID,
		Description: req.Task,
		Assignee:    req.Assignee,
		Deadline:    req.Deadline,
		Priority:    req.Priority,
		Tags:        req.Tags,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, req.MeetingID))
	}

	return HandleCreated(h.logger, c, presenter.ToTaskResponse(created))
}

// UpdateTask handles PUT /api/tasks/:id
// @Summary      Update a task
// @Description  Partially updates a task; absent fields are kept
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Task ID"
// @Param        request  body      task.UpdateTaskRequest  true  "Fields to change"
// @Success      200      {object}  task.TaskResponse  "Updated task"
// @Failure      400      {object}  map[string]interface{}  "Validation failed"
// @Failure      404      {object}  map[string]interface{}  "Task not found"
// @Router       /api/tasks/{id} [put]
func (h *Task) UpdateTask(c echo.Context) error {
	var req task.UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := taskUsecase.UpdateTaskInput{
		Description:   req.Task,
		Assignee:      req.Assignee,
		Deadline:      req.Deadline,
		ClearDeadline: req.ClearDeadline,
		Priority:      req.Priority,
		Status:        req.Status,
	}
	if req.Tags != nil {
		input.Tags = *req.Tags
		input.ReplaceTags = true
	}

	updated, err := h.taskService.Update(c.Request().Context(), req.ID, input)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, req.ID))
	}

	return HandleSuccess(h.logger, c, presenter.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /api/tasks/:id
// @Summary      Delete a task
// @Tags         Tasks
// @Produce      json
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  map[string]interface{}  "Task deleted"
// @Failure      404  {object}  map[string]interface{}  "Task not found"
// @Router       /api/tasks/{id} [delete]
func (h *Task) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if err := h.taskService.Delete(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, toAppError(err, id))
	}
	return HandleSuccess(h.logger, c, map[string]string{"id": id})
}
