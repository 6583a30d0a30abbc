package presenter

import (
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/task"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	taskUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/task"
)

// ToTaskResponse converts a Task entity to TaskResponse DTO
func ToTaskResponse(t *entities.Task) *task.TaskResponse {
	if t == nil {
		return nil
	}

	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}

	return &task.TaskResponse{
		ID:        t.ID,
		MeetingID: t.MeetingID,
		Task:      t.Description,
		Assignee:  t.Assignee,
		Deadline:  t.Deadline,
		Priority:  string(t.Priority),
		Status:    string(t.Status),
		Tags:      tags,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTaskResponses converts tasks, never returning nil
func ToTaskResponses(tasks []*entities.Task) []*task.TaskResponse {
	out := make([]*task.TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskResponse(t)
	}
	return out
}

// ToTaskListResponse wraps tasks with their count
func ToTaskListResponse(tasks []*entities.Task) *task.TaskListResponse {
	return &task.TaskListResponse{
		Tasks: ToTaskResponses(tasks),
		Total: len(tasks),
	}
}

// ToDashboardResponse converts the dashboard buckets
func ToDashboardResponse(d *taskUsecase.Dashboard) *task.DashboardResponse {
	return &task.DashboardResponse{
		Overdue:  ToTaskResponses(d.Overdue),
		Today:    ToTaskResponses(d.Today),
		Upcoming: ToTaskResponses(d.Upcoming),
	}
}
