package task

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

type fakeTaskRepo struct {
	mu      sync.Mutex
	tasks   map[string]*entities.Task
	seq     int
	listErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entities.Task{}}
}

func (r *fakeTaskRepo) add(t *entities.Task) *entities.Task {
	_ = r.Create(context.Background(), t)
	return t
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t.ID = fmt.Sprintf("t%d", r.seq)
	t.CreatedAt = time.Unix(int64(r.seq), 0)
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; !ok {
		return entities.ErrTaskNotFound
	}
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return entities.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) List(_ context.Context, f repositories.TaskFilters) ([]*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entities.Task
	for _, t := range r.tasks {
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.MeetingID != nil && t.MeetingID != *f.MeetingID {
			continue
		}
		if f.DeadlineFrom != nil || f.DeadlineBefore != nil {
			if t.Deadline == nil {
				continue
			}
			if f.DeadlineFrom != nil && t.Deadline.Before(*f.DeadlineFrom) {
				continue
			}
			if f.DeadlineBefore != nil && !t.Deadline.Before(*f.DeadlineBefore) {
				continue
			}
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTaskRepo) Search(_ context.Context, q string) ([]*entities.Task, error) {
	all, _ := r.List(context.Background(), repositories.TaskFilters{})
	q = strings.ToLower(q)
	var out []*entities.Task
	for _, t := range all {
		if strings.Contains(strings.ToLower(t.Description), q) || strings.Contains(strings.ToLower(t.Assignee), q) {
			out = append(out, t)
		}
	}
	return out, nil
}

func ids(tasks []*entities.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	sort.Strings(out)
	return out
}

func at(t time.Time) *time.Time { return &t }
