package tasks

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*Task, error)
	ListTasks(ctx context.Context) []Task
	UpdateTask(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*Task, error)
	ToggleTask(ctx context.Context, id uuid.UUID) (*Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	// ReplaceTasks swaps the whole plan, as when a generated schedule is accepted.
	ReplaceTasks(ctx context.Context, inputs []CreateTaskInput) ([]Task, error)
	// Progress is the completed share of the plan in percent, 0 when empty.
	Progress(ctx context.Context) float64
}

type service struct {
	mu     sync.Mutex
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, logger: logger}
}

func newTask(input CreateTaskInput) (Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return Task{}, ErrInvalidInput
	}
	if input.Priority == "" {
		input.Priority = PriorityMedium
	}
	if !input.Priority.IsValid() {
		return Task{}, ErrInvalidInput
	}
	return Task{
		ID:        uuid.New(),
		Text:      text,
		StartTime: strings.TrimSpace(input.StartTime),
		EndTime:   strings.TrimSpace(input.EndTime),
		Priority:  input.Priority,
		Category:  strings.TrimSpace(input.Category),
	}, nil
}

func (s *service) CreateTask(ctx context.Context, input CreateTaskInput) (*Task, error) {
	task, err := newTask(input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	all = append(all, task)
	if err := s.repo.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	s.logger.Info("Task created", zap.String("task_id", task.ID.String()))
	return &task, nil
}

func (s *service) ListTasks(ctx context.Context) []Task {
	return s.repo.FindAll(ctx)
}

// mutate applies fn to the task with id and persists the list.
func (s *service) mutate(ctx context.Context, id uuid.UUID, fn func(*Task) error) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if err := fn(&all[i]); err != nil {
			return nil, err
		}
		if err := s.repo.SaveAll(ctx, all); err != nil {
			return nil, err
		}
		task := all[i]
		return &task, nil
	}
	return nil, ErrTaskNotFound
}

func (s *service) UpdateTask(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*Task, error) {
	return s.mutate(ctx, id, func(t *Task) error {
		if input.Text != nil {
			text := strings.TrimSpace(*input.Text)
			if text == "" {
				return ErrInvalidInput
			}
			t.Text = text
		}
		if input.Priority != nil {
			if !input.Priority.IsValid() {
				return ErrInvalidInput
			}
			t.Priority = *input.Priority
		}
		if input.StartTime != nil {
			t.StartTime = strings.TrimSpace(*input.StartTime)
		}
		if input.EndTime != nil {
			t.EndTime = strings.TrimSpace(*input.EndTime)
		}
		if input.Category != nil {
			t.Category = strings.TrimSpace(*input.Category)
		}
		return nil
	})
}

func (s *service) ToggleTask(ctx context.Context, id uuid.UUID) (*Task, error) {
	return s.mutate(ctx, id, func(t *Task) error {
		t.Completed = !t.Completed
		return nil
	})
}

func (s *service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	kept := all[:0]
	found := false
	for _, t := range all {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return ErrTaskNotFound
	}
	return s.repo.SaveAll(ctx, kept)
}

func (s *service) ReplaceTasks(ctx context.Context, inputs []CreateTaskInput) ([]Task, error) {
	replacement := make([]Task, 0, len(inputs))
	for _, input := range inputs {
		task, err := newTask(input)
		if err != nil {
			return nil, err
		}
		replacement = append(replacement, task)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveAll(ctx, replacement); err != nil {
		return nil, err
	}
	s.logger.Info("Task plan replaced", zap.Int("count", len(replacement)))
	return replacement, nil
}

func (s *service) Progress(ctx context.Context) float64 {
	all := s.repo.FindAll(ctx)
	if len(all) == 0 {
		return 0
	}
	done := 0
	for _, t := range all {
		if t.Completed {
			done++
		}
	}
	return float64(done) / float64(len(all)) * 100
}
