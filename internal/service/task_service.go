package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/gustavokauee/TaskFlex/internal/cache"
	dom "github.com/gustavokauee/TaskFlex/internal/domain"
	"github.com/gustavokauee/TaskFlex/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound       = errors.New("task not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrIncompleteData = errors.New("incomplete data")
)

const defaultPriority = "medium"

type TaskService struct {
	repo  repo.TaskRepo
	users repo.UserRepo
	cache *cache.TaskCache
	sf    singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, users repo.UserRepo, c *cache.TaskCache) *TaskService {
	return &TaskService{repo: r, users: users, cache: c}
}

// Create inserts a task owned by an existing user. Description defaults to
// "" and priority to "medium"; completed always starts false.
func (s *TaskService) Create(ctx context.Context, userID int64, title, desc string, dueDate *string, priority string) (dom.Task, error) {
	if title == "" || userID == 0 {
		return dom.Task{}, ErrIncompleteData
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrUserNotFound
		}
		return dom.Task{}, err
	}
	if priority == "" {
		priority = defaultPriority
	}
	t, err := s.repo.Create(ctx, dom.Task{
		Title:       title,
		Description: desc,
		DueDate:     dueDate,
		Priority:    priority,
		Completed:   false,
		UserID:      userID,
	})
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// ListForUser returns all tasks owned by the user, in insertion order.
// The user must exist even when the list is empty.
func (s *TaskService) ListForUser(ctx context.Context, userID int64) ([]dom.Task, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListByUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	return s.repo.ListByUser(ctx, userID)
}

// Update applies a partial update: nil fields keep their stored value.
func (s *TaskService) Update(ctx context.Context, id int64, title, desc, dueDate, priority *string, completed *bool) (dom.Task, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = *title
	}
	if desc != nil {
		patch.Description = *desc
	}
	if dueDate != nil {
		patch.DueDate = dueDate
	}
	if priority != nil {
		patch.Priority = *priority
	}
	if completed != nil {
		patch.Completed = *completed
	}
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, t.UserID)
	return t, nil
}

// Delete removes the task. Deleting an already-deleted id is ErrNotFound.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateCache(ctx, existing.UserID)
	return nil
}

func (s *TaskService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
