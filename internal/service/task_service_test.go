package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/gustavokauee/TaskFlex/internal/domain"

	"github.com/jackc/pgx/v5"
)

type fakeTaskRepo struct {
	nextID int64
	tasks  map[int64]dom.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int64]dom.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	r.nextID++
	t.ID = r.nextID
	r.tasks[t.ID] = t
	return t, nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id int64) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID int64) ([]dom.Task, error) {
	var list []dom.Task
	for id := int64(1); id <= r.nextID; id++ {
		if t, ok := r.tasks[id]; ok && t.UserID == userID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, id int64, patch dom.Task) (dom.Task, error) {
	existing, ok := r.tasks[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	patch.ID = existing.ID
	patch.UserID = existing.UserID
	r.tasks[id] = patch
	return patch, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

func newTaskFixture(t *testing.T) (*TaskService, int64) {
	t.Helper()
	users := newFakeUserRepo()
	u, err := users.Create(context.Background(), "ana", "ana@x.com", "hash")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewTaskService(newFakeTaskRepo(), users, nil), u.ID
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateTaskDefaults(t *testing.T) {
	svc, userID := newTaskFixture(t)

	created, err := svc.Create(context.Background(), userID, "Buy milk", "", nil, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Description != "" {
		t.Errorf("description = %q, want empty", created.Description)
	}
	if created.Priority != "medium" {
		t.Errorf("priority = %q, want medium", created.Priority)
	}
	if created.Completed {
		t.Error("new task must not start completed")
	}
	if created.DueDate != nil {
		t.Errorf("dueDate = %v, want nil", *created.DueDate)
	}
	if created.UserID != userID {
		t.Errorf("userID = %d, want %d", created.UserID, userID)
	}
}

func TestCreateTaskEchoesInput(t *testing.T) {
	svc, userID := newTaskFixture(t)

	due := "whenever, honestly"
	created, err := svc.Create(context.Background(), userID, "Call mom", "weekly call", &due, "high")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Title != "Call mom" || created.Description != "weekly call" || created.Priority != "high" {
		t.Fatalf("fields not echoed: %+v", created)
	}
	// The due date is opaque: any string is stored untouched.
	if created.DueDate == nil || *created.DueDate != due {
		t.Fatalf("dueDate = %v, want %q", created.DueDate, due)
	}
}

func TestCreateTaskIncomplete(t *testing.T) {
	svc, userID := newTaskFixture(t)

	if _, err := svc.Create(context.Background(), userID, "", "", nil, ""); !errors.Is(err, ErrIncompleteData) {
		t.Errorf("missing title: got %v, want ErrIncompleteData", err)
	}
	if _, err := svc.Create(context.Background(), 0, "Buy milk", "", nil, ""); !errors.Is(err, ErrIncompleteData) {
		t.Errorf("missing userId: got %v, want ErrIncompleteData", err)
	}
}

func TestCreateTaskUnknownUser(t *testing.T) {
	svc, _ := newTaskFixture(t)

	if _, err := svc.Create(context.Background(), 999, "Buy milk", "", nil, ""); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}

func TestListForUser(t *testing.T) {
	svc, userID := newTaskFixture(t)

	list, err := svc.ListForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("list fresh user: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("fresh user has %d tasks", len(list))
	}

	if _, err := svc.Create(context.Background(), userID, "first", "", nil, ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), userID, "second", "", nil, ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err = svc.ListForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Title != "first" || list[1].Title != "second" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestListForUnknownUser(t *testing.T) {
	svc, _ := newTaskFixture(t)

	if _, err := svc.ListForUser(context.Background(), 999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}

func TestUpdateTaskPartial(t *testing.T) {
	svc, userID := newTaskFixture(t)
	due := "2026-12-01"
	created, err := svc.Create(context.Background(), userID, "Buy milk", "2 liters", &due, "low")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, strPtr("Buy oat milk"), nil, nil, nil, boolPtr(true))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Buy oat milk" {
		t.Errorf("title = %q", updated.Title)
	}
	if !updated.Completed {
		t.Error("completed not applied")
	}
	// Untouched fields keep their stored values.
	if updated.Description != "2 liters" || updated.Priority != "low" {
		t.Errorf("unrelated fields changed: %+v", updated)
	}
	if updated.DueDate == nil || *updated.DueDate != due {
		t.Errorf("dueDate changed: %v", updated.DueDate)
	}
}

func TestUpdateTaskEmptyPatch(t *testing.T) {
	svc, userID := newTaskFixture(t)
	created, err := svc.Create(context.Background(), userID, "Buy milk", "", nil, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, nil, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if updated != created {
		t.Fatalf("empty patch changed the task: %+v vs %+v", updated, created)
	}
}

func TestUpdateMissingTask(t *testing.T) {
	svc, _ := newTaskFixture(t)

	if _, err := svc.Update(context.Background(), 42, strPtr("x"), nil, nil, nil, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteTaskTwice(t *testing.T) {
	svc, userID := newTaskFixture(t)
	created, err := svc.Create(context.Background(), userID, "Buy milk", "", nil, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}
