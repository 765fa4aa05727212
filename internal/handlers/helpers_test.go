package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	dom "github.com/gustavokauee/TaskFlex/internal/domain"
	"github.com/gustavokauee/TaskFlex/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type fakeUserRepo struct {
	nextID int64
	users  map[int64]dom.User
}

func (r *fakeUserRepo) Create(_ context.Context, username, email, passwordHash string) (dom.User, error) {
	r.nextID++
	u := dom.User{ID: r.nextID, Username: username, Email: email, PasswordHash: passwordHash}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeTaskRepo struct {
	nextID int64
	tasks  map[int64]dom.Task
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

// newTestRouter wires the real handlers and services over in-memory repos,
// with the same routes the app registers under /api.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	userRepo := &fakeUserRepo{users: map[int64]dom.User{}}
	taskRepo := &fakeTaskRepo{tasks: map[int64]dom.Task{}}

	authHandler := NewAuthHandler(service.NewUserService(userRepo))
	taskHandler := NewTaskHandler(service.NewTaskService(taskRepo, userRepo, nil))

	api := r.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/tasks", taskHandler.Create)
	api.GET("/users/:userId/tasks", taskHandler.ListForUser)
	api.PUT("/tasks/:taskId", taskHandler.Update)
	api.DELETE("/tasks/:taskId", taskHandler.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, want, w.Body.String())
	}
}
