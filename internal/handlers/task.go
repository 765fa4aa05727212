package handlers

import (
	"errors"
	"net/http"
	"strconv"

	dom "github.com/gustavokauee/TaskFlex/internal/domain"
	"github.com/gustavokauee/TaskFlex/internal/dto"
	"github.com/gustavokauee/TaskFlex/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "incomplete data"})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), req.UserID, req.Title, req.Description, req.DueDate, req.Priority)
	if err != nil {
		if errors.Is(err, service.ErrIncompleteData) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "incomplete data"})
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "could not create task"})
		return
	}
	c.JSON(http.StatusCreated, taskToResponse(t))
}

// ListForUser godoc
// @Summary      List all tasks owned by a user
// @Tags         tasks
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {array}   dto.TaskResponse
// @Failure      404     {object}  dto.MessageResponse
// @Router       /users/{userId}/tasks [get]
func (h *TaskHandler) ListForUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	list, err := h.svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "could not list tasks"})
		return
	}
	c.JSON(http.StatusOK, tasksToResponses(list))
}

// Update godoc
// @Summary      Update a task (partial)
// @Description  Fields absent from the body keep their stored values.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId  path      int  true  "Task ID"
// @Param        body    body      dto.UpdateTaskRequest  true  "Partial update"
// @Success      200     {object}  dto.TaskResponse
// @Failure      404     {object}  dto.MessageResponse
// @Router       /tasks/{taskId} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "taskId")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, req.Title, req.Description, req.DueDate, req.Priority, req.Completed)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "could not update task"})
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        taskId  path      int  true  "Task ID"
// @Success      200     {object}  dto.MessageResponse
// @Failure      404     {object}  dto.MessageResponse
// @Router       /tasks/{taskId} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "taskId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "could not delete task"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "task deleted successfully"})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "not found"})
		return 0, false
	}
	return id, true
}

func taskToResponse(t dom.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Completed:   t.Completed,
		UserID:      t.UserID,
	}
}

func tasksToResponses(list []dom.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, taskToResponse(t))
	}
	return out
}
