package dto

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	UserID      int64   `json:"userId"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"` // opaque string, not validated as a date
	Priority    string  `json:"priority"`
}

// UpdateTaskRequest is a partial update: nil = не менять, значение = поставить.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority"`
	Completed   *bool   `json:"completed"`
}

type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    string  `json:"priority"`
	Completed   bool    `json:"completed"`
	UserID      int64   `json:"userId"`
}
