package domain

import "time"

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin, Postgres, Redis.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     *string
	Priority    string
	Completed   bool
	UserID      int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
