package models

import "time"

// TaskPriority ranks a task.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
	StatusCancelled  TaskStatus = "cancelled"
)

// DefaultTaskStatus is assigned to tasks created without a status.
const DefaultTaskStatus = StatusTodo

// Task is a scheduled to-do item.
type Task struct {
	ID int64 `json:"id"`

	Title string `json:"title"`

	// StartsAt is when the task begins. Required.
	StartsAt time.Time `json:"starts_at"`

	// EndsAt is the optional end or due time.
	EndsAt *time.Time `json:"ends_at"`

	Description *string       `json:"description"`
	Priority    *TaskPriority `json:"priority"`
	Status      *TaskStatus   `json:"status"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (Task) TableName() string {
	return "tasks"
}

// TaskCreate is the payload of a task creation request.
type TaskCreate struct {
	Title       string        `json:"title" validate:"required,max=255"`
	StartsAt    time.Time     `json:"starts_at" validate:"required"`
	EndsAt      *time.Time    `json:"ends_at" validate:"omitempty,gtefield=StartsAt"`
	Description *string       `json:"description"`
	Priority    *TaskPriority `json:"priority" validate:"omitempty,oneof=high medium low"`
	Status      *TaskStatus   `json:"status" validate:"omitempty,oneof=todo in_progress done cancelled"`
}

// TaskUpdate is a partial update of a task.
type TaskUpdate struct {
	Title       *string       `json:"title" validate:"omitempty,min=1,max=255"`
	StartsAt    *time.Time    `json:"starts_at"`
	EndsAt      *time.Time    `json:"ends_at"`
	Description *string       `json:"description"`
	Priority    *TaskPriority `json:"priority" validate:"omitempty,oneof=high medium low"`
	Status      *TaskStatus   `json:"status" validate:"omitempty,oneof=todo in_progress done cancelled"`
}
