package domain

import "time"

// TaskAssignee says who a task is for: everyone, a whole role, or one user
// (in which case AssignedToID is set).
type TaskAssignee string

const (
	AssignAll     TaskAssignee = "all"
	AssignAdmin   TaskAssignee = "admin"
	AssignManager TaskAssignee = "manager"
	AssignSeller  TaskAssignee = "seller"
	AssignUser    TaskAssignee = "user"
)

func (a TaskAssignee) Valid() bool {
	switch a {
	case AssignAll, AssignAdmin, AssignManager, AssignSeller, AssignUser:
		return true
	}
	return false
}

type Task struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Completed    bool         `json:"completed"`
	AssignedTo   TaskAssignee `json:"assignedTo"`
	AssignedToID *string      `json:"assignedToId,omitempty"`
	CreatedBy    string       `json:"createdBy"`
	CreatedAt    time.Time    `json:"createdAt"`
}
